package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expanda/catalog-api/pkg/textutil"
)

func TestFold_RecortaYNormaliza(t *testing.T) {
	assert.Equal(t, "teclado", textutil.Fold("  Teclado  "))
	assert.Equal(t, "teclado gamer", textutil.Fold("TECLADO GAMER"))
	assert.Equal(t, "", textutil.Fold("   "))
}

// Fold debe producir exactamente la misma clave que lower(btrim(col)) en
// PostgreSQL: minúsculas carácter a carácter, sin full case folding. Si Fold
// expandiera "ß" a "ss" la clave Go nunca coincidiría con la columna y las
// búsquedas por nombre (compra, login) devolverían "no encontrado" para
// registros existentes.
func TestFold_CoincideConLowerDeSQL(t *testing.T) {
	assert.Equal(t, "straße", textutil.Fold("  Straße "), "ß se conserva, no se expande a ss")
	assert.Equal(t, "ſ", textutil.Fold("ſ"), "la s larga ya es minúscula y no se reescribe")
	assert.Equal(t, "θέμισ", textutil.Fold("ΘΈΜΙΣ"), "sigma final sin mapeo contextual, como lower() de SQL")
	assert.Equal(t, "ñandú", textutil.Fold("ÑANDÚ"))
}

func TestEqualFold_Caseless(t *testing.T) {
	assert.True(t, textutil.EqualFold("  Monitor ", "monitor"))
	assert.True(t, textutil.EqualFold("ADMIN", "admin"))
	assert.False(t, textutil.EqualFold("monitor", "monitores"))
}
