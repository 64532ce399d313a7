package textutil

import "strings"

// Fold normaliza un texto para comparaciones sin distinguir mayúsculas:
// recorta espacios laterales y pasa a minúsculas Unicode carácter a carácter.
// Debe producir la misma clave que lower(btrim(col)) en PostgreSQL, así que
// NO aplica full case folding ("Straße" queda "straße", nunca "strasse") ni
// mapeos contextuales como la sigma final griega; cualquier divergencia aquí
// generaría claves que la comparación SQL jamás igualaría. Los casos de uso
// normalizan la entrada con esta función antes de consultar.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EqualFold informa si dos textos son equivalentes bajo Fold.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
