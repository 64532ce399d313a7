package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensiones aceptadas para imágenes de producto.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ImageStore guarda imágenes de producto en disco bajo un directorio público
// servido estáticamente. El nombre del archivo se genera con uuid para evitar
// colisiones y adivinación de rutas.
type ImageStore struct {
	dir        string // directorio físico
	publicPath string // prefijo bajo el que Fiber sirve el directorio, ej. /ProductsImages
}

// NewImageStore construye el almacén y crea el directorio si no existe.
func NewImageStore(dir, publicPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	return &ImageStore{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}, nil
}

// Save escribe el contenido con la extensión del nombre original y devuelve
// la ruta pública y la ruta local relativa. Rechaza extensiones no permitidas.
func (s *ImageStore) Save(originalName string, src io.Reader) (publicURL, localPath string, err error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", "", fmt.Errorf("extensión de imagen no permitida: %q", ext)
	}

	fileName := uuid.New().String() + ext
	dstPath := filepath.Join(s.dir, fileName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", "", fmt.Errorf("guardar imagen: %w", err)
	}

	publicURL = path.Join(s.publicPath, fileName)
	return publicURL, strings.TrimPrefix(publicURL, "/"), nil
}

// Remove borra una imagen previamente guardada (ruta local relativa).
// Ignora archivos inexistentes.
func (s *ImageStore) Remove(localPath string) error {
	if localPath == "" {
		return nil
	}
	full := filepath.Join(s.dir, filepath.Base(localPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}
