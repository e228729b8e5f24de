// Package cache implementa el cache en disco de los datos de gráficos.
// La frescura se decide con el mtime del archivo (stat), sin locking:
// la regeneración concurrente sobrescribe de forma idempotente.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cvargas/propiedades-api/internal/application/analytics"
)

var _ analytics.ChartCache = (*FileCache)(nil)

// FileCache guarda cada entrada como un JSON <key>.json dentro de dir.
type FileCache struct {
	dir string
}

// NewFileCache crea el directorio si no existe.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: crear directorio %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// Get deserializa en dest si el archivo existe y su mtime no supera maxAge.
// Devuelve false en miss o entrada vencida.
func (c *FileCache) Get(key string, maxAge time.Duration, dest interface{}) (bool, error) {
	path := c.path(key)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("cache: stat %s: %w", path, err)
	}
	if time.Since(info.ModTime()) > maxAge {
		return false, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("cache: leer %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// archivo corrupto: tratarlo como miss para que se regenere
		return false, nil
	}
	return true, nil
}

// Set serializa value y lo escribe con un rename atómico para que un lector
// concurrente nunca vea un archivo a medio escribir.
func (c *FileCache) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: serializar %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(c.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cache: archivo temporal: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cache: renombrar %s: %w", key, err)
	}
	return nil
}
