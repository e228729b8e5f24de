package cache_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvargas/propiedades-api/internal/infrastructure/cache"
)

type payload struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

func TestFileCache_SetYGet(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set("charts", payload{Name: "renta", Total: 42}))

	var got payload
	hit, err := c.Get("charts", time.Hour, &got)
	require.NoError(t, err)
	assert.True(t, hit, "la entrada recién escrita debe estar fresca")
	assert.Equal(t, payload{Name: "renta", Total: 42}, got)
}

func TestFileCache_MissSinArchivo(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	var got payload
	hit, err := c.Get("no-existe", time.Hour, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFileCache_EntradaVencidaEsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, c.Set("charts", payload{Name: "renta"}))

	// envejecer el archivo más allá del TTL vía mtime
	stale := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "charts.json"), stale, stale))

	var got payload
	hit, err := c.Get("charts", time.Hour, &got)
	require.NoError(t, err)
	assert.False(t, hit, "una entrada más vieja que maxAge debe tratarse como miss")
}

func TestFileCache_ArchivoCorruptoEsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "charts.json"), []byte("{no es json"), 0o644))

	var got payload
	hit, err := c.Get("charts", time.Hour, &got)
	require.NoError(t, err, "un archivo corrupto no debe ser fatal")
	assert.False(t, hit, "se trata como miss para forzar la regeneración")
}

func TestFileCache_SobrescrituraIdempotente(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set("charts", payload{Total: 1}))
	require.NoError(t, c.Set("charts", payload{Total: 2}))

	var got payload
	hit, err := c.Get("charts", time.Hour, &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, 2, got.Total, "la última escritura gana")
}
