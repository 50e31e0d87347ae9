package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordergen/internal/measure"
)

func TestWriteIndented_Array(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detalles.json")
	readings := []measure.Reading{
		{MasaAcumulada: 50.5, Densidad: 0.81, Temperatura: 20.1, Caudal: 181.8, OrdenID: 25},
		{MasaAcumulada: 100, Densidad: 0.84, Temperatura: 19.7, Caudal: 178.2, OrdenID: 25},
	}

	require.NoError(t, WriteIndented(path, readings, 2))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []measure.Reading
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, readings, decoded)

	// Spanish wire keys, indented form.
	assert.Contains(t, string(data), `"masaAcumulada"`)
	assert.Contains(t, string(data), `"orden_id"`)
	assert.Contains(t, string(data), "\n  ")
}

func TestWriteLines_NDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detalles.ndjson")
	readings := []measure.Reading{
		{MasaAcumulada: 1, OrdenID: 7},
		{MasaAcumulada: 2, OrdenID: 7},
		{MasaAcumulada: 3, OrdenID: 7},
	}

	require.NoError(t, WriteLines(path, readings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		var r measure.Reading
		require.NoError(t, json.Unmarshal([]byte(line), &r), "line %d", i)
		assert.Equal(t, readings[i], r)
		assert.NotContains(t, line, "  ", "NDJSON lines must be compact")
	}
}

func TestWriteIndented_NonASCIIUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orden.json")
	doc := map[string]string{"descripcion": "Camión cisterna", "apellido": "Pérez"}

	require.NoError(t, WriteIndented(path, doc, 4))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Camión")
	assert.Contains(t, string(data), "Pérez")
	assert.NotContains(t, string(data), `\u`)
}
