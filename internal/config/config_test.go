package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv("ORDERGEN_ORDER_ID", "")
	t.Setenv("ORDERGEN_FORMAT", "")
	t.Setenv("ORDERGEN_OUTPUT", "")

	d := Default()
	assert.Equal(t, 25, d.Details.OrderID)
	assert.Equal(t, 100, d.Details.Iterations)
	assert.Equal(t, 2500.0, d.Details.FinalMass)
	assert.Equal(t, 30.0, d.Details.TempThreshold)
	assert.Equal(t, 0.03, d.Details.ProbBadCaudal)
	assert.Equal(t, 0.05, d.Details.ProbHighTemp)
	assert.Equal(t, "detalles.json", d.Details.Output)
	assert.Equal(t, "json", d.Details.Format)

	assert.Equal(t, 2500.0, d.Order.Preset)
	assert.Equal(t, "Shell", d.Order.RazonSocial)
	assert.Equal(t, "Pérez", d.Order.Apellido)
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("ORDERGEN_ORDER_ID", "")
	t.Setenv("ORDERGEN_FORMAT", "")
	t.Setenv("ORDERGEN_OUTPUT", "")

	path := filepath.Join(t.TempDir(), "defaults.yaml")

	d := Default()
	d.Details.OrderID = 77
	d.Details.Format = "ndjson"
	d.Order.RazonSocial = "YPF"
	require.NoError(t, d.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 77, loaded.Details.OrderID)
	assert.Equal(t, "ndjson", loaded.Details.Format)
	assert.Equal(t, "YPF", loaded.Order.RazonSocial)
	// Values absent from the file keep the built-ins.
	assert.Equal(t, 2500.0, loaded.Details.FinalMass)
}

func TestLoad_PartialFile(t *testing.T) {
	t.Setenv("ORDERGEN_ORDER_ID", "")
	t.Setenv("ORDERGEN_FORMAT", "")
	t.Setenv("ORDERGEN_OUTPUT", "")

	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte("details:\n  iterations: 10\n"), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Details.Iterations)
	assert.Equal(t, 25, d.Details.OrderID)
	assert.Equal(t, "json", d.Details.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ORDERGEN_ORDER_ID", "133")
	t.Setenv("ORDERGEN_FORMAT", "ndjson")
	t.Setenv("ORDERGEN_OUTPUT", "out.ndjson")

	d := Default()
	assert.Equal(t, 133, d.Details.OrderID)
	assert.Equal(t, "ndjson", d.Details.Format)
	assert.Equal(t, "out.ndjson", d.Details.Output)

	t.Run("unparseable order id ignored", func(t *testing.T) {
		t.Setenv("ORDERGEN_ORDER_ID", "notanint")
		d := Default()
		assert.Equal(t, 25, d.Details.OrderID)
	})
}
