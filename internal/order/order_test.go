package order

import (
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload_Defaults(t *testing.T) {
	p := NewPayload(rand.New(rand.NewSource(1)))

	assert.Equal(t, 2500.0, p.Preset)
	assert.Equal(t, "Shell", p.Cliente.RazonSocial)
	assert.Equal(t, "Camión cisterna aluminio", p.Camion.Descripcion)
	assert.Equal(t, []int{10000, 2500}, p.Camion.Cisternado)
	assert.Equal(t, "Pérez", p.Chofer.Apellido)
	assert.Equal(t, "Butano", p.Producto.Nombre)
}

func TestNewPayload_IdentifierFormats(t *testing.T) {
	p := NewPayload(rand.New(rand.NewSource(2)))

	year := fmt.Sprint(time.Now().Year())
	assert.Regexp(t, regexp.MustCompile(`^SAP-`+year+`-\d{3,6}$`), p.OrderCode)
	assert.Regexp(t, `^CLI-\d{5}$`, p.Cliente.CodigoCliente)
	assert.Regexp(t, `^TRK-\d{5}$`, p.Camion.CodigoCamion)
	assert.Regexp(t, `^DRV-\d{6}$`, p.Chofer.CodigoChofer)
	assert.Regexp(t, `^PROD-\d{6}$`, p.Producto.CodigoProducto)
	assert.Regexp(t, `^[A-Z]{2}\d{5}$`, p.Camion.Patente)
}

func TestNewPayload_SeedDeterminism(t *testing.T) {
	a := NewPayload(rand.New(rand.NewSource(99)))
	b := NewPayload(rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestApply_Overrides(t *testing.T) {
	p := NewPayload(rand.New(rand.NewSource(3)))
	preset := 1800.0

	p.Apply(Overrides{
		OrderCode:      "SAP-2026-999",
		Preset:         &preset,
		RazonSocial:    "YPF",
		Patente:        "AB12345",
		Cisternado:     "8000, 4000",
		Nombre:         "Ana",
		ProductoNombre: "Propano",
	})

	assert.Equal(t, "SAP-2026-999", p.OrderCode)
	assert.Equal(t, 1800.0, p.Preset)
	assert.Equal(t, "YPF", p.Cliente.RazonSocial)
	assert.Equal(t, "AB12345", p.Camion.Patente)
	assert.Equal(t, []int{8000, 4000}, p.Camion.Cisternado)
	assert.Equal(t, "Ana", p.Chofer.Nombre)
	assert.Equal(t, "Propano", p.Producto.Nombre)

	// Untouched fields keep their defaults.
	assert.Equal(t, "Camión cisterna aluminio", p.Camion.Descripcion)
	assert.Equal(t, "Pérez", p.Chofer.Apellido)
}

func TestApply_EmptyOverridesKeepDefaults(t *testing.T) {
	p := NewPayload(rand.New(rand.NewSource(4)))
	before := *p
	p.Apply(Overrides{})
	assert.Equal(t, before, *p)
}

func TestApply_MalformedCisternadoKeepsDefault(t *testing.T) {
	p := NewPayload(rand.New(rand.NewSource(5)))
	p.Apply(Overrides{Cisternado: "10000,abc"})
	assert.Equal(t, []int{10000, 2500}, p.Camion.Cisternado)
}

func TestParseCisternado(t *testing.T) {
	caps, ok := ParseCisternado("10000,2500")
	require.True(t, ok)
	assert.Equal(t, []int{10000, 2500}, caps)

	caps, ok = ParseCisternado(" 5000 , , 1000 ")
	require.True(t, ok)
	assert.Equal(t, []int{5000, 1000}, caps)

	_, ok = ParseCisternado("5000,x")
	assert.False(t, ok)

	_, ok = ParseCisternado(" , ")
	assert.False(t, ok)
}

func TestFileName(t *testing.T) {
	p := &Payload{OrderCode: "SAP-2025-136"}
	assert.Equal(t, "SAP-2025-136.json", p.FileName())
}
