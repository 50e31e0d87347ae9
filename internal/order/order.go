// Package order builds single SAP-style order fixtures for the
// order-management API. Each payload gets freshly generated business
// identifiers (order code, client/truck/driver/product codes, license plate);
// every field can then be overridden from the command line.
package order

import (
	"math/rand"
	"strconv"
	"strings"
)

// Payload is the nested order document posted to the API.
type Payload struct {
	OrderCode          string   `json:"order_code"`
	Preset             float64  `json:"preset"`
	FechaPrevistaCarga string   `json:"fechaPrevistaCarga"`
	Cliente            Cliente  `json:"cliente"`
	Camion             Camion   `json:"camion"`
	Chofer             Chofer   `json:"chofer"`
	Producto           Producto `json:"producto"`
}

// Cliente identifies the client the order belongs to.
type Cliente struct {
	RazonSocial   string `json:"razonSocial"`
	CodigoCliente string `json:"codigo_cliente"`
	Contacto      string `json:"contacto"`
}

// Camion describes the tanker truck assigned to the load.
type Camion struct {
	Patente      string `json:"patente"`
	CodigoCamion string `json:"codigo_camion"`
	Descripcion  string `json:"descripcion"`
	Cisternado   []int  `json:"cisternado"`
}

// Chofer identifies the driver.
type Chofer struct {
	Documento    string `json:"documento"`
	CodigoChofer string `json:"codigo_chofer"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
}

// Producto describes the loaded product.
type Producto struct {
	Nombre         string `json:"nombre"`
	CodigoProducto string `json:"codigo_producto"`
	Descripcion    string `json:"descripcion"`
}

// NewPayload returns an order populated with the stock fixture values and
// fresh random identifiers drawn from rng.
func NewPayload(rng *rand.Rand) *Payload {
	return &Payload{
		OrderCode:          OrderCode(rng),
		Preset:             2500.0,
		FechaPrevistaCarga: "2025-11-16T14:00:00-0300",
		Cliente: Cliente{
			RazonSocial:   "Shell",
			CodigoCliente: Code(rng, "CLI", 5),
			Contacto:      "+54 11 5555-1112",
		},
		Camion: Camion{
			Patente:      Plate(rng),
			CodigoCamion: Code(rng, "TRK", 5),
			Descripcion:  "Camión cisterna aluminio",
			Cisternado:   []int{10000, 2500},
		},
		Chofer: Chofer{
			Documento:    "30151231",
			CodigoChofer: Code(rng, "DRV", 6),
			Nombre:       "Juan",
			Apellido:     "Pérez",
		},
		Producto: Producto{
			Nombre:         "Butano",
			CodigoProducto: Code(rng, "PROD", 6),
			Descripcion:    "Combustible para calefaccion",
		},
	}
}

// Overrides holds optional replacement values for payload fields. Empty
// strings and nil pointers leave the payload untouched.
type Overrides struct {
	OrderCode          string
	Preset             *float64
	FechaPrevistaCarga string

	RazonSocial   string
	CodigoCliente string
	Contacto      string

	Patente           string
	CodigoCamion      string
	DescripcionCamion string
	// Cisternado is a comma-separated list of compartment capacities,
	// e.g. "10000,2500". A malformed list keeps the existing value.
	Cisternado string

	Documento    string
	CodigoChofer string
	Nombre       string
	Apellido     string

	ProductoNombre      string
	CodigoProducto      string
	ProductoDescripcion string
}

// Apply copies every provided override onto the payload.
func (p *Payload) Apply(o Overrides) {
	setString(&p.OrderCode, o.OrderCode)
	if o.Preset != nil {
		p.Preset = *o.Preset
	}
	setString(&p.FechaPrevistaCarga, o.FechaPrevistaCarga)

	setString(&p.Cliente.RazonSocial, o.RazonSocial)
	setString(&p.Cliente.CodigoCliente, o.CodigoCliente)
	setString(&p.Cliente.Contacto, o.Contacto)

	setString(&p.Camion.Patente, o.Patente)
	setString(&p.Camion.CodigoCamion, o.CodigoCamion)
	setString(&p.Camion.Descripcion, o.DescripcionCamion)
	if o.Cisternado != "" {
		if caps, ok := ParseCisternado(o.Cisternado); ok {
			p.Camion.Cisternado = caps
		}
	}

	setString(&p.Chofer.Documento, o.Documento)
	setString(&p.Chofer.CodigoChofer, o.CodigoChofer)
	setString(&p.Chofer.Nombre, o.Nombre)
	setString(&p.Chofer.Apellido, o.Apellido)

	setString(&p.Producto.Nombre, o.ProductoNombre)
	setString(&p.Producto.CodigoProducto, o.CodigoProducto)
	setString(&p.Producto.Descripcion, o.ProductoDescripcion)
}

// FileName returns the per-order output name, <order_code>.json.
func (p *Payload) FileName() string {
	return p.OrderCode + ".json"
}

// ParseCisternado parses a comma-separated capacity list. Blank elements are
// skipped; any non-numeric element makes the whole list invalid.
func ParseCisternado(s string) ([]int, bool) {
	var caps []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		caps = append(caps, n)
	}
	if len(caps) == 0 {
		return nil, false
	}
	return caps, true
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
