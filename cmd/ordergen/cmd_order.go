package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ordergen/internal/fixture"
	"ordergen/internal/order"
)

// Order flags
var (
	ordOrderCode string
	ordPreset    float64
	ordFecha     string
	ordOutput    string
	ordOverwrite bool

	ordRazonSocial   string
	ordCodigoCliente string
	ordContacto      string

	ordPatente           string
	ordCodigoCamion      string
	ordDescripcionCamion string
	ordCisternado        string

	ordDocumento    string
	ordCodigoChofer string
	ordNombre       string
	ordApellido     string

	ordProductoNombre      string
	ordCodigoProducto      string
	ordProductoDescripcion string

	ordSeed int64
)

// orderCmd generates a single SAP-style order fixture
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Generate a single SAP-style order document",
	Long: `Builds one nested order payload with fresh random identifiers (order code,
client/truck/driver/product codes, license plate). Any field can be pinned
with a flag; everything else keeps its generated or stock value.

By default the file is named after the order code; --overwrite writes the
fixed name ordenSap.json instead, so repeated runs replace one fixture.

Example:
  ordergen order --order-code "SAP-2026-999" --patente AB12345 --output pedido.json`,
	RunE: runOrder,
}

func init() {
	f := orderCmd.Flags()
	f.StringVar(&ordOrderCode, "order-code", "", "Order code (e.g. SAP-2025-136)")
	f.Float64Var(&ordPreset, "preset", 2500, "Preset load target (kg)")
	f.StringVar(&ordFecha, "fecha-prevista", "", "Scheduled loading date (string, kept verbatim)")
	f.StringVarP(&ordOutput, "output", "o", "", "Output file (default: <order_code>.json)")
	f.BoolVar(&ordOverwrite, "overwrite", false, "Write the fixed file ordenSap.json instead of one per order code")

	f.StringVar(&ordRazonSocial, "razon-social", "", "Client company name")
	f.StringVar(&ordCodigoCliente, "codigo-cliente", "", "Client code (e.g. CLI-00036)")
	f.StringVar(&ordContacto, "contacto", "", "Client contact")

	f.StringVar(&ordPatente, "patente", "", "Truck license plate (e.g. GF56726)")
	f.StringVar(&ordCodigoCamion, "codigo-camion", "", "Truck code (e.g. TRK-00036)")
	f.StringVar(&ordDescripcionCamion, "descripcion-camion", "", "Truck description")
	f.StringVar(&ordCisternado, "cisternado", "", "Compartment capacities, comma separated (e.g. 10000,2500)")

	f.StringVar(&ordDocumento, "documento", "", "Driver document number")
	f.StringVar(&ordCodigoChofer, "codigo-chofer", "", "Driver code (e.g. DRV-301111)")
	f.StringVar(&ordNombre, "chofer-nombre", "", "Driver first name")
	f.StringVar(&ordApellido, "chofer-apellido", "", "Driver last name")

	f.StringVar(&ordProductoNombre, "producto-nombre", "", "Product name")
	f.StringVar(&ordCodigoProducto, "codigo-producto", "", "Product code (e.g. PROD-77626)")
	f.StringVar(&ordProductoDescripcion, "producto-descripcion", "", "Product description")

	f.Int64Var(&ordSeed, "seed", 0, "Random seed; default entropy when unset")
}

func runOrder(cmd *cobra.Command, args []string) error {
	p := order.NewPayload(newRNG(cmd, ordSeed))

	// Configured defaults first, explicit flags on top.
	od := defaults.Order
	p.Apply(order.Overrides{
		Preset:              &od.Preset,
		FechaPrevistaCarga:  od.FechaPrevistaCarga,
		RazonSocial:         od.RazonSocial,
		Contacto:            od.Contacto,
		DescripcionCamion:   od.DescripcionCamion,
		Cisternado:          od.Cisternado,
		Documento:           od.Documento,
		Nombre:              od.Nombre,
		Apellido:            od.Apellido,
		ProductoNombre:      od.ProductoNombre,
		ProductoDescripcion: od.ProductoDescripcion,
	})

	o := order.Overrides{
		OrderCode:           ordOrderCode,
		FechaPrevistaCarga:  ordFecha,
		RazonSocial:         ordRazonSocial,
		CodigoCliente:       ordCodigoCliente,
		Contacto:            ordContacto,
		Patente:             ordPatente,
		CodigoCamion:        ordCodigoCamion,
		DescripcionCamion:   ordDescripcionCamion,
		Cisternado:          ordCisternado,
		Documento:           ordDocumento,
		CodigoChofer:        ordCodigoChofer,
		Nombre:              ordNombre,
		Apellido:            ordApellido,
		ProductoNombre:      ordProductoNombre,
		CodigoProducto:      ordCodigoProducto,
		ProductoDescripcion: ordProductoDescripcion,
	}
	if cmd.Flags().Changed("preset") {
		o.Preset = &ordPreset
	}
	p.Apply(o)

	out := od.Output
	if cmd.Flags().Changed("output") {
		out = ordOutput
	}
	if out == "" {
		if ordOverwrite {
			out = "ordenSap.json"
		} else {
			out = p.FileName()
		}
	}

	if err := fixture.WriteIndented(out, p, 4); err != nil {
		return err
	}

	logger.Info("order generated",
		zap.String("order_code", p.OrderCode),
		zap.String("path", out))

	fmt.Printf("Generated order %s in %s\n", p.OrderCode, out)
	return nil
}
