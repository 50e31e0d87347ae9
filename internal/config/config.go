// Package config holds the named default parameters for both generators.
// Defaults live in one value constructed at run start instead of scattered
// compile-time literals, so tests and the CLI can inject their own. A YAML
// file can replace the built-ins, and a few ORDERGEN_* environment variables
// override either.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults is the full default-parameter set.
type Defaults struct {
	Details DetailsDefaults `yaml:"details"`
	Order   OrderDefaults   `yaml:"order"`
}

// DetailsDefaults configures the measurement sequence generator.
type DetailsDefaults struct {
	OrderID       int     `yaml:"order_id"`
	Iterations    int     `yaml:"iterations"`
	FinalMass     float64 `yaml:"final_mass"`
	StartMass     float64 `yaml:"start_mass"`
	TempThreshold float64 `yaml:"temp_threshold"`

	ProbBadCaudal  float64 `yaml:"prob_bad_caudal"`
	ProbBadMass    float64 `yaml:"prob_bad_mass"`
	ProbBadDensity float64 `yaml:"prob_bad_density"`
	ProbHighTemp   float64 `yaml:"prob_high_temp"`

	Output string `yaml:"output"`
	Format string `yaml:"format"` // json or ndjson
}

// OrderDefaults configures the order payload generator. Identifier fields
// (codes, plate) have no defaults here; they are generated per invocation.
type OrderDefaults struct {
	Preset             float64 `yaml:"preset"`
	FechaPrevistaCarga string  `yaml:"fecha_prevista_carga"`

	RazonSocial string `yaml:"razon_social"`
	Contacto    string `yaml:"contacto"`

	DescripcionCamion string `yaml:"descripcion_camion"`
	Cisternado        string `yaml:"cisternado"`

	Documento string `yaml:"documento"`
	Nombre    string `yaml:"nombre"`
	Apellido  string `yaml:"apellido"`

	ProductoNombre      string `yaml:"producto_nombre"`
	ProductoDescripcion string `yaml:"producto_descripcion"`

	Output string `yaml:"output"`
}

// Default returns the built-in defaults, matching the stock fixtures the API
// test collection was written against.
func Default() *Defaults {
	d := &Defaults{
		Details: DetailsDefaults{
			OrderID:        25,
			Iterations:     100,
			FinalMass:      2500,
			StartMass:      0,
			TempThreshold:  30,
			ProbBadCaudal:  0.03,
			ProbBadMass:    0.02,
			ProbBadDensity: 0.02,
			ProbHighTemp:   0.05,
			Output:         "detalles.json",
			Format:         "json",
		},
		Order: OrderDefaults{
			Preset:              2500,
			FechaPrevistaCarga:  "2025-11-16T14:00:00-0300",
			RazonSocial:         "Shell",
			Contacto:            "+54 11 5555-1112",
			DescripcionCamion:   "Camión cisterna aluminio",
			Documento:           "30151231",
			Nombre:              "Juan",
			Apellido:            "Pérez",
			ProductoNombre:      "Butano",
			ProductoDescripcion: "Combustible para calefaccion",
		},
	}
	d.applyEnvOverrides()
	return d
}

// Load reads defaults from a YAML file, layered over the built-ins so a
// partial file only replaces what it names.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file: %w", err)
	}

	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	d.applyEnvOverrides()
	return d, nil
}

// Save writes the defaults to a YAML file.
func (d *Defaults) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write defaults file: %w", err)
	}
	return nil
}

// applyEnvOverrides layers ORDERGEN_* environment variables on top of the
// current values. Unparseable numeric values are ignored.
func (d *Defaults) applyEnvOverrides() {
	if v := os.Getenv("ORDERGEN_ORDER_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			d.Details.OrderID = id
		}
	}
	if v := os.Getenv("ORDERGEN_FORMAT"); v != "" {
		d.Details.Format = v
	}
	if v := os.Getenv("ORDERGEN_OUTPUT"); v != "" {
		d.Details.Output = v
	}
}
