// Package catalog отдает статические справочные данные для экранов:
// теги происшествий, политики отказов, скорые рядом, больницы, показатели датчиков.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Ambulance - скорая поблизости и ее время прибытия
type Ambulance struct {
	Unit       string `yaml:"unit" json:"unit"`
	ETAMinutes int    `yaml:"eta_minutes" json:"eta_minutes"`
}

// Vital - показатель датчика пациента
type Vital struct {
	Label  string `yaml:"label" json:"label"`
	Value  string `yaml:"value" json:"value"`
	Status string `yaml:"status" json:"status"`
}

// Catalog - справочные данные
type Catalog struct {
	IncidentTags      []string    `yaml:"incident_tags" json:"incident_tags"`
	IncidentNotes     string      `yaml:"incident_notes" json:"incident_notes"`
	RejectionPolicies []string    `yaml:"rejection_policies" json:"rejection_policies"`
	NearbyAmbulances  []Ambulance `yaml:"nearby_ambulances" json:"nearby_ambulances"`
	HospitalOptions   []string    `yaml:"hospital_options" json:"hospital_options"`
	Vitals            []Vital     `yaml:"vitals" json:"vitals"`
}

// Default возвращает встроенный справочник
func Default() (*Catalog, error) {
	return parse(defaultCatalog)
}

// Load читает справочник из YAML
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.IncidentTags) == 0 {
		return nil, fmt.Errorf("catalog has no incident tags")
	}
	return &c, nil
}

// HasTag сообщает, есть ли тег в списке тегов происшествий
func (c *Catalog) HasTag(tag string) bool {
	return slices.Contains(c.IncidentTags, tag)
}
