// Package catalog holds the fixed pick lists shown on job and profile forms.
package catalog

import (
	_ "embed"
	"slices"
	"sync"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var raw []byte

type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

type Catalog struct {
	Categories    []string `yaml:"categories" json:"categories"`
	JobTypes      []Option `yaml:"job_types" json:"job_types"`
	Industries    []string `yaml:"industries" json:"industries"`
	CompanySizes  []string `yaml:"company_sizes" json:"company_sizes"`
	StatusOptions []Option `yaml:"-" json:"statuses"`
}

var (
	once   sync.Once
	loaded Catalog
	err    error
)

// Load parses the embedded catalog once.
func Load() (Catalog, error) {
	once.Do(func() {
		err = yaml.Unmarshal(raw, &loaded)
		for _, s := range domain.ApplicationStatuses {
			loaded.StatusOptions = append(loaded.StatusOptions, Option{Value: string(s), Label: s.Label()})
		}
	})
	return loaded, err
}

// MustLoad panics when the embedded file is broken.
func MustLoad() Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) HasCategory(name string) bool {
	return slices.Contains(c.Categories, name)
}

func (c Catalog) HasIndustry(name string) bool {
	return slices.Contains(c.Industries, name)
}

func (c Catalog) HasCompanySize(size string) bool {
	return slices.Contains(c.CompanySizes, size)
}
