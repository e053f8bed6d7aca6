package config

import (
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stalagsim/internal/catalog"
	"github.com/san-kum/stalagsim/internal/lab"
)

const (
	DefaultDropMass  = "0.002"
	DefaultRadius    = "0.5"
	DefaultDropCount = "10"
	DefaultFPS       = 60
	DefaultTheme     = "ocean"
)

// Config is the startup state of the lab. Numeric form fields are kept as
// raw strings and parsed the same way typed input is.
type Config struct {
	Liquid    string `yaml:"liquid"`
	Planet    string `yaml:"planet"`
	DropMass  string `yaml:"drop_mass"`
	Radius    string `yaml:"radius"`
	DropCount string `yaml:"drop_count"`

	Strict bool   `yaml:"strict"`
	FPS    int    `yaml:"fps"`
	Theme  string `yaml:"theme"`
	Audio  bool   `yaml:"audio"`
	Label  string `yaml:"label"`
	Unit   string `yaml:"unit"`

	Catalog CatalogConfig `yaml:"catalog"`
}

// CatalogConfig extends the built-in constants. It is applied once when
// the catalogs are built.
type CatalogConfig struct {
	Liquids      map[string]float64 `yaml:"liquids"`
	Planets      map[string]float64 `yaml:"planets"`
	DisplayNames map[string]string  `yaml:"display_names"`
}

func DefaultConfig() *Config {
	return &Config{
		Liquid:    catalog.DefaultLiquid,
		Planet:    catalog.DefaultPlanet,
		DropMass:  DefaultDropMass,
		Radius:    DefaultRadius,
		DropCount: DefaultDropCount,
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
		Label:     lab.DefaultLabel,
		Unit:      lab.DefaultUnit,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// the values of base. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Catalog.Liquids = maps.Clone(base.Catalog.Liquids)
	cfg.Catalog.Planets = maps.Clone(base.Catalog.Planets)
	cfg.Catalog.DisplayNames = maps.Clone(base.Catalog.DisplayNames)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Form returns the raw numeric form fields.
func (c *Config) Form() lab.Form {
	return lab.Form{DropMass: c.DropMass, Radius: c.Radius, DropCount: c.DropCount}
}

// Catalogs builds the frozen catalogs for this configuration.
func (c *Config) Catalogs() (*catalog.Catalogs, error) {
	return catalog.New(c.Catalog.Liquids, c.Catalog.Planets, c.Catalog.DisplayNames)
}

// NewSession builds the catalogs, the model and a session, and applies the
// configured liquid and planet through the session commands.
func (c *Config) NewSession(opts ...lab.SessionOption) (*lab.Session, error) {
	cats, err := c.Catalogs()
	if err != nil {
		return nil, err
	}
	model := lab.NewModel(cats, c.Form(), lab.WithStrict(c.Strict))
	opts = append([]lab.SessionOption{lab.WithLabel(c.Label, c.Unit)}, opts...)
	s := lab.NewSession(model, opts...)

	if c.Liquid != "" && c.Liquid != catalog.DefaultLiquid {
		if err := s.OnLiquidChanged(c.Liquid); err != nil {
			return nil, err
		}
	}
	if c.Planet != "" && c.Planet != catalog.DefaultPlanet {
		if err := s.OnPlanetChanged(c.Planet); err != nil {
			return nil, err
		}
	}
	return s, nil
}
