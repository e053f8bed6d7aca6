package config

var Presets = map[string]*Config{
	"classroom": {
		Liquid: "water", Planet: "earth", DropMass: "0.002", Radius: "0.5", DropCount: "10",
	},
	"lunar-water": {
		Liquid: "water", Planet: "moon", DropMass: "0.002", Radius: "0.5", DropCount: "10",
	},
	"martian-oil": {
		Liquid: "oil", Planet: "mars", DropMass: "0.0015", Radius: "0.4", DropCount: "20",
	},
	"alcohol-fine-tip": {
		Liquid: "alcohol", Planet: "earth", DropMass: "0.0008", Radius: "0.2", DropCount: "25",
	},
	"heavy-drop": {
		Liquid: "water", Planet: "earth", DropMass: "0.01", Radius: "1.2", DropCount: "5",
	},
}

// GetPreset returns a copy of the named preset layered over the defaults,
// or nil if there is no such preset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Liquid, cfg.Planet = p.Liquid, p.Planet
	cfg.DropMass, cfg.Radius, cfg.DropCount = p.DropMass, p.Radius, p.DropCount
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
