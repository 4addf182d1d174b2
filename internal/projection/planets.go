package projection

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Planet is a named preset of the physical parameters that cannot be derived
// from the images themselves.
type Planet struct {
	Name             string
	Flattening       float64
	SiderealRotation time.Duration
}

// Planets returns the built-in presets.
func Planets() []Planet {
	return []Planet{
		{Name: "Jupiter", Flattening: 0.06487, SiderealRotation: 9*time.Hour + 55*time.Minute + 30*time.Second},
		{Name: "Mars", Flattening: 0.00589, SiderealRotation: 24*time.Hour + 37*time.Minute + 23*time.Second},
	}
}

// PlanetByName looks up a preset case-insensitively among the given presets.
func PlanetByName(planets []Planet, name string) (Planet, bool) {
	for _, p := range planets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Planet{}, false
}

type planetYAML struct {
	Name             string  `yaml:"name"`
	Flattening       float64 `yaml:"flattening"`
	SiderealRotation string  `yaml:"sidereal_rotation"`
}

// LoadPlanets reads additional presets from a YAML file. Entries whose name
// matches a built-in preset replace it; others are appended.
//
// File format:
//
//	- name: Saturn
//	  flattening: 0.09796
//	  sidereal_rotation: 10h33m38s
func LoadPlanets(path string) ([]Planet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read planet presets: %w", err)
	}

	var entries []planetYAML
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse planet presets: %w", err)
	}

	planets := Planets()
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("planet preset without a name")
		}
		rotation, err := time.ParseDuration(e.SiderealRotation)
		if err != nil {
			return nil, fmt.Errorf("planet %s: bad sidereal_rotation: %w", e.Name, err)
		}
		p := Planet{Name: e.Name, Flattening: e.Flattening, SiderealRotation: rotation}

		replaced := false
		for i := range planets {
			if strings.EqualFold(planets[i].Name, e.Name) {
				planets[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			planets = append(planets, p)
		}
	}
	return planets, nil
}
