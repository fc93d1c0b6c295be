package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a scene for the given options
type Builder func(opts Options) *Scene

// Preset describes a built-in scene
type Preset struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Build       Builder `json:"-"`
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "Two diffuse spheres under a sky gradient, basic camera",
		Build:       NewDefaultScene,
	},
	"materials": {
		Name:        "materials",
		Description: "Diffuse, fuzzy gold and hollow glass spheres with depth of field",
		Build:       NewMaterialsScene,
	},
	"random": {
		Name:        "random",
		Description: "Hundreds of random small spheres around three large ones",
		Build:       NewRandomScene,
	},
}

// Lookup returns the preset registered under name
func Lookup(name string) (Preset, error) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return preset, nil
}

// Presets returns all built-in scenes sorted by name
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, preset := range presets {
		list = append(list, preset)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
