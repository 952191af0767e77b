package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-photon-mapper/pkg/core"
)

// builders maps scene names accepted on the command line to their constructors
var builders = map[string]func() *Scene{
	"cornell": NewCornellScene,
	"default": NewDefaultScene,
	"enclosed": func() *Scene {
		return NewEnclosedScene(core.NewVec3(0.8, 0.8, 0.8))
	},
}

// Names returns the available built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene
func ByName(name string) (*Scene, error) {
	build, ok := builders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}
