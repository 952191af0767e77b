package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/photonmap"
	"github.com/df07/go-photon-mapper/pkg/scene"
)

// MappingFlags are the flags shared by every command that runs a mapping pass.
var MappingFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "cornell",
		Usage: "built-in scene: " + strings.Join(scene.Names(), ", "),
	},
	cli.IntFlag{
		Name:  "photons, n",
		Value: photonmap.DefaultConfig().PhotonCount,
		Usage: "total number of photons to emit",
	},
	cli.IntFlag{
		Name:  "bounces",
		Value: photonmap.DefaultConfig().MaxBounces,
		Usage: "maximum bounces per photon",
	},
	cli.IntFlag{
		Name:  "neighbors, k",
		Value: photonmap.DefaultConfig().NeighborCount,
		Usage: "photons used per radiance estimate",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "emission workers (0 = one per CPU)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: photonmap.DefaultConfig().Seed,
		Usage: "base seed for photon sampling",
	},
	cli.BoolFlag{
		Name:  "record-exhausted",
		Usage: "store photons that run out of bounces at their last hit",
	},
}

// mapperConfig builds a photon mapping configuration from command flags.
func mapperConfig(ctx *cli.Context) (photonmap.Config, error) {
	config := photonmap.DefaultConfig()
	config.PhotonCount = ctx.Int("photons")
	config.MaxBounces = ctx.Int("bounces")
	config.NeighborCount = ctx.Int("neighbors")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = ctx.Int64("seed")
	config.RecordExhausted = ctx.Bool("record-exhausted")

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// loadScene resolves the scene flag to a built-in scene.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	return scene.ByName(ctx.String("scene"))
}

// parseVec3 parses "x,y,z".
func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z but got %q", value)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid coordinate %q: %w", part, err)
		}
		coords[i] = v
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}
