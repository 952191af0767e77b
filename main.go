package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/cmd"
	"github.com/df07/go-photon-mapper/pkg/log"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "photon-mapper"
	app.Usage = "trace photons through built-in scenes and query the resulting photon map"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "map",
			Usage: "build a photon map and report emission statistics",
			Description: `
Split the photon budget across the scene lights in proportion to their power,
trace every photon until it is absorbed, escapes or runs out of bounces, and
index the stored photons in a kd-tree.`,
			Flags:  cmd.MappingFlags,
			Action: cmd.MapScene,
		},
		{
			Name:      "query",
			Usage:     "estimate flux density at a surface point",
			ArgsUsage: "--point x,y,z [--normal x,y,z]",
			Flags:     append(append([]cli.Flag{}, cmd.MappingFlags...), cmd.QueryFlags...),
			Action:    cmd.Query,
		},
		{
			Name:   "bench",
			Usage:  "benchmark photon tracing, kd-tree construction and gathering",
			Flags:  append(append([]cli.Flag{}, cmd.MappingFlags...), cmd.BenchFlags...),
			Action: cmd.Bench,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("photon-mapper").Error(err)
		os.Exit(1)
	}
}
