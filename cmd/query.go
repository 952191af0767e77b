package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/pkg/photonmap"
)

// QueryFlags select the surface point a radiance estimate is made for.
var QueryFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "point, p",
		Usage: "query position as x,y,z",
	},
	cli.StringFlag{
		Name:  "normal",
		Value: "0,1,0",
		Usage: "surface normal at the query position as x,y,z",
	},
}

// Query builds a photon map and gathers flux at a single surface point.
func Query(ctx *cli.Context) error {
	setupLogging(ctx)

	if !ctx.IsSet("point") {
		return errors.New("missing --point argument")
	}
	point, err := parseVec3(ctx.String("point"))
	if err != nil {
		return err
	}
	normal, err := parseVec3(ctx.String("normal"))
	if err != nil {
		return err
	}
	if normal.IsZero() {
		return errors.New("normal must not be zero")
	}
	normal = normal.Normalize()

	config, err := mapperConfig(ctx)
	if err != nil {
		return err
	}
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}

	pm, _, err := photonmap.NewMapper(config, nil, logger).BuildPhotonMap(s)
	if err != nil {
		return err
	}

	neighbors := pm.KNearest(point, config.NeighborCount)
	displayNeighbors(pm, neighbors)

	flux := pm.Gather(point, normal)
	logger.Noticef("flux density at %v (normal %v): %v", point, normal, flux)
	return nil
}

func displayNeighbors(pm *photonmap.PhotonMap, neighbors []photonmap.Neighbor) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Photon", "Distance", "Position", "Direction", "Energy"})
	for _, n := range neighbors {
		table.Append([]string{
			fmt.Sprintf("%d", n.Index),
			fmt.Sprintf("%.4f", n.Distance()),
			fmt.Sprintf("%v", pm.Position(n.Index)),
			fmt.Sprintf("%v", pm.Direction(n.Index)),
			fmt.Sprintf("%v", pm.Energy(n.Index)),
		})
	}

	table.Render()
	logger.Noticef("%d nearest photons\n%s", len(neighbors), buf.String())
}
