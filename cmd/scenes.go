package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/pkg/scene"
)

// ListScenes prints the built-in scenes with their shape and light counts.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Shapes", "Lights", "Total power"})
	for _, name := range scene.Names() {
		s, err := scene.ByName(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%d", len(s.Shapes)),
			fmt.Sprintf("%d", len(s.Lights)),
			fmt.Sprintf("%.3f", s.TotalLightPower()),
		})
	}

	table.Render()
	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}
