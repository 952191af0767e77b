package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/photonmap"
)

// MapScene runs a photon mapping pass over a built-in scene and reports statistics.
func MapScene(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := mapperConfig(ctx)
	if err != nil {
		return err
	}
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}

	pm, stats, err := photonmap.NewMapper(config, nil, logger).BuildPhotonMap(s)
	if err != nil {
		return err
	}

	displayAllocation(s.GetLights(), stats.Budget)
	displayMappingStats(stats)
	logger.Noticef("photon map holds %d photons within %v - %v", pm.Len(), pm.Bounds().Min, pm.Bounds().Max)
	return nil
}

func displayAllocation(sceneLights []lights.Light, budget lights.PhotonBudget) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Light", "Type", "Power", "Photons", "% of budget"})
	for i, light := range sceneLights {
		share := 0.0
		if budget.Total > 0 {
			share = 100 * float64(budget.Counts[i]) / float64(budget.Total)
		}
		table.Append([]string{
			fmt.Sprintf("%d", i),
			string(light.Type()),
			fmt.Sprintf("%.3f", light.Power()),
			fmt.Sprintf("%d", budget.Counts[i]),
			fmt.Sprintf("%02.1f %%", share),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", fmt.Sprintf("%d", budget.Total)})

	table.Render()
	logger.Noticef("photon allocation\n%s", buf.String())
}

func displayMappingStats(stats photonmap.MappingStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Emitted", "Stored", "Absorbed", "Escaped", "Exhausted", "Avg bounces", "Max bounces", "Workers", "Time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Emitted),
		fmt.Sprintf("%d", stats.Stored),
		fmt.Sprintf("%d", stats.Absorbed),
		fmt.Sprintf("%d", stats.Escaped),
		fmt.Sprintf("%d", stats.Exhausted),
		fmt.Sprintf("%.2f", stats.AverageBounces()),
		fmt.Sprintf("%d", stats.MaxBouncesUsed),
		fmt.Sprintf("%d", stats.Workers),
		stats.Elapsed.String(),
	})

	table.Render()
	logger.Noticef("mapping statistics\n%s", buf.String())
}
