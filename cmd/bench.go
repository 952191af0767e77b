package cmd

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/photonmap"
)

// BenchFlags control the benchmark sweep.
var BenchFlags = []cli.Flag{
	cli.IntSliceFlag{
		Name:  "counts",
		Value: &cli.IntSlice{1000, 10000, 100000},
		Usage: "photon counts to benchmark",
	},
	cli.IntFlag{
		Name:  "queries",
		Value: 10000,
		Usage: "random gather queries per photon map",
	},
}

type benchResult struct {
	photons   int
	stored    int
	mapTime   time.Duration
	buildTime time.Duration
	queryTime time.Duration
	queries   int
}

// rate returns n per second of elapsed time, 0 when nothing was measured
func rate(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / elapsed.Seconds()
}

// Bench measures photon tracing, kd-tree construction and gather throughput.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	config, err := mapperConfig(ctx)
	if err != nil {
		return err
	}
	s, err := loadScene(ctx)
	if err != nil {
		return err
	}

	displaySystemInfo()

	var results []benchResult
	for _, count := range ctx.IntSlice("counts") {
		config.PhotonCount = count
		if err := config.Validate(); err != nil {
			return err
		}

		mapper := photonmap.NewMapper(config, nil, logger)
		start := time.Now()
		records, stats, err := mapper.MapScene(s)
		if err != nil {
			return err
		}
		mapTime := time.Since(start)

		start = time.Now()
		pm := photonmap.NewPhotonMap(records, config)
		buildTime := time.Since(start)

		queries := ctx.Int("queries")
		queryTime := benchGather(pm, queries, config.Seed)

		results = append(results, benchResult{
			photons:   stats.Emitted,
			stored:    stats.Stored,
			mapTime:   mapTime,
			buildTime: buildTime,
			queryTime: queryTime,
			queries:   queries,
		})
	}

	displayBenchResults(results)
	return nil
}

// benchGather times gather queries at random points inside the map bounds.
func benchGather(pm *photonmap.PhotonMap, queries int, seed int64) time.Duration {
	if pm.Len() == 0 || queries <= 0 {
		return 0
	}
	sampler := core.NewSeededSamplerFactory(seed)(-1)
	bounds := pm.Bounds()
	size := bounds.Size()

	start := time.Now()
	for i := 0; i < queries; i++ {
		point := bounds.Min.Add(size.MultiplyVec(sampler.Get3D()))
		normal := core.SampleOnUnitSphere(sampler.Get2D())
		pm.Gather(point, normal)
	}
	return time.Since(start)
}

func displaySystemInfo() {
	cpuName := "unknown"
	if cpuInfo, err := cpu.Info(); err != nil {
		logger.Warningf("could not read CPU info: %v", err)
	} else if len(cpuInfo) > 0 {
		cpuName = fmt.Sprintf("%s @ %.2f GHz", cpuInfo[0].ModelName, cpuInfo[0].Mhz/1000)
	}

	totalRAM := "unknown"
	if memInfo, err := mem.VirtualMemory(); err != nil {
		logger.Warningf("could not read memory info: %v", err)
	} else {
		totalRAM = fmt.Sprintf("%d GB", memInfo.Total/(1024*1024*1024))
	}

	logger.Noticef("host: %s, %d logical cores, %s RAM, %s", cpuName, runtime.NumCPU(), totalRAM, runtime.Version())
}

func displayBenchResults(results []benchResult) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Photons", "Stored", "Trace time", "Photons/s", "Build time", "Queries", "Query time", "Queries/s"})
	for _, r := range results {
		table.Append([]string{
			fmt.Sprintf("%d", r.photons),
			fmt.Sprintf("%d", r.stored),
			r.mapTime.String(),
			fmt.Sprintf("%.0f", rate(r.photons, r.mapTime)),
			r.buildTime.String(),
			fmt.Sprintf("%d", r.queries),
			r.queryTime.String(),
			fmt.Sprintf("%.0f", rate(r.queries, r.queryTime)),
		})
	}

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())
}
