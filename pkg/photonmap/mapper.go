package photonmap

import (
	"time"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/log"
)

var logger = log.New("photonmap")

// Mapper runs photon mapping passes over scenes
type Mapper struct {
	config   Config
	samplers core.SamplerFactory
	logger   log.Logger
}

// NewMapper creates a mapper. A nil sampler factory uses seeded random samplers
// derived from config.Seed; a nil logger uses the package logger.
func NewMapper(config Config, samplers core.SamplerFactory, l log.Logger) *Mapper {
	if samplers == nil {
		samplers = core.NewSeededSamplerFactory(config.Seed)
	}
	if l == nil {
		l = logger
	}
	return &Mapper{config: config, samplers: samplers, logger: l}
}

// Config returns the mapper's configuration
func (m *Mapper) Config() Config { return m.config }

// New maps a scene with default settings and the given photon count and bounce depth
func New(scene Scene, photonCount, maxBounces int) (*PhotonMap, error) {
	config := DefaultConfig()
	config.PhotonCount = photonCount
	config.MaxBounces = maxBounces
	pm, _, err := NewMapper(config, nil, nil).BuildPhotonMap(scene)
	return pm, err
}

// BuildPhotonMap traces photons through the scene and indexes the stored records
func (m *Mapper) BuildPhotonMap(scene Scene) (*PhotonMap, MappingStats, error) {
	records, stats, err := m.MapScene(scene)
	if err != nil {
		return nil, stats, err
	}
	return NewPhotonMap(records, m.config), stats, nil
}

// MapScene emits the configured number of photons, split across lights by power,
// and returns the stored records. Records are ordered by light, then emission
// order, so the result only depends on the configuration and sampler factory.
// scene must be non-nil.
func (m *Mapper) MapScene(scene Scene) ([]Record, MappingStats, error) {
	var stats MappingStats
	if err := m.config.Validate(); err != nil {
		return nil, stats, err
	}

	start := time.Now()
	sceneLights := scene.GetLights()
	stats.Budget = lights.AllocatePhotons(sceneLights, m.config.PhotonCount, m.config.MinLightPower)
	m.logger.Debugf("photon budget: %v", stats.Budget)

	tasks := m.createTasks(sceneLights, stats.Budget)
	if len(tasks) == 0 {
		m.logger.Noticef("no light with power above %g among %d lights; photon map is empty",
			m.config.MinLightPower, len(sceneLights))
		stats.Elapsed = time.Since(start)
		return []Record{}, stats, nil
	}

	numWorkers := m.config.workers(len(tasks))
	stats.Workers = numWorkers
	pool := NewWorkerPool(scene, m.config, m.samplers, numWorkers, len(tasks))
	pool.Start()
	for _, task := range tasks {
		pool.SubmitTask(task)
	}
	pool.Stop()

	results := make([]EmissionResult, len(tasks))
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results[result.TaskID] = result
	}

	total := 0
	for _, result := range results {
		total += len(result.Records)
	}
	records := make([]Record, 0, total)
	for _, result := range results {
		records = append(records, result.Records...)
		stats.Merge(result.Stats)
	}
	stats.Elapsed = time.Since(start)

	m.logger.Infof("traced %d photons in %d batches on %d workers: %d stored, %d escaped, %d exhausted (%.2f avg bounces) in %v",
		stats.Emitted, stats.Batches, stats.Workers, stats.Stored, stats.Escaped, stats.Exhausted,
		stats.AverageBounces(), stats.Elapsed)
	return records, stats, nil
}

// createTasks splits every light's photon count into batches of at most BatchSize
func (m *Mapper) createTasks(sceneLights []lights.Light, budget lights.PhotonBudget) []EmissionTask {
	var tasks []EmissionTask
	for i, light := range sceneLights {
		for remaining := budget.Counts[i]; remaining > 0; remaining -= m.config.BatchSize {
			tasks = append(tasks, EmissionTask{
				TaskID:     len(tasks),
				LightIndex: i,
				Light:      light,
				Count:      min(remaining, m.config.BatchSize),
			})
		}
	}
	return tasks
}
