package photonmap

import (
	"sync"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/lights"
)

// EmissionTask is one batch of photons from a single light
type EmissionTask struct {
	TaskID     int // Also selects the batch sampler, for deterministic output
	LightIndex int
	Light      lights.Light
	Count      int
}

// EmissionResult contains the records produced by an emission task
type EmissionResult struct {
	TaskID  int
	Records []Record
	Stats   MappingStats
}

// WorkerPool traces emission batches in parallel. Each worker writes only to
// its own result, so no locking is needed until results are merged.
type WorkerPool struct {
	taskQueue   chan EmissionTask
	resultQueue chan EmissionResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker traces the photons of the tasks it receives
type Worker struct {
	ID              int
	scene           Scene
	samplers        core.SamplerFactory
	maxBounces      int
	recordExhausted bool
	taskQueue       chan EmissionTask
	resultQueue     chan EmissionResult
}

// NewWorkerPool creates a worker pool sized for maxTasks queued tasks
func NewWorkerPool(scene Scene, config Config, samplers core.SamplerFactory, numWorkers, maxTasks int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan EmissionTask, maxTasks),
		resultQueue: make(chan EmissionResult, maxTasks),
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:              i,
			scene:           scene,
			samplers:        samplers,
			maxBounces:      config.MaxBounces,
			recordExhausted: config.RecordExhausted,
			taskQueue:       wp.taskQueue,
			resultQueue:     wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to drain and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits an emission task to the worker pool
func (wp *WorkerPool) SubmitTask(task EmissionTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed emission result
func (wp *WorkerPool) GetResult() (EmissionResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.trace(task)
	}
}

// trace emits and traces every photon of a task
func (w *Worker) trace(task EmissionTask) EmissionResult {
	sampler := w.samplers(task.TaskID)
	result := EmissionResult{
		TaskID:  task.TaskID,
		Records: make([]Record, 0, task.Count),
		Stats:   MappingStats{Batches: 1},
	}

	for i := 0; i < task.Count; i++ {
		photon := NewPhoton(task.Light.SampleEmission(sampler), w.maxBounces)
		traced := TracePhoton(w.scene, photon, sampler, w.recordExhausted)
		result.Stats.AddTrace(traced)
		if traced.Stored {
			result.Records = append(result.Records, traced.Record)
		}
	}

	return result
}
