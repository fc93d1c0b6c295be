package renderer

import (
	"context"
	"sync"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Row  int   // Output row, counted from the top
	Seed int64 // Seed for the row's private sampler
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row        int
	WorkerID   int
	Samples    int64
	RenderTime time.Duration
	Error      error
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	ctx         context.Context
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	buffer      *PixelBuffer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool writing into buffer. Every row of the
// frame can be queued without blocking.
func NewWorkerPool(ctx context.Context, rt *Raytracer, buffer *PixelBuffer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}

	wp := &WorkerPool{
		ctx:         ctx,
		taskQueue:   make(chan RowTask, buffer.Height),
		resultQueue: make(chan RowResult, buffer.Height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   rt,
			buffer:      buffer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(wp.ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Rows are disjoint, so writing straight into
// the shared buffer is safe.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		result := RowResult{Row: task.Row, WorkerID: w.ID}
		if err := ctx.Err(); err != nil {
			result.Error = err
			w.resultQueue <- result
			continue
		}

		start := time.Now()
		sampler := core.NewSeededSampler(task.Seed)
		result.Samples = w.raytracer.RenderRow(task.Row, w.buffer, sampler)
		result.RenderTime = time.Since(start)

		w.resultQueue <- result
	}
}
