package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int     // Index of the tile in the grid
	Canvas *Canvas // Shared canvas to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Pixels int
}

// WorkerPool manages parallel tile rendering. Workers run in an errgroup:
// the first failing tile cancels the group and the remaining queued tiles
// are skipped.
type WorkerPool struct {
	tileRenderer *TileRenderer
	taskQueue    chan TileTask
	resultQueue  chan TileResult
	numWorkers   int
	group        *errgroup.Group
	ctx          context.Context
}

// NewWorkerPool creates a worker pool able to hold maxTasks queued tiles.
// numWorkers <= 0 uses the CPU count.
func NewWorkerPool(tileRenderer *TileRenderer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		tileRenderer: tileRenderer,
		taskQueue:    make(chan TileTask, maxTasks),   // Buffer for all tiles
		resultQueue:  make(chan TileResult, maxTasks), // Buffer for all results
		numWorkers:   numWorkers,
	}
}

// Start begins all workers. Cancelling ctx stops them before their next tile.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.group, wp.ctx = errgroup.WithContext(ctx)
	for i := 0; i < wp.numWorkers; i++ {
		wp.group.Go(wp.run)
	}
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue, waits for the workers and returns the first
// tile error. Results remain readable with GetResult afterwards.
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue)
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() error {
	for task := range wp.taskQueue {
		if err := wp.ctx.Err(); err != nil {
			// another worker failed; its error is the one reported
			return nil
		}

		// Tiles never overlap, so writing to the shared canvas needs no lock
		if err := wp.tileRenderer.RenderTileBounds(task.Tile.Bounds, task.Canvas); err != nil {
			return err
		}

		wp.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Pixels: task.Tile.Bounds.Dx() * task.Tile.Bounds.Dy(),
		}
	}
	return nil
}
