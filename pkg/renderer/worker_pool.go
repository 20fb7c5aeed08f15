package renderer

import (
	"runtime"
	"sync"
)

// PixelTask is one pixel's worth of sampling work
type PixelTask struct {
	X, Y  int // Raster coordinates, origin at the top left
	Index int // Row-major raster index, also the per-pixel seed offset
}

// WorkerPool fans pixel tasks out to a fixed set of goroutines
type WorkerPool struct {
	taskQueue  chan PixelTask
	numWorkers int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Zero or negative workers means one per CPU.
func NewWorkerPool(numWorkers, queueDepth int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:  make(chan PixelTask, queueDepth),
		numWorkers: numWorkers,
	}
}

// Start launches the workers. Each worker applies render to tasks until the
// queue closes. Tasks write to disjoint raster slots, so render needs no
// locking of its own.
func (wp *WorkerPool) Start(render func(PixelTask)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				render(task)
			}
		}()
	}
}

// Submit queues a pixel task
func (wp *WorkerPool) Submit(task PixelTask) {
	wp.taskQueue <- task
}

// Stop closes the queue and waits for in-flight tasks to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
