package renderer

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ProcessesEveryTaskOnce(t *testing.T) {
	const pixels = 500
	pool := NewWorkerPool(4, pixels)

	seen := make([]int32, pixels)
	pool.Start(func(task PixelTask) {
		atomic.AddInt32(&seen[task.Index], 1)
	})

	for i := 0; i < pixels; i++ {
		pool.Submit(PixelTask{X: i % 20, Y: i / 20, Index: i})
	}
	pool.Stop()

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("Task %d processed %d times", i, count)
		}
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0, 1)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}

	pool = NewWorkerPool(-3, 1)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers for a negative count, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}

	pool = NewWorkerPool(3, 1)
	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_StopWaitsForInFlightTasks(t *testing.T) {
	const pixels = 100
	pool := NewWorkerPool(2, pixels)

	var done int64
	pool.Start(func(task PixelTask) {
		atomic.AddInt64(&done, 1)
	})

	for i := 0; i < pixels; i++ {
		pool.Submit(PixelTask{Index: i})
	}
	pool.Stop()

	if got := atomic.LoadInt64(&done); got != pixels {
		t.Errorf("Expected all %d tasks finished after Stop, got %d", pixels, got)
	}
}
