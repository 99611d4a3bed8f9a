package renderer

import (
	"runtime"
	"sync"
)

// Job asks a worker to draw one sample for one pixel of a pass
type Job struct {
	X, Y int
	Pass *Pass
}

// WorkerPool runs pixel jobs on a fixed set of goroutines
type WorkerPool struct {
	jobQueue   chan Job
	numWorkers int
	workers    sync.WaitGroup // Joins worker goroutines on Stop
	pending    sync.WaitGroup // Counts submitted jobs not yet finished

	mu      sync.RWMutex // Orders Submit against Stop
	started bool
	stopped bool
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds how many jobs may wait before Submit blocks.
func NewWorkerPool(numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueSize <= 0 {
		queueSize = numWorkers * 64
	}

	return &WorkerPool{
		jobQueue:   make(chan Job, queueSize),
		numWorkers: numWorkers,
	}
}

// Start begins all workers. Calling it more than once has no effect.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.started || wp.stopped {
		return
	}
	wp.started = true

	for i := 0; i < wp.numWorkers; i++ {
		wp.workers.Add(1)
		go wp.run()
	}
}

// Submit queues a job. It panics with ErrPoolStopped once Stop has been called.
func (wp *WorkerPool) Submit(job Job) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.stopped {
		panic(ErrPoolStopped)
	}

	wp.pending.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has finished
func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

// Stop closes the queue, lets workers finish the jobs already queued, and joins them
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return
	}
	wp.stopped = true
	close(wp.jobQueue)
	wp.mu.Unlock()

	wp.workers.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.workers.Done()

	for job := range wp.jobQueue {
		job.Pass.RenderPixel(job.X, job.Y)
		wp.pending.Done()
	}
}
