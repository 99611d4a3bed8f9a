package renderer

// Scheduler executes a pass over every pixel of its buffer
type Scheduler interface {
	// RunPass returns once every pixel has received its sample for the pass
	RunPass(pass *Pass)
	Workers() int
	Close()
}

// NewScheduler returns a SerialScheduler for one worker and a PoolScheduler otherwise.
// numWorkers <= 0 uses one worker per CPU.
func NewScheduler(numWorkers int) Scheduler {
	if numWorkers == 1 {
		return SerialScheduler{}
	}
	return NewPoolScheduler(numWorkers)
}

// SerialScheduler renders every pixel on the calling goroutine
type SerialScheduler struct{}

// RunPass renders the pass top row first
func (SerialScheduler) RunPass(pass *Pass) {
	for y := 0; y < pass.Buffer.Height(); y++ {
		for x := 0; x < pass.Buffer.Width(); x++ {
			pass.RenderPixel(x, y)
		}
	}
}

// Workers always reports one
func (SerialScheduler) Workers() int {
	return 1
}

// Close is a no-op
func (SerialScheduler) Close() {}

// PoolScheduler fans one job per pixel out to a WorkerPool
type PoolScheduler struct {
	pool *WorkerPool
}

// NewPoolScheduler creates and starts a worker pool
func NewPoolScheduler(numWorkers int) *PoolScheduler {
	pool := NewWorkerPool(numWorkers, 0)
	pool.Start()
	return &PoolScheduler{pool: pool}
}

// RunPass submits every pixel and waits for the queue to drain
func (ps *PoolScheduler) RunPass(pass *Pass) {
	for y := 0; y < pass.Buffer.Height(); y++ {
		for x := 0; x < pass.Buffer.Width(); x++ {
			ps.pool.Submit(Job{X: x, Y: y, Pass: pass})
		}
	}
	ps.pool.Wait()
}

// Workers returns the pool size
func (ps *PoolScheduler) Workers() int {
	return ps.pool.GetNumWorkers()
}

// Close stops and joins the workers
func (ps *PoolScheduler) Close() {
	ps.pool.Stop()
}
