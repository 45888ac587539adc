// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Job is one move list to replay from the configured starting position.
type Job struct {
	Index int // Position in the input, used to restore order
	Moves string
}

// Result is the outcome of replaying a job. Game holds the position
// reached so far even when Err reports a rejected move.
type Result struct {
	Index int
	Game  *game.Game
	Err   error
}

// ReplayFunc is the function signature for processing a job.
type ReplayFunc func(job Job) Result

// NewReplayFunc returns a ReplayFunc that plays each job on a new game
// created from cfg.
func NewReplayFunc(cfg *config.Config) ReplayFunc {
	return func(job Job) Result {
		g, err := game.New(cfg)
		if err != nil {
			return Result{Index: job.Index, Err: err}
		}
		return Result{Index: job.Index, Game: g, Err: g.PlayMoves(job.Moves)}
	}
}

// Pool manages a pool of workers replaying games.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	replay     ReplayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given options.
// Default: 1 worker, buffer size of 10.
func NewPool(replay ReplayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		replay:     replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.results <- p.replay(job)
	}
}

// Submit submits a job. This may block if the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit attempts to submit a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop signals workers to skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading replayed games.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every move list on its own game and returns the results in
// input order.
func Run(cfg *config.Config, moveLists []string, opts ...PoolOption) []Result {
	pool := NewPool(NewReplayFunc(cfg), opts...)
	pool.Start()

	go func() {
		for i, moves := range moveLists {
			pool.Submit(Job{Index: i, Moves: moves})
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(moveLists))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
