package simulation

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ProgressFunc is called once per finished session with the running
// completion count. Calls are serialized by the executor.
type ProgressFunc func(done, total int)

// workerTask is the immutable bundle handed to one worker: its batch
// of session ids, their pre-derived seeds, and a full copy of the run
// configuration. No mutable object crosses the worker boundary.
type workerTask struct {
	WorkerID   int
	SessionIDs []int
	Seeds      []uint64
	Config     Config
}

type sessionOutcome struct {
	ResultID int
	Result   SessionResult
}

// workerReport is what every worker sends back, success or not. A
// worker that fails still reports, with the error captured as a
// string; it never disappears silently.
type workerReport struct {
	WorkerID int
	Outcomes []sessionOutcome
	Err      string
}

// Executor runs one configured batch of sessions. Results always come
// back complete and ordered by result id, or not at all.
type Executor struct {
	cfg Config
	log *zap.Logger

	// run is the session entry point; tests swap it to inject worker
	// failures.
	run func(sessionID int, seed uint64, cfg Config) ([]SessionResult, error)
}

// NewExecutor validates the configuration and prepares a run. A nil
// logger disables logging.
func NewExecutor(cfg Config, log *zap.Logger) (*Executor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.RunID == "" {
		cfg.RunID = NewRunID()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{
		cfg: cfg,
		log: log.With(zap.String("run_id", cfg.RunID)),
		run: runSession,
	}, nil
}

// Config returns the run configuration, including the assigned run id.
func (e *Executor) Config() Config {
	return e.cfg
}

// RunSessions executes every configured session and returns their
// results ordered by result id. With one worker, or below the
// sequential cutoff, it runs in-process on the identical seed table,
// so the two paths are directly comparable; otherwise sessions fan out
// to a worker pool in contiguous batches.
func (e *Executor) RunSessions(ctx context.Context, progress ProgressFunc) ([]SessionResult, error) {
	cfg := e.cfg
	seeds := DeriveSeeds(cfg.BaseSeed, cfg.Sessions)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	sequential := workers == 1 || cfg.Sessions < cfg.minParallel()
	e.log.Info("starting run",
		zap.Uint64("base_seed", cfg.BaseSeed),
		zap.Int("sessions", cfg.Sessions),
		zap.Int("seats", cfg.Seats),
		zap.Int("workers", workers),
		zap.Bool("sequential", sequential),
	)

	var results []SessionResult
	var err error
	if sequential {
		results, err = e.runSequential(ctx, seeds, progress)
	} else {
		results, err = e.runParallel(ctx, seeds, workers, progress)
	}
	if err != nil {
		e.log.Error("run failed", zap.Error(err))
		return nil, err
	}

	e.log.Info("run complete",
		zap.Int("results", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

// runSequential is the in-process fallback. It consumes the same seed
// table as the parallel path, in the same order.
func (e *Executor) runSequential(ctx context.Context, seeds []uint64, progress ProgressFunc) ([]SessionResult, error) {
	results := make([]SessionResult, 0, e.cfg.ResultCount())
	for sessionID, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, &WorkerFailureError{Failures: []WorkerFailure{{WorkerID: 0, Message: err.Error()}}}
		}
		seatResults, err := e.run(sessionID, seed, e.cfg)
		if err != nil {
			return nil, &WorkerFailureError{Failures: []WorkerFailure{{WorkerID: 0, Message: err.Error()}}}
		}
		results = append(results, seatResults...)
		if progress != nil {
			progress(sessionID+1, len(seeds))
		}
	}
	return results, nil
}

// runParallel fans contiguous session batches out to workers, collects
// every report, and merges outcomes into a pre-sized array by result
// id. Every report is collected before success or failure is decided,
// so one diagnostic names every failing worker.
func (e *Executor) runParallel(ctx context.Context, seeds []uint64, workers int, progress ProgressFunc) ([]SessionResult, error) {
	cfg := e.cfg
	n := cfg.Sessions
	batchSize := (n + workers - 1) / workers

	tasks := make([]workerTask, 0, workers)
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		task := workerTask{
			WorkerID:   len(tasks),
			SessionIDs: make([]int, 0, end-start),
			Seeds:      make([]uint64, 0, end-start),
			Config:     cfg,
		}
		for id := start; id < end; id++ {
			task.SessionIDs = append(task.SessionIDs, id)
			task.Seeds = append(task.Seeds, seeds[id])
		}
		tasks = append(tasks, task)
	}

	reports := make(chan workerReport, len(tasks))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	done := 0
	tick := func() {
		if progress == nil {
			return
		}
		progressMu.Lock()
		done++
		progress(done, n)
		progressMu.Unlock()
	}

	for _, task := range tasks {
		wg.Add(1)
		go e.worker(ctx, task, reports, &wg, tick)
	}
	go func() {
		wg.Wait()
		close(reports)
	}()

	merged := make([]*SessionResult, cfg.ResultCount())
	var failures []WorkerFailure
	for report := range reports {
		if report.Err != "" {
			failures = append(failures, WorkerFailure{WorkerID: report.WorkerID, Message: report.Err})
			continue
		}
		e.log.Debug("worker finished",
			zap.Int("worker", report.WorkerID),
			zap.Int("results", len(report.Outcomes)),
		)
		for _, outcome := range report.Outcomes {
			result := outcome.Result
			merged[outcome.ResultID] = &result
		}
	}

	if len(failures) > 0 {
		sort.Slice(failures, func(i, j int) bool { return failures[i].WorkerID < failures[j].WorkerID })
		return nil, &WorkerFailureError{Failures: failures}
	}

	results := make([]SessionResult, cfg.ResultCount())
	var missing []int
	for i, r := range merged {
		if r == nil {
			missing = append(missing, i)
			continue
		}
		results[i] = *r
	}
	if len(missing) > 0 {
		return nil, &ConsistencyError{MissingResultIDs: missing}
	}
	return results, nil
}

// worker runs its batch of sessions. Panics and errors are captured
// into the report; the report itself is always sent.
func (e *Executor) worker(ctx context.Context, task workerTask, reports chan<- workerReport, wg *sync.WaitGroup, tick func()) {
	defer wg.Done()
	report := workerReport{WorkerID: task.WorkerID}
	defer func() {
		if r := recover(); r != nil {
			report.Err = fmt.Sprintf("panic: %v", r)
		}
		reports <- report
	}()

	for i, sessionID := range task.SessionIDs {
		if err := ctx.Err(); err != nil {
			report.Err = err.Error()
			return
		}
		seatResults, err := e.run(sessionID, task.Seeds[i], task.Config)
		if err != nil {
			report.Err = err.Error()
			return
		}
		for _, r := range seatResults {
			report.Outcomes = append(report.Outcomes, sessionOutcome{
				ResultID: task.Config.ResultID(r.SessionID, r.Seat),
				Result:   r,
			})
		}
		tick()
	}
}
