package jobs

import (
	"context"
	"errors"
	"log/slog"
	"objectviewer/internal/apperrors"
	"sync"
	"time"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
	RequiresLeadership() bool
	Interval() time.Duration
}

// Leadership reports whether this instance currently holds the leader lease.
// *distributed.Election satisfies it.
type Leadership interface {
	IsLeader() bool
}

// JobManager runs local jobs on every instance and leader jobs only while
// this instance leads.
type JobManager struct {
	jobs        []Job
	election    Leadership
	checkEvery  time.Duration
	logger      *slog.Logger
	wg          sync.WaitGroup
	cancelFuncs map[string]context.CancelFunc
	mu          sync.Mutex
}

// NewJobManager creates a manager. A nil election runs leader jobs locally;
// otherwise leadership is polled every checkEvery.
func NewJobManager(election Leadership, checkEvery time.Duration, logger *slog.Logger) *JobManager {
	if checkEvery <= 0 {
		checkEvery = defaultLeadershipCheck
	}

	return &JobManager{
		election:    election,
		checkEvery:  checkEvery,
		logger:      logger,
		cancelFuncs: make(map[string]context.CancelFunc),
	}
}

// Register adds a job before Start. Names key the running jobs, so a second
// job with the same name is a programming error.
func (jm *JobManager) Register(job Job) error {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, existing := range jm.jobs {
		if existing.Name() == job.Name() {
			return apperrors.Errorf("job %q is already registered", job.Name())
		}
	}

	jm.jobs = append(jm.jobs, job)
	return nil
}

func (jm *JobManager) Start(ctx context.Context) {
	jm.startJobs(ctx, false)

	if jm.election == nil {
		jm.startJobs(ctx, true)
		return
	}

	jm.wg.Add(1)
	go jm.monitorLeadership(ctx)
}

// Shutdown stops every job and waits for them until ctx is done.
func (jm *JobManager) Shutdown(ctx context.Context) {
	jm.logger.Debug("Shutting down job manager")
	jm.stopJobs(func(Job) bool { return true })

	done := make(chan struct{})
	go func() {
		jm.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		jm.logger.Debug("All jobs stopped cleanly")
	case <-ctx.Done():
		jm.logger.Warn("Jobs failed to stop before the shutdown deadline")
	}
}

func (jm *JobManager) monitorLeadership(ctx context.Context) {
	defer jm.wg.Done()

	ticker := time.NewTicker(jm.checkEvery)
	defer ticker.Stop()

	var wasLeader bool
	for {
		select {
		case <-ctx.Done():
			jm.stopJobs(Job.RequiresLeadership)
			return
		case <-ticker.C:
			isLeader := jm.election.IsLeader()

			switch {
			case isLeader && !wasLeader:
				jm.logger.Debug("Became Leader, Starting Jobs")
				jm.startJobs(ctx, true)
			case !isLeader && wasLeader:
				jm.logger.Debug("Lost Leader, Stopping Leader Jobs")
				jm.stopJobs(Job.RequiresLeadership)
			}

			wasLeader = isLeader
		}
	}
}

// startJobs starts the jobs whose RequiresLeadership equals leaderJobs and
// that are not already running.
func (jm *JobManager) startJobs(ctx context.Context, leaderJobs bool) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if job.RequiresLeadership() != leaderJobs {
			continue
		}
		if _, running := jm.cancelFuncs[job.Name()]; running {
			continue
		}

		jobCtx, cancel := context.WithCancel(ctx)
		jm.cancelFuncs[job.Name()] = cancel

		jm.wg.Add(1)
		go func(j Job) {
			defer jm.wg.Done()
			jm.logger.Debug("Starting Job", "job", j.Name(), "interval", j.Interval())
			if err := j.Run(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				jm.logger.Error("Job failed", "job", j.Name(), "error", err)
			}
		}(job)
	}
}

func (jm *JobManager) stopJobs(match func(Job) bool) {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	for _, job := range jm.jobs {
		if !match(job) {
			continue
		}
		if cancel, running := jm.cancelFuncs[job.Name()]; running {
			jm.logger.Debug("Stopping Job", "job", job.Name())
			cancel()
			delete(jm.cancelFuncs, job.Name())
		}
	}
}
