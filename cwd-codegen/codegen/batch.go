package codegen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/elitexpro/dao-dao-contracts/logger"
)

type BatchOptions struct {
	// MaxParallel bounds the number of jobs running at once, zero or less
	// runs every job at once.
	MaxParallel int
	Logger      logger.Logger
	Indicators  *Indicators
}

// JobError is the failure of a single job.
type JobError struct {
	Job Job
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s: %v", e.Job, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// RunBatch runs every job and waits for all of them. A failing job does not
// cancel the others; the returned error joins every failure, ordered by job.
func RunBatch(ctx context.Context, gen Generator, jobs []Job, opts BatchOptions) error {
	log := opts.Logger
	if log == nil {
		log = logger.NewLogger("codegen", logger.Silent)
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []*JobError
	)
	if opts.MaxParallel > 0 {
		g.SetLimit(opts.MaxParallel)
	}

	for _, job := range jobs {
		job := job
		g.Go(func() error {
			err := runJob(ctx, gen, job, log, opts.Indicators)
			if err != nil {
				mu.Lock()
				errs = append(errs, &JobError{Job: job, Err: err})
				mu.Unlock()
			}
			return err
		})
	}
	_ = g.Wait()

	if len(errs) == 0 {
		log.Info("all jobs succeeded", logger.WithField("jobs", len(jobs)))
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Job.String() < errs[j].Job.String() })
	joined := make([]error, 0, len(errs))
	for _, e := range errs {
		joined = append(joined, e)
	}
	log.Error("batch failed", logger.WithField("failed", len(errs)), logger.WithField("jobs", len(jobs)))
	return errors.Join(joined...)
}

func runJob(ctx context.Context, gen Generator, job Job, log logger.Logger, indicators *Indicators) (err error) {
	start := time.Now()
	log.Debug("generating", logger.WithField("job", job.String()), logger.WithField("schema", job.SchemaDir))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panicked: %v", r)
		}
		if indicators != nil {
			indicators.ObserveJob(job.Category, err, time.Since(start))
		}
		if err != nil {
			log.Error("generation failed", logger.WithField("job", job.String()), logger.WithError(err))
			return
		}
		log.Info("generated", logger.WithField("job", job.String()), logger.WithField("out", job.OutDir))
	}()

	return gen.Generate(ctx, job)
}
