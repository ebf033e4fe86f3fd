package task

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Job is a blocking unit of work. It returns the UI mutation to apply when it
// succeeds; the mutation may be nil.
type Job func(ctx context.Context) (apply func(), err error)

// Runner starts jobs on detached goroutines and posts their completions to a
// Mailbox. There is no mutual exclusion between jobs and no cancellation.
type Runner struct {
	mailbox  *Mailbox
	log      zerolog.Logger
	wg       sync.WaitGroup
	inFlight atomic.Int32
	baseCtx  context.Context
}

// NewRunner creates a runner posting completions to mailbox
func NewRunner(mailbox *Mailbox, log zerolog.Logger) *Runner {
	return &Runner{
		mailbox: mailbox,
		log:     log,
		baseCtx: context.Background(),
	}
}

// Mailbox returns the mailbox completions are posted to
func (r *Runner) Mailbox() *Mailbox {
	return r.mailbox
}

// InFlight returns the number of jobs that have not finished yet
func (r *Runner) InFlight() int {
	return int(r.inFlight.Load())
}

// Go runs job in the background. On success its apply closure is posted; on
// failure onError(err) is posted instead. A panicking job is reported as an
// error.
func (r *Runner) Go(name string, job Job, onError func(error)) {
	r.wg.Add(1)
	r.inFlight.Add(1)

	go func() {
		defer r.wg.Done()
		defer r.inFlight.Add(-1)

		r.log.Debug().Str("task", name).Msg("task started")
		apply, err := r.run(job)
		if err != nil {
			r.log.Warn().Str("task", name).Err(err).Msg("task failed")
			if onError != nil {
				r.mailbox.Post(func() { onError(err) })
			}
			return
		}

		r.log.Debug().Str("task", name).Msg("task finished")
		if apply != nil {
			r.mailbox.Post(apply)
		}
	}()
}

// Post forwards a progress update from inside a job to the mailbox
func (r *Runner) Post(fn func()) {
	r.mailbox.Post(fn)
}

// Wait blocks until every started job has finished and posted its completion
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(job Job) (apply func(), err error) {
	defer func() {
		if rec := recover(); rec != nil {
			apply = nil
			err = fmt.Errorf("task panicked: %v", rec)
		}
	}()
	return job(r.baseCtx)
}
