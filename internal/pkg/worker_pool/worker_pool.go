package worker_pool

import (
	"context"
	"sync"

	"site_grader/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

type TaskFunc[T any] func(ctx context.Context) (T, error)

// TaskResult holds the outcome of a finished task (its ID, result
// value, or error).
type TaskResult[T any] struct {
	ID     string
	Result T
	Err    error
}

type workItem[T any] struct {
	id string
	fn TaskFunc[T]
}

// Pool runs submitted tasks on a fixed set of workers. A panicking
// task is recovered and reported as that task's error, so one faulty
// task cannot take down its siblings.
type Pool[T any] struct {
	tasksCh   chan workItem[T]
	resultsCh chan TaskResult[T]
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	log       *log.Logger
}

// New starts a pool with the given number of workers. Both channels
// are unbuffered, so the caller must consume Results concurrently with
// submission when there are more tasks than workers; after the final
// Submit, Stop the pool and drain Results until it closes.
func New[T any](parentCtx context.Context, numWorkers int, logger *log.Logger) *Pool[T] {
	ctx, cancel := context.WithCancel(parentCtx)
	p := &Pool[T]{
		tasksCh:   make(chan workItem[T]),
		resultsCh: make(chan TaskResult[T]),
		ctx:       ctx,
		cancel:    cancel,
		log:       logger,
	}
	for i := 1; i <= numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	// Close the task channel on cancellation so workers drain and
	// exit, then close results once every in-flight task finished.
	go func() {
		<-ctx.Done()
		close(p.tasksCh)
		p.wg.Wait()
		close(p.resultsCh)
	}()
	return p
}

// Submit queues a task. It fails when the pool is already stopped.
func (p *Pool[T]) Submit(id string, fn TaskFunc[T]) error {
	select {
	case <-p.ctx.Done():
		p.log.Warnf(`submit rejected for task %s: pool is shutting down`, id)
		return errors.New(`worker pool is stopped; cannot accept new tasks`)
	default:
	}

	select {
	case p.tasksCh <- workItem[T]{id: id, fn: fn}:
		return nil
	case <-p.ctx.Done():
		p.log.Warnf(`submit failed for task %s: pool was stopped`, id)
		return errors.New(`worker pool is stopped; task not accepted`)
	}
}

// Results delivers one TaskResult per submitted task, in completion
// order. The channel closes after Stop once in-flight tasks drain.
func (p *Pool[T]) Results() <-chan TaskResult[T] {
	return p.resultsCh
}

func (p *Pool[T]) worker(workerID int) {
	defer p.wg.Done()
	for task := range p.tasksCh {
		p.log.Debugf(`worker %d starting task %s`, workerID, task.id)
		result, err := p.runIsolated(task)
		if err != nil {
			p.log.WithError(err).Errorf(`task %s failed`, task.id)
		}
		p.resultsCh <- TaskResult[T]{ID: task.id, Result: result, Err: err}
	}
	p.log.Debugf(`worker %d exiting: task channel closed`, workerID)
}

func (p *Pool[T]) runIsolated(task workItem[T]) (result T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf(`task %s panicked: %v`, task.id, rec)
		}
	}()
	return task.fn(p.ctx)
}

// Stop cancels the pool. Pending submissions are rejected; results of
// in-flight tasks are still delivered before the results channel
// closes.
func (p *Pool[T]) Stop() {
	p.cancel()
}
