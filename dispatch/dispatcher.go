package dispatch

import (
	"sync"
)

// task pairs a request with its one-shot response channel.
type task struct {
	req Request
	out chan Response
}

// Dispatcher executes requests on a fixed pool of background workers so
// large-grid computations never block the caller. Each Submit gets its
// own buffered response channel; responses complete out of submission
// order and are matched to requests by ID on the caller side.
//
// Workers share nothing mutable: every request owns its input raster and
// produces fresh output buffers, so no locking is needed beyond the task
// channel itself.
type Dispatcher struct {
	tasks chan task
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts a Dispatcher with the given number of worker
// goroutines; values below 1 are raised to 1.
func NewDispatcher(workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &Dispatcher{tasks: make(chan task)}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}

	return d
}

// worker drains the task channel until Close.
func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.tasks {
		t.out <- Handle(t.req)
	}
}

// Submit queues a request and returns the channel its single Response
// will arrive on. The channel is buffered, so an abandoned response
// never blocks a worker; a caller-side timeout is simply a select that
// stops listening. After Close, the returned channel immediately carries
// an ErrClosed response.
func (d *Dispatcher) Submit(req Request) <-chan Response {
	out := make(chan Response, 1)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		out <- Response{ID: req.ID, Err: ErrClosed}

		return out
	}
	// Sending under the lock keeps Submit and Close ordered: a task is
	// either enqueued before the channel closes or rejected here. The
	// response channel is buffered, so workers never block handing back
	// results and this send always completes.
	d.tasks <- task{req: req, out: out}

	return out
}

// Do runs a request synchronously on the calling goroutine, bypassing
// the worker pool. Equivalent to Handle; provided so callers holding a
// Dispatcher need only one entry point.
func (d *Dispatcher) Do(req Request) Response {
	return Handle(req)
}

// Close stops accepting new requests and waits for in-flight requests to
// finish. Close is idempotent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.tasks)
	d.wg.Wait()
}
