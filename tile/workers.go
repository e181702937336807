package tile

import (
	"runtime"
	"sync"
)

// Workers is a fixed set of goroutines executing tile jobs.
//
// Each worker owns a queue. A worker whose queue is empty steals from the
// others before blocking, which keeps all workers busy when some tiles
// take longer than others.
//
// Workers is safe for concurrent use.
type Workers struct {
	n      int
	queues []chan func()
	done   chan struct{}
	wg     sync.WaitGroup

	// mu guards running. Run holds it shared while enqueueing so Close
	// cannot stop the workers with a job half way into a queue.
	mu      sync.RWMutex
	running bool
}

// NewWorkers starts n workers. If n <= 0, GOMAXPROCS workers are started.
func NewWorkers(n int) *Workers {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	queueLen := max(n*4, 8)

	w := &Workers{
		n:      n,
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	for i := range n {
		w.queues[i] = make(chan func(), queueLen)
	}
	w.running = true

	w.wg.Add(n)
	for i := range n {
		go w.loop(i)
	}
	return w
}

func (w *Workers) loop(id int) {
	defer w.wg.Done()
	for {
		job, ok := w.next(id)
		if !ok {
			break
		}
		job()
	}

	// No job is enqueued after done is closed.
	for {
		select {
		case job := <-w.queues[id]:
			job()
		default:
			return
		}
	}
}

// next returns the worker's next job: from its own queue, else stolen from
// another worker, else the next one to arrive on its own queue. ok is false
// once the workers are closed.
func (w *Workers) next(id int) (job func(), ok bool) {
	own := w.queues[id]
	select {
	case job = <-own:
		return job, true
	default:
	}
	if job = w.steal(id); job != nil {
		return job, true
	}
	select {
	case job = <-own:
		return job, true
	case <-w.done:
		return nil, false
	}
}

// steal takes a job from the first non-empty queue after id, in ring order.
func (w *Workers) steal(id int) func() {
	for k := 1; k < w.n; k++ {
		select {
		case job := <-w.queues[(id+k)%w.n]:
			return job
		default:
		}
	}
	return nil
}

// Run distributes jobs round-robin across the workers and waits for all of
// them to finish. After Close, jobs run on the calling goroutine.
func (w *Workers) Run(jobs []func()) {
	if len(jobs) == 0 {
		return
	}

	var wg sync.WaitGroup
	if !w.enqueue(jobs, &wg) {
		for _, job := range jobs {
			job()
		}
		return
	}
	wg.Wait()
}

// enqueue hands jobs to the worker queues. It reports false, queueing
// nothing, when the workers are closed.
func (w *Workers) enqueue(jobs []func(), wg *sync.WaitGroup) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.running {
		return false
	}

	wg.Add(len(jobs))
	for i, job := range jobs {
		w.queues[i%w.n] <- func() {
			defer wg.Done()
			job()
		}
	}
	return true
}

// Close stops the workers after they finish queued jobs. Close is safe to
// call more than once.
func (w *Workers) Close() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	w.mu.Unlock()
	w.wg.Wait()
}

// Len returns the number of workers.
func (w *Workers) Len() int {
	return w.n
}
