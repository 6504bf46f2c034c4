package taskqueue

import (
	"runtime"
	"sync"
)

type WorkerFunc[T any] func(*Q[T], T)

type I[T any] struct {
	job  WorkerFunc[T]
	item T
}

type Q[T any] struct {
	c       chan I[T]
	wg      sync.WaitGroup
	worker  WorkerFunc[T]
	workers int
}

// NewQ starts workerCount goroutines draining the queue; workerCount <= 0 means
// one per CPU.
func NewQ[T any](workerCount int, chanSize int, worker WorkerFunc[T]) (q *Q[T]) {
	if worker == nil {
		panic("worker cannot be nil")
	}
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if chanSize < 0 {
		chanSize = 0
	}

	q = &Q[T]{
		c:       make(chan I[T], chanSize),
		worker:  worker,
		workers: workerCount,
	}

	for n := 0; n < workerCount; n++ {
		go func() {
			for i := range q.c {
				q.runJob(i)
			}
		}()
	}

	return
}

// Workers is the number of goroutines draining the queue.
func (q *Q[T]) Workers() int { return q.workers }

func (q *Q[T]) runJob(i I[T]) {
	defer q.wg.Done()
	i.job(q, i.item)
}

func (q *Q[T]) SubmitItem(item T) {
	q.wg.Add(1)
	q.c <- I[T]{q.worker, item}
}

func (q *Q[T]) Wait() {
	q.wg.Wait()
}

func (q *Q[T]) Close() {
	close(q.c)
}
