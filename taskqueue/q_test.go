package taskqueue

import (
	"sync/atomic"
	"testing"
)

func TestQRunsEverySubmittedItem(t *testing.T) {
	var sum atomic.Int64
	q := NewQ[int](4, 16, func(q *Q[int], n int) {
		sum.Add(int64(n))
	})
	for n := 1; n <= 100; n++ {
		q.SubmitItem(n)
	}
	q.Wait()
	q.Close()

	if got := sum.Load(); got != 5050 {
		t.Fatalf("sum = %d, want 5050", got)
	}
}

func TestQJobsMaySubmitMoreWork(t *testing.T) {
	var count atomic.Int32
	q := NewQ[int](3, 64, countdown(&count))
	q.SubmitItem(3)
	q.Wait()
	q.Close()

	// 3 -> 2 -> 1 -> 0: four jobs in total
	if got := count.Load(); got != 4 {
		t.Fatalf("ran %d jobs, want 4", got)
	}
}

func countdown(count *atomic.Int32) WorkerFunc[int] {
	return func(q *Q[int], n int) {
		count.Add(1)
		if n > 0 {
			q.SubmitItem(n - 1)
		}
	}
}

func TestNewQDefaultsWorkerCount(t *testing.T) {
	q := NewQ[int](-1, 0, func(*Q[int], int) {})
	defer q.Close()
	if q.Workers() < 1 {
		t.Fatalf("Workers() = %d, want at least 1", q.Workers())
	}
}

func TestNewQPanicsOnNilWorker(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil worker")
		}
	}()
	NewQ[int](1, 0, nil)
}
