package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type stubResult struct {
	err error
}

func (r *stubResult) GetError() error { return r.err }

type stubJob struct {
	fail bool
	runs *int32
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.runs != nil {
		atomic.AddInt32(j.runs, 1)
	}
	if j.fail {
		return &stubResult{err: errors.New("job error")}
	}
	return &stubResult{}
}

func TestNewPool(t *testing.T) {
	for _, tc := range []struct {
		in, want int
	}{
		{5, 5},
		{0, 1},
		{-1, 1},
	} {
		if p := NewPool(tc.in); p.workers != tc.want {
			t.Errorf("NewPool(%d): expected %d workers, got %d", tc.in, tc.want, p.workers)
		}
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var runs int32
	count := 10
	for i := 0; i < count; i++ {
		pool.Submit(&stubJob{runs: &runs})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if got := atomic.LoadInt32(&runs); got != int32(count) {
		t.Errorf("expected %d executed jobs, got %d", count, got)
	}
}

func TestPool_ErrorResults(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&stubJob{fail: true})
	pool.Submit(&stubJob{})

	errCount := 0
	for _, r := range pool.Wait() {
		if r.GetError() != nil {
			errCount++
		}
	}
	if errCount != 1 {
		t.Errorf("expected 1 error result, got %d", errCount)
	}
}

func TestPool_SubmitAfterWait(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&stubJob{})
	if got := pool.Wait(); len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}

	// Late submits and repeated waits must be no-ops, not panics.
	pool.Submit(&stubJob{})
	if got := pool.Wait(); len(got) != 1 {
		t.Errorf("expected 1 result after late submit, got %d", len(got))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submit after shutdown must not block or panic.
	pool.Submit(&stubJob{})
}
