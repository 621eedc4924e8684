package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32
	var shared atomic.Int32

	const workers = 10
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, wasShared := g.Do("key", func() (any, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got, _ := v.(int); got != 42 {
				t.Errorf("unexpected value: %v", v)
			}
			if wasShared {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fn called %d times, want 1", got)
	}
	if got := shared.Load(); got != workers-1 {
		t.Fatalf("shared=%d want=%d", got, workers-1)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var g SingleFlight

	a, err, _ := g.Do("a", func() (any, error) { return "va", nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err, _ := g.Do("b", func() (any, error) { return "vb", nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a != "va" || b != "vb" {
		t.Fatalf("got a=%v b=%v", a, b)
	}
}

func TestSingleFlight_KeyReusableAfterCompletion(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var calls atomic.Int32

	fn := func() (any, error) {
		calls.Add(1)
		return nil, nil
	}

	g.Do("k", fn)
	g.Do("k", fn)

	if got := calls.Load(); got != 2 {
		t.Fatalf("fn called %d times after sequential calls, want 2", got)
	}
}
