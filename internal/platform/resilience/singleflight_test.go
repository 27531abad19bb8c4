package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var shared int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			val, err, wasShared := g.Do("leaderboard:PFL:2605", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if val != "ok" {
				t.Errorf("unexpected value: %v", val)
			}
			if wasShared {
				atomic.AddInt32(&shared, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&shared); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_SharesError(t *testing.T) {
	var g SingleFlight
	wantErr := errors.New("engine unavailable")

	_, err, _ := g.Do("timestamp:CHL", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected shared error, got %v", err)
	}

	// A later call for the same key runs fresh.
	val, err, sharedResult := g.Do("timestamp:CHL", func() (any, error) {
		return 42, nil
	})
	if err != nil || val != 42 {
		t.Fatalf("expected fresh call to succeed, got val=%v err=%v", val, err)
	}
	if sharedResult {
		t.Fatalf("expected fresh execution after previous flight completed")
	}
}
