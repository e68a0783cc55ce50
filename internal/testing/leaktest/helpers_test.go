package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

// recordingTB captures failures without failing the enclosing test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	// One parked goroutine stays within tolerance
	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(2)
	close(done)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	fake := &recordingTB{TB: t}
	checker := NewGoroutineChecker(fake)

	done := make(chan struct{})
	defer close(done)
	for i := 0; i < 3; i++ {
		go func() { <-done }()
	}

	checker.Check(0)
	if !fake.failed {
		t.Error("Expected the checker to report three parked goroutines")
	}
}

func TestCheckNoGoroutineLeak_Success(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestWaitForGoroutines_Success(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	WaitForGoroutines(t, before, time.Second)
}
