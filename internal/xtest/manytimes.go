package xtest

import (
	"sync"
	"testing"
	"time"
)

type manyTimesOptions struct {
	duration time.Duration
}

type TestManyTimesOption func(o *manyTimesOptions)

// StopAfter limits the total time spent on repeating the test
func StopAfter(d time.Duration) TestManyTimesOption {
	return func(o *manyTimesOptions) {
		o.duration = d
	}
}

type TestFunc func(t testing.TB)

// TestManyTimes runs test at least once and then repeats it until the time limit is spent.
// Cleanups registered by a single run are executed right after that run.
func TestManyTimes(t testing.TB, test TestFunc, opts ...TestManyTimesOption) {
	t.Helper()

	options := manyTimesOptions{
		duration: time.Second,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	start := time.Now()
	for {
		runTest(t, test)

		if t.Failed() || time.Since(start) > options.duration {
			return
		}
	}
}

func TestManyTimesWithName(t *testing.T, name string, test TestFunc, opts ...TestManyTimesOption) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		t.Helper()
		TestManyTimes(t, test, opts...)
	})
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	for len(tw.cleanup) > 0 {
		last := tw.cleanup[len(tw.cleanup)-1]
		tw.cleanup = tw.cleanup[:len(tw.cleanup)-1]

		last()
	}
}
