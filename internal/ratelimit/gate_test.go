package ratelimit_test

import (
	"context"
	"flowledger/internal/ratelimit"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gate", func() {
	var (
		gate *ratelimit.Gate
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		gate = ratelimit.NewGate("test", 50*time.Millisecond)
	})

	It("should admit the first call immediately", func() {
		start := time.Now()
		Expect(gate.Wait(ctx)).To(Succeed())
		Expect(time.Since(start)).To(BeNumerically("<", 25*time.Millisecond))
	})

	It("should space concurrent callers by the interval", func() {
		var (
			wg    sync.WaitGroup
			mu    sync.Mutex
			times []time.Time
		)

		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(gate.Wait(ctx)).To(Succeed())
				mu.Lock()
				times = append(times, time.Now())
				mu.Unlock()
			}()
		}
		wg.Wait()

		first, last := times[0], times[0]
		for _, t := range times {
			if t.Before(first) {
				first = t
			}
			if t.After(last) {
				last = t
			}
		}
		Expect(last.Sub(first)).To(BeNumerically(">=", 140*time.Millisecond))
	})

	It("should give up when the context is cancelled", func() {
		Expect(gate.Wait(ctx)).To(Succeed())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		Expect(gate.Wait(cancelled)).To(MatchError(context.Canceled))
	})
})
