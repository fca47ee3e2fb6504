// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"testing"
)

func TestProtected(t *testing.T) {
	p := Protect(map[string]int{})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.WriteAccess(func(m map[string]int) {
				m["count"]++
			})
		}()
	}
	wg.Wait()

	p.ReadAccess(func(m map[string]int) {
		if m["count"] != 10 {
			t.Errorf("want 10 writes, got %d", m["count"])
		}
	})
}

func TestLazy(t *testing.T) {
	var l Lazy[int]
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	if got := l.Get(compute); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
	if got := l.Get(compute); got != 42 {
		t.Fatalf("want 42, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}
