// © 2026 Marslo. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package syncx contains small synchronization primitives.
package syncx

import "sync"

// Protect wraps val into a [Protected].
func Protect[T any](val T) Protected[T] { return Protected[T]{val: val} }

// Protected provides synchronized access to a value of type T.
// It must not be copied after first use.
type Protected[T any] struct {
	mu  sync.RWMutex
	val T
}

// ReadAccess executes f with the value under a read lock.
func (p *Protected[T]) ReadAccess(f func(T)) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	f(p.val)
}

// WriteAccess executes f with the value under a write lock.
func (p *Protected[T]) WriteAccess(f func(T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	f(p.val)
}

// Lazy represents a lazily computed value.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns the value, calling f to compute it on first use.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}
