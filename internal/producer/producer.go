// Package producer implements the lazy, memoized, duplicable sequence
// abstraction described in the core's design notes: a Producer enumerates
// its items bucketed by a non-negative integer measure (item length, for
// both of this library's two uses: trails and reverse-token sequences), and
// computes each bucket on demand from previously-memoized smaller buckets.
//
// Bucketing by length rather than keeping one flat lazy stream is what makes
// self-referential producers (one built from a cyclic, recursive parser
// term) safe to construct: a bucket at length n for a grammar that loops
// back on itself only ever depends on buckets of length < n of that same
// producer, so computing bucket n bottom-up never needs to re-enter itself
// at the same length. A bucket whose computation does try to re-enter at
// the same length (only possible for a degenerate, effectively
// left-recursive producer) short-circuits to empty instead of deadlocking or
// recursing forever; callers that build producers from non-left-recursive
// terms never observe this case.
package producer

import "sync"

// Producer is a lazy, memoized sequence of items of type T, organized into
// buckets by a non-negative integer measure (e.g. length). Buckets are
// computed on first request and cached. A Producer needs no explicit
// "duplicate" operation: since it holds no read cursor, two callers walking
// it via Bucket/Enumerate never interfere with each other. Its memo is
// guarded by a mutex, but a Bucket call for a length whose computation is
// still in progress (on this or another goroutine) returns nil rather than
// waiting for it.
type Producer[T any] struct {
	mu        sync.Mutex
	buckets   map[int][]T
	computing map[int]bool
	gen       func(n int) []T
}

// New returns a Producer whose bucket n is computed by gen the first time
// it's requested. gen may call back into other Producers, including this
// one (for buckets strictly less than n), but must not assume it can block
// waiting on this Producer's own bucket n.
func New[T any](gen func(n int) []T) *Producer[T] {
	return &Producer[T]{
		buckets:   make(map[int][]T),
		computing: make(map[int]bool),
		gen:       gen,
	}
}

// Empty returns a Producer with no items at any length.
func Empty[T any]() *Producer[T] {
	return New(func(n int) []T { return nil })
}

// Single returns a Producer with exactly one item, at the given length.
func Single[T any](length int, item T) *Producer[T] {
	return New(func(n int) []T {
		if n == length {
			return []T{item}
		}
		return nil
	})
}

// Bucket returns the items of the given length. Computation is memoized: the
// underlying gen is invoked at most once per length. Reentrant calls for the
// same length while that length's bucket is already being computed return
// nil immediately rather than blocking or recursing indefinitely.
func (p *Producer[T]) Bucket(n int) []T {
	if n < 0 {
		return nil
	}
	p.mu.Lock()
	if b, ok := p.buckets[n]; ok {
		p.mu.Unlock()
		return b
	}
	if p.computing[n] {
		p.mu.Unlock()
		return nil
	}
	p.computing[n] = true
	p.mu.Unlock()

	b := p.gen(n)

	p.mu.Lock()
	p.buckets[n] = b
	delete(p.computing, n)
	p.mu.Unlock()
	return b
}

// Enumerate returns every item of length 0..maxLength, in non-decreasing
// length order (ties within a length keep the order gen produced them in).
func (p *Producer[T]) Enumerate(maxLength int) []T {
	var out []T
	for n := 0; n <= maxLength; n++ {
		out = append(out, p.Bucket(n)...)
	}
	return out
}

// Take returns the first n items in non-decreasing length order, scanning
// buckets by increasing length until n items are collected or maxLength is
// exceeded with nothing further found. Callers with a finite-language
// producer should pass a maxLength comfortably above the longest possible
// item; Take never fabricates items, so a too-small maxLength just yields
// fewer than n results.
func (p *Producer[T]) Take(n, maxLength int) []T {
	var out []T
	for length := 0; length <= maxLength && len(out) < n; length++ {
		b := p.Bucket(length)
		if len(out)+len(b) > n {
			b = b[:n-len(out)]
		}
		out = append(out, b...)
	}
	return out
}

// Union merges two producers, interleaving by length: bucket n of the
// result is the concatenation of a's and b's bucket n. This preserves
// non-decreasing length order across the merged sequence.
func Union[T any](a, b *Producer[T]) *Producer[T] {
	return New(func(n int) []T {
		ab := a.Bucket(n)
		bb := b.Bucket(n)
		if len(ab) == 0 {
			return bb
		}
		if len(bb) == 0 {
			return ab
		}
		out := make([]T, 0, len(ab)+len(bb))
		out = append(out, ab...)
		out = append(out, bb...)
		return out
	})
}

// Product forms the Cartesian concatenation of a and b: for every pair
// (x, y) with x from a and y from b, it yields join(x, y) in the bucket
// whose length is x's length plus y's length. This diagonalizes over the
// two inputs: bucket n of the result only ever reads buckets of a and b
// with indices summing to n, so it never needs a bucket of either input
// beyond n.
func Product[A, B, V any](a *Producer[A], b *Producer[B], join func(A, B) V) *Producer[V] {
	return New(func(n int) []V {
		var out []V
		for i := 0; i <= n; i++ {
			j := n - i
			as := a.Bucket(i)
			if len(as) == 0 {
				continue
			}
			bs := b.Bucket(j)
			for _, x := range as {
				for _, y := range bs {
					out = append(out, join(x, y))
				}
			}
		}
		return out
	})
}

// Map transforms every item produced by p with f, preserving bucket
// (length) assignment.
func Map[T, U any](p *Producer[T], f func(T) U) *Producer[U] {
	return New(func(n int) []U {
		ts := p.Bucket(n)
		if len(ts) == 0 {
			return nil
		}
		out := make([]U, len(ts))
		for i, t := range ts {
			out[i] = f(t)
		}
		return out
	})
}
