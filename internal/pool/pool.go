// Package pool recycles the byte buffers backing texture storage.
package pool

import "sync"

// Pool is a size-bucketed pool of byte slices.
//
// Buffers are grouped by their exact length. A buffer handed out by Get is
// always zeroed, whether it is new or reused.
//
// Thread safety: all methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
	minLen  int // buffers shorter than this are not retained
}

// New creates a pool retaining at most maxPerBucket buffers of each length
// and ignoring buffers shorter than minLen. A maxPerBucket of 0 means
// unlimited.
func New(maxPerBucket, minLen int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
		minLen:  minLen,
	}
}

// Get returns a zeroed buffer of length n.
func (p *Pool) Get(n int) []byte {
	if n <= 0 {
		return nil
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(buf)
		return buf
	}
	p.mu.Unlock()

	return make([]byte, n)
}

// Put returns buf to the pool. The caller must not use buf afterwards.
func (p *Pool) Put(buf []byte) {
	n := len(buf)
	if n == 0 || n < p.minLen {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf[:n:n])
}

// Len returns the number of retained buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

var defaultPool = New(4, 4096)

// Get retrieves a zeroed buffer from the default pool.
func Get(n int) []byte { return defaultPool.Get(n) }

// Put returns a buffer to the default pool.
func Put(buf []byte) { defaultPool.Put(buf) }
