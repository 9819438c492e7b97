package mct

import "sync"

// Allocator supplies the per-call working vectors of the custom transforms.
// Every buffer handed out is returned through the matching Free call before
// the transform returns, including when a later step fails.
type Allocator interface {
	AllocInt32(n int) ([]int32, error)
	FreeInt32(buf []int32)
	AllocFloat32(n int) ([]float32, error)
	FreeFloat32(buf []float32)
}

// PoolAllocator recycles scratch buffers through sync.Pool. The zero value
// is ready to use and safe for concurrent use.
type PoolAllocator struct {
	ints   sync.Pool
	floats sync.Pool
}

// DefaultAllocator is used by EncodeCustom and DecodeCustom.
var DefaultAllocator Allocator = &PoolAllocator{}

// AllocInt32 returns a pooled buffer of length n, or a fresh one when the
// pool is empty or holds one that is too small.
func (p *PoolAllocator) AllocInt32(n int) ([]int32, error) {
	if v, ok := p.ints.Get().(*[]int32); ok && cap(*v) >= n {
		return (*v)[:n], nil
	}
	return make([]int32, n), nil
}

// FreeInt32 returns buf to the pool.
func (p *PoolAllocator) FreeInt32(buf []int32) {
	if cap(buf) == 0 {
		return
	}
	p.ints.Put(&buf)
}

// AllocFloat32 is the float32 counterpart of AllocInt32.
func (p *PoolAllocator) AllocFloat32(n int) ([]float32, error) {
	if v, ok := p.floats.Get().(*[]float32); ok && cap(*v) >= n {
		return (*v)[:n], nil
	}
	return make([]float32, n), nil
}

// FreeFloat32 returns buf to the pool.
func (p *PoolAllocator) FreeFloat32(buf []float32) {
	if cap(buf) == 0 {
		return
	}
	p.floats.Put(&buf)
}
