package resilience

import (
	"context"
)

// Bulkhead limits the number of concurrent holders of a slot. A nil
// *Bulkhead admits everyone.
type Bulkhead struct {
	sem chan struct{}
}

// NewBulkhead returns a Bulkhead admitting maxConcurrent holders, or nil
// when maxConcurrent is not positive.
func NewBulkhead(maxConcurrent int) *Bulkhead {
	if maxConcurrent <= 0 {
		return nil
	}
	return &Bulkhead{sem: make(chan struct{}, maxConcurrent)}
}

// Acquire waits for a free slot. It returns a release func, or ctx.Err()
// if ctx is done first. A ctx that is already done never takes a slot.
func (b *Bulkhead) Acquire(ctx context.Context) (release func(), err error) {
	if b == nil {
		return func() {}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	select {
	case b.sem <- struct{}{}:
		return func() { <-b.sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InUse returns the number of slots currently held.
func (b *Bulkhead) InUse() int {
	if b == nil {
		return 0
	}
	return len(b.sem)
}

// MaxConcurrent returns the slot count, 0 for an unlimited Bulkhead.
func (b *Bulkhead) MaxConcurrent() int {
	if b == nil {
		return 0
	}
	return cap(b.sem)
}
