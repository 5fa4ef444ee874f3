package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock hands out a surface identity and numbers the strokes painted on it
// since the last reset. Both only feed log lines.
type Clock struct {
	id      string
	strokes uint64
}

func NewClock() *Clock {
	return &Clock{id: uuid.NewString()}
}

func (c *Clock) ID() string { return c.id }

// Next numbers a new stroke.
func (c *Clock) Next() uint64 {
	return atomic.AddUint64(&c.strokes, 1)
}

func (c *Clock) Count() uint64 {
	return atomic.LoadUint64(&c.strokes)
}

func (c *Clock) Reset() {
	atomic.StoreUint64(&c.strokes, 0)
}
