package checkout

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NumberGenerator issues HAB-prefixed order numbers. Deriving the suffix
// from the wall clock alone collides when two sessions confirm within the
// same millisecond, so a startup-seeded monotonic counter keeps the familiar
// shape while staying unique within the process.
type NumberGenerator struct {
	seq atomic.Int64
}

func NewNumberGenerator() *NumberGenerator {
	g := &NumberGenerator{}
	g.seq.Store(time.Now().UnixMilli() % 1_000_000)
	return g
}

func (g *NumberGenerator) Next() string {
	return fmt.Sprintf("HAB-%06d", g.seq.Add(1)%1_000_000)
}
