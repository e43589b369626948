package services

import (
	"math/rand"
	"sync"
	"time"

	"compras/internal/core/domain/model/order"
)

// FolioGenerator produces candidate folios for new orders. A folio combines
// the creation date with a random four digit suffix, so collisions within a
// day are possible and callers must retry against a uniqueness check.
//
// The random source is injected so tests can force specific suffixes,
// including deliberate collisions.
type FolioGenerator struct {
	mu  *sync.Mutex
	rnd *rand.Rand
}

// NewFolioGenerator creates a generator backed by the given source.
func NewFolioGenerator(src rand.Source) FolioGenerator {
	return FolioGenerator{mu: &sync.Mutex{}, rnd: rand.New(src)}
}

// Next produces a candidate folio for the given creation time. Safe for
// concurrent use.
func (g FolioGenerator) Next(at time.Time) (order.Folio, error) {
	g.mu.Lock()
	suffix := order.FolioSuffixMin + g.rnd.Intn(order.FolioSuffixMax-order.FolioSuffixMin+1)
	g.mu.Unlock()
	return order.NewFolio(at, suffix)
}
