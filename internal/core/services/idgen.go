package services

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
)

// randCredentials generates account numbers and PINs from a seedable PRNG.
// rand.Rand is not safe for concurrent use, so draws are serialized.
type randCredentials struct {
	mu sync.Mutex
	r  *rand.Rand
}

var _ portssvc.CredentialGenerator = (*randCredentials)(nil)

// NewCredentialGenerator returns a generator seeded with the given value.
// A zero seed draws the seed from the clock; a fixed seed yields a
// deterministic sequence for tests.
func NewCredentialGenerator(seed uint64) portssvc.CredentialGenerator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randCredentials{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// AccountNumber returns a uniform 8-digit account number.
func (g *randCredentials) AccountNumber() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 10000000 + g.r.Int64N(90000000)
}

// PIN returns a uniform 4-digit PIN, zero-padded.
func (g *randCredentials) PIN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%04d", g.r.IntN(10000))
}
