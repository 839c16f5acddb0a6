// Package reference produces the short human-readable booking codes handed
// to guests, e.g. TC-20250610-9X7Q.  A code is the fixed hotel prefix, the
// current calendar date in UTC, and a random suffix drawn from a restricted
// alphabet.  The generator is a pure function of its random source and
// clock so tests can inject both.
package reference

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Alphabet holds the 32 symbols a suffix may use.  Visually ambiguous
// characters (0/O, 1/I) are excluded so codes survive being read over
// the phone or scribbled on paper.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Prefix is the two-letter hotel code at the start of every reference.
const Prefix = "TC"

const (
	suffixLen     = 4 // 32^4 = 1,048,576 combinations per day
	wideSuffixLen = 8 // fallback width after repeated collisions
)

// Generator builds booking references.  Rand supplies random bytes and
// Now supplies the current time; both are injectable for deterministic
// tests.  The date stamp always uses UTC so a near-midnight booking is
// attributed to the same calendar day regardless of server timezone.
type Generator struct {
	Rand io.Reader        // random source; crypto/rand.Reader in production
	Now  func() time.Time // clock; time.Now in production
}

// New returns a Generator backed by crypto/rand and the system clock.
func New() *Generator {
	return &Generator{Rand: rand.Reader, Now: time.Now}
}

// Generate returns a reference with the standard 4-character suffix.
func (g *Generator) Generate() (string, error) {
	return g.generate(suffixLen)
}

// GenerateWide returns a reference with an 8-character suffix.  It is
// used after repeated uniqueness collisions, which normally indicates a
// misconfigured constraint rather than genuine exhaustion.
func (g *Generator) GenerateWide() (string, error) {
	return g.generate(wideSuffixLen)
}

func (g *Generator) generate(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.Rand, buf); err != nil {
		return "", err
	}
	// len(Alphabet) is 32, which divides 256, so the modulo draw is uniform.
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	stamp := g.Now().UTC().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", Prefix, stamp, string(buf)), nil
}
