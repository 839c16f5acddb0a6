package reference

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refPattern = regexp.MustCompile(`^[A-Z]{2}-\d{8}-[A-Z0-9]{4}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateFormat(t *testing.T) {
	g := New()
	for i := 0; i < 200; i++ {
		ref, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, refPattern, ref)
	}
}

func TestGenerateExcludesAmbiguousCharacters(t *testing.T) {
	// Feed every possible byte value through the alphabet mapping.
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	g := &Generator{Rand: bytes.NewReader(all), Now: time.Now}
	for i := 0; i < 256/4; i++ {
		ref, err := g.Generate()
		require.NoError(t, err)
		suffix := ref[len(ref)-4:]
		for _, c := range suffix {
			assert.NotContains(t, "0O1I", string(c), "ambiguous char in %q", ref)
			assert.Contains(t, Alphabet, string(c))
		}
	}
}

func TestGenerateDeterministicWithInjectedSources(t *testing.T) {
	at := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	g := &Generator{Rand: bytes.NewReader([]byte{0, 1, 2, 3}), Now: fixedClock(at)}

	ref, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "TC-20250610-ABCD", ref)
}

func TestGenerateStampUsesUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; the stamp must follow UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	at := time.Date(2025, 6, 10, 23, 30, 0, 0, loc)
	g := &Generator{Rand: bytes.NewReader([]byte{0, 0, 0, 0}), Now: fixedClock(at)}

	ref, err := g.Generate()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "TC-20250611-"), "got %q", ref)
}

func TestGenerateWideSuffixLength(t *testing.T) {
	g := New()
	ref, err := g.GenerateWide()
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z]{2}-\d{8}-[A-Z0-9]{8}$`, ref)
}

func TestGenerateShortRandomSource(t *testing.T) {
	g := &Generator{Rand: bytes.NewReader([]byte{1}), Now: time.Now}
	_, err := g.Generate()
	assert.Error(t, err)
}
