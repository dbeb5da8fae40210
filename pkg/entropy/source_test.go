package entropy

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAlphaNumeric(t *testing.T) {
	src := New(1)
	for i := 0; i < 1000; i++ {
		s := src.AlphaNumeric(10)
		require.Len(t, s, 10)
		for _, r := range s {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q in %q", r, s)
		}
	}
}

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.AlphaNumeric(10), b.AlphaNumeric(10))
		require.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
		require.Equal(t, a.FloatRange(0, 1), b.FloatRange(0, 1))
		require.Equal(t, a.Bool(), b.Bool())
		require.Equal(t, a.UUID(), b.UUID())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	require.NotEqual(t, New(1).AlphaNumeric(32), New(2).AlphaNumeric(32))
}

func TestRanges(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		n := src.IntRange(5, 9)
		require.GreaterOrEqual(t, n, 5)
		require.LessOrEqual(t, n, 9)

		f := src.FloatRange(-2.5, 2.5)
		require.GreaterOrEqual(t, f, -2.5)
		require.Less(t, f, 2.5)

		d := src.Duration(time.Hour)
		require.GreaterOrEqual(t, d, time.Duration(0))
		require.LessOrEqual(t, d, time.Hour)
	}

	require.Equal(t, 3, src.IntRange(3, 3))
	require.Equal(t, 1.5, src.FloatRange(1.5, 1.5))
	require.Equal(t, time.Duration(0), src.Duration(0))
}

func TestUUIDVersion(t *testing.T) {
	src := New(9)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := src.UUID()
		require.Equal(t, 4, int(id.Version()))
		seen[id.String()] = struct{}{}
	}
	require.Len(t, seen, 100)
}

func TestPerm(t *testing.T) {
	p := New(3).Perm(2)
	require.ElementsMatch(t, []int{0, 1}, p)
}
