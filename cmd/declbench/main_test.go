package main

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/appnet-org/declbench/pkg/bench"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestUserCommand(t *testing.T) {
	out, err := execute(t, "user", "-n", "10", "--seed", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Running with 10 iterations...")
	require.Contains(t, out, "Difference (explicit - implicit): ")
}

func TestTreeCommandShuffle(t *testing.T) {
	out, err := execute(t, "tree", "--iterations", "2", "--seed", "7", "--shuffle")
	require.NoError(t, err)
	require.Contains(t, out, "Running with 2 iterations...")
	require.Contains(t, out, "Phase order: ")
}

func TestSizesCommand(t *testing.T) {
	out, err := execute(t, "sizes", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "json: 10 values, ")
	require.Contains(t, out, "protobuf: 10 values, ")
	require.Contains(t, out, "capnp: 10 values, ")
}

func TestInvalidIterations(t *testing.T) {
	_, err := execute(t, "user", "-n", "0")
	require.True(t, errors.Is(err, bench.ErrInvalidIterations), "got %v", err)
}

func TestSourceFor(t *testing.T) {
	require.Equal(t, uint64(5), sourceFor(5, true).Seed())
	require.Equal(t, uint64(0), sourceFor(0, true).Seed())
	require.Equal(t, uint64(1)<<63+5, sourceFor(1<<63+5, true).Seed())
	require.NotNil(t, sourceFor(0, false))
}

func TestSeedAboveMaxInt64Replays(t *testing.T) {
	seed := strconv.FormatUint(uint64(1)<<63+5, 10)

	first, err := execute(t, "sizes", "--seed", seed)
	require.NoError(t, err)
	second, err := execute(t, "sizes", "--seed", seed)
	require.NoError(t, err)
	require.Equal(t, first, second, "same seed, same tree")

	out, err := execute(t, "user", "-n", "2", "--seed", strconv.FormatUint(^uint64(0), 10))
	require.NoError(t, err)
	require.Contains(t, out, "Running with 2 iterations...")

	out, err = execute(t, "tree", "-n", "1", "--seed", seed, "--shuffle")
	require.NoError(t, err)
	require.Contains(t, out, "Phase order: ")
}

func TestNegativeSeedRejected(t *testing.T) {
	_, err := execute(t, "user", "-n", "1", "--seed", "-1")
	require.Error(t, err)
}
