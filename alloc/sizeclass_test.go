package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassIndexBoundaries(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{32, 0}, {33, 1}, {48, 1}, {49, 2},
		{64, 2}, {96, 3}, {128, 4}, {256, 5},
		{512, 6}, {1024, 7}, {2048, 8}, {4096, 9},
		{8192, 10}, {16384, 11}, {65536, 12}, {131072, 13},
		{262144, 14}, {262145, 15}, {1 << 30, 15},
	}
	for _, c := range cases {
		require.Equal(t, c.want, classIndex(c.size), "classIndex(%d)", c.size)
	}
}

func TestClassIndexMonotone(t *testing.T) {
	prev := classIndex(16)
	for size := 16; size <= 1<<20; size += 16 {
		idx := classIndex(size)
		require.GreaterOrEqual(t, idx, prev, "classIndex not monotone at size=%d", size)
		prev = idx
	}
}
