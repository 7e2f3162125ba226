package word

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  16,
		15: 16,
		16: 16,
		17: 32,
		31: 32,
		32: 32,
	}
	for in, want := range cases {
		require.Equal(t, want, AlignUp(in), "AlignUp(%d)", in)
	}
}

func TestAlignWordUp(t *testing.T) {
	cases := map[int]int{
		0: 0,
		1: 8,
		7: 8,
		8: 8,
		9: 16,
	}
	for in, want := range cases {
		require.Equal(t, want, AlignWordUp(in), "AlignWordUp(%d)", in)
	}
}

func TestReadPutRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	Put(buf, 8, 0xDEADBEEFCAFEF00D)
	require.Equal(t, uint64(0xDEADBEEFCAFEF00D), Read(buf, 8))
	// Untouched neighboring words stay zero.
	require.Equal(t, uint64(0), Read(buf, 0))
	require.Equal(t, uint64(0), Read(buf, 16))
}
