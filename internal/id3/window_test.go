package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowSlice(t *testing.T) {
	w := NewWindow([]byte("0123456789"), 100)

	b, err := w.Slice(2, 3)
	require.NoError(t, err)
	require.Equal(t, []byte("234"), b)

	b, err = w.Slice(10, 0)
	require.NoError(t, err)
	require.Empty(t, b)

	for _, tc := range []struct{ start, n int }{
		{-1, 2}, {8, 3}, {11, 0}, {0, -1}, {0, 11},
	} {
		_, err := w.Slice(tc.start, tc.n)
		require.ErrorIs(t, err, ErrOutOfRange, "start=%d n=%d", tc.start, tc.n)
	}
}

func TestWindowIntegers(t *testing.T) {
	w := NewWindow([]byte{0x00, 0x00, 0x02, 0x01, 0x7F, 0x7F, 0x7F, 0x7F}, 0)

	v, err := w.U8(3)
	require.NoError(t, err)
	require.Equal(t, uint8(1), v)

	n, err := w.U32BE(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x0201), n)

	n, err = w.Synchsafe(0)
	require.NoError(t, err)
	require.Equal(t, uint32(257), n)

	n, err = w.Synchsafe(4)
	require.NoError(t, err)
	require.Equal(t, uint32(268435455), n)

	_, err = w.U8(8)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = w.U32BE(5)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestSynchsafeIgnoresHighBits(t *testing.T) {
	require.Equal(t, synchsafe([]byte{0x00, 0x00, 0x02, 0x01}), synchsafe([]byte{0x80, 0x80, 0x82, 0x81}))
}
