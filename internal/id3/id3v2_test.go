package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildHeader(major, minor, flags byte, size uint32) []byte {
	return []byte{
		'I', 'D', '3', major, minor, flags,
		byte(size>>21) & 0x7F,
		byte(size>>14) & 0x7F,
		byte(size>>7) & 0x7F,
		byte(size) & 0x7F,
	}
}

func TestParseHeader(t *testing.T) {
	hdr, err := ParseHeader([]byte{'I', 'D', '3', 3, 0, 0x00, 0x00, 0x00, 0x02, 0x01})
	require.NoError(t, err)
	require.Equal(t, &Header{MajorVersion: 3, MinorVersion: 0, Size: 257}, hdr)
	require.Equal(t, "3.0", hdr.Version())
	require.NoError(t, hdr.Supported())
}

func TestParseHeaderMaxSize(t *testing.T) {
	hdr, err := ParseHeader([]byte{'I', 'D', '3', 3, 0, 0x00, 0x7F, 0x7F, 0x7F, 0x7F})
	require.NoError(t, err)
	require.Equal(t, uint32(268435455), hdr.Size)
	require.Equal(t, uint32(MaxTagSize), hdr.Size)
}

func TestParseHeaderFlags(t *testing.T) {
	tests := []struct {
		flags byte
		want  Header
	}{
		{0x80, Header{Unsynchronised: true}},
		{0x60, Header{HasExtendedHeader: true, Experimental: true}},
		{0x40, Header{HasExtendedHeader: true}},
		{0x20, Header{Experimental: true}},
		{0x1F, Header{}},
		{0xE0, Header{Unsynchronised: true, HasExtendedHeader: true, Experimental: true}},
	}

	for _, tc := range tests {
		hdr, err := ParseHeader(buildHeader(3, 0, tc.flags, 0))
		require.NoError(t, err)

		tc.want.MajorVersion = 3
		require.Equal(t, tc.want, *hdr, "flags 0x%02x", tc.flags)
	}
}

func TestParseHeaderNoMarker(t *testing.T) {
	hdr, err := ParseHeader([]byte("TAG\x03\x00\x00\x00\x00\x00\x00"))
	require.NoError(t, err)
	require.Nil(t, hdr)

	_, err = ParseHeader([]byte("ID"))
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = ParseHeader([]byte("ID3\x03\x00"))
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestHeaderSupported(t *testing.T) {
	for _, hdr := range []Header{
		{MajorVersion: 2},
		{MajorVersion: 4},
		{MajorVersion: 3, Unsynchronised: true},
		{MajorVersion: 3, HasExtendedHeader: true},
	} {
		require.ErrorIs(t, hdr.Supported(), ErrUnsupportedFeature)
	}

	hdr := Header{MajorVersion: 3, Experimental: true}
	require.NoError(t, hdr.Supported())
}
