package id3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameText(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"iso-8859-1", []byte("\x00Caf\xe9\x00"), "Café"},
		{"utf-16 le bom", []byte{0x01, 0xFF, 0xFE, 'H', 0, 'i', 0, 0, 0}, "Hi"},
		{"utf-16 be bom", []byte{0x01, 0xFE, 0xFF, 0, 'H', 0, 'i'}, "Hi"},
		{"utf-16be", []byte{0x02, 0, 'O', 0, 'k'}, "Ok"},
		{"utf-8", []byte("\x03Caf\xc3\xa9\x00"), "Café"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Frame{ID: "TIT2", Body: tc.body}
			text, err := f.Text()
			require.NoError(t, err)
			require.Equal(t, tc.want, text)
		})
	}
}

func TestFrameTextUserDefined(t *testing.T) {
	f := Frame{ID: "TXXX", Body: []byte("\x00REPLAYGAIN\x00-6.5 dB")}

	text, err := f.Text()
	require.NoError(t, err)
	require.Equal(t, "-6.5 dB", text)
}

func TestFrameTextErrors(t *testing.T) {
	f := Frame{ID: "APIC", Body: []byte("\x00x")}
	_, err := f.Text()
	require.ErrorIs(t, err, ErrNotTextFrame)

	f = Frame{ID: "TIT2", Format: FrameFormat{Compressed: true}}
	_, err = f.Text()
	require.ErrorIs(t, err, ErrUnsupportedFeature)

	f = Frame{ID: "TIT2", Body: []byte{}}
	_, err = f.Text()
	require.Error(t, err)

	f = Frame{ID: "TIT2", Body: []byte("\x09abc")}
	_, err = f.Text()
	require.Error(t, err)
}

func TestGenreName(t *testing.T) {
	require.Equal(t, "Blues", GenreName(0))
	require.Equal(t, "Rock", GenreName(17))
	require.Equal(t, "Dance Hall", GenreName(125))
	require.Equal(t, "Psybient", GenreName(191))
	require.Equal(t, UnknownGenre, GenreName(192))
	require.Equal(t, UnknownGenre, GenreName(255))
	require.Equal(t, 192, Genres())
}
