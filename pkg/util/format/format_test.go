package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	for in, want := range map[int64]string{
		0:         "0B",
		257:       "257B",
		1024:      "1KB",
		1536:      "1.50KB",
		268435455: "256.00MB",
		1 << 30:   "1GB",
	} {
		require.Equal(t, want, FormatBytes(in), "input %d", in)
	}
}
