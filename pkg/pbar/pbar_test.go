package pbar

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	pb := New(&buf, 4)
	pb.Add(1024, true)
	pb.Add(1024, false)
	pb.Render(true)

	out := buf.String()
	require.Contains(t, out, "\r[INFO] Progress: [==========>         ]  50%")
	require.Contains(t, out, "(2/4 files, 2KB)")
	require.Contains(t, out, "Tagged: 1")

	buf.Reset()
	pb.Render(false)
	require.Empty(t, buf.String())

	pb.Add(10, true)
	pb.Add(10, true)
	pb.Render(true)
	require.Contains(t, buf.String(), "[====================] 100%")

	pb.Finish()
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestRenderNoFiles(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, 0).Render(true)
	require.Contains(t, buf.String(), "100%")
}
