package scan

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/logger"
	"github.com/ostafen/tagscan/pkg/tagxml"
	"github.com/stretchr/testify/require"
)

func frame(id string, format byte, body string) []byte {
	buf := make([]byte, id3.FrameHeaderSize, id3.FrameHeaderSize+len(body))
	copy(buf, id)
	binary.BigEndian.PutUint32(buf[4:8], uint32(len(body)))
	buf[9] = format
	return append(buf, body...)
}

func v2Tag(flags byte, frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	size := uint32(len(body))
	hdr := []byte{'I', 'D', '3', 3, 0, flags,
		byte(size>>21) & 0x7F, byte(size>>14) & 0x7F, byte(size>>7) & 0x7F, byte(size) & 0x7F}
	return append(hdr, body...)
}

func v1Tag(title string, track, genre byte) []byte {
	buf := make([]byte, id3.V1TagSize)
	copy(buf, "TAG")
	copy(buf[3:33], title)
	buf[126] = track
	buf[127] = genre
	return buf
}

func writeFile(t *testing.T, dir, name string, parts ...[]byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, bytes.Join(parts, nil), 0644))
	return path
}

func TestScan(t *testing.T) {
	music := t.TempDir()
	out := t.TempDir()
	noise := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 256)

	writeFile(t, music, "a.mp3", v2Tag(0, frame("TIT2", 0, "\x00Alpha"), frame("TPE1", 0, "\x00Band")), noise, v1Tag("Alpha", 1, 17))
	writeFile(t, music, "b.mp3", noise, v1Tag("Beta", 0, 0))
	writeFile(t, music, "sub/c.mp3", v2Tag(0x40, frame("TIT2", 0, "\x00Gamma")))
	writeFile(t, music, "cover.jpg", noise)

	var console bytes.Buffer
	stats, err := Scan(context.Background(), Options{
		Inputs:     []string{music},
		Extensions: []string{".mp3"},
		Workers:    2,
		ReportFile: filepath.Join(out, "report.xml"),
		ReportDir:  out,
		DisableLog: true,
		Charset:    id3.CharsetRaw,
	}, logger.New(&console, logger.InfoLevel))
	require.NoError(t, err)

	require.Equal(t, 3, stats.Files)
	require.Equal(t, 2, stats.WithV1)
	require.Equal(t, 2, stats.WithV2)
	require.Equal(t, 2, stats.Frames)
	require.Zero(t, stats.Failed)
	require.Empty(t, stats.LogFile)
	require.Contains(t, console.String(), "[INFO] Scan completed!")

	f, err := os.Open(stats.ReportFile)
	require.NoError(t, err)
	defer f.Close()

	objs, err := tagxml.ReadFileObjects(f)
	require.NoError(t, err)
	require.Len(t, objs, 3)

	require.Equal(t, filepath.Join(music, "a.mp3"), objs[0].Filename)
	require.Equal(t, "Alpha", objs[0].V1.Title)
	require.Equal(t, "Rock", objs[0].V1.GenreName)
	require.Equal(t, "3.0", objs[0].V2.Version)
	require.Equal(t, "Alpha", objs[0].V2.Frames[0].Text)

	require.Nil(t, objs[1].V2)
	require.Equal(t, "Beta", objs[1].V1.Title)

	require.Nil(t, objs[2].V1)
	require.True(t, objs[2].V2.HasExtendedHeader)
	require.Contains(t, objs[2].V2.Error, "unsupported feature")
	require.Empty(t, objs[2].V2.Frames)
}

func TestScanWritesLog(t *testing.T) {
	music := t.TempDir()
	out := t.TempDir()
	writeFile(t, music, "a.mp3", v2Tag(0, frame("TIT2", 0, "\x00Alpha")))

	stats, err := Scan(context.Background(), Options{
		Inputs:    []string{music},
		Workers:   1,
		ReportDir: out,
	}, logger.Discard())
	require.NoError(t, err)

	require.FileExists(t, stats.ReportFile)
	require.Equal(t, out, filepath.Dir(stats.ReportFile))

	data, err := os.ReadFile(stats.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "file scanned")
}

func TestScanMissingInput(t *testing.T) {
	_, err := Scan(context.Background(), Options{
		Inputs:    []string{filepath.Join(t.TempDir(), "missing")},
		ReportDir: t.TempDir(),
	}, logger.Discard())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := range 50 {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("%02d.mp3", i), v2Tag(0, frame("TIT2", 0, fmt.Sprintf("\x00%d", i)))))
	}
	paths = append(paths, filepath.Join(dir, "missing.mp3"))

	var got []Result
	for res := range ReadAll(context.Background(), id3.NewReader(), paths, 8) {
		got = append(got, res)
	}
	require.Len(t, got, len(paths))

	for i, res := range got[:50] {
		require.Equal(t, paths[i], res.Path)
		require.NoError(t, res.Err)

		text, err := res.Tags.Frames[0].Text()
		require.NoError(t, err)
		require.Equal(t, fmt.Sprint(i), text)
	}
	require.ErrorIs(t, got[50].Err, id3.ErrFileNotFound)
}

func TestReadAllStopsEarly(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := range 20 {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("%02d.mp3", i), v1Tag("x", 0, 0)))
	}

	n := 0
	for range ReadAll(context.Background(), id3.NewReader(), paths, 4) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

func TestReadAllCancelled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFile(t, dir, "a.mp3", v1Tag("x", 0, 0))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ReadAll(ctx, id3.NewReader(), paths, 2) {
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ReadAll did not return after cancellation")
	}
}

func TestFileObjectError(t *testing.T) {
	obj := FileObject(Result{Path: "x.mp3", Err: id3.ErrFileNotFound})
	require.Equal(t, "x.mp3", obj.Filename)
	require.Equal(t, "file not found", obj.Error)
	require.Nil(t, obj.V1)
	require.Nil(t, obj.V2)
}

func TestFrameFlags(t *testing.T) {
	f := id3.Frame{
		Status: id3.FrameStatus{TagAlterPreserve: true},
		Format: id3.FrameFormat{Compressed: true, Grouped: true},
	}
	require.Equal(t, []string{"tag_alter_preserve", "compressed", "grouped"}, FrameFlags(f))
	require.Empty(t, FrameFlags(id3.Frame{}))
}

func TestFormatDurationHMS(t *testing.T) {
	require.Equal(t, "0.50s", FormatDurationHMS(500*time.Millisecond))
	require.Equal(t, "00:01:05", FormatDurationHMS(65*time.Second))
	require.Equal(t, "26:00:00", FormatDurationHMS(26*time.Hour))
}
