// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func textFrame(id, value string) []byte {
	body := append([]byte{0}, value...)
	hdr := make([]byte, id3.FrameHeaderSize)
	copy(hdr, id)
	binary.BigEndian.PutUint32(hdr[4:], uint32(len(body)))
	return append(hdr, body...)
}

func writeSample(t *testing.T) string {
	t.Helper()

	frames := append(textFrame("TIT2", "Song"), textFrame("TPE1", "Band")...)
	frames = append(frames, make([]byte, 16)...)

	size := len(frames)
	tag := []byte{'I', 'D', '3', 3, 0, 0,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F), byte(size >> 7 & 0x7F), byte(size & 0x7F)}
	tag = append(tag, frames...)

	v1 := make([]byte, id3.V1TagSize)
	copy(v1, "TAG")
	copy(v1[3:], "Song")
	copy(v1[33:], "Band")
	copy(v1[93:], "2001")
	v1[126] = 4
	v1[127] = 17

	data := append(tag, bytes.Repeat([]byte{0xFF}, 512)...)
	data = append(data, v1...)

	path := filepath.Join(t.TempDir(), "sample.mp3")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReadText(t *testing.T) {
	path := writeSample(t)

	out, _, err := run(t, "read", path)
	require.NoError(t, err)
	require.Regexp(t, `ID3v1:\s+1\.1\n`, out)
	require.Regexp(t, `Track:\s+4\n`, out)
	require.Regexp(t, `Genre:\s+17 \(Rock\)\n`, out)
	require.Regexp(t, `ID3v2:\s+3\.0\n`, out)
	require.Regexp(t, `Size:\s+\d+\n`, out)
	require.Contains(t, out, "unsynchronised=false extended_header=false experimental=false")
	require.Regexp(t, `TIT2:\s+Song\n`, out)
	require.Regexp(t, `TPE1:\s+Band\n`, out)
}

func TestReadJSON(t *testing.T) {
	path := writeSample(t)

	out, _, err := run(t, "read", "--output", "json", path)
	require.NoError(t, err)

	var tags id3.Tags
	require.NoError(t, json.Unmarshal([]byte(out), &tags))
	require.Equal(t, "Song", tags.V1.Title)
	require.Equal(t, uint8(3), tags.V2.MajorVersion)
	require.Len(t, tags.Frames, 2)
}

func TestReadYAML(t *testing.T) {
	path := writeSample(t)

	out, _, err := run(t, "read", "-o", "yaml", path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Equal(t, path, doc["path"])
	require.Contains(t, doc, "frames")
}

func TestReadUnknownOutput(t *testing.T) {
	_, _, err := run(t, "read", "-o", "toml", writeSample(t))
	require.ErrorContains(t, err, "unknown output format")
}

func TestReadMissingFile(t *testing.T) {
	path := writeSample(t)
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	out, stderr, err := run(t, "read", missing, path)
	require.ErrorContains(t, err, "1 of 2 files")
	require.Contains(t, stderr, "[ERROR]")
	require.Contains(t, stderr, "file not found")
	require.Contains(t, out, "TIT2")
}

func TestFrames(t *testing.T) {
	out, _, err := run(t, "frames", writeSample(t))
	require.NoError(t, err)
	require.Contains(t, out, "ID3v2 3.0")
	require.Contains(t, out, "Title/songname/content description")
	require.Contains(t, out, "Lead performer(s)/Soloist(s)")
}

func TestFramesNoTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.mp3")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xFF}, 64), 0o644))

	_, _, err := run(t, "frames", path)
	require.ErrorContains(t, err, "no ID3v2 tag")
}

func TestGenres(t *testing.T) {
	out, _, err := run(t, "genres")
	require.NoError(t, err)
	require.Contains(t, out, "0      Blues")
	require.Contains(t, out, "191    Psybient")
}

func TestScanCommand(t *testing.T) {
	path := writeSample(t)
	report := filepath.Join(t.TempDir(), "report.xml")

	_, stderr, err := run(t, "scan", "--no-log", "-w", "2", "-o", report, filepath.Dir(path))
	require.NoError(t, err)
	require.Contains(t, stderr, "Scan completed!")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	require.Contains(t, string(data), "sample.mp3")
}

func TestScanInvalidWorkers(t *testing.T) {
	_, _, err := run(t, "scan", "--workers", "0", t.TempDir())
	require.ErrorContains(t, err, "workers must be greater than 0")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("v1_charset: klingon\n"), 0o644))

	_, _, err := run(t, "read", "--config", cfgPath, writeSample(t))
	require.Error(t, err)

	_, _, err = run(t, "read", "--config", cfgPath, "--charset", "latin1", writeSample(t))
	require.NoError(t, err)
}

func TestScanProgress(t *testing.T) {
	path := writeSample(t)
	report := filepath.Join(t.TempDir(), "report.xml")

	_, stderr, err := run(t, "scan", "--no-log", "-o", report, path)
	require.NoError(t, err)
	require.Contains(t, stderr, "(1/1 files")

	_, stderr, err = run(t, "scan", "--no-log", "--log-level", "error", "-o", report, path)
	require.NoError(t, err)
	require.Empty(t, stderr)
}
