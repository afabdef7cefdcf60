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
package scan

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ostafen/tagscan/internal/env"
	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/logger"
	"github.com/ostafen/tagscan/pkg/pbar"
	"github.com/ostafen/tagscan/pkg/tagxml"
	fmtutil "github.com/ostafen/tagscan/pkg/util/format"
	osutils "github.com/ostafen/tagscan/pkg/util/os"
)

type Options struct {
	Inputs     []string
	Extensions []string
	Workers    int
	ReportFile string
	ReportDir  string
	DisableLog bool
	LogLevel   slog.Level
	Charset    id3.Charset

	// Progress receives a live progress line when set.
	Progress io.Writer
}

// Stats summarises a scan session.
type Stats struct {
	Files      int
	WithV1     int
	WithV2     int
	Frames     int
	Failed     int
	TotalBytes int64
	ReportFile string
	LogFile    string
}

// Scan reads the tags of every file reachable from opts.Inputs and writes
// them to an XML report. A file that cannot be read is recorded in the
// report and never stops the scan.
func Scan(ctx context.Context, opts Options, console *logger.Logger) (*Stats, error) {
	paths, err := expandInputs(opts.Inputs, opts.Extensions)
	if err != nil {
		return nil, err
	}

	session := GenSessionID()

	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	if _, err := osutils.EnsureDir(opts.ReportDir); err != nil {
		return nil, err
	}

	stats := &Stats{ReportFile: opts.ReportFile}
	if stats.ReportFile == "" {
		stats.ReportFile = filepath.Join(opts.ReportDir, fmt.Sprintf("report_%s.xml", session))
	}
	if !opts.DisableLog {
		stats.LogFile = absPath(filepath.Join(opts.ReportDir, session) + ".log")
	}

	log, logFile, err := setupLogger(stats.LogFile, opts.LogLevel)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	outFile, err := os.Create(stats.ReportFile)
	if err != nil {
		return nil, err
	}
	defer outFile.Close()

	report := tagxml.NewWriter(outFile)
	err = report.WriteHeader(tagxml.ReportHeader{
		XmlOutput: tagxml.XmlOutputVersion,
		Creator: tagxml.Creator{
			Package: env.AppName,
			Version: env.Version,
			Env:     tagxml.GetExecEnv(),
		},
		Source: tagxml.Source{Inputs: absPaths(opts.Inputs)},
	})
	if err != nil {
		return nil, err
	}

	console.Info("Starting scanning operation...")
	console.Infof("Inputs: \t%s", strings.Join(absPaths(opts.Inputs), ","))
	console.Infof("Files: \t%d", len(paths))
	console.Infof("Workers: \t%d", max(opts.Workers, 1))

	outLog := "disabled"
	if !opts.DisableLog {
		outLog = stats.LogFile
	}
	console.Infof("Output Log: \t%s", outLog)

	reader := id3.NewReader(
		id3.WithLogger(log),
		id3.WithCharset(opts.Charset),
	)

	start := time.Now()

	var progress *pbar.ProgressBar
	if opts.Progress != nil {
		progress = pbar.New(opts.Progress, len(paths))
	}

	for res := range ReadAll(ctx, reader, paths, opts.Workers) {
		stats.add(res)

		if progress != nil {
			progress.Add(res.Size, res.Tags != nil && (res.Tags.HasV1() || res.Tags.HasV2()))
			progress.Render(false)
		}

		if res.Err != nil {
			log.Error("unable to read tags", "path", res.Path, "err", res.Err)
			console.Warnf("%s: %s", res.Path, res.Err)
		} else {
			log.Info("file scanned", "path", res.Path, "v1", res.Tags.HasV1(), "v2", res.Tags.HasV2(), "frames", len(res.Tags.Frames))
			console.Debugf("%s: v1=%t v2=%t frames=%d", res.Path, res.Tags.HasV1(), res.Tags.HasV2(), len(res.Tags.Frames))
		}

		if err := report.WriteFileObject(FileObject(res)); err != nil {
			log.Error("unable to write report entry", "path", res.Path, "err", err)
		}
	}

	if progress != nil {
		progress.Render(true)
		progress.Finish()
	}

	if err := report.Close(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	console.Info("Scan completed!")
	console.Infof("Files scanned: \t%d", stats.Files)
	console.Infof("With ID3v1: \t%d", stats.WithV1)
	console.Infof("With ID3v2: \t%d (%d frames)", stats.WithV2, stats.Frames)
	console.Infof("Failed: \t%d", stats.Failed)
	console.Infof("Total data: \t%s", fmtutil.FormatBytes(stats.TotalBytes))
	console.Infof("Duration: \t%s", FormatDurationHMS(time.Since(start)))
	console.Infof("Report saved to: \t%s", absPath(stats.ReportFile))

	if !opts.DisableLog {
		console.Infof("Detailed scan log: \t%s", stats.LogFile)
	}
	return stats, nil
}

func (s *Stats) add(res Result) {
	s.Files++
	s.TotalBytes += res.Size

	if res.Err != nil {
		s.Failed++
		return
	}
	if res.Tags.HasV1() {
		s.WithV1++
	}
	if res.Tags.HasV2() {
		s.WithV2++
	}
	s.Frames += len(res.Tags.Frames)
}

func expandInputs(inputs []string, exts []string) ([]string, error) {
	var paths []string
	for _, in := range inputs {
		files, err := osutils.ListFiles(in, exts...)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func absPaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = absPath(p)
	}
	return out
}

// GenSessionID returns a session name of the form "scan_YYYYMMDD_HHMMSS".
func GenSessionID() string {
	return "scan_" + time.Now().Format("20060102_150405")
}

// FormatDurationHMS formats a duration as HH:MM:SS, or as fractional
// seconds below one second.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// setupLogger returns a slog.Logger writing to logFilePath, or discarding
// everything when the path is empty. The returned file, if any, must be
// closed by the caller.
func setupLogger(logFilePath string, minLevel slog.Level) (*slog.Logger, *os.File, error) {
	var writer io.Writer
	var file *os.File

	if logFilePath == "" {
		writer = io.Discard
	} else {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %q: %w", logDir, err)
		}

		f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
		}
		writer = f
		file = f
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     minLevel,
		AddSource: true,
	})
	return slog.New(handler), file, nil
}
