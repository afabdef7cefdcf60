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
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ostafen/tagscan/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

const barLength = 20

// ProgressBar tracks the number of scanned files and renders a single,
// self-overwriting status line.
type ProgressBar struct {
	out            io.Writer
	TotalFiles     int
	ScannedFiles   int
	TaggedFiles    int
	ScannedBytes   int64
	StartTime      time.Time
	LastUpdateTime time.Time
}

func New(out io.Writer, totalFiles int) *ProgressBar {
	return &ProgressBar{
		out:        out,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// Add records one scanned file.
func (pb *ProgressBar) Add(size int64, tagged bool) {
	pb.ScannedFiles++
	pb.ScannedBytes += size
	if tagged {
		pb.TaggedFiles++
	}
}

// Render prints the progress line. Unless force is set, calls closer than
// MinRefreshRate to the previous one are ignored.
func (pb *ProgressBar) Render(force bool) {
	if !force && time.Since(pb.LastUpdateTime) < MinRefreshRate {
		return
	}
	pb.LastUpdateTime = time.Now()

	percentage := 100.0
	if pb.TotalFiles > 0 {
		percentage = float64(pb.ScannedFiles) / float64(pb.TotalFiles) * 100
	}

	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	var rate float64
	if elapsed := time.Since(pb.StartTime).Seconds(); elapsed > 0 {
		rate = float64(pb.ScannedFiles) / elapsed
	}

	// \r rewinds to the start of the line, trailing spaces clear leftovers
	fmt.Fprintf(pb.out, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files, %s) | Tagged: %d | @ %.1f files/s    ",
		bar,
		percentage,
		pb.ScannedFiles,
		pb.TotalFiles,
		format.FormatBytes(pb.ScannedBytes),
		pb.TaggedFiles,
		rate)
}

// Finish moves to the next line after the bar is done.
func (pb *ProgressBar) Finish() {
	fmt.Fprintln(pb.out)
}
