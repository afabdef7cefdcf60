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
package sysinfo

import (
	"bufio"
	"io"
	"runtime"
	"strings"
)

const unknown = "unknown"

// SysUnknown is returned when the release of the running system cannot be detected.
var SysUnknown = SysInfo{
	Name:    runtime.GOOS,
	Release: unknown,
	Version: unknown,
}

// SysInfo identifies the operating system a scan report was produced on.
type SysInfo struct {
	Name    string
	Release string
	Version string
}

// Stat detects the running operating system. Missing details are reported as "unknown".
func Stat() SysInfo {
	release, version := osRelease()
	if release == "" {
		release = unknown
	}
	if version == "" {
		version = unknown
	}
	return SysInfo{
		Name:    runtime.GOOS,
		Release: release,
		Version: version,
	}
}

// ParseKeyValues reads "KEY=value" or "Key: value" lines, such as the ones
// found in /etc/os-release or printed by sw_vers. Quotes around values are removed.
func ParseKeyValues(r io.Reader) map[string]string {
	values := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		values[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return values
}
