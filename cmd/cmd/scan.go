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
	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/logger"
	"github.com/ostafen/tagscan/internal/scan"
	"github.com/spf13/cobra"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <path> [<path>...]",
		Short: "Scan files and directories and write an XML tag report",
		Long: `The 'scan' command walks the given files and directories, reads the ID3 tags of every
matching file with a pool of workers and writes the results to an XML report.
A detailed log of the session is written next to the report unless --no-log is set.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().IntP("workers", "w", 0, "number of files read in parallel (default: number of CPUs)")
	cmd.Flags().StringSlice("ext", nil, "file extensions to scan (default: .mp3)")
	cmd.Flags().StringP("output", "o", "", "path of the XML report (default: <report-dir>/report_<session>.xml)")
	cmd.Flags().String("report-dir", "", "directory for the report and the scan log")
	cmd.Flags().Bool("no-log", false, "disable the scan log file")
	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extensions, _ = cmd.Flags().GetStringSlice("ext")
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir, _ = cmd.Flags().GetString("report-dir")
	}
	if cmd.Flags().Changed("no-log") {
		cfg.DisableLog, _ = cmd.Flags().GetBool("no-log")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	cs, err := id3.LookupCharset(cfg.V1Charset)
	if err != nil {
		return err
	}

	reportFile, _ := cmd.Flags().GetString("output")

	opts := scan.Options{
		Inputs:     args,
		Extensions: cfg.Extensions,
		Workers:    cfg.Workers,
		ReportFile: reportFile,
		ReportDir:  cfg.ReportDir,
		DisableLog: cfg.DisableLog,
		LogLevel:   level.Slog(),
		Charset:    cs,
	}
	if level <= logger.InfoLevel {
		opts.Progress = cmd.ErrOrStderr()
	}

	_, err = scan.Scan(cmd.Context(), opts, logger.New(cmd.ErrOrStderr(), level))
	return err
}
