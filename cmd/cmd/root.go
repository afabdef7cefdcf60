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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/ostafen/tagscan/internal/config"
	"github.com/ostafen/tagscan/internal/env"
	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - ID3 tag reader for MP3 files",
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().String("charset", "", "charset of ID3v1 text fields (raw, iso-8859-1, windows-1252, windows-1251)")

	rootCmd.AddCommand(
		DefineReadCommand(),
		DefineFramesCommand(),
		DefineScanCommand(),
		DefineGenresCommand(),
		DefineVersionCommand(),
	)
	return rootCmd
}

// loadConfig returns the configuration file selected with --config, or the
// defaults, with persistent flags applied on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("charset") {
		cfg.V1Charset, _ = cmd.Flags().GetString("charset")
	}
	return cfg, nil
}

func newConsole(w io.Writer, cfg *config.Config) (*logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logger.New(w, level), nil
}

func newReader(cfg *config.Config) (*id3.Reader, error) {
	cs, err := id3.LookupCharset(cfg.V1Charset)
	if err != nil {
		return nil, err
	}
	return id3.NewReader(id3.WithCharset(cs)), nil
}

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, " _                                 ")
			fmt.Fprintln(w, "| |_ __ _  __ _ ___  ___ __ _ _ __  ")
			fmt.Fprintln(w, "| __/ _` |/ _` / __|/ __/ _` | '_ \\ ")
			fmt.Fprintln(w, "| || (_| | (_| \\__ \\ (_| (_| | | | |")
			fmt.Fprintln(w, " \\__\\__,_|\\__, |___/\\___\\__,_|_| |_|")
			fmt.Fprintln(w, "          |___/                    ")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "ID3 tag reader for MP3 files")
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Version:    %s\n", env.Version)
			fmt.Fprintf(w, "Commit:     %s\n", env.CommitHash)
			fmt.Fprintf(w, "Build Time: %s\n", env.BuildTime)
		},
	}
}
