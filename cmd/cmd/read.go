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
	"encoding/json"
	"fmt"
	"io"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func DefineReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file> [<file>...]",
		Short: "Print the ID3 tags of one or more files",
		Long: `The 'read' command decodes the ID3v1, ID3v1 extended and ID3v2.3 tags of each file.
A file that cannot be read is reported and skipped, the remaining files are still processed.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunRead,
	}

	cmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	return cmd
}

func RunRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	console, err := newConsole(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	reader, err := newReader(cfg)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	write, err := tagsWriter(output)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		tags, err := reader.ReadTags(path)
		if err != nil {
			console.Errorf("%s: %s", path, err)
			failed++
			continue
		}

		if err := write(cmd.OutOrStdout(), tags); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}
	return nil
}

func tagsWriter(output string) (func(io.Writer, *id3.Tags) error, error) {
	switch output {
	case "text":
		return WriteText, nil
	case "json":
		return func(w io.Writer, tags *id3.Tags) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(tags)
		}, nil
	case "yaml":
		return func(w io.Writer, tags *id3.Tags) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(tags); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", output)
}
