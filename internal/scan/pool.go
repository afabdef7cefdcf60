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
	"os"

	"github.com/ostafen/tagscan/internal/id3"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of reading one file. Err is only set when the
// file could not be read at all; partial failures live on Tags.
type Result struct {
	Path string
	Size int64
	Tags *id3.Tags
	Err  error
}

// ReadAll reads the tags of paths using up to workers goroutines and
// yields the results in the order of paths. Stopping the iteration or
// cancelling ctx stops the workers.
func ReadAll(ctx context.Context, r *id3.Reader, paths []string, workers int) func(yield func(Result) bool) {
	return func(yield func(Result) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		type indexed struct {
			idx int
			res Result
		}
		results := make(chan indexed)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(max(workers, 1))

		go func() {
			defer close(results)

			for i, path := range paths {
				if gctx.Err() != nil {
					break
				}

				g.Go(func() error {
					res := readFile(r, path)
					select {
					case results <- indexed{idx: i, res: res}:
					case <-gctx.Done():
					}
					return nil
				})
			}
			_ = g.Wait()
		}()

		// workers finish out of order, hold results until their turn comes.
		pending := make(map[int]Result)
		next := 0
		for item := range results {
			pending[item.idx] = item.res

			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++

				if !yield(res) {
					return
				}
			}
		}
	}
}

func readFile(r *id3.Reader, path string) Result {
	res := Result{Path: path}

	if info, err := os.Stat(path); err == nil {
		res.Size = info.Size()
	}

	res.Tags, res.Err = r.ReadTags(path)
	return res
}
