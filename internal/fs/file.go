package fs

import (
	"io"
	"os"
)

// File is the subset of *os.File the tag decoders need: positioned reads
// and the file size.
type File interface {
	io.Closer
	io.ReaderAt
	Stat() (os.FileInfo, error)
}
