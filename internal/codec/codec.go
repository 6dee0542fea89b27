package codec

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Format uint8

const (
	Plain Format = iota
	Gzip
	Zstd
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "plain"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Sniff reports the compression of the stream behind br without consuming
// any of it.
func Sniff(br *bufio.Reader) Format {
	head, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	}
	return Plain
}

type decoder struct {
	io.Reader
	close func() error
}

func (d *decoder) Close() error {
	return d.close()
}

// NewReader returns a reader over the decompressed content of r. Gzip and
// zstd streams are recognized by their magic bytes; anything else is read
// as is. Closing the result closes r too when it is an io.Closer.
func NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	closeSrc := func() error { return nil }
	if c, ok := r.(io.Closer); ok {
		closeSrc = c.Close
	}

	br := bufio.NewReader(r)
	switch f := Sniff(br); f {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			closeSrc()
			return nil, f, errors.Wrap(err, "opening gzip stream")
		}
		return &decoder{Reader: zr, close: func() error {
			err := zr.Close()
			if cerr := closeSrc(); err == nil {
				err = cerr
			}
			return err
		}}, f, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			closeSrc()
			return nil, f, errors.Wrap(err, "opening zstd stream")
		}
		return &decoder{Reader: zr, close: func() error {
			zr.Close()
			return closeSrc()
		}}, f, nil
	default:
		return &decoder{Reader: br, close: closeSrc}, f, nil
	}
}

// OpenFile opens path for reading, decompressing it when needed.
func OpenFile(path string) (io.ReadCloser, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Plain, errors.Wrapf(err, "opening %q", path)
	}
	return NewReader(f)
}
