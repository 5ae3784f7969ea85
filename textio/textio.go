// Package textio reads line-oriented text for sorting. Compressed inputs are
// unpacked according to their file suffix and input that is not valid UTF-8
// is transcoded after charset detection.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrDecompress is returned when a compressed stream cannot be opened.
var ErrDecompress = errors.New("cannot decompress input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint:gochecknoglobals

// Open opens path for reading, decompressing it when its suffix names a
// supported compression format. Stdin reads standard input, which is never
// decompressed. The caller must close the result.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	rc, err := Decompress(path, f)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	return rc, nil
}

// Decompress wraps r in a decoder chosen by the suffix of name:
//
//	.gz   gzip
//	.zst  zstandard
//	.br   brotli
//	.lz4  lz4 frame
//	.sz   snappy framed stream
//
// Any other suffix returns r unchanged. Closing the result closes r when r
// is an io.Closer.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	closer := closerOf(r)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrDecompress, err)
		}

		return &stackedReader{Reader: gr, closers: []func() error{gr.Close, closer}}, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}

		zrc := zr.IOReadCloser()

		return &stackedReader{Reader: zrc, closers: []func() error{zrc.Close, closer}}, nil
	case ".br":
		return &stackedReader{Reader: brotli.NewReader(r), closers: []func() error{closer}}, nil
	case ".lz4":
		return &stackedReader{Reader: lz4.NewReader(r), closers: []func() error{closer}}, nil
	case ".sz":
		return &stackedReader{Reader: snappy.NewReader(r), closers: []func() error{closer}}, nil
	default:
		return &stackedReader{Reader: r, closers: []func() error{closer}}, nil
	}
}

func closerOf(r io.Reader) func() error {
	if c, ok := r.(io.Closer); ok {
		return c.Close
	}

	return func() error { return nil }
}

// stackedReader closes a decoder and the stream beneath it, innermost last.
type stackedReader struct {
	io.Reader

	closers []func() error
}

func (s *stackedReader) Close() error {
	var errs []error

	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ToUTF8 returns data as UTF-8 along with the name of the charset it was
// decoded from. Valid UTF-8 is returned as is (minus a leading byte order
// mark). Otherwise the charset is detected and the data transcoded; when
// detection fails the data is returned unchanged as "utf-8".
func ToUTF8(data []byte) ([]byte, string) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return data, "utf-8"
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return data, "utf-8"
	}

	decoded, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return data, "utf-8"
	}

	out, err := io.ReadAll(decoded)
	if err != nil {
		return data, "utf-8"
	}

	return out, best.Charset
}

// SplitLines splits text on '\n', trimming a trailing '\r' from each line.
// A final newline does not produce an empty last line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// ReadLines reads all of r, converts it to UTF-8 and splits it into lines.
// It also reports the detected source charset.
func ReadLines(r io.Reader) ([]string, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	text, cs := ToUTF8(data)

	return SplitLines(string(text)), cs, nil
}

// ReadFile opens path as Open does and returns its lines.
func ReadFile(path string) ([]string, string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, "", err
	}

	lines, cs, err := ReadLines(rc)

	closeErr := rc.Close()
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	if closeErr != nil {
		return nil, "", fmt.Errorf("closing %s: %w", path, closeErr)
	}

	return lines, cs, nil
}
