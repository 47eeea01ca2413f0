// Package stream provides the body-handling helpers used around request and
// response payloads: rewinding seekable bodies, enforcing declared lengths
// and verifying checksums.
package stream

import (
	"io"

	"github.com/Tim020/botocore/botoerr"
)

// Rewind seeks r back to its start. Readers that cannot seek fail with an
// UnseekableStreamError.
func Rewind(r io.Reader) error {
	s, ok := r.(io.Seeker)
	if !ok {
		return botoerr.NewUnseekableStreamError(r)
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return nil
}

// LengthReader wraps a response body and enforces its declared length. A
// body that ends short of expected bytes fails the final Read with an
// IncompleteReadError instead of a plain EOF.
type LengthReader struct {
	r        io.Reader
	expected int64
	read     int64
}

// NewLengthReader wraps r, expecting exactly expected bytes before EOF.
func NewLengthReader(r io.Reader, expected int64) *LengthReader {
	return &LengthReader{r: r, expected: expected}
}

func (l *LengthReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if err == io.EOF && l.read < l.expected {
		return n, botoerr.NewIncompleteReadError(l.read, l.expected)
	}
	return n, err
}

// BytesRead reports how many bytes have been consumed so far.
func (l *LengthReader) BytesRead() int64 { return l.read }
