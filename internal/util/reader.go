package util

import (
	"compress/gzip"
	"errors"
	"io"
)

// ErrBodyTooLarge is returned by a PayloadReader once more than its maximum number of bytes has been read.
var ErrBodyTooLarge = errors.New("request body exceeds maximum size")

// PayloadReader is an io.ReadCloser that reads a request body, optionally decompresses it, and enforces
// a size limit.
//
// The limit applies to the uncompressed data, so a small compressed body cannot expand into an
// arbitrarily large one.
type PayloadReader struct {
	maxBytes              int64
	uncompressedBytesRead int64

	wrappedBaseStream *byteCountingReader
	stream            io.Reader
}

// NewReader creates a PayloadReader. A maxBytes of zero or less means no limit.
func NewReader(r io.ReadCloser, isGzipped bool, maxBytes int64) (*PayloadReader, error) {
	baseStream := &byteCountingReader{baseStream: r}
	var s io.Reader = baseStream

	if isGzipped {
		gzipReader, err := gzip.NewReader(s)
		if err != nil {
			return nil, err
		}
		s = gzipReader
	}

	if maxBytes > 0 {
		// one extra byte lets us tell "exactly at the limit" from "over it"
		s = io.LimitReader(s, maxBytes+1)
	}

	return &PayloadReader{
		maxBytes:          maxBytes,
		wrappedBaseStream: baseStream,
		stream:            s,
	}, nil
}

// GetBytesRead returns the total number of bytes read off the original stream.
func (pr *PayloadReader) GetBytesRead() int64 {
	return pr.wrappedBaseStream.bytesRead
}

// GetUncompressedBytesRead returns the number of bytes returned to the caller. This is the same as
// GetBytesRead if the stream is not compressed.
func (pr *PayloadReader) GetUncompressedBytesRead() int64 {
	return pr.uncompressedBytesRead
}

func (pr *PayloadReader) Read(p []byte) (int, error) {
	n, err := pr.stream.Read(p)
	if pr.maxBytes > 0 && pr.uncompressedBytesRead+int64(n) > pr.maxBytes {
		n = int(pr.maxBytes - pr.uncompressedBytesRead)
		pr.uncompressedBytesRead = pr.maxBytes
		_ = pr.Close()
		return n, ErrBodyTooLarge
	}
	pr.uncompressedBytesRead += int64(n)
	return n, err
}

// Close closes the underlying stream.
func (pr *PayloadReader) Close() error {
	if c, ok := pr.wrappedBaseStream.baseStream.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// a simple reader decorator that keeps a running total of bytes
type byteCountingReader struct {
	baseStream io.Reader
	bytesRead  int64
}

func (bt *byteCountingReader) Read(p []byte) (int, error) {
	n, err := bt.baseStream.Read(p)
	bt.bytesRead += int64(n)
	return n, err
}
