package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
)

// Reader hashes everything read through it with SHA-256.
// A Reader is not safe for concurrent use.
type Reader struct {
	r io.Reader
	h hash.Hash
	n int64
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, h: sha256.New()}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.h.Write(p[:n])
		r.n += int64(n)
	}
	return n, err
}

// Drain reads the rest of the input so Sum covers the whole content.
func (r *Reader) Drain() error {
	_, err := io.Copy(io.Discard, r)
	return err
}

// Sum returns the hex SHA-256 of the bytes read so far.
func (r *Reader) Sum() string {
	return hex.EncodeToString(r.h.Sum(nil))
}

// BytesRead returns the number of bytes read so far.
func (r *Reader) BytesRead() int64 {
	return r.n
}

// Bytes returns the hex SHA-256 of content.
func Bytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
