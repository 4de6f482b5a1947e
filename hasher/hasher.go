// Package hasher computes checksums of streamed content so downloads can be
// verified against the digests Files.com reports.
package hasher

import (
	"crypto/md5" //nolint:gosec // md5 is what Files.com reports, not used for security
	"encoding/hex"
	"hash"
	"hash/crc32"
	"io"
	"strings"
)

// Expected holds the checksums Files.com reported for a file. Either may be empty.
type Expected struct {
	MD5   string
	CRC32 string
}

// Digest accumulates md5 and crc32 of everything written to it.
type Digest struct {
	md5   hash.Hash
	crc32 hash.Hash32
	w     io.Writer
}

// New creates an empty Digest.
func New() *Digest {
	d := &Digest{
		md5:   md5.New(), //nolint:gosec // see import
		crc32: crc32.NewIEEE(),
	}
	d.w = io.MultiWriter(d.md5, d.crc32)
	return d
}

// Write implements io.Writer. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// MD5 returns the lowercase hex md5 of the bytes written so far.
func (d *Digest) MD5() string {
	return hex.EncodeToString(d.md5.Sum(nil))
}

// CRC32 returns the lowercase hex IEEE crc32 of the bytes written so far.
func (d *Digest) CRC32() string {
	return hex.EncodeToString(d.crc32.Sum(nil))
}

// MatchesMD5 reports whether want equals the computed md5.
// An empty want matches anything, since Files.com omits md5 for some files.
func (d *Digest) MatchesMD5(want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(want, d.MD5())
}

// MatchesCRC32 reports whether want equals the computed crc32.
// An empty want matches anything.
func (d *Digest) MatchesCRC32(want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(want, d.CRC32())
}

// Matches checks md5 when Files.com reported one and falls back to crc32 otherwise.
func (d *Digest) Matches(want Expected) bool {
	if want.MD5 != "" {
		return d.MatchesMD5(want.MD5)
	}
	return d.MatchesCRC32(want.CRC32)
}
