package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of data.
//
// Digests are used to verify codec round trips without keeping a second copy of
// large inputs around.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 digest over data written in pieces.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty streaming digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the digest. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

// Sum64 returns the digest of all bytes written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
