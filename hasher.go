package hashring

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

// Hasher is responsible for generating a signed, 32-bit hash of provided
// byte slice. It must be deterministic and should spread small input changes
// across the whole output range, otherwise members get uneven load.
type Hasher interface {
	Hash32(data []byte) int32
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(data []byte) int32

// Hash32 calls f(data).
func (f HasherFunc) Hash32(data []byte) int32 {
	return f(data)
}

// DefaultHasher takes the leading 4 bytes of the SHA-1 digest.
var DefaultHasher Hasher = DigestHasher(sha1.New)

type digestHasher struct {
	newHash func() hash.Hash
}

// DigestHasher returns a Hasher which reads the first 4 bytes of the digest
// produced by newHash as a big-endian signed integer.
func DigestHasher(newHash func() hash.Hash) Hasher {
	return digestHasher{newHash: newHash}
}

func (d digestHasher) Hash32(data []byte) int32 {
	h := d.newHash()
	h.Write(data)
	return int32(binary.BigEndian.Uint32(h.Sum(nil)))
}

// XXHasher hashes with xxhash64 and keeps the high 32 bits, which are the
// leading bytes of its big-endian digest.
type XXHasher struct{}

// Hash32 returns the high 32 bits of xxhash64(data).
func (XXHasher) Hash32(data []byte) int32 {
	return int32(uint32(xxhash.Sum64(data) >> 32))
}

// Murmur3Hasher hashes with 32-bit x86 murmur3.
type Murmur3Hasher struct{}

// Hash32 returns murmur3 x86 32-bit of data with seed 0.
func (Murmur3Hasher) Hash32(data []byte) int32 {
	// murmur3.Sum32 reads the input through unsafe pointer arithmetic that
	// checkptr rejects under -race; the streaming digest does not.
	h := murmur3.New32()
	h.Write(data)
	return int32(h.Sum32())
}

// HasherByName returns a Hasher for one of the names sha1, md5, sha256,
// sha512, xxhash or murmur3.
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "sha1":
		return DefaultHasher, nil
	case "md5":
		return DigestHasher(md5.New), nil
	case "sha256":
		return DigestHasher(sha256.New), nil
	case "sha512":
		return DigestHasher(sha512.New), nil
	case "xxhash":
		return XXHasher{}, nil
	case "murmur3":
		return Murmur3Hasher{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
}
