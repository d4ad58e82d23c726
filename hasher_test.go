package hashring

import (
	"crypto/md5"
	"crypto/sha256"
	"hash"
	"testing"

	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHasher(t *testing.T) {
	// Leading 4 bytes of SHA-1, big-endian signed.
	assert.Equal(t, int32(-1449574858), DefaultHasher.Hash32([]byte("abc")))
	assert.Equal(t, int32(-633756690), DefaultHasher.Hash32(nil))
	assert.Equal(t, int32(-1426799075), DefaultHasher.Hash32([]byte("hello")))
}

func TestDigestHasher(t *testing.T) {
	assert.Equal(t, int32(-1878962024), DigestHasher(md5.New).Hash32([]byte("abc")))
	assert.Equal(t, int32(1564557354), DigestHasher(md5.New).Hash32([]byte("hello")))
	assert.Equal(t, int32(-1166534977), DigestHasher(sha256.New).Hash32([]byte("abc")))
	assert.Equal(t, int32(754077114), DigestHasher(sha256.New).Hash32([]byte("hello")))
}

func TestXXHasher_MatchesDigest(t *testing.T) {
	digest := DigestHasher(func() hash.Hash { return xxhash.New() })
	for _, in := range []string{"", "a", "abc", "key\x001", "some longer input for xxhash"} {
		assert.Equal(t, digest.Hash32([]byte(in)), XXHasher{}.Hash32([]byte(in)), "input %q", in)
	}
}

func TestMurmur3Hasher_MatchesDigest(t *testing.T) {
	digest := DigestHasher(func() hash.Hash { return murmur3.New32() })
	for _, in := range []string{"", "a", "abc", "key\x001", "some longer input for murmur3"} {
		assert.Equal(t, digest.Hash32([]byte(in)), Murmur3Hasher{}.Hash32([]byte(in)), "input %q", in)
	}
}

func TestMurmur3Hasher_KnownValues(t *testing.T) {
	cases := map[string]int32{
		"":         0,
		"a":        1009084850,
		"abc":      -1277324294,
		"hello":    613153351,
		"key\x001": 485648604,
		"a\x001xy": 1712657318,
	}
	for in, want := range cases {
		assert.Equal(t, want, Murmur3Hasher{}.Hash32([]byte(in)), "input %q", in)
	}
}

func TestMurmur3Hasher_Subslices(t *testing.T) {
	// Inputs that start and end mid-buffer, with every tail length.
	buf := []byte("0123456789abcdefghijklmnopqrstuvwxyz\x00member\x0017")
	digest := DigestHasher(func() hash.Hash { return murmur3.New32() })
	for start := 0; start < 5; start++ {
		for end := start; end <= len(buf); end++ {
			in := buf[start:end]
			assert.Equal(t, digest.Hash32(in), Murmur3Hasher{}.Hash32(in), "input %q", in)
		}
	}
}

func TestHasherFunc(t *testing.T) {
	h := HasherFunc(func(data []byte) int32 { return int32(len(data)) })
	assert.Equal(t, int32(3), h.Hash32([]byte("abc")))
}

func TestHasherByName(t *testing.T) {
	for _, name := range []string{"sha1", "md5", "sha256", "sha512", "xxhash", "murmur3"} {
		t.Run(name, func(t *testing.T) {
			h, err := HasherByName(name)
			require.NoError(t, err)
			require.NotNil(t, h)

			// Every supported hasher spreads members evenly at a high base weight.
			r, err := New([]StringMember{"a", "b", "c"}, Config{Hasher: h, BaseWeight: 1000})
			require.NoError(t, err)
			for key, share := range r.LoadDistribution() {
				assert.InDelta(t, 1.0/3, share, 0.05, "member %s", key)
			}
		})
	}

	h, err := HasherByName("sha1")
	require.NoError(t, err)
	assert.Equal(t, DefaultHasher.Hash32([]byte("abc")), h.Hash32([]byte("abc")))

	_, err = HasherByName("crc32")
	assert.ErrorIs(t, err, ErrUnknownHasher)
}

func TestErrInvalidArgument(t *testing.T) {
	r, err := New([]StringMember{"a"}, Config{})
	require.NoError(t, err)
	assert.ErrorIs(t, r.AddWeighted("b", -1), ErrInvalidArgument)

	_, err = New([]StringMember{"a"}, Config{BaseWeight: -5})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
