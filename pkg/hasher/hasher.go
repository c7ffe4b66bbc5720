package hasher

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/dmitrymomot/toolbox/pkg/async"
)

// DefaultAlgorithm is used when New receives an empty name.
const DefaultAlgorithm = "sha1"

var algorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
	"sha3-256": func() hash.Hash {
		return sha3.New256()
	},
	"sha3-512": func() hash.Hash {
		return sha3.New512()
	},
	"blake2b-256": func() hash.Hash {
		h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
		return h
	},
	"blake2b-512": func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	},
}

// Algorithms lists the supported algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Hasher computes seeded digests with a configured default algorithm.
// It holds no mutable state and is safe for concurrent use.
type Hasher struct {
	algorithm string
}

// New returns a Hasher whose default algorithm is algorithm.
func New(algorithm string) (*Hasher, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	algorithm = normalize(algorithm)
	if _, ok := algorithms[algorithm]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
	return &Hasher{algorithm: algorithm}, nil
}

// Algorithm returns the default algorithm name.
func (h *Hasher) Algorithm() string {
	return h.algorithm
}

// SecuredHash digests seedSize random bytes followed by data and returns
// lowercase hex. An optional algorithm overrides the default.
func (h *Hasher) SecuredHash(seedSize int, data string, algorithm ...string) (string, error) {
	if seedSize < 1 {
		return "", ErrInvalidSeedSize
	}

	name := h.algorithm
	if len(algorithm) > 0 && algorithm[0] != "" {
		name = normalize(algorithm[0])
	}
	newHash, ok := algorithms[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}

	seed := make([]byte, seedSize)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerateSeed, err)
	}

	digest := newHash()
	digest.Write(seed)
	digest.Write([]byte(data))
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// HashRequest is the input of SecuredHashAsync.
type HashRequest struct {
	SeedSize  int
	Data      string
	Algorithm string
}

// SecuredHashAsync runs SecuredHash in the background.
func (h *Hasher) SecuredHashAsync(ctx context.Context, req HashRequest) *async.Future[string] {
	return async.Async(ctx, req, func(_ context.Context, r HashRequest) (string, error) {
		return h.SecuredHash(r.SeedSize, r.Data, r.Algorithm)
	})
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "_", "-")
}
