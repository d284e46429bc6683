package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Generator creates opaque public IDs for leagues, events, and entries.
// Public IDs are what leaves the API; database serial keys never do.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// NewShortCode returns a human-typable code of n characters drawn uniformly
// from alphabet, for invite codes members share out of band.
func NewShortCode(alphabet string, n int) (string, error) {
	if alphabet == "" || n < 1 {
		return "", fmt.Errorf("short code alphabet and length are required")
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	code := make([]byte, n)
	for i, b := range buf {
		code[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(code), nil
}
