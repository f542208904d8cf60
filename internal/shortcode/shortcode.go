// Package shortcode generates random short codes for URL mappings.
package shortcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/vadimbarashkov/short-url/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// DefaultLength is the number of characters in a generated code.
	DefaultLength = 7
	// DefaultCharset is the upper, lower and digit alphabet.
	DefaultCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// maxNanoidAlphabet is the largest alphabet gonanoid accepts.
	maxNanoidAlphabet = 255
)

// Generator produces fixed-length codes drawn from a charset.
// It keeps no state between calls and is safe for concurrent use.
type Generator struct {
	length  int
	charset string
}

// New returns a Generator. Zero values fall back to the defaults.
func New(length int, charset string) *Generator {
	if length == 0 {
		length = DefaultLength
	}
	if charset == "" {
		charset = DefaultCharset
	}

	return &Generator{
		length:  length,
		charset: charset,
	}
}

// Generate returns a new random code.
func (g *Generator) Generate() (string, error) {
	return Generate(g.length, g.charset)
}

// Generate returns a random string of length characters taken from charset.
// Bytes come from crypto/rand and out-of-range values are rejected, so every
// character of charset is equally likely at any charset size.
func Generate(length int, charset string) (string, error) {
	const op = "shortcode.Generate"

	if length <= 0 {
		return "", fmt.Errorf("%s: length must be a positive integer: %w", op, entity.ErrInvalidArgument)
	}
	if charset == "" {
		return "", fmt.Errorf("%s: charset must not be empty: %w", op, entity.ErrInvalidArgument)
	}

	if utf8.RuneCountInString(charset) > maxNanoidAlphabet {
		code, err := generateLarge(length, []rune(charset))
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		return code, nil
	}

	code, err := gonanoid.Generate(charset, length)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidArgument, err)
	}

	return code, nil
}

// generateLarge serves alphabets gonanoid rejects. rand.Int samples
// uniformly below its bound.
func generateLarge(length int, alphabet []rune) (string, error) {
	bound := big.NewInt(int64(len(alphabet)))

	var b strings.Builder
	b.Grow(length)

	for range length {
		n, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		b.WriteRune(alphabet[n.Int64()])
	}

	return b.String(), nil
}
