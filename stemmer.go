// Package porter reduces English words to their stems with the Porter
// suffix-stripping algorithm.
package porter

import (
	"errors"
	"fmt"

	"github.com/oarkflow/porter/lib"
)

// ErrInvalidInput is returned for words containing non-ASCII characters.
var ErrInvalidInput = errors.New("invalid input")

// Stem lowercases and trims word and returns its stem. Words of two bytes or
// fewer after trimming are returned as they are.
func Stem(word string) (string, error) {
	stemmed, err := StemBytes(lib.ToByte(word))
	if err != nil {
		return "", err
	}
	return lib.FromByte(stemmed), nil
}

// StemBytes is Stem for byte slices. The input is never modified and the
// returned slice does not alias it.
func StemBytes(word []byte) ([]byte, error) {
	body, err := Normalize(word)
	if err != nil {
		return nil, err
	}
	if len(body) > 2 {
		return step5b(step5a(step4(step3(step2(step1c(step1b(step1a(body)))))))), nil
	}
	return body, nil
}

// Normalize rejects non-ASCII input, then lowercases and trims word. The
// result is a fresh slice.
func Normalize(word []byte) ([]byte, error) {
	if i, r := lib.IndexNonASCII(word); i >= 0 {
		return nil, fmt.Errorf("%w: non-ASCII character %q at offset %d", ErrInvalidInput, r, i)
	}
	return lib.TrimSpace(lib.ToLowerBytes(word)), nil
}

// MustStem is like Stem but panics on invalid input.
func MustStem(word string) string {
	stemmed, err := Stem(word)
	if err != nil {
		panic(err)
	}
	return stemmed
}
