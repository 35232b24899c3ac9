package multipart

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// partDelimiter returns the byte sequence that precedes every part framed
// with the given boundary token.
func partDelimiter(boundary string) []byte {
	return []byte("\r\n--" + boundary + "\r\n")
}

// finalDelimiter returns the byte sequence that terminates a message framed
// with the given boundary token.
func finalDelimiter(boundary string) []byte {
	return []byte("\r\n--" + boundary + "--\r\n")
}

// randomBoundary generates a boundary token: 16 bytes of cryptographic
// randomness, hex encoded, wrapped in a fixed "==" pad. Every character is
// inside the RFC 2046 boundary set.
func randomBoundary() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return "==" + hex.EncodeToString(buf[:]) + "=="
}

// ValidateBoundary reports whether boundary is usable as an RFC 2046
// section 5.1.1 boundary token: between 1 and 70 characters drawn from the
// bchars set, not ending in a space.
//
// Validation is advisory. [NewWithBoundary] accepts any token and trusts the
// caller; tokens produced by [New] always validate.
func ValidateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 70 {
		return errors.New("invalid boundary length, must be 1 to 70 characters")
	}
	if strings.HasSuffix(boundary, " ") {
		return errors.New("boundary must not end with a space")
	}
	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?', ' ':
			continue
		}
		return fmt.Errorf("invalid boundary character %q", b)
	}
	return nil
}
