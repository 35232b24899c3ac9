package multipart

import (
	"errors"
	"fmt"
)

// Sentinel errors for decoding failures.
var (
	// ErrMalformedInput indicates the input handed to [Decode] does not match
	// the multipart framing for the given boundary: a missing delimiter, a
	// header line without a separator, or a header block or body with no
	// terminating marker. Decoding is all-or-nothing; no partial message is
	// ever returned alongside this error.
	ErrMalformedInput = errors.New("malformed multipart input")
)

// UnknownLengthError is returned by [Message.ContentLength] when a part's
// byte length is not known without reading its body. Part is the zero-based
// position of the first such part in the message.
type UnknownLengthError struct {
	Part int
}

func (e *UnknownLengthError) Error() string {
	return fmt.Sprintf("part %d has no known content length", e.Part)
}
