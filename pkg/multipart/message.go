package multipart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Message is an ordered sequence of parts framed by a boundary token. The
// zero Message has an empty boundary; use [New] or [NewWithBoundary].
//
// A Message is a value: [Message.AddPart] returns a new Message and never
// mutates its receiver, so several messages grown from a common prefix can
// be serialized independently. There is no way to remove or reorder parts.
type Message struct {
	boundary string
	parts    []Part
}

// New creates an empty message with a generated boundary token. The token is
// 16 bytes of cryptographic randomness, hex encoded and wrapped in "==" pads,
// so collisions with part content are not a practical concern.
func New() Message {
	return Message{boundary: randomBoundary()}
}

// NewWithBoundary creates an empty message framed by the given boundary
// token. The token is used verbatim: it must not contain double quotes (see
// [Message.ContentType]) and must not occur inside any part's framed bytes.
// [ValidateBoundary] checks the RFC 2046 token rules when wanted.
func NewWithBoundary(boundary string) Message {
	return Message{boundary: boundary}
}

// Boundary returns the message's boundary token.
func (m Message) Boundary() string {
	return m.boundary
}

// Parts returns the message's parts in emission order. The slice is shared
// with the message; callers must not modify it.
func (m Message) Parts() []Part {
	return m.parts
}

// AddPart returns a new message with part appended after the receiver's
// parts. The receiver is unchanged; callers chain the result:
//
//	m := multipart.New().
//		AddPart(form.TextField("field1", "value1")).
//		AddPart(form.TextField("field2", "value2"))
func (m Message) AddPart(part Part) Message {
	parts := make([]Part, len(m.parts), len(m.parts)+1)
	copy(parts, m.parts)
	m.parts = append(parts, part)
	return m
}

// BodyStream returns a reader over the serialized message body. For each
// part in order it yields the part delimiter, the header lines, a blank
// line, and the part's body bytes; after the last part it yields the final
// delimiter. Bodies are pulled on demand, so a message holding file or
// reader parts streams without being materialized.
//
// The stream is restartable only if every part's body is restartable:
// owned-bytes parts always are, reader parts generally are not. A second
// call after reader parts have been drained produces a body with those
// parts empty.
func (m Message) BodyStream() io.Reader {
	readers := make([]io.Reader, 0, len(m.parts)*3+1)
	delimiter := partDelimiter(m.boundary)
	for i := range m.parts {
		readers = append(readers,
			bytes.NewReader(delimiter),
			bytes.NewReader(headerBlock(m.parts[i].headers)),
			m.parts[i].Body(),
		)
	}
	readers = append(readers, bytes.NewReader(finalDelimiter(m.boundary)))
	return io.MultiReader(readers...)
}

// BodyBinary materializes [Message.BodyStream] into a single buffer. Read
// errors from file or reader part bodies are returned unchanged in kind. A
// message with no parts serializes to exactly the final delimiter.
func (m Message) BodyBinary() ([]byte, error) {
	body, err := io.ReadAll(m.BodyStream())
	if err != nil {
		return nil, fmt.Errorf("failed to read body stream: %w", err)
	}
	return body, nil
}

// ContentType returns the Content-Type header value announcing this
// message's boundary, for example
//
//	multipart/form-data; boundary="==b0a99c31...=="
//
// The boundary is not escaped; boundary tokens must not contain double
// quotes.
func (m Message) ContentType(mimeType string) string {
	return mimeType + `; boundary="` + m.boundary + `"`
}

// FormDataContentType returns the Content-Type header value for a
// multipart/form-data message with this boundary.
func (m Message) FormDataContentType() string {
	return m.ContentType("multipart/form-data")
}

// ContentLength computes the total serialized body length without reading
// any part's body, from each part's known content length plus the byte
// length of its framing. It fails with an [UnknownLengthError] naming the
// first part whose length is unknown (a plain reader part).
//
// Computing the length up front lets callers emit a Content-Length header
// and then stream a large body instead of buffering it.
func (m Message) ContentLength() (int64, error) {
	delimiterLen := int64(len(partDelimiter(m.boundary)))
	var total int64
	for i := range m.parts {
		size, sized := m.parts[i].Size()
		if !sized {
			return 0, &UnknownLengthError{Part: i}
		}
		total += delimiterLen + int64(len(headerBlock(m.parts[i].headers))) + size
	}
	return total + int64(len(finalDelimiter(m.boundary))), nil
}

// Close closes every part body that implements io.Closer, such as the open
// files behind [NewFilePart], and joins any failures into one error. Parts
// with owned-bytes bodies are untouched.
func (m Message) Close() error {
	var errs []error
	for i := range m.parts {
		if c, ok := m.parts[i].reader.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close part %d body: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// headerBlock serializes a part's header lines plus the blank line that
// terminates the block. Headers are emitted in stored order, duplicates and
// all.
func headerBlock(headers []Header) []byte {
	var b bytes.Buffer
	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h.Name, h.Value)
	}
	b.WriteString("\r\n")
	return b.Bytes()
}
