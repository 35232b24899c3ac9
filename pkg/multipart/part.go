package multipart

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Header is a single name/value pair in a part's header block. Parts keep
// headers as an ordered sequence rather than a map: duplicate names are
// permitted and emission order is insertion order.
type Header struct {
	Name  string
	Value string
}

// Part is one section of a multipart message: an ordered header sequence and
// a body, which is either an owned byte buffer or a reader that produces the
// bytes on demand. A part additionally carries its body's byte length when
// that length is knowable without reading the body.
//
// Parts are built through the constructors in this package (and the field
// builders in pkg/form); the zero Part is an empty owned-bytes body with no
// headers.
type Part struct {
	headers []Header

	// Exactly one body representation is active: reader when non-nil,
	// otherwise the owned content buffer.
	content []byte
	reader  io.Reader

	size  int64
	sized bool
}

// NewPart creates a part whose body is the given byte buffer. The part's
// content length is len(data). The buffer is retained, not copied; callers
// must not modify it afterwards.
func NewPart(data []byte, headers ...Header) Part {
	return Part{
		headers: headers,
		content: data,
		size:    int64(len(data)),
		sized:   true,
	}
}

// NewFilePart creates a part that streams the contents of the file at path.
// The file's size is taken from its metadata, so the part has a known content
// length without the file being read; the bytes themselves are pulled from
// the open file during serialization, untranslated.
//
// The returned part holds the file open. Close the message it is added to
// (or the part's body) once serialization is done.
func NewFilePart(path string, headers ...Header) (Part, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Part{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return Part{}, fmt.Errorf("failed to create file part: %q is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Part{}, fmt.Errorf("failed to open file: %w", err)
	}

	return Part{
		headers: headers,
		reader:  f,
		size:    info.Size(),
		sized:   true,
	}, nil
}

// NewReaderPart creates a part whose body is produced by r. The content
// length is unknown, so a message containing the part has no computable
// total length; use [NewSizedReaderPart] when the length is known up front.
//
// The reader is consumed at most once, by the first serialization pass that
// reaches it. Re-serializing a message after its reader parts have been
// drained yields empty bodies for those parts.
func NewReaderPart(r io.Reader, headers ...Header) Part {
	return Part{
		headers: headers,
		reader:  r,
	}
}

// NewSizedReaderPart is [NewReaderPart] for a reader whose byte length the
// caller knows ahead of time, for example from a Content-Length header. The
// caller asserts that r yields exactly size bytes; [Message.ContentLength]
// and the serialized framing disagree when it does not.
func NewSizedReaderPart(r io.Reader, size int64, headers ...Header) Part {
	return Part{
		headers: headers,
		reader:  r,
		size:    size,
		sized:   true,
	}
}

// Headers returns the part's headers in emission order. The slice is shared
// with the part; callers must not modify it.
func (p Part) Headers() []Header {
	return p.headers
}

// Size returns the part's body length in bytes, and whether that length is
// known without reading the body.
func (p Part) Size() (int64, bool) {
	return p.size, p.sized
}

// Content returns the part's owned body buffer, or nil when the body is a
// reader. Decoded parts always carry owned buffers.
func (p Part) Content() []byte {
	return p.content
}

// Body returns a reader over the part's body bytes. For owned-bytes parts
// each call returns a fresh reader; for reader parts it returns the
// underlying single-use reader.
func (p Part) Body() io.Reader {
	if p.reader != nil {
		return p.reader
	}
	return bytes.NewReader(p.content)
}
