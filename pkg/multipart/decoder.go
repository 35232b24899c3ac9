package multipart

import (
	"bytes"
	"fmt"
)

var (
	crlf     = []byte("\r\n")
	dashes   = []byte("--")
	nlDashes = []byte("\r\n--")
)

// Decode parses a complete serialized message body framed by the given
// boundary token, recovering each part's headers and body. Decoded parts
// own their body buffers and always have a known content length, whatever
// kind of body they were encoded from.
//
// The input must carry the framing produced by [Message.BodyStream]: it
// begins with the CRLF that leads the first part delimiter. Bytes after the
// final delimiter are ignored. Any structural mismatch fails the whole
// decode with an error matching [ErrMalformedInput]; there are no partial
// results.
//
// As inherent in RFC 2046 framing, a body that itself contains CRLF "--"
// followed by the boundary token is indistinguishable from a delimiter and
// will be mis-framed; choose boundary tokens that cannot collide with part
// content (generated tokens make this vanishingly unlikely).
func Decode(boundary string, data []byte) (Message, error) {
	d := &decoder{
		data:      data,
		rest:      data,
		delimiter: []byte("--" + boundary),
	}

	if !bytes.HasPrefix(d.rest, crlf) {
		return Message{}, d.malformed("input does not begin with CRLF")
	}
	d.rest = d.rest[len(crlf):]

	parts, err := d.parseParts()
	if err != nil {
		return Message{}, err
	}
	return Message{boundary: boundary, parts: parts}, nil
}

// decoder is a cursor over the input buffer. rest is the unconsumed tail of
// data; the distance between them is the cursor position reported in errors.
type decoder struct {
	data      []byte
	rest      []byte
	delimiter []byte // "--" + boundary, the tail of both delimiter forms
}

func (d *decoder) malformed(reason string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformedInput, reason, len(d.data)-len(d.rest))
}

// parseParts consumes one "--boundary" token per iteration. Trailing "--"
// completes the message, trailing CRLF opens another part, anything else is
// malformed. Bytes after the final "--" are ignored, including its own CRLF.
func (d *decoder) parseParts() ([]Part, error) {
	var parts []Part
	for {
		if !bytes.HasPrefix(d.rest, d.delimiter) {
			return nil, d.malformed("expected boundary delimiter")
		}
		d.rest = d.rest[len(d.delimiter):]

		switch {
		case bytes.HasPrefix(d.rest, dashes):
			return parts, nil
		case bytes.HasPrefix(d.rest, crlf):
			d.rest = d.rest[len(crlf):]
			part, err := d.parsePart()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		default:
			return nil, d.malformed("unexpected bytes after boundary delimiter")
		}
	}
}

func (d *decoder) parsePart() (Part, error) {
	headers, err := d.parseHeaders()
	if err != nil {
		return Part{}, err
	}
	body, err := d.parseBody()
	if err != nil {
		return Part{}, err
	}
	return NewPart(body, headers...), nil
}

// parseHeaders consumes "name: value" lines in encounter order until the
// blank line that terminates the header block. The name/value split is the
// first ": " in the line.
func (d *decoder) parseHeaders() ([]Header, error) {
	var headers []Header
	for {
		if bytes.HasPrefix(d.rest, crlf) {
			d.rest = d.rest[len(crlf):]
			return headers, nil
		}

		nl := bytes.Index(d.rest, crlf)
		if nl < 0 {
			return nil, d.malformed("unterminated header block")
		}
		line := d.rest[:nl]

		sep := bytes.Index(line, []byte(": "))
		if sep < 0 {
			return nil, d.malformed("header line missing separator")
		}
		headers = append(headers, Header{
			Name:  string(line[:sep]),
			Value: string(line[sep+len(": "):]),
		})
		d.rest = d.rest[nl+len(crlf):]
	}
}

// parseBody collects body bytes up to the next CRLF "--" marker and leaves
// the cursor on the "--", which begins the delimiter that follows every
// body. The body bytes are copied out of the input buffer so the decoded
// part owns them.
func (d *decoder) parseBody() ([]byte, error) {
	end := bytes.Index(d.rest, nlDashes)
	if end < 0 {
		return nil, d.malformed("unterminated part body")
	}
	body := bytes.Clone(d.rest[:end])
	d.rest = d.rest[end+len(crlf):]
	return body, nil
}
