// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package multipart builds and parses multipart message bodies.

This package implements the RFC 2046 multipart framing used for HTTP
request and email bodies: an ordered sequence of parts, each with its own
header block and body, separated by boundary delimiters. Messages serialize
as a stream, so file-backed and reader-backed parts never need to be held
in memory, and the total body length is computable up front from part
metadata alone.

# Wire Format

Every part is preceded by a part delimiter and the message ends with a
final delimiter (CR LF shown as line breaks):

	--<boundary>
	name: value
	name: value

	<body bytes>
	--<boundary>--

Byte-exactly, the part delimiter is CRLF "--" boundary CRLF and the final
delimiter is CRLF "--" boundary "--" CRLF, so the serialized body begins
with a CRLF. Header lines are `name ": " value CRLF` and a bare CRLF ends
the header block.

# Building Messages

Messages are values; AddPart returns a new message:

	m := multipart.New().
		AddPart(multipart.NewPart([]byte("hello"))).
		AddPart(filePart)

	length, err := m.ContentLength()
	contentType := m.ContentType("multipart/form-data")
	body := m.BodyStream()

BodyStream pulls part bodies on demand. ContentLength never reads a body:
it needs every part to know its own length, which owned-bytes and file
parts always do.

# Parsing Messages

Decode is the inverse of BodyBinary for a known boundary token:

	m, err := multipart.Decode(boundary, body)
	for _, part := range m.Parts() {
		_ = part.Headers()
		_ = part.Content()
	}

Decoding operates on a fully buffered body and either succeeds completely
or fails with ErrMalformedInput. It does not interpret header semantics,
transfer encodings, charsets, or nested multipart content.

# References

  - MIME Multipart: https://datatracker.ietf.org/doc/html/rfc2046
  - multipart/form-data: https://datatracker.ietf.org/doc/html/rfc7578
*/
package multipart
