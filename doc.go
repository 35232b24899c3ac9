// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gomultipart builds, measures and parses RFC 2046 multipart
message bodies.

# Overview

go-multipart is a small, transport-agnostic library for composing
multipart bodies part by part, streaming them out without buffering,
computing their exact content length up front, and decoding buffered
bodies back into parts. It handles framing only: part bodies are opaque
bytes, and what their headers mean is the caller's business.

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-multipart/pkg/multipart - Core model: parts, messages, encoding, decoding
	github.com/sirosfoundation/go-multipart/pkg/form      - multipart/form-data field builders (RFC 7578)
	github.com/sirosfoundation/go-multipart/pkg/related   - Content-ID payload parts for multipart/related

# Quick Start

To upload a form with a file:

	import (
	    "github.com/sirosfoundation/go-multipart/pkg/form"
	    "github.com/sirosfoundation/go-multipart/pkg/multipart"
	)

	report, err := form.FileField("report", "/tmp/report.pdf")
	if err != nil {
	    return err
	}
	m := multipart.New().
	    AddPart(form.TextField("title", "quarterly report")).
	    AddPart(report)
	defer m.Close()

	length, err := m.ContentLength()
	if err != nil {
	    return err
	}

	req, _ := http.NewRequest(http.MethodPost, url, m.BodyStream())
	req.Header.Set("Content-Type", m.FormDataContentType())
	req.ContentLength = length

To decode a buffered body:

	decoded, err := multipart.Decode(boundary, body)
	for _, part := range decoded.Parts() {
	    // part.Headers(), part.Content()
	}

# Interoperability

The bodies this library emits parse with Go's mime/multipart reader and
with common HTTP server frameworks; see the interop tests under
pkg/multipart for the exact guarantees.

# References

  - MIME multipart: https://datatracker.ietf.org/doc/html/rfc2046
  - multipart/form-data: https://datatracker.ietf.org/doc/html/rfc7578

# License

BSD-2-Clause License
*/
package gomultipart
