// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package related packages payload parts for multipart/related messages,
where parts reference each other by Content-ID as in SOAP with
Attachments.

# Payloads

Payload wraps opaque bytes with a generated Content-ID; PayloadWithID
takes a caller-chosen one:

	m := multipart.New().
		AddPart(related.PayloadWithID(envelope, "application/soap+xml", "soap-envelope")).
		AddPart(related.Payload(attachment, "application/octet-stream"))

	contentType := related.ContentType(m, "application/soap+xml", "soap-envelope")

# Content-ID Formats

Content-ID values appear bracketed in headers (<id@domain>) and bare or
cid:-prefixed when referenced from a document. NormalizeID and Bracketed
convert between the forms, and FindByID locates a part in a decoded
message regardless of which form the reference uses.

# References

  - Multipart/related: https://datatracker.ietf.org/doc/html/rfc2387
  - Content-ID and cid URLs: https://datatracker.ietf.org/doc/html/rfc2392
*/
package related
