// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package form builds multipart/form-data fields as defined by RFC 7578.

Every builder returns a multipart.Part carrying a form-data
content-disposition header, ready to be added to a multipart.Message.

# Text Fields

Simple named values:

	m := multipart.New().
		AddPart(form.TextField("title", "quarterly report"))

# File Fields

File-backed fields stream their body from disk and derive a content type
from the file extension and a filename directive from the path:

	report, err := form.FileField("report", "/tmp/report.pdf")
	if err != nil {
	    return err
	}
	m = m.AddPart(report)

Options override or drop the derived headers:

	form.FileField("report", path,
	    form.WithContentType("application/x-custom"),
	    form.WithoutFilename())

FileContentField applies the same header logic to bytes already in memory,
and ReaderField wraps an arbitrary stream.

# References

  - Form data: https://datatracker.ietf.org/doc/html/rfc7578
  - Content-Disposition: https://datatracker.ietf.org/doc/html/rfc2183
*/
package form
