package form

import (
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/sirosfoundation/go-multipart/pkg/multipart"
)

const octetStream = "application/octet-stream"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// TextField builds a form field carrying a string value.
func TextField(name, value string, headers ...multipart.Header) multipart.Part {
	return multipart.NewPart([]byte(value), appendHeaders(headers, disposition(name))...)
}

// ReaderField builds a form field whose body is read lazily from r. The
// resulting part has no known size; see multipart.NewSizedReaderPart when a
// content length is needed.
func ReaderField(name string, r io.Reader, headers ...multipart.Header) multipart.Part {
	return multipart.NewReaderPart(r, appendHeaders(headers, disposition(name))...)
}

// FileField builds a form field streaming its body from the file at path.
// The file is opened immediately and stays open until the part body has
// been consumed or the message is closed.
//
// By default the disposition carries a filename directive with the path's
// base name and a content-type header guessed from the extension, with
// application/octet-stream as the fallback. Options adjust both.
func FileField(name, path string, opts ...FieldOption) (multipart.Part, error) {
	return multipart.NewFilePart(path, fileHeaders(name, path, opts)...)
}

// FileContentField builds a file-style form field whose body is already in
// memory. The path contributes only the filename directive and the content
// type guess; no file I/O happens.
func FileContentField(name, path string, content []byte, opts ...FieldOption) multipart.Part {
	return multipart.NewPart(content, fileHeaders(name, path, opts)...)
}

// FieldOption adjusts the generated headers of a file-backed form field.
type FieldOption func(*fieldSettings)

// WithHeader adds an extra header ahead of the generated ones.
func WithHeader(name, value string) FieldOption {
	return func(s *fieldSettings) {
		s.headers = append(s.headers, multipart.Header{Name: name, Value: value})
	}
}

// WithContentType replaces the extension-derived content type.
func WithContentType(contentType string) FieldOption {
	return func(s *fieldSettings) {
		s.contentType = contentType
		s.omitType = false
	}
}

// WithoutContentType omits the content-type header entirely.
func WithoutContentType() FieldOption {
	return func(s *fieldSettings) {
		s.omitType = true
	}
}

// WithFilename replaces the filename directive derived from the path.
func WithFilename(filename string) FieldOption {
	return func(s *fieldSettings) {
		s.filename = filename
		s.omitFilename = false
	}
}

// WithoutFilename drops the filename directive from the disposition.
func WithoutFilename() FieldOption {
	return func(s *fieldSettings) {
		s.omitFilename = true
	}
}

type fieldSettings struct {
	headers      []multipart.Header
	contentType  string
	omitType     bool
	filename     string
	omitFilename bool
}

// fileHeaders resolves the header set for a file-backed field at path:
// extra headers first, then the disposition, then the content type.
func fileHeaders(name, path string, opts []FieldOption) []multipart.Header {
	settings := fieldSettings{
		contentType: typeByPath(path),
		filename:    filepath.Base(path),
	}
	for _, opt := range opts {
		opt(&settings)
	}

	headers := settings.headers
	if settings.omitFilename {
		headers = append(headers, disposition(name))
	} else {
		headers = append(headers, dispositionWithFilename(name, settings.filename))
	}
	if !settings.omitType {
		headers = append(headers, multipart.Header{Name: "content-type", Value: settings.contentType})
	}
	return headers
}

func disposition(name string) multipart.Header {
	return multipart.Header{
		Name:  "content-disposition",
		Value: `form-data; name="` + escapeQuotes(name) + `"`,
	}
}

func dispositionWithFilename(name, filename string) multipart.Header {
	return multipart.Header{
		Name: "content-disposition",
		Value: `form-data; name="` + escapeQuotes(name) +
			`"; filename="` + escapeQuotes(filename) + `"`,
	}
}

// appendHeaders copies the caller's headers before appending the generated
// ones, so the caller's slice is never written through.
func appendHeaders(caller []multipart.Header, generated ...multipart.Header) []multipart.Header {
	out := make([]multipart.Header, 0, len(caller)+len(generated))
	out = append(out, caller...)
	return append(out, generated...)
}

// escapeQuotes makes a value safe inside a quoted disposition directive.
func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// typeByPath guesses a content type from the path's extension.
func typeByPath(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return octetStream
}
