package multipart

import (
	"bytes"
	"io"
	"mime"
	stdmultipart "mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyBinary_StdlibReaderCompatible(t *testing.T) {
	m := NewWithBoundary(testBoundary).
		AddPart(NewPart([]byte("alpha value"),
			Header{Name: "content-disposition", Value: `form-data; name="alpha"`},
		)).
		AddPart(NewPart([]byte{0x00, 0x01, 0x02},
			Header{Name: "content-disposition", Value: `form-data; name="blob"; filename="blob.bin"`},
			Header{Name: "content-type", Value: "application/octet-stream"},
		))

	body, err := m.BodyBinary()
	require.NoError(t, err)

	// The leading CRLF reads as an empty preamble to the standard library.
	r := stdmultipart.NewReader(bytes.NewReader(body), testBoundary)

	first, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "alpha", first.FormName())
	content, err := io.ReadAll(first)
	require.NoError(t, err)
	assert.Equal(t, "alpha value", string(content))

	second, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "blob", second.FormName())
	assert.Equal(t, "blob.bin", second.FileName())
	content, err = io.ReadAll(second)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, content)

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecode_StdlibWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	w := stdmultipart.NewWriter(&buf)
	require.NoError(t, w.SetBoundary(testBoundary))
	require.NoError(t, w.WriteField("alpha", "first value"))
	require.NoError(t, w.WriteField("beta", "second value"))
	require.NoError(t, w.Close())

	// The standard library starts the first delimiter without a leading
	// CRLF, so one is prepended to line the framing up.
	input := append([]byte("\r\n"), buf.Bytes()...)

	m, err := Decode(testBoundary, input)
	require.NoError(t, err)

	require.Len(t, m.Parts(), 2)
	assert.Equal(t, []Header{
		{Name: "Content-Disposition", Value: `form-data; name="alpha"`},
	}, m.Parts()[0].Headers())
	assert.Equal(t, []byte("first value"), m.Parts()[0].Content())
	assert.Equal(t, []byte("second value"), m.Parts()[1].Content())
}

func TestMessage_ContentType_ParseMediaType(t *testing.T) {
	m := New()

	mediaType, params, err := mime.ParseMediaType(m.FormDataContentType())
	require.NoError(t, err)

	assert.Equal(t, "multipart/form-data", mediaType)
	assert.Equal(t, m.Boundary(), params["boundary"])
}
