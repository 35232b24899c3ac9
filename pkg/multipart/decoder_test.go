package multipart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := "\r\n--==testboundary==\r\n\r\nhi" +
		"\r\n--==testboundary==--\r\n"

	m, err := Decode(testBoundary, []byte(input))
	require.NoError(t, err)

	assert.Equal(t, testBoundary, m.Boundary())
	require.Len(t, m.Parts(), 1)

	part := m.Parts()[0]
	assert.Empty(t, part.Headers())
	assert.Equal(t, []byte("hi"), part.Content())

	size, sized := part.Size()
	assert.True(t, sized)
	assert.Equal(t, int64(2), size)
}

func TestDecode_Empty(t *testing.T) {
	m, err := Decode(testBoundary, []byte("\r\n--==testboundary==--\r\n"))
	require.NoError(t, err)

	assert.Equal(t, testBoundary, m.Boundary())
	assert.Empty(t, m.Parts())
}

func TestDecode_RoundTrip(t *testing.T) {
	original := NewWithBoundary(testBoundary).
		AddPart(NewPart([]byte("first body"),
			Header{Name: "content-type", Value: "text/plain"},
			Header{Name: "x-custom", Value: "one"},
			Header{Name: "x-custom", Value: "two"},
		)).
		AddPart(NewPart(nil)).
		AddPart(NewPart([]byte("third body")))

	body, err := original.BodyBinary()
	require.NoError(t, err)

	decoded, err := Decode(testBoundary, body)
	require.NoError(t, err)

	require.Len(t, decoded.Parts(), 3)
	for i, want := range original.Parts() {
		got := decoded.Parts()[i]
		assert.Equal(t, want.Headers(), got.Headers(), "part %d headers", i)
		assert.Equal(t, want.Content(), got.Content(), "part %d body", i)
	}
}

func TestDecode_RegainsLength(t *testing.T) {
	streamed := NewWithBoundary(testBoundary).
		AddPart(NewReaderPart(strings.NewReader("streamed body")))

	_, err := streamed.ContentLength()
	require.Error(t, err)

	body, err := streamed.BodyBinary()
	require.NoError(t, err)

	decoded, err := Decode(testBoundary, body)
	require.NoError(t, err)

	// Decoded parts own their bytes, so the length is known again.
	length, err := decoded.ContentLength()
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), length)
}

func TestDecode_HeaderValueWithSeparator(t *testing.T) {
	input := "\r\n--==testboundary==\r\n" +
		"content-type: multipart/related; type=\"application/soap+xml\"\r\n" +
		"\r\n" +
		"body" +
		"\r\n--==testboundary==--\r\n"

	m, err := Decode(testBoundary, []byte(input))
	require.NoError(t, err)

	require.Len(t, m.Parts(), 1)
	headers := m.Parts()[0].Headers()
	require.Len(t, headers, 1)

	// Only the first ": " splits the line.
	assert.Equal(t, "content-type", headers[0].Name)
	assert.Equal(t, `multipart/related; type="application/soap+xml"`, headers[0].Value)
}

func TestDecode_TrailingBytesIgnored(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "no trailing crlf",
			input: "\r\n--==testboundary==\r\n\r\nhi\r\n--==testboundary==--",
		},
		{
			name:  "epilogue after final delimiter",
			input: "\r\n--==testboundary==\r\n\r\nhi\r\n--==testboundary==--\r\nepilogue bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(testBoundary, []byte(tt.input))
			require.NoError(t, err)

			require.Len(t, m.Parts(), 1)
			assert.Equal(t, []byte("hi"), m.Parts()[0].Content())
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "missing leading crlf",
			input: "--==testboundary==\r\nbad-header-line\r\n\r\nbody\r\n--==testboundary==--\r\n",
		},
		{
			name:  "wrong boundary",
			input: "\r\n--==other==\r\n\r\nhi\r\n--==other==--\r\n",
		},
		{
			name:  "truncated after delimiter",
			input: "\r\n--==testboundary==",
		},
		{
			name:  "garbage after delimiter",
			input: "\r\n--==testboundary==;oops\r\n\r\nhi\r\n--==testboundary==--\r\n",
		},
		{
			name:  "header line missing separator",
			input: "\r\n--==testboundary==\r\nbad-header-line\r\n\r\nbody\r\n--==testboundary==--\r\n",
		},
		{
			name:  "unterminated header block",
			input: "\r\n--==testboundary==\r\ncontent-type: text/plain",
		},
		{
			name:  "unterminated part body",
			input: "\r\n--==testboundary==\r\n\r\nbody with no closing delimiter",
		},
		{
			name:  "missing final delimiter",
			input: "\r\n--==testboundary==\r\n\r\nhi\r\n--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Decode(testBoundary, []byte(tt.input))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.ErrorContains(t, err, "offset")
			assert.Empty(t, m.Parts())
		})
	}
}

func TestDecode_BodyContainingDelimiterBytes(t *testing.T) {
	// RFC 2046 gives the delimiter priority over body content, so a body
	// that embeds "\r\n--boundary" cannot survive a round trip. The
	// decoder reports the damage instead of resynchronising silently.
	body := "before\r\n--==testboundary==\r\nafter"
	encoded, err := NewWithBoundary(testBoundary).
		AddPart(NewPart([]byte(body))).
		BodyBinary()
	require.NoError(t, err)

	_, err = Decode(testBoundary, encoded)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestDecode_OwnsBytes(t *testing.T) {
	input := []byte("\r\n--==testboundary==\r\n\r\nhi\r\n--==testboundary==--\r\n")

	m, err := Decode(testBoundary, input)
	require.NoError(t, err)

	// Mutating the input afterwards must not reach the decoded parts.
	for i := range input {
		input[i] = 'x'
	}
	assert.Equal(t, []byte("hi"), m.Parts()[0].Content())
}
