package related

import (
	"fmt"
	"mime"
	"strings"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-multipart/pkg/multipart"
)

// idDomain anchors generated Content-IDs per RFC 2392.
const idDomain = "go-multipart.siros.org"

// Payload builds a part carrying data under a freshly generated
// Content-ID, with the given content type and binary transfer encoding.
func Payload(data []byte, contentType string) multipart.Part {
	id := fmt.Sprintf("<%s@%s>", uuid.New().String(), idDomain)
	return payload(data, contentType, id)
}

// PayloadWithID is Payload with a caller-chosen Content-ID. The ID is
// bracketed on the wire if it is not already.
func PayloadWithID(data []byte, contentType, contentID string) multipart.Part {
	return payload(data, contentType, Bracketed(contentID))
}

func payload(data []byte, contentType, contentID string) multipart.Part {
	return multipart.NewPart(data,
		multipart.Header{Name: "content-type", Value: contentType},
		multipart.Header{Name: "content-transfer-encoding", Value: "binary"},
		multipart.Header{Name: "content-id", Value: contentID},
	)
}

// NormalizeID reduces a Content-ID reference to its bare form for
// comparison: the cid: scheme prefix and angle brackets are removed.
func NormalizeID(contentID string) string {
	contentID = strings.TrimPrefix(contentID, "cid:")
	contentID = strings.TrimPrefix(contentID, "<")
	contentID = strings.TrimSuffix(contentID, ">")
	return contentID
}

// Bracketed adds angle brackets to a Content-ID if not present, the form
// the content-id header carries.
func Bracketed(contentID string) string {
	if !strings.HasPrefix(contentID, "<") {
		contentID = "<" + contentID + ">"
	}
	return contentID
}

// FindByID locates the first part of m whose content-id header matches
// contentID. Matching is insensitive to header name case, angle brackets
// and the cid: prefix, so references lifted from a document body find the
// part they name.
func FindByID(m multipart.Message, contentID string) (multipart.Part, bool) {
	want := NormalizeID(contentID)
	for _, part := range m.Parts() {
		for _, h := range part.Headers() {
			if strings.EqualFold(h.Name, "content-id") && NormalizeID(h.Value) == want {
				return part, true
			}
		}
	}
	return multipart.Part{}, false
}

// ContentType renders the multipart/related content type for m: the
// message boundary, the root part's media type, and optionally the root's
// Content-ID as the start parameter. The start reference goes out without
// angle brackets while the content-id header keeps them.
func ContentType(m multipart.Message, typ, start string) string {
	params := map[string]string{
		"boundary": m.Boundary(),
		"type":     typ,
	}
	if start != "" {
		params["start"] = NormalizeID(start)
	}
	return mime.FormatMediaType("multipart/related", params)
}
