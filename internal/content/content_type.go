package content

import (
	"errors"
	"fmt"
	"strings"
)

// ContentType identifies the kind of content a generation task produces.
type ContentType string

// Content types in canonical declaration order. Batch execution iterates enabled
// types in this order regardless of the order flags were toggled.
const (
	// ContentTypeBlog is a long-form blog post with SEO metadata.
	ContentTypeBlog ContentType = "blog"
	// ContentTypeShortVideo is a 60-second video script.
	ContentTypeShortVideo ContentType = "short-video"
	// ContentTypeSocialReel is a reel caption with hashtags.
	ContentTypeSocialReel ContentType = "social-reel"
	// ContentTypeSocialStory is story text with engagement prompts.
	ContentTypeSocialStory ContentType = "social-story"
)

// numContentTypes is the size of the enumeration.
const numContentTypes = 4

// ErrUnknownContentType is returned when a content type string cannot be parsed.
var ErrUnknownContentType = errors.New("unknown content type")

// canonicalOrder lists every content type in declaration order.
//
//nolint:gochecknoglobals // Fixed enumeration table.
var canonicalOrder = []ContentType{
	ContentTypeBlog,
	ContentTypeShortVideo,
	ContentTypeSocialReel,
	ContentTypeSocialStory,
}

// wireNames maps each content type to the identifier the generation service expects.
//
//nolint:gochecknoglobals // Fixed enumeration table.
var wireNames = map[ContentType]string{
	ContentTypeBlog:        "blog",
	ContentTypeShortVideo:  "youtube-short",
	ContentTypeSocialReel:  "instagram-reel",
	ContentTypeSocialStory: "facebook-story",
}

// descriptions are the short human labels shown by the CLI.
//
//nolint:gochecknoglobals // Fixed enumeration table.
var descriptions = map[ContentType]string{
	ContentTypeBlog:        "Full blog posts with SEO",
	ContentTypeShortVideo:  "60-second video scripts",
	ContentTypeSocialReel:  "Captions with hashtags",
	ContentTypeSocialStory: "Story text with prompts",
}

// AllContentTypes returns every content type in canonical order.
func AllContentTypes() []ContentType {
	out := make([]ContentType, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// ParseContentType parses either the canonical name ("short-video") or the
// service wire name ("youtube-short"). Matching is case-insensitive.
func ParseContentType(s string) (ContentType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, ct := range canonicalOrder {
		if norm == string(ct) || norm == wireNames[ct] {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnknownContentType, s, validNames())
}

// Valid reports whether ct is one of the declared content types.
func (ct ContentType) Valid() bool {
	_, ok := wireNames[ct]
	return ok
}

// WireName returns the identifier sent to the generation service.
func (ct ContentType) WireName() string {
	if name, ok := wireNames[ct]; ok {
		return name
	}
	return string(ct)
}

// Description returns a short human-readable description of the type.
func (ct ContentType) Description() string {
	return descriptions[ct]
}

// String implements fmt.Stringer.
func (ct ContentType) String() string {
	return string(ct)
}

// ordinal returns the position of ct in the canonical order, or -1.
func (ct ContentType) ordinal() int {
	for i, c := range canonicalOrder {
		if c == ct {
			return i
		}
	}
	return -1
}

func validNames() string {
	names := make([]string, 0, len(canonicalOrder))
	for _, ct := range canonicalOrder {
		names = append(names, string(ct))
	}
	return strings.Join(names, ", ")
}
