package content

import "fmt"

// TypeFlags holds an independent on/off toggle for each content type.
// The zero value has every type disabled.
type TypeFlags struct {
	enabled [numContentTypes]bool
}

// DefaultTypeFlags returns the default selection: blog, short-video and
// social-reel enabled, social-story disabled.
func DefaultTypeFlags() TypeFlags {
	var f TypeFlags
	f.Set(ContentTypeBlog, true)
	f.Set(ContentTypeShortVideo, true)
	f.Set(ContentTypeSocialReel, true)
	return f
}

// FlagsFor returns flags with exactly the given types enabled.
func FlagsFor(types ...ContentType) TypeFlags {
	var f TypeFlags
	for _, ct := range types {
		f.Set(ct, true)
	}
	return f
}

// ParseTypeFlags builds flags from type names. An empty list yields no types.
func ParseTypeFlags(names []string) (TypeFlags, error) {
	var f TypeFlags
	for _, name := range names {
		ct, err := ParseContentType(name)
		if err != nil {
			return TypeFlags{}, err
		}
		f.Set(ct, true)
	}
	return f, nil
}

// Set toggles a content type on or off. Unknown types are ignored.
func (f *TypeFlags) Set(ct ContentType, on bool) {
	if i := ct.ordinal(); i >= 0 {
		f.enabled[i] = on
	}
}

// Toggle flips a content type and returns its new state.
func (f *TypeFlags) Toggle(ct ContentType) bool {
	i := ct.ordinal()
	if i < 0 {
		return false
	}
	f.enabled[i] = !f.enabled[i]
	return f.enabled[i]
}

// IsEnabled reports whether ct is switched on.
func (f TypeFlags) IsEnabled(ct ContentType) bool {
	i := ct.ordinal()
	return i >= 0 && f.enabled[i]
}

// Enabled returns the enabled types in canonical order.
func (f TypeFlags) Enabled() []ContentType {
	out := make([]ContentType, 0, len(canonicalOrder))
	for i, ct := range canonicalOrder {
		if f.enabled[i] {
			out = append(out, ct)
		}
	}
	return out
}

// Count returns the number of enabled types.
func (f TypeFlags) Count() int {
	n := 0
	for _, on := range f.enabled {
		if on {
			n++
		}
	}
	return n
}

// String renders the enabled types, e.g. "[blog short-video]".
func (f TypeFlags) String() string {
	return fmt.Sprint(f.Enabled())
}
