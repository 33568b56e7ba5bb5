package encoder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// aliases maps file extensions and alternate spellings to format names.
var aliases = map[string]string{
	"png":  "png",
	"jpeg": "jpeg",
	"jpg":  "jpeg",
}

// Registry holds the output encoders by format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with all built-in encoders.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range []Encoder{&PNGEncoder{}, &JPEGEncoder{}} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns an encoder for the given format or alias, or nil.
func (r *Registry) Get(format string) Encoder {
	name, ok := aliases[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return nil
	}
	return r.encoders[name]
}

// Resolve returns the encoder for format, or an error naming the
// supported formats.
func (r *Registry) Resolve(format string) (Encoder, error) {
	if enc := r.Get(format); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (%s)", format, r)
}

// ForPath picks the encoder from a file name's extension, falling back to
// format when the extension is missing or unknown.
func (r *Registry) ForPath(path, format string) (Encoder, error) {
	if enc := r.Get(filepath.Ext(path)); enc != nil {
		return enc, nil
	}
	return r.Resolve(format)
}

// Available returns all format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"png", "jpeg"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
