// Package codec encodes and decodes payload.Value scalars in several wire
// formats. Every codec round-trips the four supported kinds and rejects
// anything else with payload.ErrUnsupportedValueKind.
package codec

import (
	"errors"
	"sort"

	"github.com/appnet-org/declbench/pkg/payload"
)

// ValueCodec is the interface every codec implements.
type ValueCodec interface {
	// Name identifies the codec in the registry and in reports.
	Name() string

	// Encode converts a value to its binary representation.
	Encode(v payload.Value) ([]byte, error)

	// Decode converts binary data back to a value.
	Decode(data []byte) (payload.Value, error)
}

// Registry maps codec names to codecs.
type Registry struct {
	codecs map[string]ValueCodec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]ValueCodec),
	}
}

// Register adds c under c.Name().
func (r *Registry) Register(c ValueCodec) error {
	if c == nil {
		return errors.New("codec: nil codec")
	}
	if _, exists := r.codecs[c.Name()]; exists {
		return errors.New("codec: " + c.Name() + " already registered")
	}
	r.codecs[c.Name()] = c
	return nil
}

// Get retrieves a codec by name.
func (r *Registry) Get(name string) (ValueCodec, bool) {
	c, exists := r.codecs[name]
	return c, exists
}

// Names returns the registered codec names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Codecs returns the registered codecs ordered by name.
func (r *Registry) Codecs() []ValueCodec {
	names := r.Names()
	out := make([]ValueCodec, 0, len(names))
	for _, name := range names {
		out = append(out, r.codecs[name])
	}
	return out
}

// DefaultRegistry holds the JSON, protobuf and Cap'n Proto codecs.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	r.Register(JSONCodec{})
	r.Register(ProtoCodec{})
	r.Register(CapnpCodec{})
	return r
}()
