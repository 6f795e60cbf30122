// Package snapshot holds the single mutable piece of runtime state: a
// pointer to the currently published dataset. Readers load a snapshot and
// hold it alive for the duration of their request; writers build a new one
// off to the side and swap it in atomically.
package snapshot

import (
	"sync/atomic"

	"github.com/araport/goannot/internal/index"
)

// AppData is one immutable, fully-built dataset: the classified Index plus
// the byte-exact metadata/header strings captured for each input file, so
// an export can reproduce the original preamble verbatim.
type AppData struct {
	Index *index.Index

	GeneMetadata string
	GeneHeader   string

	AnnotationMetadata string
	AnnotationHeader   string

	// Generation increases by one on every Store, so callers (e.g. the
	// websocket notifier) can detect that a new snapshot was published
	// without comparing pointers.
	Generation uint64
}

// Registry holds the current AppData behind an atomic pointer. The zero
// Registry has no snapshot loaded; Load returns nil, false until the first
// Store.
type Registry struct {
	current atomic.Pointer[AppData]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Load returns the current snapshot. The returned *AppData is immutable and
// remains valid for as long as the caller holds it, even after a concurrent
// Store publishes a newer one.
func (r *Registry) Load() (*AppData, bool) {
	data := r.current.Load()
	if data == nil {
		return nil, false
	}
	return data, true
}

// Store atomically publishes data as the current snapshot, assigning it the
// next generation number. It does not block concurrent Loads or other
// Stores; the previous snapshot remains valid for readers that already
// loaded it.
func (r *Registry) Store(data *AppData) *AppData {
	for {
		prev := r.current.Load()
		if prev != nil {
			data.Generation = prev.Generation + 1
		} else {
			data.Generation = 1
		}
		if r.current.CompareAndSwap(prev, data) {
			return data
		}
	}
}
