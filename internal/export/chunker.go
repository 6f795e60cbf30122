// Package export re-serializes a query result back into the file's own
// wire format, streaming it out one chunk at a time so that the transport
// never has to hold more than a single record's worth of output in memory.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Done is returned by Chunker.Next once the preamble and every record have
// been emitted.
var Done = errors.New("export: chunker exhausted")

// Serialize converts a single record into its tab-separated wire line,
// without a trailing newline. A failure surfaces as that record's
// chunk-level error; it does not abort chunks already emitted or prevent
// later Next calls on unrelated records from being attempted by the caller.
type Serialize[T any] func(T) (string, error)

type phase int

const (
	phasePreamble phase = iota
	phaseRecords
	phaseDone
)

// Chunker emits the combined metadata+header preamble as its first chunk,
// then one serialized record per subsequent chunk.
type Chunker[T any] struct {
	preamble  string
	records   []T
	serialize Serialize[T]
	idx       int
	phase     phase
}

// NewChunker builds a Chunker over a byte-exact metadata/header pair (as
// captured by ingest.MetadataReader) and an ordered record sequence.
func NewChunker[T any](metadata, header string, records []T, serialize Serialize[T]) *Chunker[T] {
	return &Chunker[T]{
		preamble:  ensureNewline(metadata) + ensureNewline(header),
		records:   records,
		serialize: serialize,
	}
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Next returns the next chunk, or Done once the Chunker is exhausted.
func (c *Chunker[T]) Next() ([]byte, error) {
	switch c.phase {
	case phasePreamble:
		c.phase = phaseRecords
		return []byte(c.preamble), nil
	case phaseRecords:
		if c.idx >= len(c.records) {
			c.phase = phaseDone
			return nil, Done
		}
		rec := c.records[c.idx]
		c.idx++
		line, err := c.serialize(rec)
		if err != nil {
			return nil, fmt.Errorf("serialize record %d: %w", c.idx-1, err)
		}
		return []byte(line + "\n"), nil
	default:
		return nil, Done
	}
}

// WriteTo drains c into w one chunk at a time. It returns the first
// serialization or write error encountered without retrying.
func WriteTo[T any](w io.Writer, c *Chunker[T]) (int64, error) {
	var total int64
	for {
		chunk, err := c.Next()
		if err == Done {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		n, werr := w.Write(chunk)
		total += int64(n)
		if werr != nil {
			return total, werr
		}
	}
}
