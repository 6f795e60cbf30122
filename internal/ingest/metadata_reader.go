// Package ingest wraps a byte source, strips a GAF/gene-list metadata
// preamble and column header, and decodes the remaining tab-separated rows
// into GeneRecord/AnnotationRecord value objects.
package ingest

import (
	"bufio"
	"io"
	"strings"
)

// readerState is the MetadataReader's two-state machine: it scans leading
// metadata/header lines before handing off to straight passthrough reads.
type readerState int

const (
	scanning readerState = iota
	streaming
)

// MetadataReader strips the leading `!`-prefixed/blank metadata block from a
// GAF or gene-list byte source and captures the column-header line that
// follows it, while forwarding the remaining body bytes unchanged to the
// caller via Read. Metadata and header strings are byte-exact, including
// trailing newlines, so a StreamingExporter can reproduce them verbatim.
type MetadataReader struct {
	src   *bufio.Reader
	state readerState

	metadata strings.Builder
	header   string
}

// NewMetadataReader wraps r.
func NewMetadataReader(r io.Reader) *MetadataReader {
	return &MetadataReader{
		src:   bufio.NewReader(r),
		state: scanning,
	}
}

// Metadata returns the captured metadata block. It returns "", false until
// the header line has been found.
func (m *MetadataReader) Metadata() (string, bool) {
	if m.state != streaming {
		return "", false
	}
	return m.metadata.String(), true
}

// Header returns the captured column-header line, trailing newline
// included. It returns "", false until the header line has been found.
func (m *MetadataReader) Header() (string, bool) {
	if m.state != streaming {
		return "", false
	}
	return m.header, true
}

// Read implements io.Reader. While scanning, it consumes whole metadata/
// header lines internally and does not return any bytes to the caller
// until the body begins; once streaming, reads pass through to the
// wrapped source unchanged.
func (m *MetadataReader) Read(p []byte) (int, error) {
	if m.state == streaming {
		return m.src.Read(p)
	}

	for {
		line, err := m.src.ReadString('\n')
		if line == "" && err != nil {
			return 0, err
		}

		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case trimmed == "" || trimmed == "\n":
			m.metadata.WriteString("\n")
		case strings.HasPrefix(trimmed, "!"):
			m.metadata.WriteString(line)
		default:
			m.header = line
			m.state = streaming
			if err != nil && err != io.EOF {
				return 0, err
			}
			return m.src.Read(p)
		}

		if err != nil {
			// EOF reached while still in the metadata block: there is no
			// header and no body. Stay in scanning state; future reads
			// will return EOF too.
			return 0, err
		}
	}
}
