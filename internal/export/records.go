package export

import (
	"strings"

	"github.com/araport/goannot/internal/model"
)

// Genes builds a Chunker that serializes GeneRecord values in GAF gene-list
// wire order.
func Genes(metadata, header string, records []model.GeneRecord) *Chunker[model.GeneRecord] {
	return NewChunker(metadata, header, records, func(r model.GeneRecord) (string, error) {
		return strings.Join(r.Fields(), "\t"), nil
	})
}

// Annotations builds a Chunker that serializes AnnotationRecord values in
// GAF 2.1 wire order.
func Annotations(metadata, header string, records []model.AnnotationRecord) *Chunker[model.AnnotationRecord] {
	return NewChunker(metadata, header, records, func(r model.AnnotationRecord) (string, error) {
		return strings.Join(r.Fields(), "\t"), nil
	})
}

// GeneRecords unwraps a slice of Gene values into their underlying records,
// preserving order, for handing to Genes.
func GeneRecords(genes []model.Gene) []model.GeneRecord {
	out := make([]model.GeneRecord, len(genes))
	for i, g := range genes {
		out[i] = g.Record
	}
	return out
}

// AnnotationRecords unwraps a slice of Annotation values into their
// underlying records, preserving order, for handing to Annotations.
func AnnotationRecords(annos []model.Annotation) []model.AnnotationRecord {
	out := make([]model.AnnotationRecord, len(annos))
	for i, a := range annos {
		out[i] = a.Record
	}
	return out
}
