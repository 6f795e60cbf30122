// Package query evaluates set-algebraic queries — All, Union of segments,
// Intersection of segments — against an index.Index and returns the
// matching gene/annotation keys as a QueryResult.
package query

import (
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
)

// Segment is an (Aspect, AnnotationStatus) predicate over genes.
type Segment struct {
	Aspect model.Aspect
	Status model.AnnotationStatus
}

// Kind distinguishes the three query shapes.
type Kind int

const (
	// All selects every gene with an anno_index entry and every
	// annotation resolved to one.
	All Kind = iota
	// Union selects the componentwise set union of its segments' results.
	Union
	// Intersection selects genes present in every segment, and the union
	// of the supporting annotations from each segment restricted to that
	// gene set.
	Intersection
)

// Query is a flat union or intersection of segments, or the All query.
// Segments is ignored for Kind All.
type Query struct {
	Kind     Kind
	Segments []Segment
}

// geneKeySet and annoKeySet are the hash-set representations QueryResult is
// built from; order is otherwise unspecified except for All (see Execute).
type geneKeySet map[index.GeneKey]struct{}
type annoKeySet map[index.AnnoKey]struct{}

// QueryResult holds the genes and annotations selected by a Query,
// alongside a handle back to the Index needed to hydrate keys into values.
type QueryResult struct {
	idx          *index.Index
	genes        geneKeySet
	annos        annoKeySet
	ordered      []index.GeneKey // set only for All, to keep export order stable
	orderedAnnos []index.AnnoKey // set only for All, to keep export order stable
}

// GeneCount and AnnotationCount report the size of the result without
// hydrating any values.
func (r QueryResult) GeneCount() int       { return len(r.genes) }
func (r QueryResult) AnnotationCount() int { return len(r.annos) }

// Genes returns the matching genes. For Kind All the order matches index
// insertion order; for Union/Intersection/segment queries the order is
// unspecified (Go map iteration order).
func (r QueryResult) Genes() []model.Gene {
	out := make([]model.Gene, 0, len(r.genes))
	if r.ordered != nil {
		for _, gk := range r.ordered {
			if g, ok := r.idx.GetGene(gk); ok {
				out = append(out, g)
			}
		}
		return out
	}
	for gk := range r.genes {
		if g, ok := r.idx.GetGene(gk); ok {
			out = append(out, g)
		}
	}
	return out
}

// Annotations returns the matching annotations, same ordering caveat as
// Genes.
func (r QueryResult) Annotations() []model.Annotation {
	out := make([]model.Annotation, 0, len(r.annos))
	if r.orderedAnnos != nil {
		for _, ak := range r.orderedAnnos {
			if a, ok := r.idx.GetAnnotation(ak); ok {
				out = append(out, a)
			}
		}
		return out
	}
	for ak := range r.annos {
		if a, ok := r.idx.GetAnnotation(ak); ok {
			out = append(out, a)
		}
	}
	return out
}
