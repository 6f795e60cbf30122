package query

import (
	"testing"

	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gene(id string) model.Gene {
	return model.NewGene(model.GeneRecord{GeneID: id, GeneProductType: "protein"})
}

func anno(aspect model.Aspect, status model.AnnotationStatus, uniqueName string) model.Annotation {
	return model.Annotation{
		Record:           model.AnnotationRecord{Aspect: aspect, UniqueGeneName: uniqueName},
		Aspect:           aspect,
		AnnotationStatus: status,
	}
}

func geneIDs(t *testing.T, r QueryResult) []string {
	t.Helper()
	ids := make([]string, 0, len(r.genes))
	for _, g := range r.Genes() {
		ids = append(ids, g.GeneID())
	}
	return ids
}

// S3 — a single segment query returns exactly the genes bucketed under it
// and the subset of each gene's annotations that classify to it.
func TestExecute_S3_Segment(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B"), gene("C")}
	annos := []model.Annotation{
		anno(model.MolecularFunction, model.KnownExperimental, "A"),
		anno(model.MolecularFunction, model.KnownOther, "A"),
		anno(model.MolecularFunction, model.KnownExperimental, "B"),
		anno(model.BiologicalProcess, model.KnownExperimental, "C"),
	}
	idx := index.Build(genes, annos)

	q := Query{Kind: Union, Segments: []Segment{{Aspect: model.MolecularFunction, Status: model.KnownExperimental}}}
	result := Execute(idx, q)

	assert.ElementsMatch(t, []string{"A", "B"}, geneIDs(t, result))
	assert.Equal(t, 2, result.AnnotationCount())
	for _, a := range result.Annotations() {
		assert.Equal(t, model.MolecularFunction, a.Aspect)
		assert.Equal(t, model.KnownExperimental, a.AnnotationStatus)
	}
}

// S4 — union of disjoint segments combines genes and annotations without
// double counting.
func TestExecute_S4_Union(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B"), gene("C")}
	annos := []model.Annotation{
		anno(model.MolecularFunction, model.KnownExperimental, "A"),
		anno(model.BiologicalProcess, model.KnownExperimental, "B"),
		anno(model.CellularComponent, model.Unknown, "C"),
	}
	idx := index.Build(genes, annos)

	q := Query{Kind: Union, Segments: []Segment{
		{Aspect: model.MolecularFunction, Status: model.KnownExperimental},
		{Aspect: model.BiologicalProcess, Status: model.KnownExperimental},
	}}
	result := Execute(idx, q)

	assert.ElementsMatch(t, []string{"A", "B"}, geneIDs(t, result))
	assert.Equal(t, 2, result.AnnotationCount())
}

// S5 — intersection keeps only genes present in every segment, and the
// union of supporting annotations restricted to those genes.
func TestExecute_S5_Intersection(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B")}
	annos := []model.Annotation{
		anno(model.MolecularFunction, model.KnownExperimental, "A"),
		anno(model.BiologicalProcess, model.KnownExperimental, "A"),
		anno(model.MolecularFunction, model.KnownExperimental, "B"),
	}
	idx := index.Build(genes, annos)

	q := Query{Kind: Intersection, Segments: []Segment{
		{Aspect: model.MolecularFunction, Status: model.KnownExperimental},
		{Aspect: model.BiologicalProcess, Status: model.KnownExperimental},
	}}
	result := Execute(idx, q)

	assert.Equal(t, []string{"A"}, geneIDs(t, result))
	assert.Equal(t, 2, result.AnnotationCount(), "both of A's annotations survive, B's does not")
}

// R2 — for disjoint segments, the union over all of them has as many genes
// and annotations as the unions over the two halves of a split, added up.
func TestExecute_R2_DisjointSegmentsSplitAcrossUnions(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B"), gene("C")}
	annos := []model.Annotation{
		anno(model.MolecularFunction, model.KnownExperimental, "A"),
		anno(model.BiologicalProcess, model.KnownExperimental, "B"),
		anno(model.CellularComponent, model.Unknown, "C"),
	}
	idx := index.Build(genes, annos)
	s1 := Segment{Aspect: model.MolecularFunction, Status: model.KnownExperimental}
	s2 := Segment{Aspect: model.BiologicalProcess, Status: model.KnownExperimental}
	s3 := Segment{Aspect: model.CellularComponent, Status: model.Unknown}

	combined := Execute(idx, Query{Kind: Union, Segments: []Segment{s1, s2, s3}})
	split1 := Execute(idx, Query{Kind: Union, Segments: []Segment{s1}})
	split2 := Execute(idx, Query{Kind: Union, Segments: []Segment{s2, s3}})

	assert.Equal(t, combined.GeneCount(), split1.GeneCount()+split2.GeneCount())
	assert.Equal(t, combined.AnnotationCount(), split1.AnnotationCount()+split2.AnnotationCount())
}

// R3 — Intersection of a single segment degenerates to that segment's own
// result.
func TestExecute_R3_SingleSegmentIntersectionIsSegment(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B")}
	annos := []model.Annotation{
		anno(model.MolecularFunction, model.KnownExperimental, "A"),
		anno(model.MolecularFunction, model.Unknown, "B"),
	}
	idx := index.Build(genes, annos)
	seg := Segment{Aspect: model.MolecularFunction, Status: model.KnownExperimental}

	union := Execute(idx, Query{Kind: Union, Segments: []Segment{seg}})
	intersection := Execute(idx, Query{Kind: Intersection, Segments: []Segment{seg}})

	assert.ElementsMatch(t, geneIDs(t, union), geneIDs(t, intersection))
	assert.Equal(t, union.AnnotationCount(), intersection.AnnotationCount())
}

// R4 — an empty segment list yields an empty result for both Union and
// Intersection.
func TestExecute_R4_EmptySegmentList(t *testing.T) {
	genes := []model.Gene{gene("A")}
	idx := index.Build(genes, nil)

	union := Execute(idx, Query{Kind: Union})
	intersection := Execute(idx, Query{Kind: Intersection})

	assert.Equal(t, 0, union.GeneCount())
	assert.Equal(t, 0, intersection.GeneCount())
}

// All visits every gene with an anno_index entry exactly once, in Pass A
// insertion order, independent of Go map iteration order.
func TestExecute_AllIsOrderedAndComplete(t *testing.T) {
	genes := []model.Gene{gene("A"), gene("B"), gene("C"), gene("B")}
	idx := index.Build(genes, nil)

	result := Execute(idx, Query{Kind: All})
	require.Equal(t, []string{"A", "B", "C"}, geneIDs(t, result), "duplicate B's second occurrence is not reindexed")
	assert.Equal(t, 3, result.GeneCount())
}
