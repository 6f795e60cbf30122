package query

import (
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
)

// Execute evaluates q against idx and returns the resulting QueryResult.
func Execute(idx *index.Index, q Query) QueryResult {
	switch q.Kind {
	case All:
		return executeAll(idx)
	case Union:
		return executeUnion(idx, q.Segments)
	case Intersection:
		return executeIntersection(idx, q.Segments)
	default:
		return empty(idx)
	}
}

func empty(idx *index.Index) QueryResult {
	return QueryResult{idx: idx, genes: geneKeySet{}, annos: annoKeySet{}}
}

// executeSegment implements the §4.5 segment-query rule: queried_genes is
// the (aspect,status) bucket; queried_annos is the subset of each matching
// gene's resolved annotations that themselves classify to the same
// (aspect, status).
func executeSegment(idx *index.Index, seg Segment) (geneKeySet, annoKeySet) {
	genes := make(geneKeySet)
	for gk := range idx.GenesInSegment(seg.Aspect, seg.Status) {
		genes[gk] = struct{}{}
	}

	annos := make(annoKeySet)
	for gk := range genes {
		g, ok := idx.GetGene(gk)
		if !ok {
			continue
		}
		resolved, ok := idx.AnnosForGene(g.GeneID())
		if !ok {
			continue
		}
		for ak := range resolved {
			a, ok := idx.GetAnnotation(ak)
			if !ok {
				continue
			}
			if a.Aspect == seg.Aspect && a.AnnotationStatus == seg.Status {
				annos[ak] = struct{}{}
			}
		}
	}

	return genes, annos
}

func executeAll(idx *index.Index) QueryResult {
	genes := make(geneKeySet)
	ordered := idx.AllGeneKeys()
	for _, gk := range ordered {
		genes[gk] = struct{}{}
	}

	annos := make(annoKeySet)
	orderedAnnos := idx.AllAnnoKeys()
	for _, ak := range orderedAnnos {
		annos[ak] = struct{}{}
	}

	return QueryResult{idx: idx, genes: genes, annos: annos, ordered: ordered, orderedAnnos: orderedAnnos}
}

func executeUnion(idx *index.Index, segments []Segment) QueryResult {
	if len(segments) == 0 {
		return empty(idx)
	}
	genes := make(geneKeySet)
	annos := make(annoKeySet)
	for _, seg := range segments {
		g, a := executeSegment(idx, seg)
		unionGenesInto(genes, g)
		unionAnnosInto(annos, a)
	}
	return QueryResult{idx: idx, genes: genes, annos: annos}
}

// executeIntersection implements the §4.5 intersection rule: genes are
// intersected across every segment; annotations are unioned across every
// segment's result and then filtered down to annotations whose resolved
// gene survived the gene intersection.
func executeIntersection(idx *index.Index, segments []Segment) QueryResult {
	if len(segments) == 0 {
		return empty(idx)
	}

	geneSets := make([]geneKeySet, len(segments))
	allAnnos := make(annoKeySet)
	for i, seg := range segments {
		g, a := executeSegment(idx, seg)
		geneSets[i] = g
		unionAnnosInto(allAnnos, a)
	}

	genes := intersectAll(geneSets)

	annos := make(annoKeySet)
	for ak := range allAnnos {
		a, ok := idx.GetAnnotation(ak)
		if !ok {
			continue
		}
		if annotationGeneInSet(idx, a, genes) {
			annos[ak] = struct{}{}
		}
	}

	return QueryResult{idx: idx, genes: genes, annos: annos}
}

func annotationGeneInSet(idx *index.Index, a model.Annotation, genes geneKeySet) bool {
	for _, name := range a.GeneNames() {
		if gk, ok := idx.GeneKeyFor(name); ok {
			if _, inSet := genes[gk]; inSet {
				return true
			}
		}
	}
	return false
}

func unionGenesInto(dst, src geneKeySet) {
	for k := range src {
		dst[k] = struct{}{}
	}
}

func unionAnnosInto(dst, src annoKeySet) {
	for k := range src {
		dst[k] = struct{}{}
	}
}

func intersectAll(sets []geneKeySet) geneKeySet {
	if len(sets) == 0 {
		return geneKeySet{}
	}
	result := make(geneKeySet, len(sets[0]))
	for k := range sets[0] {
		result[k] = struct{}{}
	}
	for _, s := range sets[1:] {
		for k := range result {
			if _, ok := s[k]; !ok {
				delete(result, k)
			}
		}
	}
	return result
}
