// Package index builds and holds the classified (Aspect x AnnotationStatus)
// lattice that the query engine walks: the central Index data model.
package index

import (
	"github.com/araport/goannot/internal/model"
)

// GeneKey is an opaque index into the Index's gene vector. Keys are
// meaningless outside the Index that produced them and must never be
// compared across Index instances.
type GeneKey int

// AnnoKey is an opaque index into the Index's annotation vector, with the
// same scoping rules as GeneKey.
type AnnoKey int

type statusSet map[model.AnnotationStatus]map[GeneKey]struct{}

type geneEntry struct {
	key   GeneKey
	annos map[AnnoKey]struct{}
}

// Index owns the gene and annotation vectors and the derived lookup
// structures built over them: gene_index maps (Aspect, AnnotationStatus) to
// the genes in that bucket, and anno_index maps a gene id to its GeneKey and
// the set of annotations resolved to it.
type Index struct {
	genes       []model.Gene
	annotations []model.Annotation

	geneIndex map[model.Aspect]statusSet
	annoIndex map[string]geneEntry
}

// Build constructs an Index from ordered gene and annotation vectors,
// following the four-pass algorithm:
//
//	Pass A seeds anno_index from genes, first-occurrence-wins on duplicate
//	gene ids.
//	Pass B resolves each annotation to a gene (unique name, then each
//	alternative name in order) and buckets it by (aspect, status), with
//	KnownOther annotations routed to a pending side-table.
//	Pass C folds the pending KnownOther table into gene_index, suppressing
//	any gene already present in (aspect, KnownExperimental).
//	Pass D derives the Unannotated bucket for each aspect from the genes
//	that have an anno_index entry but appear in no other bucket for that
//	aspect.
func Build(genes []model.Gene, annotations []model.Annotation) *Index {
	idx := &Index{
		genes:       genes,
		annotations: annotations,
		geneIndex:   make(map[model.Aspect]statusSet, len(model.Aspects)),
		annoIndex:   make(map[string]geneEntry, len(genes)),
	}
	for _, aspect := range model.Aspects {
		idx.geneIndex[aspect] = make(statusSet)
	}

	// Pass A: seed anno_index. First occurrence of a gene id wins.
	for i, gene := range genes {
		id := gene.GeneID()
		if _, exists := idx.annoIndex[id]; exists {
			continue
		}
		idx.annoIndex[id] = geneEntry{key: GeneKey(i), annos: make(map[AnnoKey]struct{})}
	}

	// Pass B: place annotations, routing KnownOther to a pending table.
	pendingOther := make(map[model.Aspect]map[GeneKey]struct{}, len(model.Aspects))
	for j, anno := range annotations {
		entry, geneKey, ok := idx.resolveGene(anno)
		if !ok {
			continue // UnresolvedGene: dropped from indexing, kept in the vector.
		}
		entry.annos[AnnoKey(j)] = struct{}{}

		target := idx.geneIndex[anno.Aspect]
		if anno.AnnotationStatus == model.KnownOther {
			if pendingOther[anno.Aspect] == nil {
				pendingOther[anno.Aspect] = make(map[GeneKey]struct{})
			}
			pendingOther[anno.Aspect][geneKey] = struct{}{}
			continue
		}
		if target[anno.AnnotationStatus] == nil {
			target[anno.AnnotationStatus] = make(map[GeneKey]struct{})
		}
		target[anno.AnnotationStatus][geneKey] = struct{}{}
	}

	// Pass C: fold KnownOther, suppressed by KnownExperimental membership.
	for aspect, genesForAspect := range pendingOther {
		exp := idx.geneIndex[aspect][model.KnownExperimental]
		for geneKey := range genesForAspect {
			if _, suppressed := exp[geneKey]; suppressed {
				continue
			}
			if idx.geneIndex[aspect][model.KnownOther] == nil {
				idx.geneIndex[aspect][model.KnownOther] = make(map[GeneKey]struct{})
			}
			idx.geneIndex[aspect][model.KnownOther][geneKey] = struct{}{}
		}
	}

	idx.indexUnannotated()
	return idx
}

// resolveGene tries an annotation's candidate gene names in order against
// anno_index and returns the matching entry and its GeneKey.
func (idx *Index) resolveGene(anno model.Annotation) (geneEntry, GeneKey, bool) {
	for _, name := range anno.GeneNames() {
		if entry, ok := idx.annoIndex[name]; ok {
			return entry, entry.key, true
		}
	}
	return geneEntry{}, 0, false
}

// indexUnannotated derives, for each aspect, the set of genes that have an
// anno_index entry but appear in no status bucket for that aspect. This
// must run after Pass C completes so that a gene suppressed out of
// KnownOther by KnownExperimental membership is not mistakenly marked
// Unannotated.
func (idx *Index) indexUnannotated() {
	annotatedIn := make(map[model.Aspect]map[GeneKey]struct{}, len(model.Aspects))
	for aspect, byStatus := range idx.geneIndex {
		set := make(map[GeneKey]struct{})
		for status, genes := range byStatus {
			if status == model.Unannotated {
				continue
			}
			for gk := range genes {
				set[gk] = struct{}{}
			}
		}
		annotatedIn[aspect] = set
	}

	for _, entry := range idx.annoIndex {
		for _, aspect := range model.Aspects {
			if _, ok := annotatedIn[aspect][entry.key]; ok {
				continue
			}
			if idx.geneIndex[aspect][model.Unannotated] == nil {
				idx.geneIndex[aspect][model.Unannotated] = make(map[GeneKey]struct{})
			}
			idx.geneIndex[aspect][model.Unannotated][entry.key] = struct{}{}
		}
	}
}

// GetGene returns the gene at key, or false if key is out of range.
func (idx *Index) GetGene(key GeneKey) (model.Gene, bool) {
	if key < 0 || int(key) >= len(idx.genes) {
		return model.Gene{}, false
	}
	return idx.genes[key], true
}

// GetAnnotation returns the annotation at key, or false if key is out of
// range.
func (idx *Index) GetAnnotation(key AnnoKey) (model.Annotation, bool) {
	if key < 0 || int(key) >= len(idx.annotations) {
		return model.Annotation{}, false
	}
	return idx.annotations[key], true
}

// GenesInSegment returns the GeneKeys bucketed under (aspect, status).
func (idx *Index) GenesInSegment(aspect model.Aspect, status model.AnnotationStatus) map[GeneKey]struct{} {
	return idx.geneIndex[aspect][status]
}

// AnnosForGene returns the AnnoKeys resolved to the gene with the given id.
func (idx *Index) AnnosForGene(geneID string) (map[AnnoKey]struct{}, bool) {
	entry, ok := idx.annoIndex[geneID]
	if !ok {
		return nil, false
	}
	return entry.annos, true
}

// GeneKeyFor returns the GeneKey assigned to a gene id in Pass A.
func (idx *Index) GeneKeyFor(geneID string) (GeneKey, bool) {
	entry, ok := idx.annoIndex[geneID]
	if !ok {
		return 0, false
	}
	return entry.key, true
}

// AllGeneKeys returns the GeneKey of every gene that has an anno_index
// entry, in the order Pass A created them (insertion order of the genes
// vector, minus any duplicate ids skipped).
func (idx *Index) AllGeneKeys() []GeneKey {
	keys := make([]GeneKey, 0, len(idx.annoIndex))
	for i := range idx.genes {
		gk := GeneKey(i)
		// Only keys that survived Pass A (i.e. first-occurrence winners)
		// are present as some anno_index value; filter the rest out.
		if idx.isCanonicalKey(gk) {
			keys = append(keys, gk)
		}
	}
	return keys
}

func (idx *Index) isCanonicalKey(gk GeneKey) bool {
	gene, ok := idx.GetGene(gk)
	if !ok {
		return false
	}
	canonicalKey, ok := idx.GeneKeyFor(gene.GeneID())
	return ok && canonicalKey == gk
}

// AllAnnoKeys returns every AnnoKey that resolved to a gene during Build,
// in the original annotation-vector (file) order, independent of map
// iteration order. Unresolved annotations are excluded.
func (idx *Index) AllAnnoKeys() []AnnoKey {
	resolved := make(map[AnnoKey]struct{}, len(idx.annotations))
	for _, entry := range idx.annoIndex {
		for ak := range entry.annos {
			resolved[ak] = struct{}{}
		}
	}
	keys := make([]AnnoKey, 0, len(resolved))
	for j := range idx.annotations {
		ak := AnnoKey(j)
		if _, ok := resolved[ak]; ok {
			keys = append(keys, ak)
		}
	}
	return keys
}

// allAnnoKeysByGene returns, for every gene with an anno_index entry, the
// set of AnnoKeys resolved to it, keyed by GeneKey; the map has no defined
// iteration order. Test-only helper.
func (idx *Index) allAnnoKeysByGene() map[GeneKey]map[AnnoKey]struct{} {
	out := make(map[GeneKey]map[AnnoKey]struct{}, len(idx.annoIndex))
	for _, entry := range idx.annoIndex {
		out[entry.key] = entry.annos
	}
	return out
}

// GeneCount and AnnotationCount report vector lengths, independent of any
// query, for diagnostics.
func (idx *Index) GeneCount() int       { return len(idx.genes) }
func (idx *Index) AnnotationCount() int { return len(idx.annotations) }
