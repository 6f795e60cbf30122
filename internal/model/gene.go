package model

// GeneRecord is the raw two-column gene-list row. Row order is preserved
// from input; gene_id need not be unique in the raw input, but the index
// treats the first occurrence as canonical.
type GeneRecord struct {
	GeneID          string
	GeneProductType string
}

// Fields returns the record's tab-separated-value field order, matching the
// order it was parsed in, for byte-exact re-export.
func (r GeneRecord) Fields() []string {
	return []string{r.GeneID, r.GeneProductType}
}

// Gene is a thin wrapper over GeneRecord.
type Gene struct {
	Record GeneRecord
}

// NewGene wraps a GeneRecord.
func NewGene(r GeneRecord) Gene {
	return Gene{Record: r}
}

// GeneID returns the gene's identifier.
func (g Gene) GeneID() string {
	return g.Record.GeneID
}
