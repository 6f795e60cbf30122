package model

import "strings"

// AnnotationRecord holds the seventeen tab-separated GAF 2.1 fields in wire
// order. All fields are raw strings except Aspect.
type AnnotationRecord struct {
	DB                  string
	DatabaseID          string
	DBObjectSymbol      string
	Invert              string
	GOTerm              string
	Reference           string
	EvidenceCode        string
	AdditionalEvidence  string
	Aspect              Aspect
	UniqueGeneName      string
	AlternativeGeneName string
	GeneProductType     string
	Taxon               string
	Date                string
	AssignedBy          string
	AnnotationExtension string
	GeneProductFormID   string
}

// Fields returns the record's seventeen fields in GAF 2.1 wire order, for
// byte-exact re-export.
func (r AnnotationRecord) Fields() []string {
	return []string{
		r.DB,
		r.DatabaseID,
		r.DBObjectSymbol,
		r.Invert,
		r.GOTerm,
		r.Reference,
		r.EvidenceCode,
		r.AdditionalEvidence,
		r.Aspect.String(),
		r.UniqueGeneName,
		r.AlternativeGeneName,
		r.GeneProductType,
		r.Taxon,
		r.Date,
		r.AssignedBy,
		r.AnnotationExtension,
		r.GeneProductFormID,
	}
}

// DefaultExperimentalEvidence is the default experimental evidence-code
// allow-list used to classify KnownExperimental annotations.
var DefaultExperimentalEvidence = []string{
	"EXP", "IDA", "IPI", "IMP", "IGI", "IEP", "HTP", "HDA", "HMP", "HGI", "HEP",
}

// Annotation wraps an AnnotationRecord with its derived classification.
type Annotation struct {
	Record           AnnotationRecord
	Aspect           Aspect
	Inverted         bool
	AnnotationStatus AnnotationStatus
}

// GeneNames returns the candidate gene names for resolving this annotation
// against an index's anno_index, in resolution order: the unique gene name
// first, then each name split out of the alternative gene name field.
func (a Annotation) GeneNames() []string {
	names := make([]string, 0, 1+strings.Count(a.Record.AlternativeGeneName, "|")+1)
	names = append(names, a.Record.UniqueGeneName)
	if a.Record.AlternativeGeneName != "" {
		names = append(names, strings.Split(a.Record.AlternativeGeneName, "|")...)
	}
	return names
}

// Classify derives an Annotation from a raw AnnotationRecord and an
// experimental-evidence allow-list. The Inverted bit is derived once here
// but is not consulted by the classification rules themselves; it is kept
// for downstream consumers that want to re-interpret a record.
func Classify(record AnnotationRecord, experimentalEvidence []string) Annotation {
	return Annotation{
		Record:           record,
		Aspect:           record.Aspect,
		Inverted:         strings.EqualFold(record.Invert, "not"),
		AnnotationStatus: classifyStatus(record.EvidenceCode, experimentalEvidence),
	}
}

func classifyStatus(evidenceCode string, allowList []string) AnnotationStatus {
	if evidenceCode == "ND" {
		return Unknown
	}
	for _, code := range allowList {
		if code == evidenceCode {
			return KnownExperimental
		}
	}
	return KnownOther
}
