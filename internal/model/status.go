package model

import "fmt"

// AnnotationStatus classifies an Annotation's evidence within an Aspect. It
// is computed from the evidence code, never parsed directly off the wire.
type AnnotationStatus int

const (
	// KnownExperimental is assigned when the evidence code is on the
	// experimental allow-list.
	KnownExperimental AnnotationStatus = iota
	// KnownOther is assigned when the evidence code is neither "ND" nor
	// on the experimental allow-list. Classification looks at one record
	// only; it is the index that leaves a gene out of the (aspect,
	// KnownOther) bucket when that gene also has experimental evidence for
	// the aspect.
	KnownOther
	// Unknown is assigned when the evidence code is "ND".
	Unknown
	// Unannotated is a derived status: the gene has no annotation at all
	// for the aspect in question.
	Unannotated
)

// Statuses lists the four statuses in a stable order.
var Statuses = [4]AnnotationStatus{KnownExperimental, KnownOther, Unknown, Unannotated}

// String returns the CLI/HTTP wire token for the status.
func (s AnnotationStatus) String() string {
	switch s {
	case KnownExperimental:
		return "EXP"
	case KnownOther:
		return "OTHER"
	case Unknown:
		return "UNKNOWN"
	case Unannotated:
		return "UNANNOTATED"
	default:
		return "?"
	}
}

// ParseStatus decodes the CLI/HTTP wire token for a status.
func ParseStatus(s string) (AnnotationStatus, error) {
	switch s {
	case "EXP":
		return KnownExperimental, nil
	case "OTHER":
		return KnownOther, nil
	case "UNKNOWN":
		return Unknown, nil
	case "UNANNOTATED":
		return Unannotated, nil
	default:
		return 0, fmt.Errorf("unknown annotation status %q", s)
	}
}
