// Package model defines the classified gene/annotation value types that the
// rest of goannot is built around: Aspect, AnnotationStatus, Gene, and
// Annotation.
package model

import "fmt"

// Aspect is one of the three Gene Ontology sub-ontologies. It is wire-encoded
// as a single character in GAF files: F, P, or C.
type Aspect int

const (
	// MolecularFunction is GAF aspect "F".
	MolecularFunction Aspect = iota
	// BiologicalProcess is GAF aspect "P".
	BiologicalProcess
	// CellularComponent is GAF aspect "C".
	CellularComponent
)

// Aspects lists the three aspects in a stable order, used wherever the index
// needs to iterate over every aspect (index construction, Pass D, invariant
// checks).
var Aspects = [3]Aspect{MolecularFunction, BiologicalProcess, CellularComponent}

// String returns the GAF single-character encoding.
func (a Aspect) String() string {
	switch a {
	case MolecularFunction:
		return "F"
	case BiologicalProcess:
		return "P"
	case CellularComponent:
		return "C"
	default:
		return "?"
	}
}

// ParseAspect decodes the GAF single-character aspect code.
func ParseAspect(s string) (Aspect, error) {
	switch s {
	case "F":
		return MolecularFunction, nil
	case "P":
		return BiologicalProcess, nil
	case "C":
		return CellularComponent, nil
	default:
		return 0, fmt.Errorf("unknown aspect %q", s)
	}
}
