package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/araport/goannot/internal/model"
)

// geneFields is the minimum column count for a gene-list row.
const geneFields = 2

// annotationFields is the minimum column count for a GAF annotation row.
const annotationFields = 17

// ParseGenes decodes the body of r (already past any metadata/header, e.g.
// via MetadataReader) as tab-separated gene-list rows. Extra trailing
// columns are tolerated; rows with fewer than two columns are silently
// skipped. Records are returned in file order.
func ParseGenes(r io.Reader) ([]model.GeneRecord, error) {
	var records []model.GeneRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < geneFields {
			continue
		}
		records = append(records, model.GeneRecord{
			GeneID:          fields[0],
			GeneProductType: fields[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseAnnotations decodes the body of r as tab-separated GAF 2.1 rows.
// Extra trailing columns are tolerated; rows with fewer than seventeen
// columns, or with an unrecognized Aspect code, are silently skipped —
// GAF files from public sources regularly contain a handful of malformed
// rows and downstream tooling historically tolerates them.
func ParseAnnotations(r io.Reader) ([]model.AnnotationRecord, error) {
	var records []model.AnnotationRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < annotationFields {
			continue
		}
		aspect, err := model.ParseAspect(fields[8])
		if err != nil {
			continue
		}
		records = append(records, model.AnnotationRecord{
			DB:                  fields[0],
			DatabaseID:          fields[1],
			DBObjectSymbol:      fields[2],
			Invert:              fields[3],
			GOTerm:              fields[4],
			Reference:           fields[5],
			EvidenceCode:        fields[6],
			AdditionalEvidence:  fields[7],
			Aspect:              aspect,
			UniqueGeneName:      fields[9],
			AlternativeGeneName: fields[10],
			GeneProductType:     fields[11],
			Taxon:               fields[12],
			Date:                fields[13],
			AssignedBy:          fields[14],
			AnnotationExtension: fields[15],
			GeneProductFormID:   fields[16],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
