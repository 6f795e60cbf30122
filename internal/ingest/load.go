package ingest

import (
	"fmt"
	"sync"

	"github.com/araport/goannot/internal/model"
)

// GeneFileResult holds the parsed metadata/header/records of a gene-list file.
type GeneFileResult struct {
	Metadata string
	Header   string
	Records  []model.GeneRecord
}

// AnnotationFileResult is the annotation-file counterpart of GeneFileResult.
type AnnotationFileResult struct {
	Metadata string
	Header   string
	Records  []model.AnnotationRecord
}

// LoadGenes opens, strips metadata from, and decodes a gene-list file.
func LoadGenes(path string) (GeneFileResult, error) {
	r, closer, err := Open(path)
	if err != nil {
		return GeneFileResult{}, err
	}
	defer closer.Close()

	mr := NewMetadataReader(r)
	records, err := ParseGenes(mr)
	if err != nil {
		return GeneFileResult{}, fmt.Errorf("parse genes %s: %w", path, err)
	}
	metadata, _ := mr.Metadata()
	header, _ := mr.Header()
	return GeneFileResult{Metadata: metadata, Header: header, Records: records}, nil
}

// LoadAnnotations opens, strips metadata from, and decodes a GAF file.
func LoadAnnotations(path string) (AnnotationFileResult, error) {
	r, closer, err := Open(path)
	if err != nil {
		return AnnotationFileResult{}, err
	}
	defer closer.Close()

	mr := NewMetadataReader(r)
	records, err := ParseAnnotations(mr)
	if err != nil {
		return AnnotationFileResult{}, fmt.Errorf("parse annotations %s: %w", path, err)
	}
	metadata, _ := mr.Metadata()
	header, _ := mr.Header()
	return AnnotationFileResult{Metadata: metadata, Header: header, Records: records}, nil
}

// LoadBoth loads the gene-list and GAF files concurrently: the two file
// reads/parses are independent, so they run on their own goroutine each and
// are joined with a WaitGroup before either result is returned.
func LoadBoth(genesPath, annotationsPath string) (GeneFileResult, AnnotationFileResult, error) {
	var (
		genes    GeneFileResult
		annos    AnnotationFileResult
		genesErr error
		annosErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		genes, genesErr = LoadGenes(genesPath)
	}()
	go func() {
		defer wg.Done()
		annos, annosErr = LoadAnnotations(annotationsPath)
	}()
	wg.Wait()

	if genesErr != nil {
		return genes, annos, genesErr
	}
	if annosErr != nil {
		return genes, annos, annosErr
	}
	return genes, annos, nil
}
