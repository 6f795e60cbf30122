package main

import (
	"fmt"

	"github.com/araport/goannot/internal/config"
	"github.com/araport/goannot/internal/ingest"
	"github.com/araport/goannot/internal/model"
)

// loadedGenes and loadedAnnotations bundle the classified model values
// alongside the byte-exact metadata/header strings an export needs to
// reproduce the original preamble.
type loadedGenes struct {
	genes    []model.Gene
	metadata string
	header   string
}

type loadedAnnotations struct {
	annos    []model.Annotation
	metadata string
	header   string
}

// loadAndClassify reads and classifies both input files concurrently.
func loadAndClassify(genesPath, annotationsPath string) (loadedGenes, loadedAnnotations, error) {
	genesResult, annosResult, err := ingest.LoadBoth(genesPath, annotationsPath)
	if err != nil {
		return loadedGenes{}, loadedAnnotations{}, err
	}

	genes := make([]model.Gene, 0, len(genesResult.Records))
	for _, rec := range genesResult.Records {
		genes = append(genes, model.NewGene(rec))
	}

	annos := make([]model.Annotation, 0, len(annosResult.Records))
	for _, rec := range annosResult.Records {
		annos = append(annos, model.Classify(rec, model.DefaultExperimentalEvidence))
	}

	return loadedGenes{genes: genes, metadata: genesResult.Metadata, header: genesResult.Header},
		loadedAnnotations{annos: annos, metadata: annosResult.Metadata, header: annosResult.Header},
		nil
}

// resolveInputPaths fills in genesPath/annotationsPath from GENES_FILE /
// ANNOTATIONS_FILE (via an optional .env file or ~/.goannot.yaml) whenever
// the corresponding CLI flag was left empty. Flags always take priority.
func resolveInputPaths(genesPath, annotationsPath string) (string, string, error) {
	if genesPath != "" && annotationsPath != "" {
		return genesPath, annotationsPath, nil
	}

	cfg := config.Resolve()
	if genesPath == "" {
		genesPath = cfg.GenesFile
	}
	if annotationsPath == "" {
		annotationsPath = cfg.AnnotationsFile
	}

	if genesPath == "" {
		return "", "", fmt.Errorf("--genes or GENES_FILE is required")
	}
	if annotationsPath == "" {
		return "", "", fmt.Errorf("--annotations or ANNOTATIONS_FILE is required")
	}
	return genesPath, annotationsPath, nil
}
