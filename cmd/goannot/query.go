package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/araport/goannot/internal/export"
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
	"github.com/araport/goannot/internal/query"
)

func newQueryCmd() *cobra.Command {
	var (
		genesPath       string
		annotationsPath string
		genesOut        string
		annotationsOut  string
		strategy        string
		segmentFlags    []string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a segment query against a gene list and GAF file",
		Example: `  goannot query --genes=genes.tsv --annotations=annos.gaf --segment=F,EXP
  goannot query --genes=genes.tsv --annotations=annos.gaf --query=intersection \
    --segment=F,EXP --segment=P,EXP --genes-out=out_genes.tsv --annotations-out=out_annos.gaf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, genesPath, annotationsPath, genesOut, annotationsOut, strategy, segmentFlags)
		},
	}

	cmd.Flags().StringVar(&genesPath, "genes", "", "path to the gene-list file (falls back to GENES_FILE)")
	cmd.Flags().StringVar(&annotationsPath, "annotations", "", "path to the GAF annotation file (falls back to ANNOTATIONS_FILE)")
	cmd.Flags().StringVar(&genesOut, "genes-out", "", "write the matching genes here, in gene-list format")
	cmd.Flags().StringVar(&annotationsOut, "annotations-out", "", "write the matching annotations here, in GAF format")
	cmd.Flags().StringVar(&strategy, "query", "union", "how to combine segments: union or intersection")
	cmd.Flags().StringArrayVar(&segmentFlags, "segment", nil, "ASPECT,STATUS pair (repeatable); omit for the All query")

	return cmd
}

func runQuery(cmd *cobra.Command, genesPath, annotationsPath, genesOut, annotationsOut, strategy string, segmentFlags []string) error {
	genesPath, annotationsPath, err := resolveInputPaths(genesPath, annotationsPath)
	if err != nil {
		return err
	}

	genes, annos, err := loadAndClassify(genesPath, annotationsPath)
	if err != nil {
		return err
	}
	idx := index.Build(genes.genes, annos.annos)

	q, err := buildQuery(strategy, segmentFlags)
	if err != nil {
		return err
	}
	result := query.Execute(idx, q)

	if genesOut == "" && annotationsOut == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "gene_count=%d annotation_count=%d\n", result.GeneCount(), result.AnnotationCount())
		return nil
	}

	if genesOut != "" {
		if err := writeGenesOut(genesOut, genes.metadata, genes.header, result); err != nil {
			return err
		}
	}
	if annotationsOut != "" {
		if err := writeAnnotationsOut(annotationsOut, annos.metadata, annos.header, result); err != nil {
			return err
		}
	}
	return nil
}

func writeGenesOut(path, metadata, header string, result query.QueryResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	chunker := export.Genes(metadata, header, export.GeneRecords(result.Genes()))
	_, err = export.WriteTo(f, chunker)
	return err
}

func writeAnnotationsOut(path, metadata, header string, result query.QueryResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	chunker := export.Annotations(metadata, header, export.AnnotationRecords(result.Annotations()))
	_, err = export.WriteTo(f, chunker)
	return err
}

func buildQuery(strategy string, segmentFlags []string) (query.Query, error) {
	if len(segmentFlags) == 0 {
		return query.Query{Kind: query.All}, nil
	}

	segments := make([]query.Segment, 0, len(segmentFlags))
	for _, raw := range segmentFlags {
		seg, err := parseSegment(raw)
		if err != nil {
			return query.Query{}, err
		}
		segments = append(segments, seg)
	}

	switch strategy {
	case "union":
		return query.Query{Kind: query.Union, Segments: segments}, nil
	case "intersection":
		return query.Query{Kind: query.Intersection, Segments: segments}, nil
	default:
		return query.Query{}, fmt.Errorf("unknown --query strategy %q: must be union or intersection", strategy)
	}
}

func parseSegment(raw string) (query.Segment, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return query.Segment{}, fmt.Errorf("invalid --segment %q: expected ASPECT,STATUS", raw)
	}
	aspect, err := model.ParseAspect(parts[0])
	if err != nil {
		return query.Segment{}, fmt.Errorf("invalid --segment %q: %w", raw, err)
	}
	status, err := model.ParseStatus(parts[1])
	if err != nil {
		return query.Segment{}, fmt.Errorf("invalid --segment %q: %w", raw, err)
	}
	return query.Segment{Aspect: aspect, Status: status}, nil
}
