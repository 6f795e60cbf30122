package query

import (
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
)

// literalFixtureGenes and literalFixtureAnnotations port the five-gene,
// forty-seven-annotation GAF fixture and its evidence-code allow-list from
// the original query-engine test suite verbatim (gene ids, evidence codes,
// aspects, and unique/alternative gene names all preserved; the
// reference/assigned-by/date columns, irrelevant to classification or
// resolution, are trimmed to short placeholders).
func literalFixtureGenes() []model.Gene {
	return []model.Gene{
		model.NewGene(model.GeneRecord{GeneID: "AT5G48870", GeneProductType: "protein_coding"}),
		model.NewGene(model.GeneRecord{GeneID: "AT1G07060", GeneProductType: "protein_coding"}),
		model.NewGene(model.GeneRecord{GeneID: "AT4G34200", GeneProductType: "protein_coding"}),
		model.NewGene(model.GeneRecord{GeneID: "AT2G34580", GeneProductType: "protein_coding"}),
		model.NewGene(model.GeneRecord{GeneID: "AT4G30872", GeneProductType: "other_rna"}),
	}
}

func fixtureRecord(evidence string, aspect model.Aspect, unique, alt string) model.AnnotationRecord {
	return model.AnnotationRecord{
		DB:                  "TAIR",
		DatabaseID:          "locus:0",
		DBObjectSymbol:      "SYM",
		GOTerm:              "GO:0000000",
		Reference:           "PMID:0",
		EvidenceCode:        evidence,
		Aspect:              aspect,
		UniqueGeneName:      unique,
		AlternativeGeneName: alt,
		GeneProductType:     "protein",
		Taxon:               "taxon:3702",
		Date:                "20200101",
		AssignedBy:          "TAIR",
	}
}

func literalFixtureAnnotations() []model.Annotation {
	F, P, C := model.MolecularFunction, model.BiologicalProcess, model.CellularComponent
	records := []model.AnnotationRecord{
		// AT5G48870 (0-11)
		fixtureRecord("IBA", C, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("ISM", C, "SUPERSENSITIVE TO ABA AND DROUGHT 1", "AT5G48870|AtSAD1"),
		fixtureRecord("IEA", C, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("HDA", C, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IEA", P, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IEA", P, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IBA", C, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IMP", P, "AT5G48870", "AT5G48870|SAD1"), // AnnoKey(7)
		fixtureRecord("ISS", F, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IMP", P, "AT5G48870", "AT5G48870|SAD1"), // AnnoKey(9)
		fixtureRecord("IBA", F, "AT5G48870", "AT5G48870|SAD1"),
		fixtureRecord("IBA", C, "AT5G48870", "AT5G48870|SAD1"),

		// AT1G07060 (12-18)
		fixtureRecord("ISM", C, "DSB formation", "AT1G07060|ATDFO"),
		fixtureRecord("IPI", F, "AT1G07060", "AT1G07060|DFO"),
		fixtureRecord("IGI", P, "AT1G07060", "AT1G07060|DFO"), // AnnoKey(14)
		fixtureRecord("ISM", C, "", "AT1G07060|AT1G07060.2"),
		fixtureRecord("ISM", C, "", "AT1G07060|AT1G07060.3"),
		fixtureRecord("IGI", P, "AT1G07060", "AT1G07060|DFO"), // AnnoKey(17)
		fixtureRecord("ISM", C, "", "AT1G07060|AT1G07060.4"),

		// AT4G34200 (19-39)
		fixtureRecord("IEA", F, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("HDA", C, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("ISM", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IDA", C, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IDA", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IMP", P, "AT4G34200", "AT4G34200|EDA9"), // AnnoKey(24)
		fixtureRecord("IMP", P, "AT4G34200", "AT4G34200|EDA9"), // AnnoKey(25)
		fixtureRecord("IBA", F, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IDA", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("RCA", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IEA", P, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IEA", P, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IMP", F, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IDA", C, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IBA", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IMP", P, "AT4G34200", "AT4G34200|EDA9"), // AnnoKey(34)
		fixtureRecord("IDA", F, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IDA", C, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IDA", C, "AT4G34200", "AT4G34200|EDA9"),
		fixtureRecord("IBA", P, "embryo sac development arrest 9", "AT4G34200|PGDH1"),
		fixtureRecord("IMP", P, "AT4G34200", "AT4G34200|EDA9"), // AnnoKey(39)

		// AT2G34580 (40-43)
		fixtureRecord("ISM", C, "", "AT2G34580"),
		fixtureRecord("ND", F, "AT2G34580", "AT2G34580"),
		fixtureRecord("ND", P, "AT2G34580", "AT2G34580"),
		fixtureRecord("ISM", C, "", "AT2G34580|AT2G34580.2"),

		// AT4G30872 (44-46)
		fixtureRecord("ND", C, "AT4G30872", "AT4G30872"),
		fixtureRecord("ND", F, "AT4G30872", "AT4G30872"),
		fixtureRecord("ND", P, "AT4G30872", "AT4G30872"),
	}

	annos := make([]model.Annotation, 0, len(records))
	for _, r := range records {
		annos = append(annos, model.Classify(r, model.DefaultExperimentalEvidence))
	}
	return annos
}

func buildLiteralFixture() *index.Index {
	return index.Build(literalFixtureGenes(), literalFixtureAnnotations())
}
