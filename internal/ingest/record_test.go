package ingest

import (
	"strings"
	"testing"

	"github.com/araport/goannot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenes(t *testing.T) {
	input := "AT1G01010\tprotein_coding\nAT1G01020\tprotein_coding\n"
	records, err := ParseGenes(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.GeneRecord{GeneID: "AT1G01010", GeneProductType: "protein_coding"}, records[0])
}

func TestParseGenes_SkipsShortRows(t *testing.T) {
	input := "AT1G01010\n AT1G01020\tprotein_coding\n"
	records, err := ParseGenes(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseAnnotations(t *testing.T) {
	row := "TAIR\tlocus:2031476\tENO1\t\tGO:0000015\tTAIR:AnalysisReference:501756966\tIEA\tInterPro:IPR000941\tC\tAT1G74030\tAT1G74030|ENO1|enolase 1|F2P9.10|F2P9_10\tprotein\ttaxon:3702\t20190907\tInterPro\t\tTAIR:locus:2031476"
	records, err := ParseAnnotations(strings.NewReader(row))
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "TAIR", got.DB)
	assert.Equal(t, "locus:2031476", got.DatabaseID)
	assert.Equal(t, model.CellularComponent, got.Aspect)
	assert.Equal(t, "AT1G74030", got.UniqueGeneName)
	assert.Equal(t, "AT1G74030|ENO1|enolase 1|F2P9.10|F2P9_10", got.AlternativeGeneName)
	assert.Equal(t, "TAIR:locus:2031476", got.GeneProductFormID)
}

func TestParseAnnotations_SkipsShortAndBadAspectRows(t *testing.T) {
	tooShort := "TAIR\tlocus:1\tENO1\n"
	badAspect := strings.Repeat("x\t", 8) + "Z\t" + strings.Repeat("x\t", 7) + "x"
	records, err := ParseAnnotations(strings.NewReader(tooShort + badAspect))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAnnotationRecord_FieldsRoundTrip(t *testing.T) {
	row := "TAIR\tlocus:1\tENO1\t\tGO:1\tref\tIEA\tadd\tC\tAT1\talt\tprotein\ttaxon:1\tdate\tby\text\tform"
	records, err := ParseAnnotations(strings.NewReader(row))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, strings.Split(row, "\t"), records[0].Fields())
}
