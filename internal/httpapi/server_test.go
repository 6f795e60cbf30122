package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/model"
	"github.com/araport/goannot/internal/snapshot"
)

func newTestServer(t *testing.T) (*Server, *snapshot.Registry) {
	t.Helper()
	genes := []model.Gene{model.NewGene(model.GeneRecord{GeneID: "A", GeneProductType: "protein"})}
	annos := []model.Annotation{
		{
			Record:           model.AnnotationRecord{Aspect: model.MolecularFunction, UniqueGeneName: "A"},
			Aspect:           model.MolecularFunction,
			AnnotationStatus: model.KnownExperimental,
		},
	}
	idx := index.Build(genes, annos)

	registry := snapshot.NewRegistry()
	registry.Store(&snapshot.AppData{
		Index:              idx,
		GeneMetadata:       "!genes\n",
		GeneHeader:         "gene_id\tgene_product_type\n",
		AnnotationMetadata: "!annos\n",
		AnnotationHeader:   "header\n",
	})

	srv := NewServer(registry, nil, nil, nil, zap.NewNop(), "genes.tsv", "annos.gaf")
	return srv, registry
}

func TestHandleGenes_JSONFormat(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/genes?strategy=union&format=json", strings.NewReader(`[{"aspect":"F","status":"EXP"}]`))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp countResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.GeneCount)
	assert.Equal(t, 1, resp.AnnotationCount)
	assert.Equal(t, "!genes\n", resp.GeneMetadata)
}

func TestHandleGenes_GAFFormatStreamsBytes(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/genes?strategy=union&format=gaf", strings.NewReader(`[{"aspect":"F","status":"EXP"}]`))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "!annos\n")
	assert.Contains(t, rec.Body.String(), "header\n")
}

func TestHandleGenes_UnknownFilterRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/genes?filter=bogus", nil)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReload_PublishesNewGeneration(t *testing.T) {
	srv, registry := newTestServer(t)
	before, _ := registry.Load()

	dir := t.TempDir()
	genesPath := dir + "/genes.tsv"
	annosPath := dir + "/annos.gaf"
	require.NoError(t, os.WriteFile(genesPath, []byte("gene_id\tgene_product_type\nA\tprotein\n"), 0o644))
	require.NoError(t, os.WriteFile(annosPath, []byte("header\nTAIR\tlocus:1\tA\t\tGO:1\tref\tEXP\t\tF\tA\talt\tprotein\ttaxon:1\td\tTAIR\t\t\n"), 0o644))

	srv.genesPath = genesPath
	srv.annotationsPath = annosPath

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reload", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	after, _ := registry.Load()
	assert.Greater(t, after.Generation, before.Generation)
}
