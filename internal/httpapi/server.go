// Package httpapi exposes the index as a gorilla/mux HTTP API: a segment
// query endpoint that answers in JSON or streams the matching GAF/gene-csv
// bytes, a websocket endpoint that announces new snapshot generations, and
// a reload endpoint that re-ingests the configured files.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/araport/goannot/internal/auditlog"
	"github.com/araport/goannot/internal/export"
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/ingest"
	"github.com/araport/goannot/internal/model"
	"github.com/araport/goannot/internal/notify"
	"github.com/araport/goannot/internal/query"
	"github.com/araport/goannot/internal/resultcache"
	"github.com/araport/goannot/internal/snapshot"
)

// Server holds the collaborators the HTTP handlers need: the snapshot
// registry (the only mutable state), and the optional cache/audit/notify
// facilities, each of which degrades to a no-op when unconfigured.
type Server struct {
	registry *snapshot.Registry
	cache    *resultcache.Cache
	audit    *auditlog.Log
	hub      *notify.Hub
	log      *zap.Logger

	genesPath, annotationsPath string
}

// NewServer wires a Server. cache, audit, and hub may be nil.
func NewServer(registry *snapshot.Registry, cache *resultcache.Cache, audit *auditlog.Log, hub *notify.Hub, log *zap.Logger, genesPath, annotationsPath string) *Server {
	return &Server{
		registry:        registry,
		cache:           cache,
		audit:           audit,
		hub:             hub,
		log:             log,
		genesPath:       genesPath,
		annotationsPath: annotationsPath,
	}
}

// Router builds the gorilla/mux router exposing the HTTP surface.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/genes", s.handleGenes).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/reload", s.handleReload).Methods(http.MethodPost)
	if s.hub != nil {
		r.HandleFunc("/api/v1/watch", s.hub.ServeHTTP).Methods(http.MethodGet)
	}
	return r
}

type segmentPayload struct {
	Aspect string `json:"aspect"`
	Status string `json:"status"`
}

type countResponse struct {
	GeneCount          int    `json:"gene_count"`
	AnnotationCount    int    `json:"annotation_count"`
	GeneMetadata       string `json:"gene_metadata"`
	AnnotationMetadata string `json:"annotation_metadata"`
}

// handleGenes implements GET /api/v1/genes. filter is accepted but, matching
// the observed behavior of the system this façade fronts, does not
// currently narrow the query; it is validated and otherwise ignored.
func (s *Server) handleGenes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	filter := valueOrDefault(r.URL.Query().Get("filter"), "all")
	if filter != "all" && filter != "include_protein" {
		http.Error(w, fmt.Sprintf("unknown filter %q", filter), http.StatusBadRequest)
		return
	}

	strategy := valueOrDefault(r.URL.Query().Get("strategy"), "union")
	format := valueOrDefault(r.URL.Query().Get("format"), "json")

	var payload []segmentPayload
	if r.Body != nil {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && err.Error() != "EOF" {
			http.Error(w, fmt.Sprintf("decoding segments: %v", err), http.StatusBadRequest)
			return
		}
	}

	segments := make([]query.Segment, 0, len(payload))
	for _, p := range payload {
		aspect, err := model.ParseAspect(p.Aspect)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		status, err := model.ParseStatus(p.Status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		segments = append(segments, query.Segment{Aspect: aspect, Status: status})
	}

	var q query.Query
	switch strategy {
	case "union":
		q = query.Query{Kind: query.Union, Segments: segments}
	case "intersection":
		q = query.Query{Kind: query.Intersection, Segments: segments}
	default:
		http.Error(w, fmt.Sprintf("unknown strategy %q", strategy), http.StatusBadRequest)
		return
	}

	data, ok := s.registry.Load()
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return
	}

	cacheKey := resultcache.Key(data.Generation, strategy, segmentTokens(segments))
	if format == "json" {
		if counts, hit := s.cache.Get(r.Context(), cacheKey); hit {
			writeJSON(w, countResponse{
				GeneCount:          counts.GeneCount,
				AnnotationCount:    counts.AnnotationCount,
				GeneMetadata:       data.GeneMetadata,
				AnnotationMetadata: data.AnnotationMetadata,
			})
			return
		}
	}

	result := query.Execute(data.Index, q)
	s.recordAudit(r.Context(), data.Generation, strategy, segmentTokens(segments), format, result, start)

	switch format {
	case "json":
		s.cache.Set(r.Context(), cacheKey, resultcache.Counts{
			GeneCount:       result.GeneCount(),
			AnnotationCount: result.AnnotationCount(),
		})
		writeJSON(w, countResponse{
			GeneCount:          result.GeneCount(),
			AnnotationCount:    result.AnnotationCount(),
			GeneMetadata:       data.GeneMetadata,
			AnnotationMetadata: data.AnnotationMetadata,
		})
	case "gaf":
		w.Header().Set("Content-Type", "text/tab-separated-values")
		chunker := export.Annotations(data.AnnotationMetadata, data.AnnotationHeader, export.AnnotationRecords(result.Annotations()))
		streamChunks(w, chunker, s.log)
	case "gene-csv":
		w.Header().Set("Content-Type", "text/tab-separated-values")
		chunker := export.Genes(data.GeneMetadata, data.GeneHeader, export.GeneRecords(result.Genes()))
		streamChunks(w, chunker, s.log)
	default:
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
	}
}

// handleReload re-ingests the gene and annotation files from their
// original paths and publishes the result as a new snapshot generation,
// notifying any watching websocket clients.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	genes, annos, err := ingest.LoadBoth(s.genesPath, s.annotationsPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	geneModels := make([]model.Gene, 0, len(genes.Records))
	for _, rec := range genes.Records {
		geneModels = append(geneModels, model.NewGene(rec))
	}
	annoModels := make([]model.Annotation, 0, len(annos.Records))
	for _, rec := range annos.Records {
		annoModels = append(annoModels, model.Classify(rec, model.DefaultExperimentalEvidence))
	}

	idx := index.Build(geneModels, annoModels)
	data := s.registry.Store(&snapshot.AppData{
		Index:              idx,
		GeneMetadata:       genes.Metadata,
		GeneHeader:         genes.Header,
		AnnotationMetadata: annos.Metadata,
		AnnotationHeader:   annos.Header,
	})

	if s.hub != nil {
		s.hub.Broadcast(data.Generation)
	}
	writeJSON(w, map[string]uint64{"generation": data.Generation})
}

func (s *Server) recordAudit(ctx context.Context, generation uint64, strategy string, segments []string, format string, result query.QueryResult, start time.Time) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, auditlog.Event{
		Timestamp:       time.Now(),
		Generation:      generation,
		Strategy:        strategy,
		Segments:        strings.Join(segments, ";"),
		Format:          format,
		GeneCount:       result.GeneCount(),
		AnnotationCount: result.AnnotationCount(),
		DurationMillis:  time.Since(start).Milliseconds(),
	})
}

func segmentTokens(segments []query.Segment) []string {
	tokens := make([]string, len(segments))
	for i, seg := range segments {
		tokens[i] = seg.Aspect.String() + "," + seg.Status.String()
	}
	return tokens
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
