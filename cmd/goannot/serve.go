package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/araport/goannot/internal/auditlog"
	"github.com/araport/goannot/internal/config"
	"github.com/araport/goannot/internal/httpapi"
	"github.com/araport/goannot/internal/index"
	"github.com/araport/goannot/internal/logging"
	"github.com/araport/goannot/internal/notify"
	"github.com/araport/goannot/internal/resultcache"
	"github.com/araport/goannot/internal/snapshot"
)

func newServeCmd() *cobra.Command {
	var (
		genesPath       string
		annotationsPath string
		addr            string
		redisAddr       string
		auditDBPath     string
		debug           bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP query server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(genesPath, annotationsPath, addr, redisAddr, auditDBPath, debug)
		},
	}

	cmd.Flags().StringVar(&genesPath, "genes", "", "path to the gene-list file (falls back to GENES_FILE)")
	cmd.Flags().StringVar(&annotationsPath, "annotations", "", "path to the GAF annotation file (falls back to ANNOTATIONS_FILE)")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (falls back to GOANNOT_ADDR, default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for result-count caching (falls back to GOANNOT_REDIS_ADDR; disabled if empty)")
	cmd.Flags().StringVar(&auditDBPath, "audit-db", "", "DuckDB file for query audit logging (falls back to GOANNOT_AUDIT_DB; disabled if empty)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose development logging")

	return cmd
}

func runServe(genesPath, annotationsPath, addr, redisAddr, auditDBPath string, debug bool) error {
	genesPath, annotationsPath, err := resolveInputPaths(genesPath, annotationsPath)
	if err != nil {
		return err
	}
	addr, redisAddr, auditDBPath = resolveServeSettings(addr, redisAddr, auditDBPath)

	log, err := logging.New(debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	genes, annos, err := loadAndClassify(genesPath, annotationsPath)
	if err != nil {
		return fmt.Errorf("load initial snapshot: %w", err)
	}
	idx := index.Build(genes.genes, annos.annos)

	registry := snapshot.NewRegistry()
	registry.Store(&snapshot.AppData{
		Index:              idx,
		GeneMetadata:       genes.metadata,
		GeneHeader:         genes.header,
		AnnotationMetadata: annos.metadata,
		AnnotationHeader:   annos.header,
	})

	cache := resultcache.Dial(redisAddr)
	defer cache.Close()

	var audit *auditlog.Log
	if auditDBPath != "" {
		audit, err = auditlog.Open(auditDBPath)
		if err != nil {
			return fmt.Errorf("open audit log: %w", err)
		}
		defer audit.Close()
	}

	hub := notify.NewHub(log)
	server := httpapi.NewServer(registry, cache, audit, hub, log, genesPath, annotationsPath)

	log.Info("starting goannot server", zap.String("addr", addr),
		zap.Int("gene_count", idx.GeneCount()), zap.Int("annotation_count", idx.AnnotationCount()))
	return http.ListenAndServe(addr, server.Router())
}

// resolveServeSettings fills in addr/redisAddr/auditDBPath from GOANNOT_ADDR,
// GOANNOT_REDIS_ADDR, and GOANNOT_AUDIT_DB whenever the corresponding flag
// was left empty. Flags always take priority.
func resolveServeSettings(addr, redisAddr, auditDBPath string) (string, string, string) {
	if addr != "" && redisAddr != "" && auditDBPath != "" {
		return addr, redisAddr, auditDBPath
	}

	cfg := config.Resolve()
	if addr == "" {
		addr = cfg.Addr
	}
	if redisAddr == "" {
		redisAddr = cfg.RedisAddr
	}
	if auditDBPath == "" {
		auditDBPath = cfg.AuditDB
	}
	return addr, redisAddr, auditDBPath
}
