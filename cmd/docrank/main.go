package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/documentterm/docrank/api"
	"github.com/documentterm/docrank/config"
	"github.com/documentterm/docrank/internal/corpus"
	"github.com/documentterm/docrank/internal/logging"
	"github.com/documentterm/docrank/internal/metrics"
	"github.com/documentterm/docrank/internal/search"
	"github.com/documentterm/docrank/internal/tokenizer"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to YAML config file")
		dir        = flag.String("dir", "", "Directory containing the documents (overrides config)")
		query      = flag.String("query", "", "Search query (overrides config)")
		serve      = flag.Bool("serve", false, "Run the HTTP search API instead of a one-shot ranking")
		port       = flag.Int("port", 0, "Port for the HTTP server (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("docrank - TF-IDF document ranking\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s --dir ./books --query \"cold winter\"   # rank documents and print scores\n", os.Args[0])
		fmt.Printf("  %s --dir ./books --serve --port 9000     # serve the ranking API\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("docrank v1.0.0\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Corpus.Dir = *dir
	}
	if *query != "" {
		cfg.Corpus.Query = *query
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithComponent("main")

	tok := tokenizer.New(cfg.Tokenizer.Delimiters...)
	source := corpus.NewFSSource(cfg.Corpus.Dir)

	logger.Info("loading corpus", "dir", cfg.Corpus.Dir)
	service, err := search.NewService(source, tok)
	if err != nil {
		logger.Error("failed to load corpus", "error", err)
		os.Exit(1)
	}

	if *serve {
		runServer(cfg, service, logger)
		return
	}

	if cfg.Corpus.Query == "" {
		fmt.Fprintln(os.Stderr, "No query given: use --query or set corpus.query in the config file")
		os.Exit(1)
	}

	result, err := service.Search(cfg.Corpus.Query)
	if err != nil {
		logger.Error("ranking failed", "query", cfg.Corpus.Query, "error", err)
		os.Exit(1)
	}

	for _, group := range result.Groups {
		for _, document := range group.Documents {
			fmt.Printf("Score: %g, Document: %s\n", group.Score, document)
		}
	}
}

func runServer(cfg *config.Config, service *search.Service, logger *slog.Logger) {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		m.CorpusDocuments.Set(float64(service.DocumentCount()))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, service, m)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info("starting server", "addr", addr, "documents", service.DocumentCount())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
