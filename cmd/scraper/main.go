// Package main wires together the scraping pipeline binary.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/leadgenai/scraper/internal/batch"
	"github.com/leadgenai/scraper/internal/clock/system"
	"github.com/leadgenai/scraper/internal/config"
	"github.com/leadgenai/scraper/internal/extract"
	collyfetcher "github.com/leadgenai/scraper/internal/fetcher/colly"
	headlessfetcher "github.com/leadgenai/scraper/internal/fetcher/headless"
	"github.com/leadgenai/scraper/internal/id/uuid"
	"github.com/leadgenai/scraper/internal/llm"
	"github.com/leadgenai/scraper/internal/logging"
	"github.com/leadgenai/scraper/internal/normalize"
	"github.com/leadgenai/scraper/internal/retrieve"
	"github.com/leadgenai/scraper/internal/scraper"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	urlsFile := flag.String("urls-file", "", "File with one URL per line (otherwise URLs are taken from args)")
	fields := flag.String("fields", "", "Field-extraction prompt handed to the model (empty skips model parsing)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	urls, err := loadURLs(*urlsFile, flag.Args())
	if err != nil {
		logger.Fatal("load urls failed", zap.Error(err))
	}
	if len(urls) == 0 {
		logger.Fatal("no urls given; pass them as args or via --urls-file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := system.New()
	idGen := uuid.NewUUIDGenerator()

	strategies := []retrieve.Strategy{
		collyfetcher.New(collyfetcher.Config{
			UserAgent: cfg.Fetch.UserAgent,
			Timeout:   cfg.FetchTimeout(),
		}),
	}
	if cfg.Headless.Enabled {
		strategies = append(strategies, headlessfetcher.NewChromedp(headlessfetcher.Config{
			UserAgent:         cfg.Fetch.UserAgent,
			NavigationTimeout: cfg.NavTimeout(),
		}))
	}
	retriever, err := retrieve.New(strategies, cfg.Cache.Size, logger.Named("retrieve"))
	if err != nil {
		logger.Fatal("retriever init failed", zap.Error(err))
	}

	var completer scraper.Completer
	if *fields != "" {
		completer = llm.New(llm.Config{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		})
	}

	pipeline := batch.NewPipeline(
		retriever,
		normalize.New(),
		extract.New(extract.Config{
			MaxEmails:     cfg.Extract.MaxEmails,
			MaxPhones:     cfg.Extract.MaxPhones,
			MaxPerSocial:  cfg.Extract.MaxPerSocial,
			MaxAnchorScan: cfg.Extract.MaxAnchorScan,
		}),
		completer,
		batch.PipelineConfig{
			FetchTimeout: cfg.FetchTimeout(),
			ChunkMaxLen:  cfg.Chunk.MaxLen,
		},
		logger.Named("pipeline"),
	)

	orchestrator := batch.New(pipeline, idGen, clock, cfg.Batch.Concurrency, logger.Named("batch"))

	result, err := orchestrator.RunBatch(ctx, urls, *fields)
	if err != nil {
		logger.Fatal("batch run failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Fatal("encode results failed", zap.Error(err))
	}
}

func loadURLs(path string, args []string) ([]string, error) {
	if path == "" {
		return args, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open urls file: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read urls file: %w", err)
	}
	return append(urls, args...), nil
}
