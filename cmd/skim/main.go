// skim is a personal terminal news reader. Every article is analyzed
// before display - information-density score, topics, sentiment, and a
// generated TL;DR - and the reader gets a gentle nudge when recent
// consumption concentrates on one topic.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/skim/internal/analyze"
	"github.com/abelbrown/skim/internal/config"
	"github.com/abelbrown/skim/internal/coord"
	"github.com/abelbrown/skim/internal/fetch"
	"github.com/abelbrown/skim/internal/logging"
	"github.com/abelbrown/skim/internal/store"
	"github.com/abelbrown/skim/internal/ui"
)

func main() {
	dataDir, err := config.DataDir()
	if err != nil {
		fatal("Failed to prepare data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	// Configuration errors are fatal here, at load time. Nothing
	// downstream revalidates.
	cfg, err := config.Load(config.Path(dataDir))
	if err != nil {
		fatal("Invalid configuration: %v", err)
	}

	sources, err := fetch.LoadSources(filepath.Join(dataDir, "sources.yaml"))
	if err != nil {
		fatal("Invalid sources file: %v", err)
	}
	logging.Info("sources loaded", "count", len(sources))

	st, err := store.Open(filepath.Join(dataDir, "skim.db"))
	if err != nil {
		fatal("Failed to open database: %v", err)
	}
	defer st.Close()

	analyzer := analyze.NewAnalyzer(cfg.Analysis, analyze.LexiconSentiment{})
	fetcher := fetch.NewFetcher(30 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coordinator := coord.New(st, fetcher, analyzer, sources,
		time.Duration(cfg.FetchIntervalMinutes)*time.Minute)

	app := ui.New(st, cfg.Drift, cfg.UI.ItemLimit, cfg.UI.ShowRead)
	p := tea.NewProgram(app, tea.WithAltScreen())

	coordinator.Start(ctx, p)

	if _, err := p.Run(); err != nil {
		logging.Error("application error", "error", err)
		fatal("Error: %v", err)
	}

	cancel()
	coordinator.Wait()
	logging.Info("skim exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
