package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"orderdeck/internal/api"
	"orderdeck/internal/config"
	"orderdeck/internal/logging"
	"orderdeck/internal/ui"
)

func main() {
	var configPath string
	var baseURL string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&baseURL, "url", "", "Orders service base URL (overrides config)")
	flag.Parse()

	// Load configuration
	configSvc := config.NewService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	// Set up the operational log; the terminal belongs to the TUI
	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	client := api.NewClient(cfg.API.BaseURL, timeout, logger)

	router := ui.NewRouter(client, timeout, logger)
	model := ui.NewModel(client, router, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	router.SetProgram(p)

	logger.Info().Str("url", cfg.API.BaseURL).Msg("starting orderdeck")
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
