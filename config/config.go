// Package config holds the build configuration for the deck pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config structure
type Config struct {
	AssetDir     string `json:"assetDir"`               // Directory with static images
	ChartDir     string `json:"chartDir"`               // Directory for generated charts and the chart manifest
	OutputDir    string `json:"outputDir"`              // Directory the artifacts are written into
	LogDir       string `json:"logDir"`                 // Directory for build logs
	Bibliography string `json:"bibliography,omitempty"` // Optional bibliography file (.json or .html)

	DeckFile    string `json:"deckFile"`    // PPTX output name
	HandoutFile string `json:"handoutFile"` // PDF handout output name
	NotesFile   string `json:"notesFile"`   // DOCX speaker notes output name
	ReportFile  string `json:"reportFile"`  // XLSX build report output name

	StrictWarnings bool `json:"strictWarnings"` // Treat style warnings as build failures
	ParallelCharts bool `json:"parallelCharts"` // Render charts concurrently
	DetailedLog    bool `json:"detailedLog"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		AssetDir:    "assets",
		ChartDir:    "charts",
		OutputDir:   "dist",
		LogDir:      "logs",
		DeckFile:    "presentation.pptx",
		HandoutFile: "handout.pdf",
		NotesFile:   "speaker_notes.docx",
		ReportFile:  "build_report.xlsx",
	}
}

// Load reads the config from path, returning defaults if the file does not
// exist. Missing fields fall back to their defaults as well.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.AssetDir == "" {
		cfg.AssetDir = def.AssetDir
	}
	if cfg.ChartDir == "" {
		cfg.ChartDir = def.ChartDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.LogDir == "" {
		cfg.LogDir = def.LogDir
	}
	if cfg.DeckFile == "" {
		cfg.DeckFile = def.DeckFile
	}
	if cfg.HandoutFile == "" {
		cfg.HandoutFile = def.HandoutFile
	}
	if cfg.NotesFile == "" {
		cfg.NotesFile = def.NotesFile
	}
	if cfg.ReportFile == "" {
		cfg.ReportFile = def.ReportFile
	}
}
