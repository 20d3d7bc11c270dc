package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the server's JSON configuration file. Zero values pick
// defaults.
type Config struct {
	Listen             string   `json:"listen"`
	DataDir            string   `json:"data_dir"`
	RulesFile          string   `json:"rules_file"`
	Brokers            []string `json:"brokers"`
	Topic              string   `json:"topic"`
	CheckpointInterval string   `json:"checkpoint_interval"`
}

func loadConfig(path string) (Config, error) {
	cfg := Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.Topic == "" {
		cfg.Topic = "heimdall.reloads"
	}
	if cfg.CheckpointInterval == "" {
		cfg.CheckpointInterval = "30s"
	}
	return cfg, nil
}

func (c Config) checkpointEvery() time.Duration {
	d, err := time.ParseDuration(c.CheckpointInterval)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func (c Config) journalDir() string    { return filepath.Join(c.DataDir, "journal") }
func (c Config) outboxDir() string     { return filepath.Join(c.DataDir, "outbox") }
func (c Config) checkpointDir() string { return filepath.Join(c.DataDir, "checkpoint") }
