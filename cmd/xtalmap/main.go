// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "xtalmap",
	Short: "Map candidate atomic structures onto a reference crystal's superlattices",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "xtalmap.yaml", "path to the prim/structure YAML config")
	rootCmd.AddCommand(mapStructuresCmd, mapLatticesCmd, mapAtomsCmd)
}

func loadConfig() (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
