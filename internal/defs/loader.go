// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadTowerDefinitions reads the tower configuration file and builds a TowerLibrary.
// An empty path yields the stock library.
func LoadTowerDefinitions(path string) (*TowerLibrary, error) {
	if path == "" {
		return NewTowerLibrary(DefaultTowers())
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	lib, err := NewTowerLibrary(towerDefs)
	if err != nil {
		return nil, fmt.Errorf("invalid tower definitions in %s: %w", path, err)
	}

	slog.Info("loaded tower definitions", "count", lib.Len(), "path", path)
	return lib, nil
}
