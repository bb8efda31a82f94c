package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	path := os.Getenv("MEMGRAPH_RUNTIME_PATH")
	if path == "" {
		path = ".memgraph"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

// GetLogPath is resolved before configuration is parsed, because the
// logger has to exist before config parse errors can be reported.
func GetLogPath() string {
	return filepath.Join(GetRuntimePath(), "memgraph.log")
}
