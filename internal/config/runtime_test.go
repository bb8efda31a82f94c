package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRuntimePathFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEMGRAPH_RUNTIME_PATH", dir)

	assert.Equal(t, dir, GetRuntimePath())
}

func TestGetRuntimePathRelativeResolvesUnderHome(t *testing.T) {
	t.Setenv("MEMGRAPH_RUNTIME_PATH", "")

	path := GetRuntimePath()
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, ".memgraph", filepath.Base(path))
}

func TestGetLogPathIsUnderRuntimePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MEMGRAPH_RUNTIME_PATH", dir)

	assert.Equal(t, filepath.Join(dir, "memgraph.log"), GetLogPath())
}
