package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/taskmill/internal/config"
	"github.com/vk/taskmill/internal/fsutil"
	"github.com/vk/taskmill/internal/hclfile"
	"github.com/vk/taskmill/internal/tomlfile"
	"github.com/vk/taskmill/internal/yamlfile"
)

// resolveTaskfile turns the configured path into a concrete taskfile path,
// probing the working directory for default names when none was given.
func resolveTaskfile(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return fsutil.FindTaskfile(".")
}

// loaderForPath selects the format-specific loader by file extension.
func loaderForPath(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hclfile.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlfile.NewLoader(), nil
	case ".toml":
		return tomlfile.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported taskfile format: %s", path)
	}
}
