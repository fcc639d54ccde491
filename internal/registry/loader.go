package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"nlpd/internal/common/fsutil"
	"nlpd/pkg/types"
)

// LoadDir scans dir for model directories. ID is the directory name; Path is
// the absolute directory path. Hidden directories and plain files are skipped.
func LoadDir(dir string) ([]types.Model, error) {
	abs, err := fsutil.ResolvePath(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		models = append(models, types.Model{ID: e.Name(), Path: filepath.Join(abs, e.Name())})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].ID < models[j].ID })
	return models, nil
}

// Resolve maps a model name to its directory under modelsDir. An empty name
// selects the built-in model and resolves to "".
func Resolve(modelsDir, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	models, err := LoadDir(modelsDir)
	if err != nil {
		return "", fmt.Errorf("model %q: %w", name, err)
	}
	for _, m := range models {
		if m.ID == name {
			return m.Path, nil
		}
	}
	return "", fmt.Errorf("model %q not found in %s", name, modelsDir)
}
