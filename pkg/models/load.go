package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Formats lists the file extensions Load understands.
var Formats = []string{".txt", ".off", ".dat", ".csv", ".obj", ".glb", ".gltf"}

// Load reads a model file, picking the loader from its extension.
func Load(path string) (*Object, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".off", ".dat":
		return LoadTextFile(path)
	case ".csv":
		return LoadCSVFile(path)
	case ".obj":
		return LoadOBJFile(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
}
