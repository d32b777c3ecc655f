package game

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	textures:
//	  - key: lighthouse
//	    path: images/lighthouse
type ResourceConfig struct {
	Version  string            `yaml:"version"`   // Configuration file version
	BasePath string            `yaml:"base_path"` // Base path for all textures (e.g., "assets")
	Textures []TextureResource `yaml:"textures"`  // Texture definitions keyed by logical name
}

// TextureResource maps a logical texture key to an image file.
//
// Fields:
//   - Key: Logical name requested by entities (e.g., "lighthouse", "boat")
//   - Path: Relative path from base_path (".png" is appended when no extension is given)
type TextureResource struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

// ParseResourceConfig parses resource configuration YAML.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	seen := make(map[string]bool, len(config.Textures))
	for i, tex := range config.Textures {
		if tex.Key == "" {
			return nil, fmt.Errorf("textures[%d]: key is required", i)
		}
		if seen[tex.Key] {
			return nil, fmt.Errorf("textures[%d]: duplicate key %q", i, tex.Key)
		}
		seen[tex.Key] = true
	}
	return &config, nil
}

// TexturePath returns the file path of tex relative to the asset root.
func (c *ResourceConfig) TexturePath(tex TextureResource) string {
	return buildFullPath(c.BasePath, tex.Path)
}

// buildFullPath joins the base path and a relative resource path,
// defaulting the extension to ".png".
func buildFullPath(basePath, relativePath string) string {
	full := relativePath
	if basePath != "" {
		full = path.Join(basePath, relativePath)
	}
	if path.Ext(full) == "" {
		full += ".png"
	}
	return full
}
