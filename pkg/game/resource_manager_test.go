package game

import (
	"testing"
	"testing/fstest"
)

const testResourceYAML = `version: "1.0"
base_path: assets
textures:
  - key: lighthouse
    path: images/lighthouse
  - key: boat
    path: images/boat.jpg
`

// TestLoadResourceConfig 测试资源配置解析和路径拼接
func TestLoadResourceConfig(t *testing.T) {
	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig([]byte(testResourceYAML)); err != nil {
		t.Fatalf("LoadResourceConfig() failed: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"lighthouse", "assets/images/lighthouse.png"},
		{"boat", "assets/images/boat.jpg"},
	}
	for _, tt := range tests {
		if got := rm.resourceMap[tt.key]; got != tt.expected {
			t.Errorf("resourceMap[%q] = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

// TestLoadResourceConfig_DuplicateKey 测试重复键报错
func TestLoadResourceConfig_DuplicateKey(t *testing.T) {
	rm := NewResourceManager(nil)
	err := rm.LoadResourceConfig([]byte("textures:\n  - {key: a, path: x}\n  - {key: a, path: y}\n"))
	if err == nil {
		t.Fatal("Expected duplicate key error")
	}
}

// TestTexture_FallbackIsSilent 测试缺失资源时静默降级
func TestTexture_FallbackIsSilent(t *testing.T) {
	fsys := fstest.MapFS{
		// 不是合法 PNG，解码会失败
		"assets/images/lighthouse.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	rm := NewResourceManager(fsys)
	if err := rm.LoadResourceConfig([]byte(testResourceYAML)); err != nil {
		t.Fatalf("LoadResourceConfig() failed: %v", err)
	}

	tests := []struct {
		name string
		key  string
	}{
		{"corrupt file", "lighthouse"},
		{"missing file", "boat"},
		{"unknown key", "kraken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, ok := rm.Texture(tt.key)
			if ok || img != nil {
				t.Errorf("Texture(%q) should fall back, got ok=%v", tt.key, ok)
			}
			if !rm.missing[tt.key] {
				t.Errorf("Texture(%q) should be remembered as missing", tt.key)
			}
		})
	}
}

// TestTexture_NilManager 测试空资源管理器
func TestTexture_NilManager(t *testing.T) {
	var rm *ResourceManager
	if _, ok := rm.Texture("lighthouse"); ok {
		t.Error("nil ResourceManager must report missing textures")
	}
}
