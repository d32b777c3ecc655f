package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceManager is responsible for centralized management of scene textures.
// It maps logical texture keys to image files and caches decoded images,
// ensuring that each file is decoded only once.
//
// Missing art is never an error for callers: Texture reports ok=false and
// the entity draws its procedural placeholder instead. The failure is
// logged once per key.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use standard Go maps and
// are only touched from the game loop.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("."))
//	_ = rm.LoadResourceConfig(data)
//	if img, ok := rm.Texture("lighthouse"); ok {
//	    screen.DrawImage(img, op)
//	}
type ResourceManager struct {
	fsys        fs.FS                    // Filesystem textures are read from
	imageCache  map[string]*ebiten.Image // Cache for decoded images: path -> Image
	resourceMap map[string]string        // Texture key -> file path
	missing     map[string]bool          // Keys already reported as missing
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// fsys may be nil, in which case every texture falls back to its placeholder.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
		missing:     make(map[string]bool),
	}
}

// LoadResourceConfig parses resource configuration YAML and rebuilds the
// key -> path mapping.
func (rm *ResourceManager) LoadResourceConfig(data []byte) error {
	config, err := ParseResourceConfig(data)
	if err != nil {
		return err
	}

	rm.resourceMap = make(map[string]string, len(config.Textures))
	for _, tex := range config.Textures {
		rm.resourceMap[tex.Key] = config.TexturePath(tex)
	}
	log.Printf("[ResourceManager] Registered %d texture keys", len(rm.resourceMap))
	return nil
}

// LoadImage loads an image file from the resource filesystem and caches it.
//
// Returns an error if the file does not exist or cannot be decoded.
// Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}
	if rm.fsys == nil {
		return nil, fmt.Errorf("no resource filesystem configured for %s", path)
	}

	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// Texture returns the texture registered under key.
// ok is false when the key is unknown or its file cannot be loaded; the
// caller then draws a procedural placeholder. Failures are logged once.
func (rm *ResourceManager) Texture(key string) (*ebiten.Image, bool) {
	if rm == nil {
		return nil, false
	}
	if rm.missing[key] {
		return nil, false
	}

	filePath, exists := rm.resourceMap[key]
	if !exists {
		rm.markMissing(key, fmt.Errorf("texture key not registered"))
		return nil, false
	}

	img, err := rm.LoadImage(filePath)
	if err != nil {
		rm.markMissing(key, err)
		return nil, false
	}
	return img, true
}

// markMissing records a missing texture so it is logged and retried only once.
func (rm *ResourceManager) markMissing(key string, err error) {
	rm.missing[key] = true
	log.Printf("[ResourceManager] Texture %q unavailable, using placeholder: %v", key, err)
}
