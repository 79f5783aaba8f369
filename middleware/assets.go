package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// VersionedAssets lists the static files whose URLs carry a content hash
var VersionedAssets = []string{
	"css/site.css",
	"js/site.js",
	"images/logo512.png",
}

var (
	assetVersions   map[string]string
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(VersionedAssets))
	for _, name := range VersionedAssets {
		version := computeFileHash(filepath.Join(staticDir, name))
		if version == "" {
			version = "1"
		}
		versions[name] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash for a file under the static dir.
// Note: ctx parameter is for API consistency with other middleware helpers,
// the versions are computed once at startup and are global
func AssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[name]; ok {
		return version
	}
	return "1"
}
