package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

const (
	cssAssetPath   = "static/css/app.css"
	appJSAssetPath = "static/js/scale.js"
)

var (
	cssVersion        string
	appJSVersion      string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(logger *zap.Logger) {
	assetVersionsOnce.Do(func() {
		cssVersion = computeFileHash(cssAssetPath, logger)
		appJSVersion = computeFileHash(appJSAssetPath, logger)
		logger.Info("Asset versions initialized",
			zap.String("css", GetCSSVersion(context.Background())),
			zap.String("app_js", GetAppJSVersion(context.Background())))
	})
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string, logger *zap.Logger) string {
	file, err := os.Open(path)
	if err != nil {
		logger.Warn("Failed to open file for hashing", zap.String("path", path), zap.Error(err))
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Warn("Failed to hash file", zap.String("path", path), zap.Error(err))
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetCSSVersion returns the stylesheet version hash for cache busting.
// ctx matches the other template helpers; the version is global.
func GetCSSVersion(ctx context.Context) string {
	if cssVersion == "" {
		return "1"
	}
	return cssVersion
}

// GetAppJSVersion returns the scale.js version hash for cache busting
func GetAppJSVersion(ctx context.Context) string {
	if appJSVersion == "" {
		return "1"
	}
	return appJSVersion
}
