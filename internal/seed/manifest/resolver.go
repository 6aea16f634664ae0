// Copyright (c) 2026 Oshidora. All rights reserved.

package manifest

import (
	"fmt"
	"log/slog"
	"path"
	"strings"
)

// Placeholder defaults, matching the local media server of the dev stack.
const (
	DefaultBaseURL = "http://localhost:8787/media"
	DefaultExt     = "svg"
)

// Resolver turns (kind, position, entity id) into an asset URL.
//
// A nil manifest or nil upload results are valid and mean "placeholders only".
type Resolver struct {
	manifest *Manifest
	uploads  UploadResults
	baseURL  string
	ext      string
}

// NewResolver builds a resolver over optional inputs.
func NewResolver(baseURL, ext string, manifest *Manifest, uploads UploadResults) *Resolver {
	return &Resolver{
		manifest: manifest,
		uploads:  uploads,
		baseURL:  strings.TrimRight(baseURL, "/"),
		ext:      ext,
	}
}

// Open loads both optional files and builds a resolver. Failures are logged as
// warnings and degrade to placeholders; an empty path disables that input.
func Open(manifestPath, uploadsPath, baseURL, ext string, logger *slog.Logger) *Resolver {
	var manifest *Manifest
	if manifestPath != "" {
		loaded, err := Load(manifestPath)
		if err != nil {
			logger.Warn("asset_manifest_unavailable",
				slog.String("path", manifestPath),
				slog.String("error", err.Error()),
			)
		} else {
			manifest = loaded
		}
	}

	var uploads UploadResults
	if uploadsPath != "" {
		loaded, err := LoadUploadResults(uploadsPath)
		if err != nil {
			logger.Warn("upload_result_unavailable",
				slog.String("path", uploadsPath),
				slog.String("error", err.Error()),
			)
		} else {
			uploads = loaded
		}
	}

	return NewResolver(baseURL, ext, manifest, uploads)
}

// URL returns the asset URL of the n-th (1-based) entity of kind.
//
// Resolution order: the uploaded URL of the n-th manifest asset, then a URL
// built from that asset id, then the placeholder <base>/<kind>/<id>.<ext>.
func (r *Resolver) URL(kind Kind, n int, entityID string) string {
	if assetID := r.assetID(kind, n); assetID != "" {
		if uploaded, ok := r.uploads[assetID]; ok {
			return uploaded
		}
		if path.Ext(assetID) != "" {
			return fmt.Sprintf("%s/%s/%s", r.baseURL, kind, assetID)
		}
		return fmt.Sprintf("%s/%s/%s.%s", r.baseURL, kind, assetID, r.ext)
	}

	return fmt.Sprintf("%s/%s/%s.%s", r.baseURL, kind, entityID, r.ext)
}

// SNSLinks returns the links listed for a cast, or nil.
func (r *Resolver) SNSLinks(castID string) []string {
	if r.manifest == nil {
		return nil
	}
	return r.manifest.SNSLinks[castID]
}

// Bound reports how many entities of kind have a manifest asset.
func (r *Resolver) Bound(kind Kind) int {
	if r == nil || r.manifest == nil {
		return 0
	}
	return len(r.manifest.Assets.List(kind))
}

func (r *Resolver) assetID(kind Kind, n int) string {
	if r.manifest == nil || n < 1 {
		return ""
	}
	list := r.manifest.Assets.List(kind)
	if n > len(list) {
		return ""
	}
	return list[n-1]
}
