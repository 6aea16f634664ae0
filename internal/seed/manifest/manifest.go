// Copyright (c) 2026 Oshidora. All rights reserved.

/*
Package manifest reads the optional asset inputs of the seed generator.

Two JSON files may sit next to the generator:

  - the asset manifest, listing pre-rendered asset ids per entity kind plus
    SNS links keyed by cast id;
  - the upload result, mapping asset ids to the URLs they were uploaded to.

Both are best-effort. A missing or malformed file is reported to the caller,
which logs a warning and falls back to placeholder URLs. Asset binding never
changes which entities are generated, only their URL fields.
*/
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Kind names a family of generated entities that carries an image.
type Kind string

const (
	KindCasts   Kind = "casts"
	KindWorks   Kind = "works"
	KindVideos  Kind = "videos"
	KindUsers   Kind = "users"
	KindNotices Kind = "notices"
)

// Kinds lists every asset kind.
func Kinds() []Kind {
	return []Kind{KindCasts, KindWorks, KindVideos, KindUsers, KindNotices}
}

// AssetLists holds the ordered asset ids of each kind.
// The n-th generated entity of a kind binds to the n-th id.
type AssetLists struct {
	Casts   []string `json:"casts"`
	Works   []string `json:"works"`
	Videos  []string `json:"videos"`
	Users   []string `json:"users"`
	Notices []string `json:"notices"`
}

// List returns the asset ids of kind, or nil for an unknown kind.
func (a AssetLists) List(kind Kind) []string {
	switch kind {
	case KindCasts:
		return a.Casts
	case KindWorks:
		return a.Works
	case KindVideos:
		return a.Videos
	case KindUsers:
		return a.Users
	case KindNotices:
		return a.Notices
	}
	return nil
}

// Manifest is the parsed asset manifest. The zero value is a valid, empty manifest.
type Manifest struct {
	Version  int                 `json:"version"`
	Assets   AssetLists          `json:"assets"`
	SNSLinks map[string][]string `json:"snsLinks"`
}

// Parse decodes and normalizes a manifest document.
//
// Asset ids and links are trimmed; blank ids keep their position (so later
// entities stay bound to the right asset) but resolve to placeholders.
func Parse(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &manifest); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	for _, list := range [][]string{
		manifest.Assets.Casts, manifest.Assets.Works, manifest.Assets.Videos,
		manifest.Assets.Users, manifest.Assets.Notices,
	} {
		for i := range list {
			list[i] = strings.TrimSpace(list[i])
		}
	}

	links := make(map[string][]string, len(manifest.SNSLinks))
	for castID, urls := range manifest.SNSLinks {
		var kept []string
		for _, link := range urls {
			if link = strings.TrimSpace(link); link != "" {
				kept = append(kept, link)
			}
		}
		links[strings.TrimSpace(castID)] = kept
	}
	manifest.SNSLinks = links

	return &manifest, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data)
}

// # Upload Results

// UploadResults maps an asset id to its uploaded URL.
type UploadResults map[string]string

// uploadEntry accepts both "id": "url" and "id": {"url": "..."} entries.
type uploadEntry struct {
	URL string `json:"url"`
}

// ParseUploadResults decodes an upload-result document.
func ParseUploadResults(data []byte) (UploadResults, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &raw); err != nil {
		return nil, fmt.Errorf("manifest: decode upload results: %w", err)
	}

	results := make(UploadResults, len(raw))
	for assetID, value := range raw {
		var url string
		if err := json.Unmarshal(value, &url); err != nil {
			var entry uploadEntry
			if err := json.Unmarshal(value, &entry); err != nil {
				return nil, fmt.Errorf("manifest: upload result %q: %w", assetID, err)
			}
			url = entry.URL
		}

		if url = strings.TrimSpace(url); url != "" {
			results[strings.TrimSpace(assetID)] = url
		}
	}

	return results, nil
}

// LoadUploadResults reads and parses the upload-result file at path.
func LoadUploadResults(path string) (UploadResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return ParseUploadResults(data)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
