package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	driveHost       = "drive.google.com"
	driveFileMarker = "/file/d/"
	driveDirectPath = "/uc?export=view"
)

// ErrUnrecognizedShareLink is advisory: the URL belongs to the Drive
// host but its shape could not be rewritten. Callers log it and keep
// the URL as submitted; it never blocks a save.
var ErrUnrecognizedShareLink = errors.New("drive link format not recognized")

// NormalizeImageURL rewrites Google Drive "file view" sharing links
// (https://drive.google.com/file/d/<id>/view) into the direct-content
// form that can be embedded as an image. Non-Drive URLs and already
// direct links pass through unchanged, which makes the function
// idempotent: re-normalizing a stored value is a no-op.
func NormalizeImageURL(raw string) (string, error) {
	if !strings.Contains(raw, driveHost) {
		return raw, nil
	}

	marker := strings.Index(raw, driveFileMarker)
	if marker < 0 {
		if strings.Contains(raw, driveDirectPath) {
			return raw, nil
		}
		return raw, ErrUnrecognizedShareLink
	}

	id := raw[marker+len(driveFileMarker):]
	if cut := strings.IndexAny(id, "/?#"); cut >= 0 {
		id = id[:cut]
	}
	if id == "" {
		return raw, ErrUnrecognizedShareLink
	}

	return fmt.Sprintf("https://%s%s&id=%s", driveHost, driveDirectPath, id), nil
}
