package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iac-appeals/aip-sync/common/id"
	"github.com/iac-appeals/aip-sync/internal/model"
)

// ErrDocumentNotFound is returned when a file id has no entry in the
// document map. Callers render document links, so a missing mapping must be
// an observable error rather than a silently broken link.
var ErrDocumentNotFound = errors.New("document not found in map")

// AddToDocumentMap registers a document-store URL under a stable internal id
// and returns that id. Re-adding a URL already in the map returns the
// existing id; the mapper never overwrites a mapping it holds.
func AddToDocumentMap(url string, docMap *[]model.DocumentMapEntry) string {
	for _, entry := range *docMap {
		if entry.URL == url {
			return entry.ID
		}
	}
	fileID := id.NewString()
	*docMap = append(*docMap, model.DocumentMapEntry{ID: fileID, URL: url})
	return fileID
}

// DocumentMapToDocStoreURL resolves an internal file id back to the external
// document-store URL.
func DocumentMapToDocStoreURL(fileID string, docMap []model.DocumentMapEntry) (string, error) {
	for _, entry := range docMap {
		if entry.ID == fileID {
			return entry.URL, nil
		}
	}
	return "", fmt.Errorf("resolving file id %q: %w", fileID, ErrDocumentNotFound)
}

// FileIDToName derives the display name from a stored filename. CCD prefixes
// uploads with a generated id and a dash; everything after the first dash is
// the name the appellant saw.
func FileIDToName(fileID string) string {
	if i := strings.Index(fileID, "-"); i >= 0 {
		return fileID[i+1:]
	}
	return fileID
}
