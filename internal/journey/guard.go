package journey

import (
	"strings"

	"github.com/iac-appeals/aip-sync/internal/model"
)

// Guard decides whether a page is reachable from the current appeal status.
// Pure reachability check, evaluated per request; no state is mutated.
type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// IsAllowed reports whether requestedPath is reachable: registered under the
// current status, under the universal common set, or a document-viewer page
// (prefix match, the file id is the trailing segment).
func (g *Guard) IsAllowed(status model.AppealStatus, requestedPath string) bool {
	for _, path := range statusPaths[status] {
		if path == requestedPath {
			return true
		}
	}
	for _, path := range commonPaths {
		if path == requestedPath {
			return true
		}
	}
	return strings.HasPrefix(requestedPath, PathDocumentViewerPrefix)
}

// BlocksForPendingTimeExtension reports whether the path is an
// ask-for-more-time page that must be refused while an appellant time
// extension is still undecided.
func (g *Guard) BlocksForPendingTimeExtension(appeal *model.Appeal, requestedPath string) bool {
	if !appeal.PendingTimeExtension() {
		return false
	}
	for _, path := range askForMoreTimePaths {
		if path == requestedPath {
			return true
		}
	}
	return false
}
