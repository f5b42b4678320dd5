package politicians

import (
	"log"

	"github.com/EmpoweredVote/insightforge/internal/docstore"
)

// Init wires the roster matcher for the one province that has rosters.
func Init(docs docstore.Source, sidoCode, sidoPrefix string) *Handler {
	log.Printf("[politicians] rosters served for sido %s", sidoCode)
	return &Handler{Matcher: NewMatcher(docs, sidoCode, sidoPrefix)}
}
