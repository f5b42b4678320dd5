package regions

import (
	"log"

	"github.com/EmpoweredVote/insightforge/internal/docstore"
)

// Init wires the region components over docs and runs the startup
// aggregation. A failed aggregation is logged and retried by the first
// request that needs it.
func Init(docs docstore.Source, defaultYear, latestYear string) *Handler {
	rollups := NewRollupCache(NewAggregator(docs))
	resolver := NewResolver(docs, defaultYear, latestYear)

	if err := rollups.Run(); err != nil {
		log.Printf("[regions] WARNING: startup aggregation failed, will retry on demand: %v", err)
	}

	return &Handler{
		Rollups:  rollups,
		National: NewNational(docs, rollups, resolver),
		Resolver: resolver,
		Seoul:    NewSeoul(docs),
	}
}
