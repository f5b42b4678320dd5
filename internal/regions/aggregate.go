package regions

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/metrics"
	"github.com/EmpoweredVote/insightforge/internal/partial"
	"github.com/google/uuid"
)

// SidoRollup is a province summary. Totals cover the neighborhoods of the
// comprehensive statistics that declare this province code.
type SidoRollup struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	SigunguCount    int    `json:"sigungu_count"`
	TotalPopulation int64  `json:"total_population"`
	TotalHousehold  int64  `json:"total_household"`
	TotalCompany    int64  `json:"total_company"`
}

// SigunguRollup is a district summary keyed by district code.
type SigunguRollup struct {
	TotalHousehold  int64 `json:"total_household"`
	TotalPopulation int64 `json:"total_population"`
	TotalCompany    int64 `json:"total_company"`
	TotalWorker     int64 `json:"total_worker"`
	EmdongCount     int   `json:"emdong_count"`
}

// Aggregation is the result of one aggregation run. It is never modified
// after Aggregate returns.
type Aggregation struct {
	RunID       uuid.UUID
	GeneratedAt time.Time

	Sido      map[string]*SidoRollup
	SidoOrder []string
	Sigungu   map[string]*SigunguRollup

	// Per-district lookups kept as found in the source documents.
	Commercial *partial.Object
	Tech       *partial.Object
}

// SidoList returns the province rollups in national-regions document order.
func (a *Aggregation) SidoList() []SidoRollup {
	out := make([]SidoRollup, 0, len(a.SidoOrder))
	for _, code := range a.SidoOrder {
		out = append(out, *a.Sido[code])
	}
	return out
}

// Aggregator rolls neighborhood statistics up to provinces and districts.
type Aggregator struct {
	docs docstore.Source
}

func NewAggregator(docs docstore.Source) *Aggregator {
	return &Aggregator{docs: docs}
}

// Aggregate loads the four source documents and builds a fresh Aggregation.
// Nothing is returned unless every document loaded.
func (a *Aggregator) Aggregate() (*Aggregation, error) {
	national, err := a.docs.Object(docstore.NationalRegions)
	if err != nil {
		return nil, err
	}
	stats, err := a.docs.Object(docstore.ComprehensiveStats)
	if err != nil {
		return nil, err
	}
	commercial, err := a.docs.Object(docstore.CommercialStats)
	if err != nil {
		return nil, err
	}
	tech, err := a.docs.Object(docstore.TechStats)
	if err != nil {
		return nil, err
	}

	agg := &Aggregation{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Sido:        make(map[string]*SidoRollup),
		Sigungu:     make(map[string]*SigunguRollup),
		Commercial:  commercial.Obj("regions"),
		Tech:        tech.Obj("sigungu"),
	}

	provinces := national.Obj("regions")
	for _, code := range provinces.Keys() {
		info := provinces.Obj(code)
		agg.Sido[code] = &SidoRollup{
			Code:         code,
			Name:         info.Str("sido_name"),
			SigunguCount: len(info.List("sigungu_list")),
		}
		agg.SidoOrder = append(agg.SidoOrder, code)
	}

	emdongs := stats.Obj("regions")
	for _, code := range emdongs.Keys() {
		rec := emdongs.Obj(code)
		household := rec.Obj("household")
		company := rec.Obj("company")

		population := household.Int("family_member_cnt")
		households := household.Int("household_cnt")
		companies := company.Int("corp_cnt")
		workers := company.Int("tot_worker")

		if sido, ok := agg.Sido[rec.Str("sido_code")]; ok {
			sido.TotalPopulation += population
			sido.TotalHousehold += households
			sido.TotalCompany += companies
		}

		sigunguCode := rec.Str("sigungu_code")
		if sigunguCode == "" {
			continue
		}
		sg, ok := agg.Sigungu[sigunguCode]
		if !ok {
			sg = &SigunguRollup{}
			agg.Sigungu[sigunguCode] = sg
		}
		sg.TotalPopulation += population
		sg.TotalHousehold += households
		sg.TotalCompany += companies
		sg.TotalWorker += workers
		sg.EmdongCount++
	}

	return agg, nil
}

// RollupCache holds the latest successful Aggregation.
type RollupCache struct {
	aggregator *Aggregator

	mu  sync.RWMutex
	agg *Aggregation

	runMu sync.Mutex
}

func NewRollupCache(aggregator *Aggregator) *RollupCache {
	return &RollupCache{aggregator: aggregator}
}

// Run aggregates and replaces the cached result. On failure the cache keeps
// whatever it held before, which at startup is nothing.
func (c *RollupCache) Run() error {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	return c.run()
}

func (c *RollupCache) run() error {
	start := time.Now()
	log.Printf("[regions] aggregation started")

	agg, err := c.aggregator.Aggregate()
	metrics.AggregationDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.AggregationRunsTotal.WithLabelValues("error").Inc()
		log.Printf("[regions] aggregation failed: %v", err)
		return fmt.Errorf("aggregate: %w", err)
	}
	metrics.AggregationRunsTotal.WithLabelValues("ok").Inc()

	c.mu.Lock()
	c.agg = agg
	c.mu.Unlock()

	log.Printf("[regions] aggregation %s done in %dms: %d sido, %d sigungu, %d commercial, %d tech",
		agg.RunID, time.Since(start).Milliseconds(), len(agg.Sido), len(agg.Sigungu),
		agg.Commercial.Len(), agg.Tech.Len())
	return nil
}

// Get returns the cached aggregation, or nil when none has succeeded yet.
func (c *RollupCache) Get() *Aggregation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.agg
}

// Ensure returns the cached aggregation, running one first if the cache is empty.
func (c *RollupCache) Ensure() (*Aggregation, error) {
	if agg := c.Get(); agg != nil {
		return agg, nil
	}

	c.runMu.Lock()
	defer c.runMu.Unlock()
	if agg := c.Get(); agg != nil {
		return agg, nil
	}
	if err := c.run(); err != nil {
		return nil, err
	}
	return c.Get(), nil
}
