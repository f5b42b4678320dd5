package regions

import (
	"log"
	"math"
	"sort"
	"strconv"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

// DefaultFamilySize divides a corrected population into households when the
// base record has no positive average family size. It is a fixed constant,
// not an average over the data.
const DefaultFamilySize = 2.0

// Record sources reported in Neighborhood.Source.
const (
	SourceMultiyear     = "multiyear"
	SourceComprehensive = "comprehensive"
)

// Neighborhood is one neighborhood as of a year.
type Neighborhood struct {
	Code        string `json:"code"`
	SidoCode    string `json:"sido_code"`
	SidoName    string `json:"sido_name"`
	SigunguCode string `json:"sigungu_code"`
	SigunguName string `json:"sigungu_name"`
	EmdongName  string `json:"emdong_name"`
	FullAddress string `json:"full_address"`

	Household *partial.Object `json:"household"`
	House     *partial.Object `json:"house"`
	Company   *partial.Object `json:"company"`

	XCoord any `json:"x_coord"`
	YCoord any `json:"y_coord"`

	Year                string `json:"year"`
	Source              string `json:"source"`
	PopulationCorrected bool   `json:"population_corrected"`
}

// Timeseries is every yearly snapshot of one neighborhood, oldest first.
type Timeseries struct {
	Code       string          `json:"code"`
	Timeseries *partial.Object `json:"timeseries"`
	Years      []string        `json:"years"`
	// Latest is the snapshot for the latest published year, when present.
	Latest *partial.Object `json:"latest,omitempty"`
}

// Years lists the years covered by the multi-year statistics.
type Years struct {
	Years    []string        `json:"years"`
	Total    int             `json:"total"`
	Metadata *partial.Object `json:"metadata"`
}

// Resolver assembles neighborhood records across the comprehensive,
// multi-year and enhanced age-bracket documents.
type Resolver struct {
	docs        docstore.Source
	defaultYear string
	latestYear  string
}

func NewResolver(docs docstore.Source, defaultYear, latestYear string) *Resolver {
	return &Resolver{docs: docs, defaultYear: defaultYear, latestYear: latestYear}
}

func (r *Resolver) DefaultYear() string { return r.defaultYear }

// Neighborhood resolves code for year (the default year when empty).
//
// The multi-year record for that year is preferred, then the comprehensive
// record. Names, address and coordinates missing from a multi-year record are
// taken from the comprehensive record. A positive enhanced population for the
// code in the year of the returned snapshot replaces the population and
// recomputes the household count.
func (r *Resolver) Neighborhood(code, year string) (*Neighborhood, error) {
	if year == "" {
		year = r.defaultYear
	}

	multiyear, err := r.docs.Object(docstore.MultiyearStats)
	if err != nil {
		return nil, err
	}
	stats, err := r.docs.Object(docstore.ComprehensiveStats)
	if err != nil {
		return nil, err
	}
	base, hasBase := stats.Obj("regions").ObjOK(code)

	var n *Neighborhood
	if rec, ok := multiyear.Obj("regions_by_year").Obj(year).ObjOK(code); ok {
		n = fromRecord(code, rec, base)
		n.Year = year
		n.Source = SourceMultiyear
	} else if hasBase {
		n = fromRecord(code, base, nil)
		n.Year = yearOf(base, r.latestYear)
		n.Source = SourceComprehensive
	} else {
		return nil, apperr.NotFoundf("%s 읍면동을 찾을 수 없습니다", code)
	}

	if pop := r.enhancedPopulation(code, n.Year); pop > 0 {
		n.Household = correctHousehold(n.Household, pop)
		n.PopulationCorrected = true
	}
	return n, nil
}

// fromRecord builds a Neighborhood from rec, filling descriptive fields from
// fallback where rec lacks them.
func fromRecord(code string, rec, fallback *partial.Object) *Neighborhood {
	str := func(key string) string {
		if v := rec.Str(key); v != "" {
			return v
		}
		return fallback.Str(key)
	}
	coord := func(key string) any {
		if v, ok := rec.Get(key); ok && v != nil {
			return v
		}
		return valueOr(fallback, key)
	}
	return &Neighborhood{
		Code:        code,
		SidoCode:    str("sido_code"),
		SidoName:    str("sido_name"),
		SigunguCode: str("sigungu_code"),
		SigunguName: str("sigungu_name"),
		EmdongName:  str("emdong_name"),
		FullAddress: str("full_address"),
		Household:   rec.Obj("household").Clone(),
		House:       rec.Obj("house").Clone(),
		Company:     rec.Obj("company").Clone(),
		XCoord:      coord("x_coord"),
		YCoord:      coord("y_coord"),
	}
}

func yearOf(rec *partial.Object, def string) string {
	v, ok := rec.Get("year")
	if !ok {
		return def
	}
	switch y := v.(type) {
	case string:
		if y != "" {
			return y
		}
	default:
		if n := partial.ToInt(y); n > 0 {
			return strconv.FormatInt(n, 10)
		}
	}
	return def
}

// enhancedPopulation returns the enhanced total population for code in year,
// or 0. A missing or unreadable enhanced document disables the correction.
func (r *Resolver) enhancedPopulation(code, year string) int64 {
	enhanced, err := r.docs.Object(docstore.EnhancedMultiyear)
	if err != nil {
		log.Printf("[regions] population correction skipped for %s/%s: %v", code, year, err)
		return 0
	}
	return enhanced.Obj("regions_by_year").Obj(year).Obj(code).Obj("basic").Int("total_population")
}

// correctHousehold returns a copy of household with population set to pop
// and household_cnt recomputed from the average family size.
func correctHousehold(household *partial.Object, pop int64) *partial.Object {
	out := household.Clone()
	out.Set("family_member_cnt", pop)
	out.Set("household_cnt", HouseholdCount(pop, household.Float("avg_family_member_cnt")))
	return out
}

// HouseholdCount divides population by avgSize, rounding half to even.
// avgSize <= 0 uses DefaultFamilySize.
func HouseholdCount(population int64, avgSize float64) int64 {
	if avgSize <= 0 || math.IsNaN(avgSize) {
		avgSize = DefaultFamilySize
	}
	return int64(math.RoundToEven(float64(population) / avgSize))
}

// Timeseries collects every multi-year snapshot of code.
func (r *Resolver) Timeseries(code string) (*Timeseries, error) {
	doc, err := r.docs.Object(docstore.MultiyearStats)
	if err != nil {
		return nil, err
	}
	ts := collectYears(doc, code)
	if ts.Timeseries.Len() == 0 {
		return nil, apperr.NotFoundf("%s 시계열 데이터를 찾을 수 없습니다", code)
	}
	return ts, nil
}

// Enhanced collects every age-bracket snapshot of code and points Latest at
// the latest year's snapshot when one exists.
func (r *Resolver) Enhanced(code string) (*Timeseries, error) {
	doc, err := r.docs.Object(docstore.EnhancedMultiyear)
	if err != nil {
		return nil, err
	}
	ts := collectYears(doc, code)
	if ts.Timeseries.Len() == 0 {
		return nil, apperr.NotFoundf("%s 연령별 데이터를 찾을 수 없습니다", code)
	}
	if latest, ok := ts.Timeseries.ObjOK(r.latestYear); ok {
		ts.Latest = latest
	}
	return ts, nil
}

func collectYears(doc *partial.Object, code string) *Timeseries {
	byYear := doc.Obj("regions_by_year")
	years := byYear.Keys()
	sort.Strings(years)

	ts := &Timeseries{Code: code, Timeseries: partial.NewObject(), Years: []string{}}
	for _, y := range years {
		snap, ok := byYear.Obj(y).Get(code)
		if !ok {
			continue
		}
		ts.Timeseries.Set(y, snap)
		ts.Years = append(ts.Years, y)
	}
	return ts
}

// Years lists the multi-year document's years in ascending order.
func (r *Resolver) Years() (*Years, error) {
	doc, err := r.docs.Object(docstore.MultiyearStats)
	if err != nil {
		return nil, err
	}
	years := doc.Obj("regions_by_year").Keys()
	if years == nil {
		years = []string{}
	}
	sort.Strings(years)
	return &Years{Years: years, Total: len(years), Metadata: doc.Obj("metadata")}, nil
}
