package regions

import (
	"errors"
	"reflect"
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/testutil"
)

func newResolver(t *testing.T) (*Resolver, *docstore.Store) {
	t.Helper()
	store := testutil.SeoulStore(t)
	return NewResolver(store, "2023", "2023"), store
}

func TestHouseholdCount(t *testing.T) {
	tests := []struct {
		pop  int64
		avg  float64
		want int64
	}{
		{15000, 2.5, 6000},
		{7200, 0, 3600},
		{100, -1, 50},
		{7, 2, 4}, // 3.5 rounds to even
		{5, 2, 2}, // 2.5 rounds to even
		{9900, 2.2, 4500},
	}
	for _, tt := range tests {
		if got := HouseholdCount(tt.pop, tt.avg); got != tt.want {
			t.Errorf("HouseholdCount(%d, %v) = %d, want %d", tt.pop, tt.avg, got, tt.want)
		}
	}
}

func TestNeighborhood_ComprehensiveFallbackWithCorrection(t *testing.T) {
	r, store := newResolver(t)

	n, err := r.Neighborhood("1111051500", "")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if n.Source != SourceComprehensive {
		t.Errorf("source: got %q", n.Source)
	}
	if n.Year != "2023" {
		t.Errorf("year: got %q", n.Year)
	}
	if !n.PopulationCorrected {
		t.Error("expected population correction")
	}
	if got := n.Household.Int("family_member_cnt"); got != 15000 {
		t.Errorf("population: got %d, want 15000", got)
	}
	if got := n.Household.Int("household_cnt"); got != 6000 {
		t.Errorf("household_cnt: got %d, want 6000", got)
	}
	if n.SidoCode != "11" || n.EmdongName != "청운효자동" || n.XCoord != "953000" {
		t.Errorf("descriptive fields: got %+v", n)
	}

	// The cached document is left untouched.
	stats, err := store.Object(docstore.ComprehensiveStats)
	if err != nil {
		t.Fatal(err)
	}
	if got := stats.Obj("regions").Obj("1111051500").Obj("household").Int("household_cnt"); got != 5000 {
		t.Errorf("cached document mutated: household_cnt = %d", got)
	}
}

func TestNeighborhood_DefaultFamilySize(t *testing.T) {
	r, _ := newResolver(t)

	n, err := r.Neighborhood("1168051000", "2023")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if got := n.Household.Int("household_cnt"); got != 3600 {
		t.Errorf("household_cnt: got %d, want 7200/2.0", got)
	}
}

func TestNeighborhood_MultiyearRecord(t *testing.T) {
	r, _ := newResolver(t)

	n, err := r.Neighborhood("1111051500", "2022")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if n.Source != SourceMultiyear || n.Year != "2022" {
		t.Errorf("got source %q year %q", n.Source, n.Year)
	}
	// enhanced 2022 population is 0, so no correction
	if n.PopulationCorrected {
		t.Error("zero enhanced population must not correct")
	}
	if got := n.Household.Int("household_cnt"); got != 4900 {
		t.Errorf("household_cnt: got %d", got)
	}
}

func TestNeighborhood_MultiyearCorrection(t *testing.T) {
	r, _ := newResolver(t)

	n, err := r.Neighborhood("1111053000", "2021")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if got := n.Household.Int("family_member_cnt"); got != 9900 {
		t.Errorf("population: got %d", got)
	}
	if got := n.Household.Int("household_cnt"); got != 4500 {
		t.Errorf("household_cnt: got %d, want round(9900/2.2)", got)
	}
}

func TestNeighborhood_FallbackCorrectsForReturnedYear(t *testing.T) {
	docs := testutil.SeoulDocuments()
	docs[docstore.EnhancedMultiyear] = `{
  "regions_by_year": {
    "2019": {"1111051500": {"basic": {"total_population": 777}}},
    "2023": {"1111051500": {"basic": {"total_population": 15000}}}
  }
}`
	r := NewResolver(docstore.New(testutil.WriteDocuments(t, docs), nil), "2023", "2023")

	n, err := r.Neighborhood("1111051500", "2019")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if n.Source != SourceComprehensive || n.Year != "2023" {
		t.Fatalf("snapshot: got %s/%s", n.Source, n.Year)
	}
	if got := n.Household.Int("family_member_cnt"); got != 15000 {
		t.Errorf("population: got %d, want the 2023 figure 15000", got)
	}
	if got := n.Household.Int("household_cnt"); got != 6000 {
		t.Errorf("household_cnt: got %d, want 6000", got)
	}
}

func TestNeighborhood_SameDescriptiveFieldsAcrossSources(t *testing.T) {
	r, _ := newResolver(t)

	base, err := r.Neighborhood("1111051500", "2019")
	if err != nil {
		t.Fatalf("base: %v", err)
	}
	yearly, err := r.Neighborhood("1111051500", "2020")
	if err != nil {
		t.Fatalf("yearly: %v", err)
	}
	if base.Source != SourceComprehensive || yearly.Source != SourceMultiyear {
		t.Fatalf("sources: %q / %q", base.Source, yearly.Source)
	}

	pick := func(n *Neighborhood) []any {
		return []any{n.SidoCode, n.SidoName, n.SigunguCode, n.SigunguName, n.EmdongName, n.FullAddress, n.XCoord, n.YCoord}
	}
	if !reflect.DeepEqual(pick(base), pick(yearly)) {
		t.Errorf("descriptive fields differ:\n base   %v\n yearly %v", pick(base), pick(yearly))
	}
}

func TestNeighborhood_UnknownCode(t *testing.T) {
	r, _ := newResolver(t)

	_, err := r.Neighborhood("9999999999", "2023")
	if !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestNeighborhood_MissingDocumentIsLoadError(t *testing.T) {
	docs := testutil.SeoulDocuments()
	delete(docs, docstore.MultiyearStats)
	r := NewResolver(docstore.New(testutil.WriteDocuments(t, docs), nil), "2023", "2023")

	_, err := r.Neighborhood("1111051500", "2023")
	if !apperr.Is(err, apperr.LoadError) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound in chain, got %v", err)
	}
}

func TestNeighborhood_MissingEnhancedSkipsCorrection(t *testing.T) {
	docs := testutil.SeoulDocuments()
	delete(docs, docstore.EnhancedMultiyear)
	r := NewResolver(docstore.New(testutil.WriteDocuments(t, docs), nil), "2023", "2023")

	n, err := r.Neighborhood("1111051500", "2023")
	if err != nil {
		t.Fatalf("Neighborhood: %v", err)
	}
	if n.PopulationCorrected || n.Household.Int("household_cnt") != 5000 {
		t.Errorf("expected uncorrected record, got %+v", n.Household)
	}
}

func TestTimeseries_SkipsGapYears(t *testing.T) {
	r, _ := newResolver(t)

	ts, err := r.Timeseries("1111051500")
	if err != nil {
		t.Fatalf("Timeseries: %v", err)
	}
	if want := []string{"2020", "2022"}; !reflect.DeepEqual(ts.Years, want) {
		t.Errorf("years: got %v, want %v", ts.Years, want)
	}
	if !reflect.DeepEqual(ts.Timeseries.Keys(), ts.Years) {
		t.Errorf("timeseries keys %v not in year order", ts.Timeseries.Keys())
	}
	if ts.Latest != nil {
		t.Error("plain timeseries carries no latest pointer")
	}
}

func TestTimeseries_UnknownCode(t *testing.T) {
	r, _ := newResolver(t)

	if _, err := r.Timeseries("1168051000"); !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestEnhanced_Latest(t *testing.T) {
	r, _ := newResolver(t)

	ts, err := r.Enhanced("1111051500")
	if err != nil {
		t.Fatalf("Enhanced: %v", err)
	}
	if want := []string{"2022", "2023"}; !reflect.DeepEqual(ts.Years, want) {
		t.Errorf("years: got %v, want %v", ts.Years, want)
	}
	if ts.Latest == nil || ts.Latest.Obj("basic").Int("total_population") != 15000 {
		t.Errorf("latest: got %v", ts.Latest)
	}

	ts, err = r.Enhanced("1111053000")
	if err != nil {
		t.Fatalf("Enhanced: %v", err)
	}
	if ts.Latest != nil {
		t.Errorf("no 2023 entry, latest should be absent, got %v", ts.Latest)
	}

	if _, err := r.Enhanced("2611051000"); !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestYears(t *testing.T) {
	r, _ := newResolver(t)

	y, err := r.Years()
	if err != nil {
		t.Fatalf("Years: %v", err)
	}
	if want := []string{"2020", "2021", "2022", "2023"}; !reflect.DeepEqual(y.Years, want) {
		t.Errorf("years: got %v", y.Years)
	}
	if y.Total != 4 || y.Metadata.Str("source") != "SGIS" {
		t.Errorf("got total %d metadata %v", y.Total, y.Metadata)
	}
}
