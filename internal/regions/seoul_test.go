package regions

import (
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/testutil"
)

func TestRegions(t *testing.T) {
	out, err := NewSeoul(testutil.SeoulStore(t)).Regions()
	if err != nil {
		t.Fatalf("Regions: %v", err)
	}
	if out.Total != 4 || out.GuCount != 2 {
		t.Fatalf("total %d gu_count %d", out.Total, out.GuCount)
	}

	gu := out.Regions[0]
	if !gu.IsGu || gu.Name != "종로구" || gu.Population != 139417 {
		t.Errorf("district row: got %+v", gu)
	}
	dong := out.Regions[1]
	if dong.IsGu || dong.Name != "종로구 청운효자동" || dong.Sido != "서울특별시" {
		t.Errorf("neighborhood row: got %+v", dong)
	}
	if len(out.ByGu["강남구"]) != 2 {
		t.Errorf("by_gu: got %v", out.ByGu["강남구"])
	}
}

func TestRegion_MergesSideDocuments(t *testing.T) {
	s := NewSeoul(testutil.SeoulStore(t))

	r, err := s.Region("11110")
	if err != nil {
		t.Fatalf("Region: %v", err)
	}
	if r.Obj("gdpData").Int("grdp") != 58000000 || r.Obj("trafficData").Int("subway_stations") != 17 {
		t.Errorf("side data missing: %v", r.Keys())
	}
	if r.Has("safetyData") {
		t.Error("종로구 has no safety entry")
	}

	r, err = s.Region("68051")
	if err != nil {
		t.Fatalf("containment match: %v", err)
	}
	if r.Str("dong_name") != "신사동" || !r.Has("safetyData") {
		t.Errorf("got %v", r.Keys())
	}
}

func TestRegion_NotFound(t *testing.T) {
	_, err := NewSeoul(testutil.SeoulStore(t)).Region("26110")
	if !apperr.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
