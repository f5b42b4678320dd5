package regions

import (
	"strings"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

// RegionSummary is a row of the Seoul district and neighborhood listing.
type RegionSummary struct {
	Code       string  `json:"code"`
	Sido       string  `json:"sido"`
	Sigungu    string  `json:"sigungu"`
	Dong       string  `json:"dong"`
	Name       string  `json:"name"`
	Population int64   `json:"population"`
	AvgAge     float64 `json:"avg_age"`
	Density    float64 `json:"density"`
	IsGu       bool    `json:"is_gu"`
}

type RegionList struct {
	Regions []RegionSummary            `json:"regions"`
	ByGu    map[string][]RegionSummary `json:"by_gu"`
	Total   int                        `json:"total"`
	GuCount int                        `json:"gu_count"`
}

// Seoul serves the Seoul region listing and the merged region detail.
type Seoul struct {
	docs docstore.Source
}

func NewSeoul(docs docstore.Source) *Seoul {
	return &Seoul{docs: docs}
}

// SeoulRegions returns the region records of the Seoul comprehensive document:
// its "regions" object, or the whole document when it has none.
func SeoulRegions(doc *partial.Object) *partial.Object {
	if regions, ok := doc.ObjOK("regions"); ok {
		return regions
	}
	return doc
}

// Regions lists every district and neighborhood, also grouped by district.
func (s *Seoul) Regions() (*RegionList, error) {
	doc, err := s.docs.Object(docstore.SeoulComprehensive)
	if err != nil {
		return nil, err
	}

	out := &RegionList{Regions: []RegionSummary{}, ByGu: map[string][]RegionSummary{}}
	regions := SeoulRegions(doc)
	for _, code := range regions.Keys() {
		rec, ok := regions.ObjOK(code)
		if !ok {
			continue
		}
		sigungu := rec.Str("sigungu_name")
		dong := rec.Str("dong_name")
		name := sigungu
		if dong != "" {
			name = strings.TrimSpace(sigungu + " " + dong)
		}
		pop := rec.Obj("population_data")

		row := RegionSummary{
			Code:       code,
			Sido:       rec.StrOr("sido_name", "서울특별시"),
			Sigungu:    sigungu,
			Dong:       dong,
			Name:       name,
			Population: pop.Int("total_population"),
			AvgAge:     pop.Float("total_avg_age"),
			Density:    pop.Float("population_density"),
			IsGu:       dong == "",
		}
		out.Regions = append(out.Regions, row)
		out.ByGu[sigungu] = append(out.ByGu[sigungu], row)
	}
	out.Total = len(out.Regions)
	out.GuCount = len(out.ByGu)
	return out, nil
}

// Region returns the record whose key equals code, else the first key in
// document order containing code, merged with the GDP, traffic and safety
// entries of its district.
func (s *Seoul) Region(code string) (*partial.Object, error) {
	doc, err := s.docs.Object(docstore.SeoulComprehensive)
	if err != nil {
		return nil, err
	}
	gdp, err := s.docs.Object(docstore.SeoulGDP)
	if err != nil {
		return nil, err
	}
	traffic, err := s.docs.Object(docstore.SeoulTraffic)
	if err != nil {
		return nil, err
	}
	safety, err := s.docs.Object(docstore.SeoulSafety)
	if err != nil {
		return nil, err
	}

	found := findRegion(SeoulRegions(doc), code)
	if found == nil {
		return nil, apperr.NotFoundf("%s 데이터를 찾을 수 없습니다", code)
	}

	region := found.Clone()
	sigungu := region.Str("sigungu_name")
	if v, ok := gdp.Get(sigungu); ok {
		region.Set("gdpData", v)
	}
	if v, ok := traffic.Get(sigungu); ok {
		region.Set("trafficData", v)
	}
	if v, ok := safety.Get(sigungu); ok {
		region.Set("safetyData", v)
	}
	return region, nil
}

func findRegion(regions *partial.Object, code string) *partial.Object {
	if code == "" {
		return nil
	}
	if rec, ok := regions.ObjOK(code); ok {
		return rec
	}
	for _, key := range regions.Keys() {
		if !strings.Contains(key, code) {
			continue
		}
		if rec, ok := regions.ObjOK(key); ok {
			return rec
		}
	}
	return nil
}
