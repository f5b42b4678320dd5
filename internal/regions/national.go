package regions

import (
	"log"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

type SidoList struct {
	Total    int             `json:"total"`
	SidoList []SidoRollup    `json:"sido_list"`
	Metadata *partial.Object `json:"metadata"`
}

type SigunguList struct {
	SidoCode    string            `json:"sido_code"`
	SidoName    string            `json:"sido_name"`
	SigunguList []*partial.Object `json:"sigungu_list"`
	Total       int               `json:"total"`
}

// EmdongSummary is a neighborhood row of a district listing.
type EmdongSummary struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	FullAddress   string  `json:"full_address"`
	HouseholdCnt  int64   `json:"household_cnt"`
	Population    int64   `json:"population"`
	AvgFamilySize float64 `json:"avg_family_size"`
	HouseCnt      int64   `json:"house_cnt"`
	CompanyCnt    int64   `json:"company_cnt"`
	WorkerCnt     int64   `json:"worker_cnt"`
	XCoord        any     `json:"x_coord"`
	YCoord        any     `json:"y_coord"`
}

type EmdongList struct {
	SigunguCode string          `json:"sigungu_code"`
	SigunguName string          `json:"sigungu_name"`
	EmdongList  []EmdongSummary `json:"emdong_list"`
	Total       int             `json:"total"`
}

type SigunguDetail struct {
	SigunguCode string          `json:"sigungu_code"`
	Commercial  *partial.Object `json:"commercial"`
	Tech        *partial.Object `json:"tech"`
}

// National serves the province and district views.
type National struct {
	docs     docstore.Source
	rollups  *RollupCache
	resolver *Resolver
}

func NewNational(docs docstore.Source, rollups *RollupCache, resolver *Resolver) *National {
	return &National{docs: docs, rollups: rollups, resolver: resolver}
}

// SidoList returns every province rollup with the comprehensive metadata.
func (n *National) SidoList() (*SidoList, error) {
	agg, err := n.rollups.Ensure()
	if err != nil {
		return nil, err
	}
	stats, err := n.docs.Object(docstore.ComprehensiveStats)
	if err != nil {
		return nil, err
	}
	list := agg.SidoList()
	return &SidoList{Total: len(list), SidoList: list, Metadata: stats.Obj("metadata")}, nil
}

// SigunguList returns the districts of a province, each merged with its rollup.
func (n *National) SigunguList(sidoCode string) (*SigunguList, error) {
	agg, err := n.rollups.Ensure()
	if err != nil {
		return nil, err
	}
	national, err := n.docs.Object(docstore.NationalRegions)
	if err != nil {
		return nil, err
	}
	info, ok := national.Obj("regions").ObjOK(sidoCode)
	if !ok {
		return nil, apperr.NotFoundf("%s 시도를 찾을 수 없습니다", sidoCode)
	}

	out := &SigunguList{SidoCode: sidoCode, SidoName: info.Str("sido_name"), SigunguList: []*partial.Object{}}
	for _, v := range info.List("sigungu_list") {
		item, ok := partial.AsObject(v)
		if !ok {
			continue
		}
		stats := agg.Sigungu[item.Str("sigungu_code")]
		if stats == nil {
			stats = &SigunguRollup{}
		}
		row := item.Clone()
		row.Set("emdong_count", stats.EmdongCount)
		row.Set("total_household", stats.TotalHousehold)
		row.Set("total_population", stats.TotalPopulation)
		row.Set("total_company", stats.TotalCompany)
		row.Set("total_worker", stats.TotalWorker)
		out.SigunguList = append(out.SigunguList, row)
	}
	out.Total = len(out.SigunguList)
	return out, nil
}

// SigunguDetail returns the commercial and tech lookups of a district. Absent
// districts get empty objects.
func (n *National) SigunguDetail(sigunguCode string) (*SigunguDetail, error) {
	agg, err := n.rollups.Ensure()
	if err != nil {
		return nil, err
	}
	return &SigunguDetail{
		SigunguCode: sigunguCode,
		Commercial:  agg.Commercial.Obj(sigunguCode),
		Tech:        agg.Tech.Obj(sigunguCode),
	}, nil
}

// EmdongList returns the neighborhoods of a district from the comprehensive
// statistics, with populations corrected from the latest enhanced year.
func (n *National) EmdongList(sigunguCode string) (*EmdongList, error) {
	stats, err := n.docs.Object(docstore.ComprehensiveStats)
	if err != nil {
		return nil, err
	}

	latest := partial.NewObject()
	if enhanced, err := n.docs.Object(docstore.EnhancedMultiyear); err != nil {
		log.Printf("[regions] enhanced statistics unavailable: %v", err)
	} else {
		latest = enhanced.Obj("regions_by_year").Obj(n.resolver.latestYear)
	}

	out := &EmdongList{SigunguCode: sigunguCode, EmdongList: []EmdongSummary{}}
	regions := stats.Obj("regions")
	for _, code := range regions.Keys() {
		rec := regions.Obj(code)
		if rec.Str("sigungu_code") != sigunguCode {
			continue
		}
		if out.SigunguName == "" {
			out.SigunguName = rec.Str("sigungu_name")
		}

		household := rec.Obj("household")
		avg := household.Float("avg_family_member_cnt")
		population := household.Int("family_member_cnt")
		households := household.Int("household_cnt")
		if pop := latest.Obj(code).Obj("basic").Int("total_population"); pop > 0 {
			population = pop
			households = HouseholdCount(pop, avg)
		}

		out.EmdongList = append(out.EmdongList, EmdongSummary{
			Code:          code,
			Name:          rec.Str("emdong_name"),
			FullAddress:   rec.Str("full_address"),
			HouseholdCnt:  households,
			Population:    population,
			AvgFamilySize: avg,
			HouseCnt:      rec.Obj("house").Int("house_cnt"),
			CompanyCnt:    rec.Obj("company").Int("corp_cnt"),
			WorkerCnt:     rec.Obj("company").Int("tot_worker"),
			XCoord:        valueOr(rec, "x_coord"),
			YCoord:        valueOr(rec, "y_coord"),
		})
	}
	out.Total = len(out.EmdongList)
	return out, nil
}

// valueOr returns the raw value under key, or "" when it is missing or null.
func valueOr(rec *partial.Object, key string) any {
	if v, ok := rec.Get(key); ok && v != nil {
		return v
	}
	return ""
}
