package politicians

import (
	"sort"
	"strings"

	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/metrics"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

// Matcher builds neighborhood rosters. Rosters exist only for neighborhoods
// of one province.
type Matcher struct {
	docs       docstore.Source
	sidoCode   string
	sidoPrefix string
}

func NewMatcher(docs docstore.Source, sidoCode, sidoPrefix string) *Matcher {
	return &Matcher{docs: docs, sidoCode: sidoCode, sidoPrefix: sidoPrefix}
}

// RosterFor returns the office holders of a neighborhood ordered by priority.
// Unknown codes and neighborhoods of other provinces get an empty roster.
func (m *Matcher) RosterFor(code string) (*Roster, error) {
	stats, err := m.docs.Object(docstore.ComprehensiveStats)
	if err != nil {
		return nil, err
	}

	roster := &Roster{EmdongCode: code, Politicians: []OfficeHolder{}}
	info, ok := stats.Obj("regions").ObjOK(code)
	if !ok || info.Len() == 0 {
		metrics.RosterSize.Observe(0)
		return roster, nil
	}

	roster.EmdongName = info.Str("emdong_name")
	roster.SigunguName = strings.Replace(info.Str("sigungu_name"), m.sidoPrefix, "", 1)
	if info.Str("sido_code") != m.sidoCode {
		roster.SidoName = info.Str("sido_name")
		metrics.RosterSize.Observe(0)
		return roster, nil
	}

	mapping, err := m.Mapping(roster.EmdongName)
	if err != nil {
		return nil, err
	}
	holders, err := m.match(roster.SigunguName, mapping)
	if err != nil {
		return nil, err
	}

	sortByPriority(holders)
	roster.Politicians = append(roster.Politicians, holders...)
	roster.Total = len(roster.Politicians)
	metrics.RosterSize.Observe(float64(roster.Total))
	return roster, nil
}

// sortByPriority orders holders by priority, keeping match order within a priority.
func sortByPriority(holders []OfficeHolder) {
	sort.SliceStable(holders, func(i, j int) bool {
		return holders[i].Priority < holders[j].Priority
	})
}

// Mapping returns the electoral district labels of a neighborhood name.
// Neighborhoods without an entry get empty labels.
func (m *Matcher) Mapping(emdongName string) (DongMapping, error) {
	doc, err := m.docs.Object(docstore.DongElectionMapping)
	if err != nil {
		return DongMapping{}, err
	}
	entry := doc.Obj(emdongName)
	return DongMapping{
		NationalAssembly: entry.Str("na_uiwon"),
		CityCouncil:      entry.Str("si_uiwon"),
		DistrictCouncil:  entry.Str("gu_uiwon"),
	}, nil
}

// rosterInput is what the strategies match against.
type rosterInput struct {
	sigungu string
	mapping DongMapping

	mayor, heads, assembly, cityCouncil, districtCouncil *partial.Object
}

// chain lists the strategies in the order their results are appended.
var chain = []struct {
	name  string
	match func(in *rosterInput) []OfficeHolder
}{
	{"mayor", func(in *rosterInput) []OfficeHolder { return matchMayor(in.mayor) }},
	{"district_head", func(in *rosterInput) []OfficeHolder { return matchDistrictHead(in.heads, in.sigungu) }},
	{"national_assembly", func(in *rosterInput) []OfficeHolder {
		return matchNationalAssembly(in.assembly, in.mapping.NationalAssembly, in.sigungu)
	}},
	{"city_council", func(in *rosterInput) []OfficeHolder {
		return matchCityCouncil(in.cityCouncil, in.mapping.CityCouncil, in.sigungu)
	}},
	{"district_council", func(in *rosterInput) []OfficeHolder {
		return matchDistrictCouncil(in.districtCouncil, in.mapping.DistrictCouncil, in.sigungu)
	}},
}

func (m *Matcher) match(sigungu string, mapping DongMapping) ([]OfficeHolder, error) {
	in := &rosterInput{sigungu: sigungu, mapping: mapping}
	for _, d := range []struct {
		name string
		dst  **partial.Object
	}{
		{docstore.NationalAssembly, &in.assembly},
		{docstore.SeoulCityCouncil, &in.cityCouncil},
		{docstore.SeoulDistrictCouncil, &in.districtCouncil},
		{docstore.SeoulMayor, &in.mayor},
		{docstore.SeoulDistrictHeads, &in.heads},
	} {
		doc, err := m.docs.Object(d.name)
		if err != nil {
			return nil, err
		}
		*d.dst = doc
	}

	var out []OfficeHolder
	for _, step := range chain {
		out = append(out, step.match(in)...)
	}
	return out, nil
}
