package politicians

import (
	"github.com/google/uuid"
)

// OfficeType is the office an office holder was elected to.
type OfficeType string

const (
	Mayor            OfficeType = "서울시장"
	DistrictHead     OfficeType = "구청장"
	NationalAssembly OfficeType = "국회의원"
	CityCouncil      OfficeType = "시의원"
	DistrictCouncil  OfficeType = "구의원"
)

// Priority orders office holders for display, mayor first.
func (t OfficeType) Priority() int {
	switch t {
	case Mayor:
		return 1
	case DistrictHead:
		return 2
	case NationalAssembly:
		return 3
	case CityCouncil:
		return 4
	case DistrictCouncil:
		return 5
	default:
		return 999
	}
}

func (t OfficeType) Icon() string {
	switch t {
	case Mayor:
		return "🌆"
	case DistrictHead:
		return "🏢"
	case NationalAssembly, CityCouncil:
		return "🏛️"
	case DistrictCouncil:
		return "🏘️"
	default:
		return ""
	}
}

type OfficeHolder struct {
	ID        string     `json:"id"`
	Type      OfficeType `json:"type"`
	Name      string     `json:"name"`
	Party     string     `json:"party"`
	District  string     `json:"district"`
	Committee string     `json:"committee,omitempty"`
	Icon      string     `json:"icon"`
	Priority  int        `json:"priority"`
}

// Roster is the ordered list of office holders for one neighborhood.
type Roster struct {
	EmdongCode  string         `json:"emdong_code"`
	EmdongName  string         `json:"emdong_name,omitempty"`
	SigunguName string         `json:"sigungu_name,omitempty"`
	SidoName    string         `json:"sido_name,omitempty"`
	Politicians []OfficeHolder `json:"politicians"`
	Total       int            `json:"total"`
}

// DongMapping holds the electoral district labels of one neighborhood.
type DongMapping struct {
	NationalAssembly string `json:"na_uiwon"`
	CityCouncil      string `json:"si_uiwon"`
	DistrictCouncil  string `json:"gu_uiwon"`
}

var holderNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("insightforge/office-holder"))

// HolderID is stable across restarts for the same office, district and name.
func HolderID(t OfficeType, district, name string) string {
	return uuid.NewSHA1(holderNamespace, []byte(string(t)+":"+district+":"+name)).String()
}

func newHolder(t OfficeType, name, party, district string) OfficeHolder {
	return OfficeHolder{
		ID:       HolderID(t, district, name),
		Type:     t,
		Name:     name,
		Party:    party,
		District: district,
		Icon:     t.Icon(),
		Priority: t.Priority(),
	}
}
