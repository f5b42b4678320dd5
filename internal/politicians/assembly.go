package politicians

import (
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

type AssemblyMembers struct {
	Members []*partial.Object `json:"members"`
	Total   int               `json:"total"`
}

// AssemblyMembers flattens the regional and proportional member lists.
// Regional members get type "regional" and their region; proportional
// members get type "proportional" and their party.
func (m *Matcher) AssemblyMembers() (*AssemblyMembers, error) {
	doc, err := m.docs.Object(docstore.AssemblyByRegion)
	if err != nil {
		return nil, err
	}

	out := &AssemblyMembers{Members: []*partial.Object{}}
	regional := doc.Obj("regional")
	for _, region := range regional.Keys() {
		for _, member := range members(regional, region) {
			row := member.Clone()
			row.Set("type", "regional")
			row.Set("region", region)
			out.Members = append(out.Members, row)
		}
	}
	proportional := doc.Obj("proportional")
	for _, party := range proportional.Keys() {
		for _, member := range members(proportional, party) {
			row := member.Clone()
			row.Set("type", "proportional")
			row.Set("party", party)
			out.Members = append(out.Members, row)
		}
	}
	out.Total = len(out.Members)
	return out, nil
}
