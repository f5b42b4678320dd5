package politicians

import (
	"strings"

	"github.com/EmpoweredVote/insightforge/internal/partial"
)

// Each strategy returns zero or more office holders for one neighborhood.
// Records of the wrong shape are skipped.

// matchMayor reads the mayor document, either a single record with a "name"
// or a mapping of name to record.
func matchMayor(doc *partial.Object) []OfficeHolder {
	if doc.Has("name") {
		return []OfficeHolder{newHolder(Mayor, firstLine(doc.Str("name")), doc.Str("party"), "서울특별시")}
	}
	var out []OfficeHolder
	for _, name := range doc.Keys() {
		info, ok := doc.ObjOK(name)
		if !ok {
			continue
		}
		out = append(out, newHolder(Mayor, firstLine(name), info.Str("party"), "서울특별시"))
	}
	return out
}

// matchDistrictHead looks the district up by exact name.
func matchDistrictHead(doc *partial.Object, sigungu string) []OfficeHolder {
	if sigungu == "" {
		return nil
	}
	info, ok := doc.ObjOK(sigungu)
	if !ok {
		return nil
	}
	return []OfficeHolder{newHolder(DistrictHead, headName(info.Str("name")), info.Str("party"), sigungu)}
}

// matchNationalAssembly uses the mapped constituency label when there is one,
// otherwise the first constituency named after the district.
func matchNationalAssembly(doc *partial.Object, label, sigungu string) []OfficeHolder {
	if label != "" {
		return matchAssemblyByLabel(doc, label)
	}
	return matchAssemblyByPrefix(doc, sigungu)
}

func matchAssemblyByLabel(doc *partial.Object, label string) []OfficeHolder {
	member, ok := doc.ObjOK(label)
	if !ok {
		return nil
	}
	return []OfficeHolder{assemblyMember(member, label)}
}

// matchAssemblyByPrefix returns at most one member: the first constituency in
// document order whose name starts with sigungu. Districts split into several
// constituencies (강남구갑, 강남구을) resolve to whichever comes first.
func matchAssemblyByPrefix(doc *partial.Object, sigungu string) []OfficeHolder {
	if sigungu == "" {
		return nil
	}
	for _, key := range doc.Keys() {
		if !strings.HasPrefix(key, sigungu) {
			continue
		}
		if member, ok := doc.ObjOK(key); ok {
			return []OfficeHolder{assemblyMember(member, key)}
		}
	}
	return nil
}

func assemblyMember(member *partial.Object, district string) OfficeHolder {
	h := newHolder(NationalAssembly, firstLine(member.Str("name")), member.Str("party"), district)
	h.Committee = member.Str("committee")
	return h
}

// matchCityCouncil returns every member in any district group whose
// constituency equals label. With no such member, the whole group of the
// neighborhood's own district is returned instead.
func matchCityCouncil(doc *partial.Object, label, sigungu string) []OfficeHolder {
	if label == "" {
		return nil
	}
	if out := matchCityCouncilByLabel(doc, label); len(out) > 0 {
		return out
	}
	return matchCityCouncilByDistrict(doc, sigungu)
}

func matchCityCouncilByLabel(doc *partial.Object, label string) []OfficeHolder {
	var out []OfficeHolder
	for _, group := range doc.Keys() {
		for _, m := range members(doc, group) {
			if m.Str("district") == label {
				out = append(out, newHolder(CityCouncil, firstLine(m.Str("name")), m.Str("party"), label))
			}
		}
	}
	return out
}

func matchCityCouncilByDistrict(doc *partial.Object, sigungu string) []OfficeHolder {
	if sigungu == "" {
		return nil
	}
	var out []OfficeHolder
	for _, m := range members(doc, sigungu) {
		out = append(out, newHolder(CityCouncil, firstLine(m.Str("name")), m.Str("party"), m.StrOr("district", sigungu)))
	}
	return out
}

// matchDistrictCouncil returns the members of the neighborhood's district
// group whose constituency equals label.
func matchDistrictCouncil(doc *partial.Object, label, sigungu string) []OfficeHolder {
	if label == "" || sigungu == "" {
		return nil
	}
	var out []OfficeHolder
	for _, m := range members(doc, sigungu) {
		if m.Str("district") == label {
			out = append(out, newHolder(DistrictCouncil, firstLine(m.Str("name")), m.Str("party"), label))
		}
	}
	return out
}

// members returns the member records listed under group.
func members(doc *partial.Object, group string) []*partial.Object {
	var out []*partial.Object
	for _, v := range doc.List(group) {
		if m, ok := partial.AsObject(v); ok {
			out = append(out, m)
		}
	}
	return out
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// headName drops the line break and hanja suffixes of a district head name.
func headName(s string) string {
	s = firstLine(s)
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
