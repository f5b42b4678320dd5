// Package search does linear substring search over region and
// representative names.
package search

import (
	"strings"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
	"github.com/EmpoweredVote/insightforge/internal/regions"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Corpus filters accepted by Search. An empty filter searches all of them.
const (
	TypeRegion   = "region"
	TypeAssembly = "assembly"
	TypeLocal    = "local"
)

type RegionHit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type LocalHit struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	District string `json:"district"`
	Gu       string `json:"gu"`
	Type     string `json:"type"`
}

type Results struct {
	Query            string            `json:"query"`
	Regions          []RegionHit       `json:"regions"`
	AssemblyMembers  []*partial.Object `json:"assembly_members"`
	LocalPoliticians []LocalHit        `json:"local_politicians"`
}

type Searcher struct {
	docs docstore.Source
}

func NewSearcher(docs docstore.Source) *Searcher {
	return &Searcher{docs: docs}
}

// Search matches query case-insensitively against the corpora selected by
// typeFilter. An unrecognized filter matches nothing.
func (s *Searcher) Search(query, typeFilter string) (*Results, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.InvalidArgumentf("검색어를 입력하세요")
	}

	res := &Results{
		Query:            query,
		Regions:          []RegionHit{},
		AssemblyMembers:  []*partial.Object{},
		LocalPoliticians: []LocalHit{},
	}
	needle := fold(query)
	all := typeFilter == ""

	if all || typeFilter == TypeRegion {
		hits, err := s.regions(needle)
		if err != nil {
			return nil, err
		}
		res.Regions = hits
	}
	if all || typeFilter == TypeAssembly {
		hits, err := s.assembly(needle)
		if err != nil {
			return nil, err
		}
		res.AssemblyMembers = hits
	}
	if all || typeFilter == TypeLocal {
		hits, err := s.local(needle)
		if err != nil {
			return nil, err
		}
		res.LocalPoliticians = hits
	}
	return res, nil
}

func (s *Searcher) regions(needle string) ([]RegionHit, error) {
	doc, err := s.docs.Object(docstore.SeoulComprehensive)
	if err != nil {
		return nil, err
	}

	hits := []RegionHit{}
	recs := regions.SeoulRegions(doc)
	for _, id := range recs.Keys() {
		rec, ok := recs.ObjOK(id)
		if !ok {
			continue
		}
		name := either(rec, "sigungu_name", "sigunguName") + either(rec, "dong_name", "dongName")
		if contains(name, needle) {
			hits = append(hits, RegionHit{ID: id, Name: name, Type: TypeRegion})
		}
	}
	return hits, nil
}

func (s *Searcher) assembly(needle string) ([]*partial.Object, error) {
	doc, err := s.docs.Object(docstore.AssemblyByRegion)
	if err != nil {
		return nil, err
	}

	hits := []*partial.Object{}
	regional := doc.Obj("regional")
	for _, region := range regional.Keys() {
		for _, v := range regional.List(region) {
			member, ok := partial.AsObject(v)
			if ok && contains(member.Str("name"), needle) {
				hits = append(hits, member)
			}
		}
	}
	return hits, nil
}

func (s *Searcher) local(needle string) ([]LocalHit, error) {
	hits := []LocalHit{}
	for _, src := range []struct {
		doc    string
		office string
	}{
		{docstore.SeoulCityCouncil, "시의원"},
		{docstore.SeoulDistrictCouncil, "구의원"},
	} {
		doc, err := s.docs.Object(src.doc)
		if err != nil {
			return nil, err
		}
		for _, gu := range doc.Keys() {
			for _, v := range doc.List(gu) {
				member, ok := partial.AsObject(v)
				if !ok {
					continue
				}
				name, _, _ := strings.Cut(member.Str("name"), "\n")
				if !contains(name, needle) {
					continue
				}
				hits = append(hits, LocalHit{
					Name:     name,
					Party:    member.Str("party"),
					District: member.Str("district"),
					Gu:       gu,
					Type:     src.office,
				})
			}
		}
	}
	return hits, nil
}

func either(rec *partial.Object, key, alt string) string {
	if v := rec.Str(key); v != "" {
		return v
	}
	return rec.Str(alt)
}

// fold normalizes s for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

func contains(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}
