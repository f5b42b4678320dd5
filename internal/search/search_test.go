package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/testutil"
)

func newSearcher(t *testing.T) *Searcher {
	t.Helper()
	return NewSearcher(testutil.SeoulStore(t))
}

func TestSearch_AllCorpora(t *testing.T) {
	res, err := newSearcher(t).Search("강남", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(res.Regions) != 2 {
		t.Fatalf("regions: got %+v", res.Regions)
	}
	if res.Regions[0].ID != "11680" || res.Regions[0].Name != "강남구" || res.Regions[1].Name != "강남구신사동" {
		t.Errorf("regions: got %+v", res.Regions)
	}
	if len(res.AssemblyMembers) != 1 || res.AssemblyMembers[0].Str("name") != "강남일" {
		t.Errorf("assembly: got %d hits", len(res.AssemblyMembers))
	}
	if len(res.LocalPoliticians) != 2 {
		t.Fatalf("local: got %+v", res.LocalPoliticians)
	}
	if res.LocalPoliticians[0].Name != "이강남" || res.LocalPoliticians[0].Type != "시의원" {
		t.Errorf("local[0]: got %+v", res.LocalPoliticians[0])
	}
	if res.LocalPoliticians[1].Name != "강남희" || res.LocalPoliticians[1].Gu != "강남구" {
		t.Errorf("local[1]: got %+v", res.LocalPoliticians[1])
	}
}

func TestSearch_TypeFilter(t *testing.T) {
	s := newSearcher(t)

	res, err := s.Search("강남", TypeRegion)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Regions) != 2 || len(res.AssemblyMembers) != 0 || len(res.LocalPoliticians) != 0 {
		t.Errorf("region filter: got %+v", res)
	}

	res, err = s.Search("강남", TypeAssembly)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Regions) != 0 || len(res.AssemblyMembers) != 1 {
		t.Errorf("assembly filter: got %+v", res)
	}

	res, err = s.Search("강남", "committee")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Regions)+len(res.AssemblyMembers)+len(res.LocalPoliticians) != 0 {
		t.Errorf("unknown filter should match nothing, got %+v", res)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	docs := testutil.SeoulDocuments()
	docs[docstore.SeoulComprehensive] = `{"r1": {"sigunguName": "Gangnam-gu", "dongName": "Sinsa"}, "r2": {"sigunguName": "Jongno-gu"}}`
	s := NewSearcher(docstore.New(testutil.WriteDocuments(t, docs), nil))

	res, err := s.Search("GANGNAM", TypeRegion)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(res.Regions) != 1 || res.Regions[0].ID != "r1" || res.Regions[0].Name != "Gangnam-guSinsa" {
		t.Errorf("got %+v", res.Regions)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   "} {
		_, err := newSearcher(t).Search(q, "")
		if !apperr.Is(err, apperr.InvalidArgument) {
			t.Errorf("q=%q: expected InvalidArgument, got %v", q, err)
		}
	}
}

func TestSearchHandler(t *testing.T) {
	h := &Handler{Searcher: newSearcher(t)}

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty q: got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["detail"] == "" {
		t.Errorf("error body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=%EA%B0%95%EB%82%A8", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Query   string      `json:"query"`
		Regions []RegionHit `json:"regions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Query != "강남" || len(res.Regions) != 2 {
		t.Errorf("got %+v", res)
	}
}
