package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/config"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/testutil"
	"github.com/EmpoweredVote/insightforge/internal/utils"
)

func testServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()

	cfg := config.Defaults()
	cfg.DataDir = testutil.WriteDocuments(t, docs)
	cfg.RateLimit.Enabled = false

	h, err := newRouter(cfg, docstore.New(cfg.DataDir, nil))
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, out any) int {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestRoutes_Status(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/api/national/sido", http.StatusOK},
		{"/api/national/sido/11", http.StatusOK},
		{"/api/national/sido/99", http.StatusNotFound},
		{"/api/national/sigungu/11110", http.StatusOK},
		{"/api/national/sigungu/99999/detail", http.StatusOK},
		{"/api/national/emdong/1111051500?year=2022", http.StatusOK},
		{"/api/national/emdong/0000000000", http.StatusNotFound},
		{"/api/years", http.StatusOK},
		{"/api/emdong/1111051500/timeseries", http.StatusOK},
		{"/api/emdong/1168051000/timeseries", http.StatusNotFound},
		{"/api/emdong/1111051500/enhanced", http.StatusOK},
		{"/api/politicians/emdong/2611051000", http.StatusOK},
		{"/api/politicians/emdong/0000000000", http.StatusOK},
		{"/api/politicians/assembly", http.StatusOK},
		{"/api/regions", http.StatusOK},
		{"/api/regions/11110", http.StatusOK},
		{"/api/regions/26110", http.StatusNotFound},
		{"/api/search?q=", http.StatusBadRequest},
		{"/api/search", http.StatusBadRequest},
		{"/api/stats/summary", http.StatusOK},
		{"/api/network/assembly", http.StatusOK},
		{"/api/network/clusters", http.StatusOK},
		{"/api/network/issues/" + url.PathEscape("외교"), http.StatusNotFound},
		{"/api/lda/district/" + url.PathEscape("종로구"), http.StatusOK},
		{"/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("got %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestEmdong_CorrectedHouseholds(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	var body struct {
		Code      string `json:"code"`
		Year      string `json:"year"`
		Household struct {
			HouseholdCnt    int64 `json:"household_cnt"`
			FamilyMemberCnt int64 `json:"family_member_cnt"`
		} `json:"household"`
	}
	if code := get(t, srv, "/api/national/emdong/1111051500", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body.Year != "2023" || body.Household.FamilyMemberCnt != 15000 || body.Household.HouseholdCnt != 6000 {
		t.Errorf("got %+v", body)
	}
}

func TestPoliticians_OrderedRoster(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	var body struct {
		Politicians []struct {
			Type     string `json:"type"`
			Priority int    `json:"priority"`
		} `json:"politicians"`
		Total int `json:"total"`
	}
	if code := get(t, srv, "/api/politicians/emdong/1111051500", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body.Total != 6 {
		t.Fatalf("total: got %d", body.Total)
	}
	for i := 1; i < len(body.Politicians); i++ {
		if body.Politicians[i].Priority < body.Politicians[i-1].Priority {
			t.Errorf("priority decreases at %d: %+v", i, body.Politicians)
		}
	}
	if body.Politicians[0].Type != "서울시장" {
		t.Errorf("first: got %q", body.Politicians[0].Type)
	}
}

func TestSearch_Both(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	var body struct {
		Regions         []json.RawMessage `json:"regions"`
		AssemblyMembers []json.RawMessage `json:"assembly_members"`
	}
	if code := get(t, srv, "/api/search?q="+url.QueryEscape("강남"), &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(body.Regions) == 0 || len(body.AssemblyMembers) == 0 {
		t.Errorf("expected region and representative matches, got %d / %d", len(body.Regions), len(body.AssemblyMembers))
	}
}

func TestMissingDocument_Is500WithDetail(t *testing.T) {
	docs := testutil.SeoulDocuments()
	delete(docs, docstore.MultiyearStats)
	srv := testServer(t, docs)

	var body map[string]string
	if code := get(t, srv, "/api/years", &body); code != http.StatusInternalServerError {
		t.Fatalf("status %d", code)
	}
	if !strings.Contains(body["detail"], docstore.MultiyearStats) {
		t.Errorf("detail: got %q", body["detail"])
	}
}

func TestAggregationRetriedOnDemand(t *testing.T) {
	docs := testutil.SeoulDocuments()
	delete(docs, docstore.CommercialStats)
	srv := testServer(t, docs)

	var health map[string]any
	get(t, srv, "/health", &health)
	if health["aggregated"] != false {
		t.Fatalf("aggregation should have failed at startup: %v", health)
	}

	if code := get(t, srv, "/api/national/sido", nil); code != http.StatusInternalServerError {
		t.Errorf("sido list without aggregation: got %d", code)
	}
}

func TestNewRouter_UnknownLDAProvider(t *testing.T) {
	cfg := config.Defaults()
	cfg.LDAProvider = "gensim"
	if _, err := newRouter(cfg, docstore.New(t.TempDir(), nil)); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestServerTimingHeader(t *testing.T) {
	srv := testServer(t, testutil.SeoulDocuments())

	resp, err := http.Get(srv.URL + "/api/politicians/emdong/1111051500")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := utils.ServerTimings(resp.Header); len(got) != 1 || got[0] != "match" {
		t.Errorf("Server-Timing: got %v", got)
	}
}
