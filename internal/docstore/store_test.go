package docstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/testutil"
)

func TestLoad_CachesForProcessLifetime(t *testing.T) {
	dir := testutil.WriteDocuments(t, map[string]string{
		docstore.SeoulMayor: `{"name": "오세훈", "party": "국민의힘"}`,
	})
	s := docstore.New(dir, nil)

	first, err := s.Object(docstore.SeoulMayor)
	if err != nil {
		t.Fatalf("Object: %v", err)
	}

	// Changing or removing the file after the first load is not observed.
	if err := os.Remove(filepath.Join(dir, docstore.SeoulMayor)); err != nil {
		t.Fatal(err)
	}
	second, err := s.Object(docstore.SeoulMayor)
	if err != nil {
		t.Fatalf("cached Object: %v", err)
	}
	if first != second {
		t.Error("expected the cached document")
	}
	if got := s.Cached(); len(got) != 1 || got[0] != docstore.SeoulMayor {
		t.Errorf("Cached: got %v", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	s := docstore.New(t.TempDir(), nil)

	_, err := s.Load(docstore.TechStats)
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if !apperr.Is(err, apperr.LoadError) {
		t.Errorf("expected LoadError kind, got %v", apperr.KindOf(err))
	}
	if len(s.Cached()) != 0 {
		t.Error("failures must not be cached")
	}
}

func TestLoad_Unparsable(t *testing.T) {
	dir := testutil.WriteDocuments(t, map[string]string{"broken.json": `{"regions": `})
	s := docstore.New(dir, nil)

	_, err := s.Load("broken.json")
	if !apperr.Is(err, apperr.LoadError) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if errors.Is(err, docstore.ErrNotFound) {
		t.Error("parse failures are not ErrNotFound")
	}
}

func TestObject_RejectsNonObject(t *testing.T) {
	dir := testutil.WriteDocuments(t, map[string]string{"list.json": `[1, 2, 3]`})
	s := docstore.New(dir, nil)

	if _, err := s.Load("list.json"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.Object("list.json"); !apperr.Is(err, apperr.LoadError) {
		t.Errorf("expected LoadError, got %v", err)
	}
}

func TestLoad_FilenameOverride(t *testing.T) {
	dir := testutil.WriteDocuments(t, map[string]string{"tech_2024.json": `{"sigungu": {"11110": {"tech_cnt": 7}}}`})
	s := docstore.New(dir, map[string]string{docstore.TechStats: "tech_2024.json"})

	obj, err := s.Object(docstore.TechStats)
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if obj.Obj("sigungu").Obj("11110").Int("tech_cnt") != 7 {
		t.Errorf("got %v", obj.Keys())
	}
}

func TestLoad_ConcurrentColdLoads(t *testing.T) {
	s := testutil.SeoulStore(t)

	var wg sync.WaitGroup
	results := make([]any, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := s.Load(docstore.ComprehensiveStats)
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent loads returned different documents")
		}
	}
}
