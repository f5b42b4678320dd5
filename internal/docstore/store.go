package docstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/metrics"
	"github.com/EmpoweredVote/insightforge/internal/partial"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is wrapped by load errors for documents that do not exist.
var ErrNotFound = errors.New("document not found")

// Store loads JSON documents from a read-only data directory and keeps every
// parsed document for the lifetime of the process. There is no eviction and
// no reload.
type Store struct {
	root  string
	files map[string]string
	cache *gocache.Cache
	group singleflight.Group
}

// New returns a store rooted at dir. files maps a logical document name to
// the filename to read; names without an entry are read verbatim.
func New(dir string, files map[string]string) *Store {
	f := make(map[string]string, len(files))
	for k, v := range files {
		f[k] = v
	}
	return &Store{
		root:  dir,
		files: f,
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *Store) Root() string { return s.root }

func (s *Store) filename(name string) string {
	if f, ok := s.files[name]; ok && f != "" {
		return f
	}
	return name
}

// Load returns the parsed document. Concurrent first loads of the same name
// share one read.
func (s *Store) Load(name string) (any, error) {
	if v, ok := s.cache.Get(name); ok {
		metrics.DocumentCacheHitsTotal.Inc()
		return v, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		if v, ok := s.cache.Get(name); ok {
			return v, nil
		}
		doc, err := s.read(name)
		if err != nil {
			return nil, err
		}
		s.cache.Set(name, doc, gocache.NoExpiration)
		return doc, nil
	})
	return v, err
}

// Object loads a document whose top level must be a JSON object.
func (s *Store) Object(name string) (*partial.Object, error) {
	v, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	obj, ok := partial.AsObject(v)
	if !ok {
		return nil, apperr.Load(fmt.Errorf("top level is %T", v), "unexpected structure in %s", name)
	}
	return obj, nil
}

// Cached lists the names of documents currently held in memory.
func (s *Store) Cached() []string {
	items := s.cache.Items()
	names := make([]string, 0, len(items))
	for k := range items {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (s *Store) read(name string) (any, error) {
	start := time.Now()
	path := filepath.Join(s.root, s.filename(name))

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.DocumentLoadsTotal.WithLabelValues(name, "missing").Inc()
			return nil, apperr.Load(fmt.Errorf("%w: %s", ErrNotFound, path), "%s not found", name)
		}
		metrics.DocumentLoadsTotal.WithLabelValues(name, "invalid").Inc()
		return nil, apperr.Load(err, "failed to load %s", name)
	}
	defer f.Close()

	doc, err := partial.Decode(bufio.NewReader(f))
	if err != nil {
		metrics.DocumentLoadsTotal.WithLabelValues(name, "invalid").Inc()
		log.Printf("[docstore] parse %s failed: %v", path, err)
		return nil, apperr.Load(err, "failed to load %s", name)
	}

	dur := time.Since(start)
	metrics.DocumentLoadsTotal.WithLabelValues(name, "ok").Inc()
	metrics.DocumentLoadDurationMs.WithLabelValues(name).Observe(float64(dur.Milliseconds()))
	log.Printf("[docstore] loaded %s in %dms", name, dur.Milliseconds())
	return doc, nil
}
