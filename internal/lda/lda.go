// Package lda serves topic-model results. District topics are not computed;
// member and local politician topics come from pre-built documents.
package lda

import (
	"errors"
	"fmt"
	"sort"

	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
)

// Provider is the topic-model capability behind /api/lda.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// District returns the topics of one district.
	District(gu string) (*DistrictTopics, error)

	// Assembly returns the analysis of one national assembly member.
	Assembly(name string) (any, error)

	// Local returns the analysis of one local politician.
	Local(name string) (any, error)
}

// ErrUnknownProvider is returned when no provider is registered under a name.
var ErrUnknownProvider = errors.New("unknown lda provider")

var providerRegistry = map[string]func(docstore.Source) Provider{}

// RegisterProvider registers a provider constructor under name.
func RegisterProvider(name string, constructor func(docstore.Source) Provider) {
	providerRegistry[name] = constructor
}

func init() {
	RegisterProvider("unimplemented", func(docstore.Source) Provider { return Unimplemented{} })
	RegisterProvider("documents", func(docs docstore.Source) Provider { return NewDocuments(docs) })
}

// NewProvider builds the provider registered under name.
func NewProvider(name string, docs docstore.Source) (Provider, error) {
	constructor, ok := providerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownProvider, name, Providers())
	}
	return constructor(docs), nil
}

// Providers lists the registered provider names.
func Providers() []string {
	names := make([]string, 0, len(providerRegistry))
	for name := range providerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type DistrictTopics struct {
	Gu          string `json:"gu"`
	Topics      []any  `json:"topics"`
	Keywords    []any  `json:"keywords"`
	Message     string `json:"message"`
	Implemented bool   `json:"implemented"`
}

const notImplementedMessage = "LDA 분석 결과 (구현 예정)"

// Unimplemented answers every request with an empty placeholder or NotFound.
type Unimplemented struct{}

func (Unimplemented) Name() string { return "unimplemented" }

func (Unimplemented) District(gu string) (*DistrictTopics, error) {
	return &DistrictTopics{Gu: gu, Topics: []any{}, Keywords: []any{}, Message: notImplementedMessage}, nil
}

func (Unimplemented) Assembly(name string) (any, error) {
	return nil, apperr.NotFoundf("%s 의원의 데이터를 찾을 수 없습니다", name)
}

func (Unimplemented) Local(name string) (any, error) {
	return nil, apperr.NotFoundf("%s 정치인의 데이터를 찾을 수 없습니다", name)
}

// Documents reads member analyses from the LDA documents. District topics
// stay unimplemented.
type Documents struct {
	Unimplemented
	docs docstore.Source
}

func NewDocuments(docs docstore.Source) *Documents {
	return &Documents{docs: docs}
}

func (d *Documents) Name() string { return "documents" }

func (d *Documents) Assembly(name string) (any, error) {
	doc, err := d.docs.Object(docstore.AssemblyLDA)
	if err != nil {
		return nil, err
	}
	v, ok := doc.Get(name)
	if !ok {
		return nil, apperr.NotFoundf("%s 의원의 데이터를 찾을 수 없습니다", name)
	}
	return v, nil
}

func (d *Documents) Local(name string) (any, error) {
	doc, err := d.docs.Object(docstore.LocalPoliticiansLDA)
	if err != nil {
		return nil, err
	}
	v, ok := doc.Get(name)
	if !ok {
		return nil, apperr.NotFoundf("%s 정치인의 데이터를 찾을 수 없습니다", name)
	}
	return v, nil
}
