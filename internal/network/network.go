// Package network serves the assembly member and issue network documents.
package network

import (
	"github.com/EmpoweredVote/insightforge/internal/apperr"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/partial"
)

type Clusters struct {
	Clusters        []any           `json:"clusters"`
	MemberToCluster *partial.Object `json:"member_to_cluster"`
	Stats           *partial.Object `json:"stats"`
}

type AssemblyCounts struct {
	Regional     int `json:"regional"`
	Proportional int `json:"proportional"`
	Total        int `json:"total"`
}

type NetworkCounts struct {
	Issues            int `json:"issues"`
	Connections       int `json:"connections"`
	MemberConnections int `json:"member_connections"`
	Clusters          int `json:"clusters"`
}

type Summary struct {
	AssemblyMembers AssemblyCounts `json:"assembly_members"`
	Network         NetworkCounts  `json:"network"`
}

type Service struct {
	docs docstore.Source
}

func NewService(docs docstore.Source) *Service {
	return &Service{docs: docs}
}

// Assembly returns the member-issue network document as stored.
func (s *Service) Assembly() (*partial.Object, error) {
	return s.docs.Object(docstore.AssemblyNetwork)
}

// Issue returns the article tracking entry of one issue.
func (s *Service) Issue(issue string) (any, error) {
	doc, err := s.docs.Object(docstore.IssueArticles)
	if err != nil {
		return nil, err
	}
	v, ok := doc.Get(issue)
	if !ok {
		return nil, apperr.NotFoundf("%s 이슈를 찾을 수 없습니다", issue)
	}
	return v, nil
}

func (s *Service) Clusters() (*Clusters, error) {
	doc, err := s.docs.Object(docstore.AssemblyNetwork)
	if err != nil {
		return nil, err
	}
	clusters := doc.List("clusters")
	if clusters == nil {
		clusters = []any{}
	}
	return &Clusters{
		Clusters:        clusters,
		MemberToCluster: doc.Obj("member_to_cluster"),
		Stats:           doc.Obj("connection_stats"),
	}, nil
}

// Summary counts assembly members and network elements.
func (s *Service) Summary() (*Summary, error) {
	assembly, err := s.docs.Object(docstore.AssemblyByRegion)
	if err != nil {
		return nil, err
	}
	graph, err := s.docs.Object(docstore.AssemblyNetwork)
	if err != nil {
		return nil, err
	}

	var out Summary
	out.AssemblyMembers.Regional = countMembers(assembly.Obj("regional"))
	out.AssemblyMembers.Proportional = countMembers(assembly.Obj("proportional"))
	out.AssemblyMembers.Total = out.AssemblyMembers.Regional + out.AssemblyMembers.Proportional

	out.Network = NetworkCounts{
		Issues:            size(graph, "issues"),
		Connections:       size(graph, "connections"),
		MemberConnections: size(graph, "member_connections"),
		Clusters:          size(graph, "clusters"),
	}
	return &out, nil
}

func countMembers(groups *partial.Object) int {
	n := 0
	for _, k := range groups.Keys() {
		n += len(groups.List(k))
	}
	return n
}

// size counts the entries of an object or list under key.
func size(doc *partial.Object, key string) int {
	if obj, ok := doc.ObjOK(key); ok {
		return obj.Len()
	}
	return len(doc.List(key))
}
