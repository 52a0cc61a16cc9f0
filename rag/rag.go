package rag

import (
	"leny-backend/models"
)

// Evidence is the retrieval result handed to response assembly: one guidance
// block plus the citations backing it.
type Evidence struct {
	Content       string
	Citations     []Citation
	EvidenceLevel string
}

// Service bundles the two indexes behind one retrieval call.
type Service struct {
	literature *LiteratureIndex
	content    *ContentIndex
}

func NewService() *Service {
	return &Service{
		literature: NewLiteratureIndex(),
		content:    NewContentIndex(),
	}
}

// Retrieve assembles the evidence bundle for a query. Retrieval misses are
// not errors: an unmatched query yields the generic content block and no
// citations, at evidence level "moderate".
func (s *Service) Retrieve(query string, specialty models.Specialty, limit int) Evidence {
	citations := s.literature.Search(query, specialty, limit)
	level := "moderate"
	if len(citations) > 0 {
		level = "high"
	}
	return Evidence{
		Content:       s.content.Content(query),
		Citations:     citations,
		EvidenceLevel: level,
	}
}

// FormatCitations renders sources for the final response.
func FormatCitations(citations []Citation) []string {
	out := make([]string, 0, len(citations))
	for _, c := range citations {
		out = append(out, c.Format())
	}
	return out
}
