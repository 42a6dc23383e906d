package core

import (
	"context"
	"strings"
)

// SearchResult is a single search hit, flattened to the fields shown to
// the user and exported to CSV.
type SearchResult struct {
	Subject   string
	Question  string
	Answer    string
	Timestamp string
}

// Search scans the acting user's entries for a case-insensitive
// substring match against question or answer. Results come back in
// sorted subject order, then original list order. An empty term yields
// no results without scanning.
func (s *Service) Search(ctx context.Context, actor, term string) ([]SearchResult, error) {
	if term == "" {
		return nil, nil
	}

	view, err := s.ListOwned(ctx, actor)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var results []SearchResult
	for _, subject := range view {
		for _, e := range subject.Entries {
			if strings.Contains(strings.ToLower(e.Question), needle) ||
				strings.Contains(strings.ToLower(e.Answer), needle) {
				results = append(results, SearchResult{
					Subject:   subject.Name,
					Question:  e.Question,
					Answer:    e.Answer,
					Timestamp: e.Timestamp,
				})
			}
		}
	}
	return results, nil
}
