package model

import "time"

// Stats aggregates the outcome of a batch processing run.
type Stats struct {
	TotalArticles      int           `json:"total_articles"`
	ProcessedArticles  int           `json:"processed_articles"`
	SkippedArticles    int           `json:"skipped_articles"`
	TotalPersons       int           `json:"total_persons"`
	TotalOrganisations int           `json:"total_organisations"`
	TotalLocations     int           `json:"total_locations"`
	ProcessingTime     time.Duration `json:"processing_time"`
}

// Add folds one document's entities into the running totals.
func (s *Stats) Add(e *Entities) {
	s.ProcessedArticles++
	s.TotalPersons += len(e.Persons)
	s.TotalOrganisations += len(e.Organisations)
	s.TotalLocations += len(e.Locations)
}
