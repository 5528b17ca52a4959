package model

import "time"

// Article is a news document as stored in the source collection.
type Article struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Source      string    `json:"source,omitempty" bson:"source,omitempty"`
	URL         string    `json:"url" bson:"url"`
	Title       string    `json:"title" bson:"title"`
	Author      string    `json:"author,omitempty" bson:"author,omitempty"`
	ParseDate   time.Time `json:"parse_date,omitempty" bson:"parse_date,omitempty"`
	ArticleDate string    `json:"article_date,omitempty" bson:"article_date,omitempty"`
	Text        string    `json:"text" bson:"text"`
	Section     string    `json:"section,omitempty" bson:"section,omitempty"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
}

// ProcessedArticle is an article augmented with its resolved entities,
// written to the processed collection.
type ProcessedArticle struct {
	Article       `bson:",inline"`
	ProcessedDate time.Time `json:"processed_date" bson:"processed_date"`
	Entities      *Entities `json:"extracted_entities" bson:"extracted_entities"`
}

// Report is the output of extracting a single document outside the
// database path (extract/batch commands).
type Report struct {
	Subject     string    `json:"subject"`
	SourceURL   string    `json:"source_url,omitempty"`
	ExtractedAt time.Time `json:"extracted_at"`
	Text        string    `json:"text"`
	Entities    *Entities `json:"extracted_entities"`
}
