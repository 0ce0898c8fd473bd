package content

import "time"

// Status is the review state of a content item.
type Status string

// Review states for content items.
const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// Metadata carries SEO and social metadata returned by the generation service.
type Metadata struct {
	Keywords          []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	TopicPillar       string   `json:"topicPillar,omitempty" yaml:"topic_pillar,omitempty"`
	TargetKeyword     string   `json:"targetKeyword,omitempty" yaml:"target_keyword,omitempty"`
	SEOScore          int      `json:"seoScore,omitempty" yaml:"seo_score,omitempty"`
	WordCount         int      `json:"wordCount,omitempty" yaml:"word_count,omitempty"`
	Hashtags          []string `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
	EstimatedReadTime int      `json:"estimatedReadTime,omitempty" yaml:"estimated_read_time,omitempty"`
}

// Draft is a generated piece of content as returned by the generation service.
type Draft struct {
	Title    string   `json:"title" yaml:"title"`
	Type     string   `json:"type" yaml:"type"`
	Content  string   `json:"content" yaml:"content"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Item is a draft that has entered the review queue.
type Item struct {
	ID        string    `json:"id" yaml:"id"`
	Status    Status    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Draft     `yaml:",inline"`
}
