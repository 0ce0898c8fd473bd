package catalog

import "github.com/rshade/contentbatch/internal/content"

// Default returns the built-in demo catalog.
func Default() *Catalog {
	c, err := New([]content.Topic{
		{
			ID:          "pillar_001",
			Name:        "Digital Marketing Automation",
			Description: "AI-powered marketing strategies and automation tools",
			Keywords:    []string{"marketing automation", "AI marketing", "growth hacking"},
			Priority:    1,
		},
		{
			ID:          "pillar_002",
			Name:        "SEO Best Practices",
			Description: "Modern SEO techniques and organic growth strategies",
			Keywords:    []string{"SEO optimization", "organic traffic", "search rankings"},
			Priority:    2,
		},
		{
			ID:          "pillar_003",
			Name:        "Social Media Strategy",
			Description: "Content strategies for YouTube, Instagram, and Facebook",
			Keywords:    []string{"social media marketing", "content strategy", "engagement"},
			Priority:    3,
		},
		{
			ID:          "pillar_004",
			Name:        "Content Creation & Optimization",
			Description: "Creating high-quality, engaging content that converts",
			Keywords:    []string{"content marketing", "copywriting", "conversion optimization"},
			Priority:    4,
		},
	})
	if err != nil {
		panic(err) // static data
	}
	return c
}
