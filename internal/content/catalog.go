package content

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Categories []category `yaml:"categories"`
}

type category struct {
	Name   string  `yaml:"name"`
	Videos []Video `yaml:"videos"`
}

// Catalog is a Lookup over a fixed, embedded video corpus. Category order
// in the source file is preserved so searches are reproducible.
type Catalog struct {
	categories []category
}

// NewCatalog parses the embedded corpus.
func NewCatalog() (*Catalog, error) {
	return parseCatalog(catalogYAML)
}

func parseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}
	return &Catalog{categories: f.Categories}, nil
}

// SearchByTopic returns videos whose category, topic tags, or title
// contain the keyword (case-insensitive). Duplicates are removed by
// videoId, first occurrence wins.
func (c *Catalog) SearchByTopic(_ context.Context, keyword string) ([]Video, error) {
	q := strings.ToLower(keyword)

	var results []Video
	seen := make(map[string]bool)

	for _, cat := range c.categories {
		for _, v := range cat.Videos {
			if !matches(cat.Name, v, q) {
				continue
			}
			if seen[v.VideoID] {
				continue
			}
			seen[v.VideoID] = true
			results = append(results, v)
		}
	}

	return results, nil
}

func matches(category string, v Video, q string) bool {
	if strings.Contains(category, q) {
		return true
	}
	for _, t := range v.Topics {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(v.Title), q)
}
