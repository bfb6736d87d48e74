// internal/match/browse/search.go
package browse

import (
	"context"
	"encoding/json"
	"fmt"

	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/internal/common/errors"
)

// SearchSource resolves a free-text query to matching project ids. It backs
// the search step of the browse pipeline when full-text search is delegated
// to an external index.
type SearchSource interface {
	SearchProjects(ctx context.Context, query string) ([]string, error)
}

// ElasticSearchSource queries the projects index for name and role matches.
type ElasticSearchSource struct {
	es    *database.ElasticsearchClient
	index string
}

// NewElasticSearchSource creates an Elasticsearch-backed search source.
func NewElasticSearchSource(client *database.ElasticsearchClient, index string) *ElasticSearchSource {
	return &ElasticSearchSource{es: client, index: index}
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *ElasticSearchSource) SearchProjects(ctx context.Context, query string) ([]string, error) {
	body, err := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "roles"},
			},
		},
		"_source": false,
		"size":    100,
	})
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	raw, err := s.es.Search(ctx, s.index, string(body))
	if err != nil {
		return nil, errors.NewSearchBackendError(err)
	}

	var resp searchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.NewSearchBackendError(err)
	}

	ids := make([]string, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
