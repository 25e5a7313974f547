// internal/infrastructure/commerce/jsonapi.go
package commerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Record is one unwrapped JSON:API resource
type Record[T any] struct {
	ID         string
	Type       string
	Attributes T
}

type resource struct {
	ID         string          `json:"id,omitempty"`
	Type       string          `json:"type,omitempty"`
	Attributes json.RawMessage `json:"attributes"`
}

type document struct {
	Data json.RawMessage `json:"data"`
}

func unwrap[T any](r resource) (Record[T], error) {
	rec := Record[T]{ID: r.ID, Type: r.Type}
	if len(r.Attributes) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(r.Attributes, &rec.Attributes); err != nil {
		return Record[T]{}, fmt.Errorf("resource[%s] attributes: %w", r.ID, err)
	}
	return rec, nil
}

func getCollection[T any](ctx context.Context, c *Client, path string, query url.Values, jsonAPI bool) ([]Record[T], error) {
	var doc document
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: query, jsonAPI: jsonAPI}, &doc); err != nil {
		return nil, err
	}

	var resources []resource
	if len(doc.Data) > 0 {
		if err := json.Unmarshal(doc.Data, &resources); err != nil {
			return nil, fmt.Errorf("data of %s is not a collection: %w", path, err)
		}
	}

	records := make([]Record[T], 0, len(resources))
	for _, r := range resources {
		rec, err := unwrap[T](r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (Record[T], error) {
	var doc document
	if err := c.do(ctx, request{method: http.MethodGet, path: path, jsonAPI: true}, &doc); err != nil {
		return Record[T]{}, err
	}
	return decodeOne[T](path, doc)
}

func decodeOne[T any](path string, doc document) (Record[T], error) {
	var r resource
	if err := json.Unmarshal(doc.Data, &r); err != nil {
		return Record[T]{}, fmt.Errorf("data of %s is not a resource: %w", path, err)
	}
	return unwrap[T](r)
}
