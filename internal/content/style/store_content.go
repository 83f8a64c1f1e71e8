package style

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/styleatlas/api/internal/platform/contentstore"
	"github.com/styleatlas/api/internal/platform/storeerr"
)

// ContentRepository implements [Repository] against the hosted document store.
type ContentRepository struct {
	store *contentstore.Client
}

func NewContentRepository(store *contentstore.Client) *ContentRepository {
	return &ContentRepository{store: store}
}

func (repository *ContentRepository) List(context context.Context) ([]Summary, error) {
	groq := `*[_type == "designStyle"]{_id, title, "slug": slug.current, description}`

	result, err := repository.store.Query(context, groq)
	if err != nil {
		return nil, storeerr.Wrap(err, "Failed to fetch styles")
	}

	styles := make([]Summary, 0)
	if len(result) > 0 && string(result) != "null" {
		if err := json.Unmarshal(result, &styles); err != nil {
			return nil, storeerr.Wrap(fmt.Errorf("decode styles: %w", err), "Failed to fetch styles")
		}
	}
	return styles, nil
}

func (repository *ContentRepository) GetBySlug(context context.Context, slug string) (*Style, error) {
	groq := fmt.Sprintf(`*[_type == "designStyle" && slug.current == %s][0]{
		_id,
		title,
		"slug": slug.current,
		description,
		historicalBackground,
		colorPalette,
		typography,
		"sampleImages": sampleImages[]{asset->{_id, url}}
	}`, contentstore.Quote(slug))

	result, err := repository.store.Query(context, groq)
	if err != nil {
		return nil, storeerr.Wrap(err, "Failed to fetch style detail")
	}

	if len(result) == 0 || string(result) == "null" {
		return nil, nil
	}

	detail := &Style{}
	if err := json.Unmarshal(result, detail); err != nil {
		return nil, storeerr.Wrap(fmt.Errorf("decode style: %w", err), "Failed to fetch style detail")
	}
	return detail, nil
}

func (repository *ContentRepository) ResolveSlug(context context.Context, slug string) (string, error) {
	groq := fmt.Sprintf(`*[_type == "designStyle" && slug.current == %s][0]._id`, contentstore.Quote(slug))

	result, err := repository.store.Query(context, groq)
	if err != nil {
		return "", storeerr.Wrap(err, "Failed to resolve style")
	}

	if len(result) == 0 || string(result) == "null" {
		return "", nil
	}

	var id string
	if err := json.Unmarshal(result, &id); err != nil {
		return "", storeerr.Wrap(fmt.Errorf("decode style id: %w", err), "Failed to resolve style")
	}
	return id, nil
}
