package submission

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/styleatlas/api/internal/platform/contentstore"
	"github.com/styleatlas/api/internal/platform/storeerr"
)

// listProjection is the shared GROQ projection for submission lists: the
// style reference resolved to {_id, title, slug} and the screenshot resolved
// to its asset URL.
const listProjection = `{
	_id,
	name,
	email,
	description,
	url,
	status,
	"style": style->{_id, title, "slug": slug.current},
	"screenshot": screenshot{asset->{_id, url}}
}`

// ContentRepository implements [Repository] against the hosted document store.
type ContentRepository struct {
	store *contentstore.Client
}

func NewContentRepository(store *contentstore.Client) *ContentRepository {
	return &ContentRepository{store: store}
}

func (repository *ContentRepository) UploadScreenshot(context context.Context, mime string, data []byte) (string, error) {
	asset, err := repository.store.UploadImage(context, mime, data)
	if err != nil {
		return "", storeerr.Wrap(err, "Failed to upload screenshot")
	}
	return asset.ID, nil
}

func (repository *ContentRepository) Create(context context.Context, id string, input SubmitInput, assetID string) error {
	document := map[string]interface{}{
		"_id":         id,
		"_type":       "gallerySubmission",
		"name":        input.Name,
		"email":       input.Email,
		"style":       map[string]interface{}{"_type": "reference", "_ref": input.Style},
		"url":         input.URL,
		"description": input.Description,
		"screenshot": map[string]interface{}{
			"_type": "image",
			"asset": map[string]interface{}{"_type": "reference", "_ref": assetID},
		},
		"status": string(StatusSubmitted),
	}

	err := repository.store.Mutate(context, contentstore.Mutation{Create: document})
	return storeerr.Wrap(err, "Failed to create submission")
}

func (repository *ContentRepository) SetStatus(context context.Context, id string, status Status) error {
	err := repository.store.Mutate(context, contentstore.Mutation{
		Patch: &contentstore.Patch{
			ID:  id,
			Set: map[string]interface{}{"status": string(status)},
		},
	})
	return storeerr.Wrap(err, fmt.Sprintf("Failed to mark submission %s", status))
}

func (repository *ContentRepository) ListByStatus(context context.Context, status Status) ([]Submission, error) {
	groq := fmt.Sprintf(`*[_type == "gallerySubmission" && status == %s] | order(_createdAt desc) %s`,
		contentstore.Quote(string(status)), listProjection)

	return repository.list(context, groq, "Failed to fetch submissions")
}

func (repository *ContentRepository) ListApprovedByStyle(context context.Context, styleID string) ([]Submission, error) {
	groq := fmt.Sprintf(`*[_type == "gallerySubmission" && status == %s && style._ref == %s] | order(_createdAt desc) %s`,
		contentstore.Quote(string(StatusApproved)), contentstore.Quote(styleID), listProjection)

	return repository.list(context, groq, "Failed to fetch style submissions")
}

func (repository *ContentRepository) list(context context.Context, groq, failureMsg string) ([]Submission, error) {
	result, err := repository.store.Query(context, groq)
	if err != nil {
		return nil, storeerr.Wrap(err, failureMsg)
	}

	submissions := make([]Submission, 0)
	if len(result) > 0 && string(result) != "null" {
		if err := json.Unmarshal(result, &submissions); err != nil {
			return nil, storeerr.Wrap(fmt.Errorf("decode submissions: %w", err), failureMsg)
		}
	}
	return submissions, nil
}
