package submission

import "context"

type Repository interface {
	// UploadScreenshot ingests decoded image bytes into the store's asset
	// pipeline and returns the opaque asset id.
	UploadScreenshot(context context.Context, mime string, data []byte) (string, error)

	// Create persists a new submission document in the submitted state,
	// referencing the given style and screenshot asset.
	Create(context context.Context, id string, input SubmitInput, assetID string) error

	// SetStatus patches the status field of a submission document by id.
	// The patch is blind: the current state is not read first.
	SetStatus(context context.Context, id string, status Status) error

	// ListByStatus returns submissions in the given state, newest first, with
	// the style reference and screenshot asset resolved.
	ListByStatus(context context.Context, status Status) ([]Submission, error)

	// ListApprovedByStyle returns approved submissions referencing the given
	// style document id, newest first.
	ListApprovedByStyle(context context.Context, styleID string) ([]Submission, error)
}
