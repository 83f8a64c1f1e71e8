package submission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/styleatlas/api/internal/gallery/notify"
	"github.com/styleatlas/api/internal/platform/validate"
)

// StyleResolver maps a style slug to its document id ("" when absent).
// Implemented by the style service; declared here to keep the dependency
// direction explicit and mockable.
type StyleResolver interface {
	ResolveSlug(ctx context.Context, slug string) (string, error)
}

// Notifier is the best-effort fan-out invoked after a successful create.
type Notifier interface {
	SubmissionCreated(ctx context.Context, event notify.Event)
}

// Service is the submission lifecycle manager.
//
// It owns the submitted → approved|rejected state machine and the two read
// projections over it, and orchestrates the multi-step create sequence
// (validate → ingest screenshot → create document → notify).
type Service struct {
	repo     Repository
	styles   StyleResolver
	notifier Notifier
	logger   *slog.Logger
}

func NewService(repo Repository, styles StyleResolver, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		styles:   styles,
		notifier: notifier,
		logger:   logger,
	}
}

// # Create

// Create validates a public submission, ingests its screenshot, and persists
// the document in the submitted state.
//
// The asset upload and the document create are two independent store calls
// with no atomicity across them: if the create fails after the upload
// succeeded, the asset is orphaned. That is tolerated — the orphan is logged
// and no compensating delete is attempted.
func (service *Service) Create(ctx context.Context, input SubmitInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	mime, data, err := decodeScreenshot(input.Screenshot)
	if err != nil {
		return err
	}

	assetID, err := service.repo.UploadScreenshot(ctx, mime, data)
	if err != nil {
		return err
	}

	id := newSubmissionID()
	if err := service.repo.Create(ctx, id, input, assetID); err != nil {
		service.logger.Warn("orphaned_screenshot_asset",
			slog.String("asset_id", assetID),
			slog.String("submission_id", id),
		)
		return err
	}

	service.logger.Info("submission_created",
		slog.String("submission_id", id),
		slog.String("style", input.Style),
	)

	// Best-effort side notifications: outcomes are logged inside the
	// fan-out and never alter this call's result.
	service.notifier.SubmissionCreated(ctx, notify.Event{
		Name:  input.Name,
		Email: input.Email,
		Style: input.Style,
		URL:   input.URL,
	})

	return nil
}

// validateInput enforces presence of every required field. Email and URL
// formats are owned by the CMS schema and deliberately not duplicated here.
func validateInput(input SubmitInput) error {
	v := &validate.Validator{}
	v.Required("name", input.Name).
		Required("email", input.Email).
		Required("style", input.Style).
		Required("url", input.URL).
		Required("screenshot", input.Screenshot).
		Required("description", input.Description)
	return v.Err()
}

// newSubmissionID generates a time-sortable document id so creates are
// traceable in logs before the store confirms them.
func newSubmissionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "submission-" + id.String()
}

// # Moderation

// Approve transitions a submission to the approved terminal state.
//
// The patch is blind: approving an already-approved (or rejected) document
// silently succeeds with last-write-wins semantics on the status field.
func (service *Service) Approve(ctx context.Context, id string) error {
	return service.setStatus(ctx, id, StatusApproved)
}

// Reject transitions a submission to the rejected terminal state.
func (service *Service) Reject(ctx context.Context, id string) error {
	return service.setStatus(ctx, id, StatusRejected)
}

func (service *Service) setStatus(ctx context.Context, id string, status Status) error {
	if id == "" {
		return validate.RequiredError("id", "Missing id")
	}

	if err := service.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}

	service.logger.Info("submission_status_changed",
		slog.String("submission_id", id),
		slog.String("status", string(status)),
	)
	return nil
}

// # Read Projections

// ListApproved returns the public gallery: approved submissions only,
// newest first.
func (service *Service) ListApproved(ctx context.Context) ([]Submission, error) {
	return service.repo.ListByStatus(ctx, StatusApproved)
}

// ListPending returns the moderation queue: submissions awaiting review,
// newest first.
func (service *Service) ListPending(ctx context.Context) ([]Submission, error) {
	return service.repo.ListByStatus(ctx, StatusSubmitted)
}

// ListApprovedByStyle returns approved submissions scoped to one style slug.
//
// Two steps: the slug is resolved to a style document id, then approved
// submissions referencing that id are fetched. An unknown slug yields an
// empty list, not an error.
func (service *Service) ListApprovedByStyle(ctx context.Context, slug string) ([]Submission, error) {
	styleID, err := service.styles.ResolveSlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if styleID == "" {
		return []Submission{}, nil
	}
	return service.repo.ListApprovedByStyle(ctx, styleID)
}
