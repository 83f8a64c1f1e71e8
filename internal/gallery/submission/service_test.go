package submission_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styleatlas/api/internal/gallery/notify"
	"github.com/styleatlas/api/internal/gallery/submission"
	"github.com/styleatlas/api/internal/platform/apperr"
)

// fakeRepo records store interactions so tests can assert ordering and
// absence of writes.
type fakeRepo struct {
	uploads      int
	uploadedMime string
	uploadErr    error

	creates      int
	createdID    string
	createdInput submission.SubmitInput
	createdAsset string
	createErr    error

	statusCalls []string
	statusErr   error

	listByStatus map[submission.Status][]submission.Submission
	listByStyle  map[string][]submission.Submission
}

func (f *fakeRepo) UploadScreenshot(_ context.Context, mime string, _ []byte) (string, error) {
	f.uploads++
	f.uploadedMime = mime
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "image-asset-1", nil
}

func (f *fakeRepo) Create(_ context.Context, id string, input submission.SubmitInput, assetID string) error {
	f.creates++
	f.createdID = id
	f.createdInput = input
	f.createdAsset = assetID
	return f.createErr
}

func (f *fakeRepo) SetStatus(_ context.Context, id string, status submission.Status) error {
	f.statusCalls = append(f.statusCalls, id+":"+string(status))
	return f.statusErr
}

func (f *fakeRepo) ListByStatus(_ context.Context, status submission.Status) ([]submission.Submission, error) {
	return f.listByStatus[status], nil
}

func (f *fakeRepo) ListApprovedByStyle(_ context.Context, styleID string) ([]submission.Submission, error) {
	return f.listByStyle[styleID], nil
}

// fakeResolver resolves slugs from a fixed map.
type fakeResolver struct {
	slugs map[string]string
}

func (f *fakeResolver) ResolveSlug(_ context.Context, slug string) (string, error) {
	return f.slugs[slug], nil
}

// fakeNotifier records fan-out events.
type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) SubmissionCreated(_ context.Context, event notify.Event) {
	f.events = append(f.events, event)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func validInput() submission.SubmitInput {
	return submission.SubmitInput{
		Name:        "Ada",
		Email:       "ada@example.com",
		Style:       "style-1",
		URL:         "https://example.com",
		Screenshot:  "data:image/png;base64,iVBORw0KGgo=",
		Description: "A brutalist landing page",
	}
}

/*
TestService_Create_Success verifies the full create sequence: screenshot
upload, document create, and notification fan-out.
*/
func TestService_Create_Success(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	service := submission.NewService(repo, &fakeResolver{}, notifier, testLogger())

	input := validInput()
	require.NoError(t, service.Create(context.Background(), input))

	// One upload, then one create referencing the uploaded asset.
	assert.Equal(t, 1, repo.uploads)
	assert.Equal(t, "image/png", repo.uploadedMime)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, "image-asset-1", repo.createdAsset)
	assert.Equal(t, input, repo.createdInput)
	assert.True(t, strings.HasPrefix(repo.createdID, "submission-"))

	// The fan-out sees the submitter's details.
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.Event{
		Name:  "Ada",
		Email: "ada@example.com",
		Style: "style-1",
		URL:   "https://example.com",
	}, notifier.events[0])
}

/*
TestService_Create_ValidationFailure verifies that missing fields stop the
sequence before any store interaction.
*/
func TestService_Create_ValidationFailure(t *testing.T) {
	fields := []string{"name", "email", "style", "url", "screenshot", "description"}

	for _, field := range fields {
		t.Run("missing_"+field, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			service := submission.NewService(repo, &fakeResolver{}, notifier, testLogger())

			input := validInput()
			switch field {
			case "name":
				input.Name = ""
			case "email":
				input.Email = ""
			case "style":
				input.Style = ""
			case "url":
				input.URL = ""
			case "screenshot":
				input.Screenshot = ""
			case "description":
				input.Description = "   "
			}

			err := service.Create(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, field, ae.Details[0].Field)

			// Nothing reached the store, nothing was announced.
			assert.Zero(t, repo.uploads)
			assert.Zero(t, repo.creates)
			assert.Empty(t, notifier.events)
		})
	}
}

/*
TestService_Create_InvalidScreenshot verifies that a malformed screenshot is
rejected before the upload step.
*/
func TestService_Create_InvalidScreenshot(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	service := submission.NewService(repo, &fakeResolver{}, notifier, testLogger())

	input := validInput()
	input.Screenshot = "https://example.com/shot.png"

	err := service.Create(context.Background(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_SCREENSHOT_FORMAT", ae.Code)

	assert.Zero(t, repo.uploads)
	assert.Zero(t, repo.creates)
	assert.Empty(t, notifier.events)
}

/*
TestService_Create_UploadFailure verifies that an asset ingestion error
surfaces and no document is created.
*/
func TestService_Create_UploadFailure(t *testing.T) {
	repo := &fakeRepo{uploadErr: apperr.StoreUnavailable("Failed to upload screenshot", errors.New("boom"))}
	notifier := &fakeNotifier{}
	service := submission.NewService(repo, &fakeResolver{}, notifier, testLogger())

	err := service.Create(context.Background(), validInput())
	require.Error(t, err)

	assert.Zero(t, repo.creates)
	assert.Empty(t, notifier.events)
}

/*
TestService_Create_OrphanedAsset verifies that a create failure after a
successful upload surfaces the error without notifying; the asset is left
orphaned by design of the two-call sequence.
*/
func TestService_Create_OrphanedAsset(t *testing.T) {
	repo := &fakeRepo{createErr: apperr.StoreUnavailable("Failed to create submission", errors.New("boom"))}
	notifier := &fakeNotifier{}
	service := submission.NewService(repo, &fakeResolver{}, notifier, testLogger())

	err := service.Create(context.Background(), validInput())
	require.Error(t, err)

	assert.Equal(t, 1, repo.uploads)
	assert.Equal(t, 1, repo.creates)
	assert.Empty(t, notifier.events)
}

/*
TestService_Moderation verifies the approve and reject transitions, including
the blind re-transition on documents already in a terminal state.
*/
func TestService_Moderation(t *testing.T) {
	repo := &fakeRepo{}
	service := submission.NewService(repo, &fakeResolver{}, &fakeNotifier{}, testLogger())

	require.NoError(t, service.Approve(context.Background(), "submission-1"))
	require.NoError(t, service.Reject(context.Background(), "submission-2"))

	// Re-approving an already-moderated document is a plain patch again.
	require.NoError(t, service.Approve(context.Background(), "submission-2"))

	assert.Equal(t, []string{
		"submission-1:approved",
		"submission-2:rejected",
		"submission-2:approved",
	}, repo.statusCalls)
}

/*
TestService_Moderation_MissingID verifies that an empty id is rejected before
any store call.
*/
func TestService_Moderation_MissingID(t *testing.T) {
	repo := &fakeRepo{}
	service := submission.NewService(repo, &fakeResolver{}, &fakeNotifier{}, testLogger())

	for _, transition := range []func(context.Context, string) error{service.Approve, service.Reject} {
		err := transition(context.Background(), "")
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	}
	assert.Empty(t, repo.statusCalls)
}

/*
TestService_ListProjections verifies the status-scoped read projections.
*/
func TestService_ListProjections(t *testing.T) {
	approved := []submission.Submission{{ID: "submission-a", Status: submission.StatusApproved}}
	pending := []submission.Submission{{ID: "submission-p", Status: submission.StatusSubmitted}}

	repo := &fakeRepo{listByStatus: map[submission.Status][]submission.Submission{
		submission.StatusApproved:  approved,
		submission.StatusSubmitted: pending,
	}}
	service := submission.NewService(repo, &fakeResolver{}, &fakeNotifier{}, testLogger())

	got, err := service.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Equal(t, approved, got)

	got, err = service.ListPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pending, got)
}

/*
TestService_ListApprovedByStyle verifies slug resolution and the empty-list
behavior for unknown slugs.
*/
func TestService_ListApprovedByStyle(t *testing.T) {
	scoped := []submission.Submission{{ID: "submission-s", Status: submission.StatusApproved}}

	repo := &fakeRepo{listByStyle: map[string][]submission.Submission{"style-1": scoped}}
	resolver := &fakeResolver{slugs: map[string]string{"art-deco": "style-1"}}
	service := submission.NewService(repo, resolver, &fakeNotifier{}, testLogger())

	got, err := service.ListApprovedByStyle(context.Background(), "art-deco")
	require.NoError(t, err)
	assert.Equal(t, scoped, got)

	// Unknown slug: empty list, not an error.
	got, err = service.ListApprovedByStyle(context.Background(), "vaporwave")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
