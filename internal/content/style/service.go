package style

import (
	"context"
	"log/slog"

	"github.com/styleatlas/api/internal/platform/validate"
	"github.com/styleatlas/api/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListStyles(context context.Context) ([]Summary, error) {
	return service.repo.List(context)
}

// GetStyleBySlug returns the detail projection, or nil when the slug does not
// resolve. The caller-supplied slug is normalized first so that differently
// cased or accented variants still match the canonical CMS slug.
func (service *Service) GetStyleBySlug(context context.Context, rawSlug string) (*Style, error) {
	normalized := slug.From(rawSlug)
	if normalized == "" {
		return nil, validate.RequiredError("slug", "Missing slug parameter")
	}
	return service.repo.GetBySlug(context, normalized)
}

// ResolveSlug maps a normalized slug to its style document id ("" when absent).
//
// The gallery submission projections depend on this to scope queries by style.
func (service *Service) ResolveSlug(context context.Context, rawSlug string) (string, error) {
	normalized := slug.From(rawSlug)
	if normalized == "" {
		return "", validate.RequiredError("slug", "Missing slug parameter")
	}
	return service.repo.ResolveSlug(context, normalized)
}
