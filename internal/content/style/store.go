package style

import "context"

type Repository interface {
	// List returns the summary projection of every design style.
	List(context context.Context) ([]Summary, error)

	// GetBySlug returns the detail projection for one style, or nil when the
	// slug does not resolve.
	GetBySlug(context context.Context, slug string) (*Style, error)

	// ResolveSlug maps a slug to its document id, or "" when absent.
	ResolveSlug(context context.Context, slug string) (string, error)
}
