package submission

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/styleatlas/api/internal/platform/respond"
	"github.com/styleatlas/api/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated gallery routes.
func (handler *Handler) RegisterPublicRoutes(router chi.Router) {
	router.Post("/submit", handler.submit)
	router.Get("/approved-submissions", handler.listApproved)
	router.Get("/style-submissions", handler.listByStyle)
}

// RegisterModerationRoutes mounts the moderation routes. The caller wraps
// them with the moderator token middleware.
func (handler *Handler) RegisterModerationRoutes(router chi.Router) {
	router.Get("/reviews", handler.listPending)
	router.Post("/approve", handler.approve)
	router.Post("/reject", handler.reject)
}

type listResponse struct {
	Submissions []Submission `json:"submissions"`
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.Create(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}

func (handler *Handler) listApproved(writer http.ResponseWriter, request *http.Request) {
	submissions, err := handler.service.ListApproved(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Submissions: submissions})
}

// listByStyle handles GET /api/style-submissions?slug=<slug>.
// An unknown slug yields an empty list rather than an error.
func (handler *Handler) listByStyle(writer http.ResponseWriter, request *http.Request) {
	submissions, err := handler.service.ListApprovedByStyle(request.Context(), request.URL.Query().Get("slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Submissions: submissions})
}

func (handler *Handler) listPending(writer http.ResponseWriter, request *http.Request) {
	submissions, err := handler.service.ListPending(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listResponse{Submissions: submissions})
}

type moderationRequest struct {
	ID string `json:"id"`
}

func (handler *Handler) approve(writer http.ResponseWriter, request *http.Request) {
	handler.moderate(writer, request, handler.service.Approve)
}

func (handler *Handler) reject(writer http.ResponseWriter, request *http.Request) {
	handler.moderate(writer, request, handler.service.Reject)
}

func (handler *Handler) moderate(writer http.ResponseWriter, request *http.Request, transition func(ctx context.Context, id string) error) {
	var body moderationRequest
	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := transition(request.Context(), body.ID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}
