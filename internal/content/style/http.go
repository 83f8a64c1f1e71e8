package style

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/styleatlas/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/styles", handler.listStyles)
	router.Get("/style-detail", handler.styleDetail)
}

type stylesResponse struct {
	Styles []Summary `json:"styles"`
}

type styleDetailResponse struct {
	Style *Style `json:"style"`
}

func (handler *Handler) listStyles(writer http.ResponseWriter, request *http.Request) {
	styles, err := handler.service.ListStyles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stylesResponse{Styles: styles})
}

// styleDetail handles GET /api/style-detail?slug=<slug>.
// An unknown slug is not an error: the response carries a null style.
func (handler *Handler) styleDetail(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetStyleBySlug(request.Context(), request.URL.Query().Get("slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, styleDetailResponse{Style: detail})
}
