// Copyright (c) 2026 Oshidora. All rights reserved.

package preview

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nakatsuka-k/oshidora-sub000/internal/platform/request"
	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/respond"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/ranking"
	"github.com/nakatsuka-k/oshidora-sub000/internal/seed/sqlgen"
	"github.com/nakatsuka-k/oshidora-sub000/pkg/pagination"
)

// Handler exposes the preview service under /seeds.
type Handler struct {
	service *Service
}

// NewHandler creates the preview handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/v1/seeds.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{seed}/script", handler.script)
	router.Get("/{seed}/rankings", handler.rankings)
	router.Get("/{seed}/summary", handler.summary)
	return router
}

// rankingView is the JSON shape of one ranking row.
type rankingView struct {
	Rank     int    `json:"rank"`
	EntityID string `json:"entity_id"`
	Label    string `json:"label"`
	Value    int    `json:"value"`
	AsOf     string `json:"as_of"`
	Fallback bool   `json:"fallback,omitempty"`
}

// script handles GET /{seed}/script.
func (handler *Handler) script(writer http.ResponseWriter, request *http.Request) {
	script, err := handler.service.Script(request.Context(), requestutil.Param(request, "seed"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, request, func(out io.Writer) error {
		_, err := script.WriteTo(out)
		return err
	})
}

// rankings handles GET /{seed}/rankings?type=&page=&limit=.
func (handler *Handler) rankings(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	typeName := requestutil.QueryString(request, "type", string(ranking.VideoPlays))

	rows, total, err := handler.service.Rankings(request.Context(), requestutil.Param(request, "seed"), typeName, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]rankingView, len(rows))
	for i, row := range rows {
		views[i] = rankingView{
			Rank:     row.Rank,
			EntityID: row.EntityID,
			Label:    row.Label,
			Value:    row.Value,
			AsOf:     row.AsOfDate.Format(sqlgen.DateLayout),
			Fallback: row.Fallback,
		}
	}

	respond.Paginated(writer, views, pagination.NewMeta(params.Page, params.Limit, total))
}

// summary handles GET /{seed}/summary?tables=a,b.
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.Summary(request.Context(), requestutil.Param(request, "seed"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if tables := requestutil.QueryList(request, "tables"); len(tables) > 0 {
		filtered := make(map[string]int, len(tables))
		for _, table := range tables {
			if count, ok := summary.Counts[table]; ok {
				filtered[table] = count
			}
		}
		summary.Counts = filtered
	}

	respond.OK(writer, summary)
}
