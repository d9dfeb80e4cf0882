package stats

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"dapka/internal/http/api"
	"dapka/internal/lib/sl"
	"dapka/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=statsService --structname=MockStatsService --output=../mocks --outpkg=mocks
type statsService interface {
	GetStatistics(ctx context.Context, metric string) (*models.Summary, error)
}

type StatsHandler struct {
	log     *slog.Logger
	service statsService
}

func NewStatsHandler(log *slog.Logger, s statsService) *StatsHandler {
	return &StatsHandler{
		log:     log,
		service: s,
	}
}

type StatisticsQuery struct {
	Metric string `validate:"required,oneof=additions deletions time_to_merge_in_seconds"`
}

func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.GetStatistics"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	query := StatisticsQuery{Metric: strings.ToLower(r.URL.Query().Get("metric"))}
	if query.Metric == "" {
		query.Metric = models.ColTimeToMerge
	}

	if err := validator.New().Struct(query); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Info("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.GetStatistics(ctx, query.Metric)
	if err != nil {
		log.Error("error while retrieving statistics", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
