package records

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"dapka/internal/http/api"
	"dapka/internal/lib/sl"
	"dapka/internal/models"
	repo "dapka/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=recordsService --structname=MockRecordsService --output=../mocks --outpkg=mocks
type recordsService interface {
	GetRecords(ctx context.Context, group string) ([]models.Record, error)
	GetRecordByReviewID(ctx context.Context, reviewID string) (*models.Record, error)
}

type RecordsHandler struct {
	log     *slog.Logger
	service recordsService
}

func NewRecordsHandler(log *slog.Logger, s recordsService) *RecordsHandler {
	return &RecordsHandler{
		log:     log,
		service: s,
	}
}

type ListQuery struct {
	Group string `validate:"required,oneof=ai non_ai all"`
}

func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.records.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	query := ListQuery{Group: strings.ToLower(r.URL.Query().Get("group"))}
	if query.Group == "" {
		query.Group = repo.GroupAll
	}

	if err := validator.New().Struct(query); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Info("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	records, err := h.service.GetRecords(ctx, query.Group)
	if err != nil {
		log.Error("error while retrieving records", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.RecordsResponse{
		Group:   query.Group,
		Count:   len(records),
		Records: api.ToRecordSchemas(records),
	})
}

func (h *RecordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.records.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	reviewID := chi.URLParam(r, "reviewID")
	if reviewID == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "review id is required"))
		return
	}

	record, err := h.service.GetRecordByReviewID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Info("record not found", slog.String("review_id", reviewID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
			return
		}
		log.Error("error while retrieving record", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, api.RecordResponse{Record: api.ToRecordSchema(*record)})
}
