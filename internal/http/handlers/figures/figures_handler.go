package figures

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dapka/internal/http/api"
	"dapka/internal/lib/sl"
	"dapka/internal/models"
	"dapka/internal/report/plot"
	repo "dapka/internal/repository"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=recordsProvider --structname=MockRecordsProvider --output=../mocks --outpkg=mocks
type recordsProvider interface {
	GetRecords(ctx context.Context, group string) ([]models.Record, error)
	Login() string
}

type figureRenderer interface {
	WritePNG(w io.Writer, c plot.Comparison) error
	WriteScatterPNG(w io.Writer, metric string, groups ...plot.ScatterGroup) error
}

type FiguresHandler struct {
	log      *slog.Logger
	records  recordsProvider
	renderer figureRenderer
}

func NewFiguresHandler(log *slog.Logger, records recordsProvider, renderer figureRenderer) *FiguresHandler {
	return &FiguresHandler{
		log:      log,
		records:  records,
		renderer: renderer,
	}
}

type FigureQuery struct {
	Func   string `validate:"required,oneof=identity log log1p sqrt"`
	Metric string `validate:"required,oneof=additions deletions time_to_merge_in_seconds"`
}

func parseQuery(r *http.Request) FigureQuery {
	q := FigureQuery{
		Func:   strings.ToLower(r.URL.Query().Get("func")),
		Metric: strings.ToLower(r.URL.Query().Get("metric")),
	}
	if q.Func == "" {
		q.Func = plot.Identity
	}
	if q.Metric == "" {
		q.Metric = models.ColTimeToMerge
	}
	return q
}

// Histogram renders both density histograms of one transform as a PNG.
func (h *FiguresHandler) Histogram(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.figures.Histogram"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := parseQuery(r)
	if !h.validate(w, r, log, query) {
		return
	}

	records, ok := h.loadRecords(w, r, log)
	if !ok {
		return
	}

	ts, err := plot.ParseTransforms([]string{query.Func})
	if err != nil {
		log.Info("invalid transform", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, err.Error()))
		return
	}

	c := plot.Compare(records, models.ColAuthorLogin, h.records.Login(), query.Metric, ts[0])

	var buf bytes.Buffer
	if err := h.renderer.WritePNG(&buf, c); err != nil {
		log.Error("failed to render histogram", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	writePNG(w, buf.Bytes())
}

// Scatter renders lines modified against the metric for both groups as a PNG.
func (h *FiguresHandler) Scatter(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.figures.Scatter"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := parseQuery(r)
	if !h.validate(w, r, log, query) {
		return
	}

	records, ok := h.loadRecords(w, r, log)
	if !ok {
		return
	}

	a, b := plot.Scatter(records, models.ColAuthorLogin, h.records.Login(), query.Metric)

	var buf bytes.Buffer
	if err := h.renderer.WriteScatterPNG(&buf, query.Metric, a, b); err != nil {
		log.Error("failed to render scatterplot", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	writePNG(w, buf.Bytes())
}

func (h *FiguresHandler) validate(w http.ResponseWriter, r *http.Request, log *slog.Logger, q FigureQuery) bool {
	err := validator.New().Struct(q)
	if err == nil {
		return true
	}

	var validateError validator.ValidationErrors
	if !errors.As(err, &validateError) {
		log.Error("failed to validate query", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return false
	}

	log.Info("invalid request", sl.Err(err))
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, api.ValidationError(validateError))
	return false
}

func (h *FiguresHandler) loadRecords(w http.ResponseWriter, r *http.Request, log *slog.Logger) ([]models.Record, bool) {
	records, err := h.records.GetRecords(r.Context(), repo.GroupAll)
	if err != nil {
		log.Error("error while retrieving records", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return nil, false
	}
	return records, true
}

func writePNG(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
