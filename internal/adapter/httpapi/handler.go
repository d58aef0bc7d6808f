package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/usecase"
)

// Handler exposes the chart computation over JSON HTTP.
type Handler struct {
	mux    *http.ServeMux
	charts usecase.ChartUsecase
	logger *logrus.Logger
}

func NewHandler(charts usecase.ChartUsecase, logger *logrus.Logger) *Handler {
	h := &Handler{
		mux:    http.NewServeMux(),
		charts: charts,
		logger: logger,
	}
	h.mux.HandleFunc("GET /v1/chart", h.computeChart)
	h.mux.HandleFunc("GET /healthz", h.health)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) computeChart(w http.ResponseWriter, r *http.Request) {
	req, err := parseChartRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	chart, err := h.charts.ComputeChart(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chart)
}

func parseChartRequest(r *http.Request) (entity.ChartRequest, error) {
	q := r.URL.Query()

	req := entity.ChartRequest{
		Calendar: entity.ParseCalendarKind(q.Get("calendar")),
		Sex:      entity.ParseSex(q.Get("sex")),
	}

	intFields := []struct {
		name     string
		dst      *int
		required bool
	}{
		{"year", &req.Year, true},
		{"month", &req.Month, true},
		{"day", &req.Day, true},
		{"hour", &req.Hour, false},
		{"minute", &req.Minute, false},
	}
	for _, f := range intFields {
		raw := q.Get(f.name)
		if raw == "" {
			if f.required {
				return req, errInvalidParam(f.name, "missing")
			}
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidParam(f.name, raw)
		}
		*f.dst = v
	}

	if raw := q.Get("leap"); raw != "" {
		leap, err := strconv.ParseBool(raw)
		if err != nil {
			return req, errInvalidParam("leap", raw)
		}
		req.LeapMonth = leap
	}

	optFields := []struct {
		name string
		dst  **int
	}{
		{"pivot", &req.Options.PivotMinutes},
		{"tz_adjust", &req.Options.TZAdjustMinutes},
		{"term_adjust", &req.Options.TermAdjustMinutes},
	}
	for _, f := range optFields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidParam(f.name, raw)
		}
		*f.dst = &v
	}

	if raw := q.Get("rounding"); raw != "" {
		req.Options.Rounding = entity.ParseRoundingMode(raw)
	}

	return req, nil
}

func errInvalidParam(name, value string) error {
	return &invalidParamError{name: name, value: value}
}

type invalidParamError struct {
	name  string
	value string
}

func (e *invalidParamError) Error() string {
	return "invalid query parameter " + e.name + ": " + e.value
}

func (e *invalidParamError) Unwrap() error { return entity.ErrInvalidRequest }

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).Error("chart computation failed")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusOf translates domain errors into HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrDateNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrTermNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("write response")
	}
}
