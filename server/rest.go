package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/samber/lo"

	"github.com/umputun/fetchsched/pkg/domain"
)

const defaultPageSize = 10

// providerRequest is the body of add and update requests, frequency is ISO-8601 duration
type providerRequest struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Frequency string `json:"frequency"`
	IsActive  *bool  `json:"isActive"` // missing means active
}

type providerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	Frequency string     `json:"frequency"`
	IsActive  bool       `json:"isActive"`
	LastFetch *time.Time `json:"lastFetch,omitempty"`
}

type scheduledProviderResponse struct {
	providerResponse
	Scheduled bool `json:"scheduled"`
}

type providerListResponse struct {
	Providers []providerResponse `json:"providers"`
	Size      int                `json:"size"`
}

type rawDataResponse struct {
	FetchTime time.Time       `json:"fetchTime"`
	Data      json.RawMessage `json:"data"`
}

type providerWithDataResponse struct {
	providerResponse
	DataList []rawDataResponse `json:"dataList"`
}

// statusHandler returns server status, 503 if storage is unavailable
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	code, state := http.StatusOK, "ok"
	if err := s.storage.Ping(r.Context()); err != nil {
		lgr.Printf("[WARN] storage ping failed: %v", err)
		code, state = http.StatusServiceUnavailable, "storage unavailable"
	}

	status := map[string]any{
		"status":  state,
		"version": s.version,
		"time":    s.now().UTC(),
		"jobs":    len(s.scheduler.Jobs()),
	}
	renderJSON(w, r, code, status)
}

// listProvidersHandler returns a page of providers ordered by id
func (s *Server) listProvidersHandler(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	res, err := s.history.ListProviders(r.Context(), page, size)
	if err != nil {
		renderError(w, r, err)
		return
	}

	setPaginationHeaders(w, res)
	renderJSON(w, r, http.StatusOK, providerListResponse{
		Providers: lo.Map(res.Items, func(p domain.Provider, _ int) providerResponse { return toProviderResponse(p) }),
		Size:      len(res.Items),
	})
}

// getProviderHandler returns a provider with one page of its data fetched within [beginDate, endDate]
func (s *Server) getProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := providerID(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	page, size, err := pageParams(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	query := r.URL.Query()
	if query.Get("beginDate") == "" {
		renderError(w, r, fmt.Errorf("%w: beginDate is required", domain.ErrInvalidArgument))
		return
	}
	begin, err := parseTime(query.Get("beginDate"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	end := s.now()
	if v := query.Get("endDate"); v != "" {
		if end, err = parseTime(v); err != nil {
			renderError(w, r, err)
			return
		}
	}

	res, err := s.history.GetProviderHistory(r.Context(), id, begin, end, page, size)
	if err != nil {
		renderError(w, r, err)
		return
	}

	setPaginationHeaders(w, res.Data)
	renderJSON(w, r, http.StatusOK, providerWithDataResponse{
		providerResponse: toProviderResponse(res.Provider),
		DataList: lo.Map(res.Data.Items, func(d domain.RawData, _ int) rawDataResponse {
			return rawDataResponse{FetchTime: d.FetchTime, Data: json.RawMessage(d.Data)}
		}),
	})
}

// addProviderHandler creates a provider and schedules it if active
func (s *Server) addProviderHandler(w http.ResponseWriter, r *http.Request) {
	in, err := decodeProviderRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	res, err := s.providers.AddProvider(r.Context(), in)
	if err != nil {
		renderError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/providers/%d", res.Provider.ID))
	renderJSON(w, r, http.StatusCreated, toScheduledResponse(res))
}

// updateProviderHandler replaces provider fields and reschedules it
func (s *Server) updateProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := providerID(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	in, err := decodeProviderRequest(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	res, err := s.providers.UpdateProvider(r.Context(), id, in)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, toScheduledResponse(res))
}

// deleteProviderHandler deletes a provider with its data
func (s *Server) deleteProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := providerID(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := s.providers.DeleteProvider(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fetchProviderHandler triggers immediate fetch of a provider and reports how it ended
func (s *Server) fetchProviderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := providerID(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	// detached from request cancellation, a started cycle completes even if the client goes away
	res, err := s.providers.FetchNow(context.WithoutCancel(r.Context()), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "result": res.String()})
}

func decodeProviderRequest(r *http.Request) (domain.ProviderInput, error) {
	var req providerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return domain.ProviderInput{}, fmt.Errorf("%w: can't decode request body: %v", domain.ErrInvalidArgument, err)
	}

	freq, err := domain.ParseFrequency(req.Frequency)
	if err != nil {
		return domain.ProviderInput{}, err
	}

	return domain.ProviderInput{
		Name:      req.Name,
		URL:       req.URL,
		Frequency: freq,
		IsActive:  lo.FromPtrOr(req.IsActive, true),
	}, nil
}

func toProviderResponse(p domain.Provider) providerResponse {
	return providerResponse{
		ID:        p.ID,
		Name:      p.Name,
		URL:       p.URL,
		Frequency: domain.FormatFrequency(p.Frequency),
		IsActive:  p.IsActive,
		LastFetch: p.LastFetch,
	}
}

func toScheduledResponse(sp domain.ScheduledProvider) scheduledProviderResponse {
	return scheduledProviderResponse{providerResponse: toProviderResponse(sp.Provider), Scheduled: sp.Scheduled}
}

func providerID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid provider id %q", domain.ErrInvalidArgument, r.PathValue("id"))
	}
	return id, nil
}

// pageParams extracts page and size query params, page defaults to 0 and size to 10
func pageParams(r *http.Request) (page, size int, err error) {
	page, size = 0, defaultPageSize
	query := r.URL.Query()
	if v := query.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid page %q", domain.ErrInvalidArgument, v)
		}
	}
	if v := query.Get("size"); v != "" {
		if size, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("%w: invalid size %q", domain.ErrInvalidArgument, v)
		}
	}
	return page, size, nil
}

// parseTime accepts RFC3339 timestamps, local date-time without zone is taken as UTC
func parseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date-time %q, expected RFC3339", domain.ErrInvalidArgument, v)
}

// setPaginationHeaders adds page navigation headers, previous and next only when such pages exist
func setPaginationHeaders[T any](w http.ResponseWriter, p domain.PaginationResult[T]) {
	h := w.Header()
	h.Set("X-Total-Count", strconv.Itoa(p.TotalItems))
	h.Set("X-Total-Pages", strconv.Itoa(p.TotalPages))
	h.Set("X-Current-Page", strconv.Itoa(p.CurrentPage))
	h.Set("X-Page-Size", strconv.Itoa(len(p.Items)))
	if p.HasPrevious() {
		h.Set("X-Previous-Page", strconv.Itoa(p.CurrentPage-1))
	}
	if p.HasNext() {
		h.Set("X-Next-Page", strconv.Itoa(p.CurrentPage+1))
	}
}

// errorStatus maps domain errors to http status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidBody):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON with status derived from the error,
// internal error details are logged but not exposed
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	rest.SendErrorJSON(w, r, lgr.Default(), code, err, msg)
}
