package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
	results ports.ResultService
}

func NewPollHandler(service ports.PollService, results ports.ResultService) *PollHandler {
	return &PollHandler{
		service: service,
		results: results,
	}
}

type ToggleStatusResponse struct {
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"isActive"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Admins and professors only. Options keep the order they are sent in.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        poll  body      ports.CreatePollInput  true  "Poll"
// @Success      201   {object}  domain.Poll
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var input ports.CreatePollInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	poll, err := h.service.Create(r.Context(), actorFrom(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

// ListPolls godoc
// @Summary      Lists polls
// @Description  Students only see polls without a batch and polls of their own batch.
// @Tags         polls
// @Produce      json
// @Param        category  query     string  false  "Category"
// @Param        batchId   query     string  false  "Batch ID"
// @Param        page      query     int     false  "Page, from 1"
// @Param        limit     query     int     false  "Page size, at most 100"
// @Param        sort      query     string  false  "newest or popular"
// @Success      200       {object}  ports.PollList
// @Failure      400       {object}  ErrorResponse
// @Router       /api/polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.service.ListPolls(r.Context(), actorFrom(r), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// GetPoll godoc
// @Summary      Gets a poll with its options
// @Tags         polls
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {object}  domain.Poll
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.GetPoll(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

// GetDetails godoc
// @Summary      Gets live results of a poll
// @Description  Individual responses are included only for admins, professors and the poll creator.
// @Tags         polls
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {object}  domain.PollDetails
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id}/details [get]
func (h *PollHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.results.Details(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// UpdatePoll godoc
// @Summary      Replaces a poll
// @Description  Options with an id are kept (and may be renamed), options without one are added, missing ones are removed along with their responses.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Poll ID"
// @Param        poll  body      ports.UpdatePollInput  true  "Poll"
// @Success      200   {object}  domain.Poll
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /api/polls/{id} [put]
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	var input ports.UpdatePollInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	poll, err := h.service.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

// DeletePoll godoc
// @Summary      Deletes a poll with its options and responses
// @Tags         polls
// @Param        id   path  string  true  "Poll ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id} [delete]
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleStatus godoc
// @Summary      Opens or closes a poll
// @Tags         polls
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {object}  ToggleStatusResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id}/toggle-status [put]
func (h *PollHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	poll, err := h.service.ToggleStatus(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ToggleStatusResponse{ID: poll.ID, IsActive: poll.IsActive})
}

// AuditTrail godoc
// @Summary      Lists the changes made to a poll
// @Tags         polls
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {array}   domain.AuditEntry
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id}/audit [get]
func (h *PollHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.AuditTrail(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func parseListQuery(r *http.Request) (ports.ListPollsInput, error) {
	q := r.URL.Query()
	input := ports.ListPollsInput{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	}

	if raw := q.Get("batchId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, domain.NewFieldError("batchId", "batchId must be a valid UUID")
		}
		input.BatchID = &id
	}

	var err error
	if input.Page, err = positiveInt(q.Get("page")); err != nil {
		return input, domain.NewFieldError("page", "page must be a positive integer")
	}
	if input.Limit, err = positiveInt(q.Get("limit")); err != nil {
		return input, domain.NewFieldError("limit", "limit must be a positive integer")
	}
	return input, nil
}

// positiveInt parses an optional query value; empty means "use the default".
func positiveInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
