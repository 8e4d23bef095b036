package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type ResponseHandler struct {
	service ports.ResponseService
}

func NewResponseHandler(service ports.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		service: service,
	}
}

type MyResponsesResponse struct {
	OptionIDs []uuid.UUID `json:"optionIds"`
}

// Respond godoc
// @Summary      Submits a vote
// @Description  Single-choice polls accept one response per user, multiple-choice polls one per user and option.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        response  body      ports.RespondInput  true  "Vote"
// @Success      200       {object}  MessageResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse
// @Router       /api/polls/respond [post]
func (h *ResponseHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var input ports.RespondInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Respond(r.Context(), actorFrom(r), input); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "response recorded"})
}

// MyResponses godoc
// @Summary      Lists the options the caller selected
// @Tags         responses
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {object}  MyResponsesResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/polls/{id}/my-responses [get]
func (h *ResponseHandler) MyResponses(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.MyResponses(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	writeJSON(w, http.StatusOK, MyResponsesResponse{OptionIDs: ids})
}
