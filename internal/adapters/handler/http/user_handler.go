package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/academic-polls/internal/core/domain"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

// SetBatchRequest assigns a batch; a null batchId removes the user from any batch.
type SetBatchRequest struct {
	BatchID *uuid.UUID `json:"batchId"`
}

// GetMe godoc
// @Summary      Gets the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  ErrorResponse
// @Router       /api/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	if !actor.Authenticated() {
		writeError(w, r, domain.ErrUnauthenticated)
		return
	}

	user, err := h.service.GetByID(r.Context(), actor.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SetRole godoc
// @Summary      Changes the role of a user
// @Description  Admins only. The role must be one of admin, professor or student.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "User ID"
// @Param        role  body      SetRoleRequest  true  "Role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	var req SetRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.SetRole(r.Context(), actorFrom(r), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SetBatch godoc
// @Summary      Assigns a user to a batch
// @Description  Admins only. Students only see and answer polls of their own batch or without a batch.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id     path      string           true  "User ID"
// @Param        batch  body      SetBatchRequest  true  "Batch"
// @Success      200    {object}  domain.User
// @Failure      400    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /api/users/{id}/batch [put]
func (h *UserHandler) SetBatch(w http.ResponseWriter, r *http.Request) {
	var req SetBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.service.SetBatch(r.Context(), actorFrom(r), chi.URLParam(r, "id"), req.BatchID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
