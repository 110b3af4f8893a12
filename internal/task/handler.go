package task

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Sohail342/task-management/internal/auth"
	"github.com/Sohail342/task-management/internal/transport"
	"github.com/Sohail342/task-management/pkg/logger"
)

type ServiceAPI interface {
	Create(requester *auth.User, dto CreateTaskDTO) (*Task, error)
	List(requester *auth.User) ([]*Task, error)
	GetByID(requester *auth.User, taskID int64) (*Task, error)
	UpdateStatus(requester *auth.User, taskID int64, dto UpdateStatusDTO) (*Task, error)
	AddDependant(requester *auth.User, taskID int64, dto CreateDependantDTO) (*DependantTask, error)
	AddRemark(requester *auth.User, taskID int64, dto CreateRemarkDTO) (*TaskRemark, error)
	Escalate(ctx context.Context, requester *auth.User, taskID int64, dto EscalateDTO) (*Task, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

// CreateTask handles POST /tasks (admin only).
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	requester, ok := auth.UserFromContext(r.Context())
	if !ok || requester == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.Create(requester, dto)
	if err != nil {
		if verr, ok := err.(auth.ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Logger.Error("task creation failed", "error", err, "user_id", requester.ID)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, t)
}

// ListTasks handles GET /tasks.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	requester, ok := auth.UserFromContext(r.Context())
	if !ok || requester == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := h.Service.List(requester)
	if err != nil {
		h.Logger.Error("task listing failed", "error", err, "user_id", requester.ID)
		h.WriteServiceError(w, err)
		return
	}

	if tasks == nil {
		tasks = []*Task{}
	}
	h.WriteJSON(w, http.StatusOK, tasks)
}

// GetTask handles GET /tasks/{id}.
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	requester, taskID, ok := h.requesterAndID(w, r)
	if !ok {
		return
	}

	t, err := h.Service.GetByID(requester, taskID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

// UpdateStatus handles PATCH /tasks/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requester, taskID, ok := h.requesterAndID(w, r)
	if !ok {
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.UpdateStatus(requester, taskID, dto)
	if err != nil {
		if verr, ok := err.(auth.ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

// AddDependant handles POST /tasks/{id}/dependants.
func (h *Handler) AddDependant(w http.ResponseWriter, r *http.Request) {
	requester, taskID, ok := h.requesterAndID(w, r)
	if !ok {
		return
	}

	var dto CreateDependantDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.AddDependant(requester, taskID, dto)
	if err != nil {
		if verr, ok := err.(auth.ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, d)
}

// AddRemark handles POST /tasks/{id}/remarks (supervisor/compliance).
func (h *Handler) AddRemark(w http.ResponseWriter, r *http.Request) {
	requester, taskID, ok := h.requesterAndID(w, r)
	if !ok {
		return
	}

	var dto CreateRemarkDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rm, err := h.Service.AddRemark(requester, taskID, dto)
	if err != nil {
		if verr, ok := err.(auth.ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, rm)
}

// Escalate handles POST /tasks/{id}/escalate (supervisor/compliance).
func (h *Handler) Escalate(w http.ResponseWriter, r *http.Request) {
	requester, taskID, ok := h.requesterAndID(w, r)
	if !ok {
		return
	}

	var dto EscalateDTO
	if r.Body != nil {
		// reason is optional; an empty body is fine
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	t, err := h.Service.Escalate(r.Context(), requester, taskID, dto)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) requesterAndID(w http.ResponseWriter, r *http.Request) (*auth.User, int64, bool) {
	requester, ok := auth.UserFromContext(r.Context())
	if !ok || requester == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, 0, false
	}

	idStr := chi.URLParam(r, "id")
	taskID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid task ID")
		return nil, 0, false
	}

	return requester, taskID, true
}
