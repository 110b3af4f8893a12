package task_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
	"github.com/Sohail342/task-management/internal/task"
)

type mockTaskService struct {
	createResult    *task.Task
	createError     error
	listResult      []*task.Task
	listError       error
	getResult       *task.Task
	getError        error
	updateResult    *task.Task
	updateError     error
	dependantResult *task.DependantTask
	dependantError  error
	remarkResult    *task.TaskRemark
	remarkError     error
	escalateResult  *task.Task
	escalateError   error
	escalateDTO     task.EscalateDTO
}

func (m *mockTaskService) Create(requester *auth.User, dto task.CreateTaskDTO) (*task.Task, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	return m.createResult, nil
}

func (m *mockTaskService) List(requester *auth.User) ([]*task.Task, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

func (m *mockTaskService) GetByID(requester *auth.User, taskID int64) (*task.Task, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.getResult, nil
}

func (m *mockTaskService) UpdateStatus(requester *auth.User, taskID int64, dto task.UpdateStatusDTO) (*task.Task, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}
	return m.updateResult, nil
}

func (m *mockTaskService) AddDependant(requester *auth.User, taskID int64, dto task.CreateDependantDTO) (*task.DependantTask, error) {
	if m.dependantError != nil {
		return nil, m.dependantError
	}
	return m.dependantResult, nil
}

func (m *mockTaskService) AddRemark(requester *auth.User, taskID int64, dto task.CreateRemarkDTO) (*task.TaskRemark, error) {
	if m.remarkError != nil {
		return nil, m.remarkError
	}
	return m.remarkResult, nil
}

func (m *mockTaskService) Escalate(ctx context.Context, requester *auth.User, taskID int64, dto task.EscalateDTO) (*task.Task, error) {
	m.escalateDTO = dto
	if m.escalateError != nil {
		return nil, m.escalateError
	}
	return m.escalateResult, nil
}

var _ = ginkgo.Describe("TaskHandler", func() {
	var (
		handler  *task.Handler
		service  *mockTaskService
		router   *chi.Mux
		recorder *httptest.ResponseRecorder
		admin    *auth.User
	)

	ginkgo.BeforeEach(func() {
		service = &mockTaskService{}
		handler = task.NewHandler(service)
		recorder = httptest.NewRecorder()
		admin = &auth.User{ID: 1, Role: auth.RoleAdmin, IsActive: true}

		router = chi.NewRouter()
		router.Post("/tasks", handler.CreateTask)
		router.Get("/tasks", handler.ListTasks)
		router.Get("/tasks/{id}", handler.GetTask)
		router.Patch("/tasks/{id}/status", handler.UpdateStatus)
		router.Post("/tasks/{id}/dependants", handler.AddDependant)
		router.Post("/tasks/{id}/remarks", handler.AddRemark)
		router.Post("/tasks/{id}/escalate", handler.Escalate)
	})

	asUser := func(req *http.Request, u *auth.User) *http.Request {
		return req.WithContext(auth.ContextWithUser(req.Context(), u))
	}

	ginkgo.Describe("CreateTask", func() {
		ginkgo.It("should return 201 with the created task", func() {
			service.createResult = &task.Task{ID: 1, Title: "Quarterly report", Status: task.StatusPending}
			body, _ := json.Marshal(task.CreateTaskDTO{Title: "Quarterly report"})

			req := asUser(httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("Quarterly report"))
		})

		ginkgo.It("should return 401 without a context user", func() {
			body, _ := json.Marshal(task.CreateTaskDTO{Title: "No auth"})

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body)))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should map a validation rejection to 400", func() {
			service.createError = auth.ValidationError{Msg: "title is required"}
			body, _ := json.Marshal(task.CreateTaskDTO{})

			req := asUser(httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("ListTasks", func() {
		ginkgo.It("should serialize an empty result as an empty array", func() {
			req := asUser(httptest.NewRequest(http.MethodGet, "/tasks", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.MatchJSON("[]"))
		})
	})

	ginkgo.Describe("GetTask", func() {
		ginkgo.It("should return 404 for a missing task", func() {
			service.getError = internal.ErrTaskNotFound

			req := asUser(httptest.NewRequest(http.MethodGet, "/tasks/42", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should return 403 when the service refuses access", func() {
			service.getError = internal.ErrNotPermitted

			req := asUser(httptest.NewRequest(http.MethodGet, "/tasks/42", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should return 400 for a non-numeric id", func() {
			req := asUser(httptest.NewRequest(http.MethodGet, "/tasks/abc", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		ginkgo.It("should return the updated task", func() {
			service.updateResult = &task.Task{ID: 1, Status: task.StatusInProgress}
			body, _ := json.Marshal(task.UpdateStatusDTO{Status: task.StatusInProgress})

			req := asUser(httptest.NewRequest(http.MethodPatch, "/tasks/1/status", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring(task.StatusInProgress))
		})

		ginkgo.It("should map an invalid transition to 400", func() {
			service.updateError = auth.ValidationError{Msg: "invalid status transition"}
			body, _ := json.Marshal(task.UpdateStatusDTO{Status: task.StatusPending})

			req := asUser(httptest.NewRequest(http.MethodPatch, "/tasks/1/status", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("AddDependant", func() {
		ginkgo.It("should return 201 with the dependant", func() {
			service.dependantResult = &task.DependantTask{ID: 1, Title: "Child", DependantToID: 1}
			body, _ := json.Marshal(task.CreateDependantDTO{Title: "Child"})

			req := asUser(httptest.NewRequest(http.MethodPost, "/tasks/1/dependants", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusCreated))
		})
	})

	ginkgo.Describe("Escalate", func() {
		ginkgo.It("should accept an empty body", func() {
			service.escalateResult = &task.Task{ID: 1, Status: task.StatusEscalated, EscalationFlagged: true}

			req := asUser(httptest.NewRequest(http.MethodPost, "/tasks/1/escalate", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring(task.StatusEscalated))
		})

		ginkgo.It("should pass the reason through", func() {
			service.escalateResult = &task.Task{ID: 1, Status: task.StatusEscalated}
			body, _ := json.Marshal(task.EscalateDTO{Reason: "overdue"})

			req := asUser(httptest.NewRequest(http.MethodPost, "/tasks/1/escalate", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(service.escalateDTO.Reason).To(gomega.Equal("overdue"))
		})
	})
})
