package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
	"github.com/Sohail342/task-management/internal/user"
)

type mockUserService struct {
	getByIDResult  *user.User
	getByIDError   error
	listResult     []*user.User
	listError      error
	createResult   *user.User
	createError    error
	updateResult   *user.User
	updateError    error
	deactivateErr  error
	deactivatedIDs []int64
}

func (m *mockUserService) GetByID(userID int64) (*user.User, error) {
	if m.getByIDError != nil {
		return nil, m.getByIDError
	}
	return m.getByIDResult, nil
}

func (m *mockUserService) ListEmployees(requester *auth.User) ([]*user.User, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.listResult, nil
}

func (m *mockUserService) Create(dto user.CreateUserDTO) (*user.User, error) {
	if m.createError != nil {
		return nil, m.createError
	}
	return m.createResult, nil
}

func (m *mockUserService) Update(userID int64, dto user.UpdateUserDTO) (*user.User, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}
	return m.updateResult, nil
}

func (m *mockUserService) Deactivate(userID int64) error {
	if m.deactivateErr != nil {
		return m.deactivateErr
	}
	m.deactivatedIDs = append(m.deactivatedIDs, userID)
	return nil
}

var _ = ginkgo.Describe("UserHandler", func() {
	var (
		handler  *user.Handler
		service  *mockUserService
		router   *chi.Mux
		recorder *httptest.ResponseRecorder
		admin    *auth.User
	)

	ginkgo.BeforeEach(func() {
		service = &mockUserService{}
		handler = user.NewHandler(service)
		recorder = httptest.NewRecorder()
		admin = &auth.User{ID: 1, Role: auth.RoleAdmin, IsActive: true}

		router = chi.NewRouter()
		router.Get("/auth/profile", handler.Profile)
		router.Get("/auth/employees", handler.ListEmployees)
		router.Post("/auth/users/create", handler.CreateUser)
		router.Get("/auth/users/{id}", handler.GetUser)
		router.Put("/auth/users/{id}", handler.UpdateUser)
		router.Delete("/auth/users/{id}", handler.DeleteUser)
	})

	asUser := func(req *http.Request, u *auth.User) *http.Request {
		return req.WithContext(auth.ContextWithUser(req.Context(), u))
	}

	ginkgo.Describe("Profile", func() {
		ginkgo.It("should return the requester's own record", func() {
			service.getByIDResult = &user.User{ID: 1, Email: "admin@example.com", Role: auth.RoleAdmin}

			req := asUser(httptest.NewRequest(http.MethodGet, "/auth/profile", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("admin@example.com"))
			gomega.Expect(recorder.Body.String()).ToNot(gomega.ContainSubstring("password"))
		})

		ginkgo.It("should return 401 without a context user", func() {
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/profile", nil))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("ListEmployees", func() {
		ginkgo.It("should serialize an empty result as an empty array", func() {
			service.listResult = nil

			req := asUser(httptest.NewRequest(http.MethodGet, "/auth/employees", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.MatchJSON("[]"))
		})

		ginkgo.It("should return the listed users", func() {
			service.listResult = []*user.User{
				{ID: 3, Email: "e1@example.com", Role: auth.RoleEmployee},
			}

			req := asUser(httptest.NewRequest(http.MethodGet, "/auth/employees", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))

			var out []user.User
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &out)).To(gomega.Succeed())
			gomega.Expect(out).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Describe("CreateUser", func() {
		ginkgo.It("should return 201 with the created user", func() {
			service.createResult = &user.User{ID: 9, Email: "made@example.com"}
			body, _ := json.Marshal(user.CreateUserDTO{
				Name:        "Made",
				Email:       "made@example.com",
				PhoneNumber: "+9",
				Password:    "long_enough",
			})

			req := asUser(httptest.NewRequest(http.MethodPost, "/auth/users/create", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusCreated))
		})

		ginkgo.It("should map a conflict to 409", func() {
			service.createError = internal.ErrPhoneTaken
			body, _ := json.Marshal(user.CreateUserDTO{})

			req := asUser(httptest.NewRequest(http.MethodPost, "/auth/users/create", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusConflict))
		})

		ginkgo.It("should map a validation rejection to 400", func() {
			service.createError = auth.ValidationError{Msg: "email is invalid"}
			body, _ := json.Marshal(user.CreateUserDTO{})

			req := asUser(httptest.NewRequest(http.MethodPost, "/auth/users/create", bytes.NewBuffer(body)), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("GetUser", func() {
		ginkgo.It("should return 404 for a missing user", func() {
			service.getByIDError = internal.ErrUserNotFound

			req := asUser(httptest.NewRequest(http.MethodGet, "/auth/users/42", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should return 400 for a non-numeric id", func() {
			req := asUser(httptest.NewRequest(http.MethodGet, "/auth/users/abc", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("DeleteUser", func() {
		ginkgo.It("should return 204 and deactivate the user", func() {
			req := asUser(httptest.NewRequest(http.MethodDelete, "/auth/users/5", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNoContent))
			gomega.Expect(service.deactivatedIDs).To(gomega.Equal([]int64{5}))
		})

		ginkgo.It("should return 404 for a missing user", func() {
			service.deactivateErr = internal.ErrUserNotFound

			req := asUser(httptest.NewRequest(http.MethodDelete, "/auth/users/5", nil), admin)
			router.ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})
	})
})
