package auth_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
)

type mockAuthService struct {
	signupResult       *auth.User
	signupError        error
	signinResult       auth.AuthTokens
	signinError        error
	refreshResult      auth.AccessTokenResponse
	refreshError       error
	authenticateResult *auth.User
	authenticateError  error
}

func (m *mockAuthService) Signup(dto auth.SignupDTO) (*auth.User, error) {
	if m.signupError != nil {
		return nil, m.signupError
	}
	return m.signupResult, nil
}

func (m *mockAuthService) Signin(dto auth.LoginDTO) (auth.AuthTokens, error) {
	if m.signinError != nil {
		return auth.AuthTokens{}, m.signinError
	}
	return m.signinResult, nil
}

func (m *mockAuthService) Refresh(refreshToken string) (auth.AccessTokenResponse, error) {
	if m.refreshError != nil {
		return auth.AccessTokenResponse{}, m.refreshError
	}
	return m.refreshResult, nil
}

func (m *mockAuthService) Authenticate(tokenString string) (*auth.User, error) {
	if m.authenticateError != nil {
		return nil, m.authenticateError
	}
	return m.authenticateResult, nil
}

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler  *auth.Handler
		service  *mockAuthService
		recorder *httptest.ResponseRecorder
	)

	ginkgo.BeforeEach(func() {
		service = &mockAuthService{}
		handler = auth.NewHandler(service)
		recorder = httptest.NewRecorder()
	})

	jsonRequest := func(method, target string, payload any) *http.Request {
		body, err := json.Marshal(payload)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	ginkgo.Describe("Signup", func() {
		ginkgo.It("should return 201 with the created user", func() {
			service.signupResult = &auth.User{ID: 7, Email: "new@example.com", Role: auth.RoleEmployee}

			req := jsonRequest(http.MethodPost, "/auth/signup", auth.SignupDTO{
				Name:            "New",
				Email:           "new@example.com",
				PhoneNumber:     "+1",
				Password:        "long_enough",
				ConfirmPassword: "long_enough",
			})
			handler.Signup(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusCreated))

			var created auth.User
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &created)).To(gomega.Succeed())
			gomega.Expect(created.ID).To(gomega.Equal(int64(7)))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{not json"))

			handler.Signup(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 400 for a validation rejection", func() {
			service.signupError = auth.ValidationError{Msg: "passwords do not match"}

			handler.Signup(recorder, jsonRequest(http.MethodPost, "/auth/signup", auth.SignupDTO{}))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("passwords do not match"))
		})

		ginkgo.It("should return 409 for a taken email", func() {
			service.signupError = internal.ErrEmailTaken

			handler.Signup(recorder, jsonRequest(http.MethodPost, "/auth/signup", auth.SignupDTO{}))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusConflict))
		})
	})

	ginkgo.Describe("Signin", func() {
		ginkgo.It("should return the token pair", func() {
			service.signinResult = auth.AuthTokens{
				AccessToken:  "access",
				RefreshToken: "refresh",
				TokenType:    "bearer",
			}

			handler.Signin(recorder, jsonRequest(http.MethodPost, "/auth/signin", auth.LoginDTO{
				Email:    "user@example.com",
				Password: "correct_password",
			}))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))

			var tokens auth.AuthTokens
			gomega.Expect(json.Unmarshal(recorder.Body.Bytes(), &tokens)).To(gomega.Succeed())
			gomega.Expect(tokens.AccessToken).To(gomega.Equal("access"))
			gomega.Expect(tokens.TokenType).To(gomega.Equal("bearer"))
		})

		ginkgo.It("should return 401 for bad credentials", func() {
			service.signinError = internal.ErrInvalidCredentials

			handler.Signin(recorder, jsonRequest(http.MethodPost, "/auth/signin", auth.LoginDTO{
				Email:    "user@example.com",
				Password: "wrong",
			}))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("Invalid email or password"))
		})
	})

	ginkgo.Describe("Refresh", func() {
		ginkgo.It("should exchange the bearer refresh token for an access token", func() {
			service.refreshResult = auth.AccessTokenResponse{AccessToken: "fresh"}

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			req.Header.Set("Authorization", "Bearer some-refresh-token")
			handler.Refresh(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("fresh"))
		})

		ginkgo.It("should return 401 when the header is missing", func() {
			handler.Refresh(recorder, httptest.NewRequest(http.MethodPost, "/auth/refresh", nil))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 401 when the token is the wrong type", func() {
			service.refreshError = internal.ErrInvalidTokenType

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			req.Header.Set("Authorization", "Bearer an-access-token")
			handler.Refresh(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("Invalid token type"))
		})
	})

	ginkgo.Describe("Middleware", func() {
		var next http.Handler
		var captured *auth.User

		ginkgo.BeforeEach(func() {
			captured = nil
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured, _ = auth.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
		})

		ginkgo.It("should attach the resolved user to the request context", func() {
			service.authenticateResult = &auth.User{ID: 3, Role: auth.RoleEmployee, IsActive: true}

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			handler.Middleware(next).ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(captured).ToNot(gomega.BeNil())
			gomega.Expect(captured.ID).To(gomega.Equal(int64(3)))
		})

		ginkgo.It("should reject a request without credentials", func() {
			handler.Middleware(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/tasks", nil))

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(captured).To(gomega.BeNil())
		})

		ginkgo.It("should reject a non-bearer authorization header", func() {
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			handler.Middleware(next).ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should pass through the gate rejection", func() {
			service.authenticateError = internal.ErrUserInactive

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.Header.Set("Authorization", "Bearer stale-token")
			handler.Middleware(next).ServeHTTP(recorder, req)

			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("Inactive user"))
		})
	})
})

var _ = ginkgo.Describe("RequireRoles", func() {
	var (
		recorder *httptest.ResponseRecorder
		next     http.Handler
		reached  bool
		quiet    *slog.Logger
	)

	ginkgo.BeforeEach(func() {
		recorder = httptest.NewRecorder()
		reached = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			w.WriteHeader(http.StatusOK)
		})
		quiet = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	requestAs := func(u *auth.User) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/auth/employees", nil)
		if u != nil {
			req = req.WithContext(auth.ContextWithUser(req.Context(), u))
		}
		return req
	}

	ginkgo.It("should admit a user holding one of the allowed roles", func() {
		mw := auth.RequireRoles(quiet, auth.RoleAdmin, auth.RoleSupervisor)

		mw(next).ServeHTTP(recorder, requestAs(&auth.User{ID: 2, Role: auth.RoleSupervisor}))

		gomega.Expect(reached).To(gomega.BeTrue())
		gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusOK))
	})

	ginkgo.It("should return 403 for a role outside the allow-list", func() {
		mw := auth.RequireRoles(quiet, auth.RoleAdmin)

		mw(next).ServeHTTP(recorder, requestAs(&auth.User{ID: 3, Role: auth.RoleEmployee}))

		gomega.Expect(reached).To(gomega.BeFalse())
		gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusForbidden))
		gomega.Expect(recorder.Body.String()).To(gomega.ContainSubstring("Operation not permitted"))
	})

	ginkgo.It("should return 401 when no user is on the context", func() {
		mw := auth.RequireRoles(quiet, auth.RoleAdmin)

		mw(next).ServeHTTP(recorder, requestAs(nil))

		gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusUnauthorized))
	})
})
