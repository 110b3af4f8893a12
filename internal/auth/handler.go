package auth

import (
	"encoding/json"
	"net/http"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/transport"
	"github.com/Sohail342/task-management/pkg/logger"
)

type ServiceAPI interface {
	Signup(dto SignupDTO) (*User, error)
	Signin(dto LoginDTO) (AuthTokens, error)
	Refresh(refreshToken string) (AccessTokenResponse, error)
	Authenticate(tokenString string) (*User, error)
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

// Signup handles POST /auth/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var dto SignupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Signup(dto)
	if err != nil {
		if verr, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Logger.Error("signup failed", "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, u)
}

// Signin handles POST /auth/signin.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Signin(dto)
	if err != nil {
		if verr, ok := err.(ValidationError); ok {
			h.WriteError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.Logger.Warn("signin rejected", "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

// Refresh handles POST /auth/refresh. The refresh token arrives as a
// bearer credential, not in the body.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteServiceError(w, internal.ErrMissingCredentials)
		return
	}

	resp, err := h.Service.Refresh(token)
	if err != nil {
		h.Logger.Warn("token refresh rejected", "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// Logout handles POST /auth/logout. There is no server-side revocation;
// the endpoint only confirms the presented token is currently valid.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteServiceError(w, internal.ErrMissingCredentials)
		return
	}

	if _, err := h.Service.Authenticate(token); err != nil {
		h.WriteServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Middleware is the access gate every protected route passes through:
// extract bearer token, decode, resolve the subject to an active user,
// and attach that user to the request context.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteServiceError(w, internal.ErrMissingCredentials)
			return
		}

		user, err := h.Service.Authenticate(token)
		if err != nil {
			h.Logger.Warn("access gate rejected request", "path", r.URL.Path, "error", err)
			h.WriteServiceError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}
