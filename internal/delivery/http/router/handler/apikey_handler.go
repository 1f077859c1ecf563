package handler

import (
	"net/http"
	"time"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// APIKeyHandler holds dependencies for the managed API key endpoints.
type APIKeyHandler struct {
	uc usecase.APIKeyUsecase
}

// NewAPIKeyHandler is the constructor for APIKeyHandler, injected by Fx.
func NewAPIKeyHandler(uc usecase.APIKeyUsecase) *APIKeyHandler {
	return &APIKeyHandler{uc: uc}
}

type createAPIKeyRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Scopes    []string   `json:"scopes" validate:"required,min=1"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// apiKeyResponse is the safe projection of a key. The token digest never
// leaves the server.
type apiKeyResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Scopes    []string   `json:"scopes"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

func newAPIKeyResponse(key *entity.APIKey) *apiKeyResponse {
	return &apiKeyResponse{
		ID:        key.ID,
		Name:      key.Name,
		Scopes:    key.Scopes,
		ExpiresAt: key.ExpiresAt,
		CreatedAt: key.CreatedAt,
		RevokedAt: key.RevokedAt,
	}
}

// CreateKey issues a new managed API key. The raw token appears in this
// response exactly once and cannot be retrieved again.
func (h *APIKeyHandler) CreateKey(c echo.Context) error {
	var input createAPIKeyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid api key input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid api key input")
	}

	auth := middleware.CurrentAuth(c)

	output, err := h.uc.CreateKey(c.Request().Context(), &usecase.CreateAPIKeyInput{
		User:      auth.User,
		Name:      input.Name,
		Scopes:    input.Scopes,
		ExpiresAt: input.ExpiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"key":   newAPIKeyResponse(output.Key),
		"token": output.Token,
	}, "API key created")
}

// ListKeys returns all keys owned by the authenticated user.
func (h *APIKeyHandler) ListKeys(c echo.Context) error {
	auth := middleware.CurrentAuth(c)

	keys, err := h.uc.ListKeys(c.Request().Context(), auth.User.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]*apiKeyResponse, 0, len(keys))
	for _, key := range keys {
		result = append(result, newAPIKeyResponse(key))
	}

	return response.Success(c, http.StatusOK, result, "API keys listed")
}

// RevokeKey permanently revokes one of the authenticated user's keys.
func (h *APIKeyHandler) RevokeKey(c echo.Context) error {
	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid api key id")
	}

	auth := middleware.CurrentAuth(c)

	if err := h.uc.RevokeKey(c.Request().Context(), auth.User.ID, keyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "API key revoked")
}
