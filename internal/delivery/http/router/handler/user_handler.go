package handler

import (
	"net/http"
	"time"

	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the user JSON API.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type createUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=100"`
}

// userResponse is the safe projection of a user. The email digest never
// leaves the server.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Sub       uuid.UUID `json:"sub"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:        user.ID,
		Sub:       user.Sub,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

// GetOrCreateUser resolves an address to its account, creating the account
// on first sight.
func (h *UserHandler) GetOrCreateUser(c echo.Context) error {
	var input createUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.GetOrCreateByEmail(c.Request().Context(), input.Email, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User resolved")
}

// GetUserBySub resolves a token subject to its account.
func (h *UserHandler) GetUserBySub(c echo.Context) error {
	sub, err := uuid.Parse(c.Param("sub"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subject")
	}

	user, err := h.uc.GetBySub(c.Request().Context(), sub)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "User found")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
