package handler

import (
	"net/http"

	"plateful/internal/delivery/http/response"
	"plateful/internal/delivery/http/session"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/infra/apiclient"
	"plateful/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Session fields the login flow writes. The user_jwt field is what the auth
// middleware falls back to for browser requests.
const (
	sessionLoginEmail = "login_email"
	sessionUserID     = "user_id"
	sessionUserEmail  = "user_email"
	sessionUserJWT    = "user_jwt"
)

// AuthHandler drives the browser login flow. It is a thin client of the
// JSON code API, which it calls with the system service token.
type AuthHandler struct {
	codeAPI apiclient.CodeAPI
	userUC  usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(codeAPI apiclient.CodeAPI, userUC usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{codeAPI: codeAPI, userUC: userUC}
}

type loginRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type verifyRequest struct {
	Code string `json:"code" form:"code" validate:"required"`
}

// Login starts the code flow: remember the address in the session and ask
// the code API to mail a login code bound to this session.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	sess := session.FromContext(c)
	if sess == nil {
		return errors.New("session middleware not installed")
	}
	sess.Set(sessionLoginEmail, input.Email)

	if err := h.codeAPI.RequestLoginCode(c.Request().Context(), input.Email, sess.ID()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Login code sent")
}

// Verify finishes the code flow: check the code against this session's
// address, establish the account and store its token in the session.
func (h *AuthHandler) Verify(c echo.Context) error {
	var input verifyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid verification input")
	}

	sess := session.FromContext(c)
	if sess == nil {
		return errors.New("session middleware not installed")
	}

	email := sess.Get(sessionLoginEmail)
	if email == "" {
		return domainerrors.ErrUnauthorized.WithDetails("no login in progress")
	}

	ctx := c.Request().Context()
	if err := h.codeAPI.VerifyLoginCode(ctx, email, input.Code, sess.ID()); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.CompleteLogin(ctx, email)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Delete(sessionLoginEmail)
	sess.Set(sessionUserID, output.User.ID.String())
	sess.Set(sessionUserEmail, output.User.Email)
	sess.Set(sessionUserJWT, output.Token)

	return response.Success(c, http.StatusOK, newUserResponse(output.User), "Login successful")
}

// Logout clears the session; the session middleware deletes the row and
// expires the cookie on save.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := session.FromContext(c)
	if sess != nil {
		sess.Clear()
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
