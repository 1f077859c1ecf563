// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"plateful/internal/delivery/http/response"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CodeHandler holds dependencies for the login code JSON API.
type CodeHandler struct {
	uc usecase.CodeUsecase
}

// NewCodeHandler is the constructor for CodeHandler, injected by Fx.
func NewCodeHandler(uc usecase.CodeUsecase) *CodeHandler {
	return &CodeHandler{uc: uc}
}

type requestCodeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type verifyCodeRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Code      string `json:"code" validate:"required"`
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type deleteCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RequestCode creates or resends a login code for an address.
func (h *CodeHandler) RequestCode(c echo.Context) error {
	var input requestCodeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code request input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid code request input")
	}

	sessionID, err := uuid.Parse(input.SessionID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session id")
	}

	output, err := h.uc.RequestCode(c.Request().Context(), &usecase.RequestCodeInput{
		Email:     input.Email,
		SessionID: sessionID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"sends_remaining": output.SendsRemaining,
	}, "Login code sent")
}

// VerifyCode checks a submitted login code.
func (h *CodeHandler) VerifyCode(c echo.Context) error {
	var input verifyCodeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code verification input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid code verification input")
	}

	sessionID, err := uuid.Parse(input.SessionID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session id")
	}

	if err := h.uc.VerifyCode(c.Request().Context(), &usecase.VerifyCodeInput{
		Email:     input.Email,
		Code:      input.Code,
		SessionID: sessionID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Code verified")
}

// DeleteCode discards any pending code for an address.
func (h *CodeHandler) DeleteCode(c echo.Context) error {
	var input deleteCodeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code deletion input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid code deletion input")
	}

	if err := h.uc.DeleteCode(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Code deleted")
}
