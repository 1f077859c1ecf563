package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plateful/internal/delivery/http/validator"
	domainerrors "plateful/internal/domain/errors"
	mockUC "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCodeRequest(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCodeHandler_RequestCode_Success(t *testing.T) {
	uc := mockUC.NewMockCodeUsecase(t)
	sessionID := uuid.New()
	uc.EXPECT().RequestCode(mock.Anything, &usecase.RequestCodeInput{
		Email:     "chef@example.com",
		SessionID: sessionID,
	}).Return(&usecase.RequestCodeOutput{SendsRemaining: 2}, nil)

	c, rec := newCodeRequest(t, http.MethodPost, "/api/code", map[string]string{
		"email":      "chef@example.com",
		"session_id": sessionID.String(),
	})

	require.NoError(t, NewCodeHandler(uc).RequestCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sends_remaining":2`)
}

func TestCodeHandler_RequestCode_InvalidEmailRejected(t *testing.T) {
	uc := mockUC.NewMockCodeUsecase(t)

	c, rec := newCodeRequest(t, http.MethodPost, "/api/code", map[string]string{
		"email":      "not-an-email",
		"session_id": uuid.NewString(),
	})

	require.NoError(t, NewCodeHandler(uc).RequestCode(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCodeHandler_VerifyCode_CooldownErrorPropagates(t *testing.T) {
	uc := mockUC.NewMockCodeUsecase(t)
	sessionID := uuid.New()
	uc.EXPECT().VerifyCode(mock.Anything, &usecase.VerifyCodeInput{
		Email:     "chef@example.com",
		Code:      "4AFK-TQ9M",
		SessionID: sessionID,
	}).Return(domainerrors.ErrCodeCooldown)

	c, _ := newCodeRequest(t, http.MethodPost, "/api/code/verify", map[string]string{
		"email":      "chef@example.com",
		"code":       "4AFK-TQ9M",
		"session_id": sessionID.String(),
	})

	err := NewCodeHandler(uc).VerifyCode(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCodeCooldown.ErrorCode(), appErr.ErrorCode())
}

func TestCodeHandler_DeleteCode_Success(t *testing.T) {
	uc := mockUC.NewMockCodeUsecase(t)
	uc.EXPECT().DeleteCode(mock.Anything, "chef@example.com").Return(nil)

	c, rec := newCodeRequest(t, http.MethodDelete, "/api/code", map[string]string{
		"email": "chef@example.com",
	})

	require.NoError(t, NewCodeHandler(uc).DeleteCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
