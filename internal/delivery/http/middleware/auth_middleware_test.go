package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	mockRepo "plateful/internal/mocks/repository"
	mockUC "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixture struct {
	authUsecase *mockUC.MockAuthUsecase
	recipes     *mockRepo.MockOwnershipChecker
	middleware  *AuthMiddleware
}

func newAuthMiddlewareFixture(t *testing.T) *authMiddlewareFixture {
	f := &authMiddlewareFixture{
		authUsecase: mockUC.NewMockAuthUsecase(t),
		recipes:     mockRepo.NewMockOwnershipChecker(t),
	}
	f.middleware = NewAuthMiddleware(f.authUsecase, repository.OwnershipRegistry{
		repository.ContentRecipe: f.recipes,
	})

	return f
}

func newRequest(method, target string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func assertAppError(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}

func authResult(scopes ...entity.Scope) *usecase.AuthResult {
	return &usecase.AuthResult{
		User:   &entity.User{ID: uuid.New(), Sub: uuid.New()},
		Scopes: scopes,
	}
}

func TestJWTRequired_ValidTokenAttachesIdentity(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:read")
	f.authUsecase.EXPECT().Authenticate(mock.Anything, "valid-token-value").Return(result, nil)

	c, _ := newRequest(http.MethodGet, "/api/recipe", map[string]string{
		echo.HeaderAuthorization: "Bearer valid-token-value",
	})

	err := f.middleware.JWTRequired(func(c echo.Context) error {
		assert.Same(t, result, CurrentAuth(c))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}

func TestJWTRequired_MissingHeaderRejected(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe", nil)
	err := f.middleware.JWTRequired(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTRequired_ShortTokenRejectedWithoutVerification(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe", map[string]string{
		echo.HeaderAuthorization: "Bearer short",
	})
	err := f.middleware.JWTRequired(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTRequired_NonBearerSchemeRejected(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe", map[string]string{
		echo.HeaderAuthorization: "Basic dXNlcjpwYXNz",
	})
	err := f.middleware.JWTRequired(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrUnauthorized)
}

func TestJWTRequired_RevokedKeyPassesErrorThrough(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	f.authUsecase.EXPECT().Authenticate(mock.Anything, "revoked-key-token").
		Return(nil, domainerrors.ErrAPIKeyRevoked)

	c, _ := newRequest(http.MethodGet, "/api/recipe", map[string]string{
		echo.HeaderAuthorization: "Bearer revoked-key-token",
	})
	err := f.middleware.JWTRequired(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrAPIKeyRevoked)
}

func TestJWTRequired_BrowserRequestRedirectsToLogin(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newRequest(http.MethodGet, "/recipes", map[string]string{
		echo.HeaderAccept: echo.MIMETextHTML,
	})
	err := f.middleware.JWTRequired(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, loginPath, rec.Header().Get(echo.HeaderLocation))
}

func TestScopeRequired_GrantedScopePasses(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, rec := newRequest(http.MethodGet, "/api/recipe", nil)
	c.Set(authContextKey, authResult("recipe:read"))

	err := f.middleware.ScopeRequired("recipe:read")(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScopeRequired_MissingScopeForbidden(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe", nil)
	c.Set(authContextKey, authResult("recipe:read"))

	err := f.middleware.ScopeRequired("recipe:delete")(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrScopeMissing)
}

func TestScopeRequired_NoIdentityUnauthorized(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe", nil)
	err := f.middleware.ScopeRequired("recipe:read")(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrUnauthorized)
}

func TestOwnerRequired_AuthorPasses(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:update")
	contentID := uuid.New()
	f.recipes.EXPECT().IsAuthor(mock.Anything, contentID, result.User.ID).Return(true, nil)

	c, rec := newRequest(http.MethodPut, "/api/recipe/"+contentID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(contentID.String())
	c.Set(authContextKey, result)

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOwnerRequired_NonAuthorForbidden(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:update")
	contentID := uuid.New()
	f.recipes.EXPECT().IsAuthor(mock.Anything, contentID, result.User.ID).Return(false, nil)

	c, _ := newRequest(http.MethodPut, "/api/recipe/"+contentID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(contentID.String())
	c.Set(authContextKey, result)

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrNotOwner)
}

func TestOwnerRequired_MissingRecordForbidden(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:update")
	contentID := uuid.New()
	f.recipes.EXPECT().IsAuthor(mock.Anything, contentID, result.User.ID).Return(false, nil)

	c, _ := newRequest(http.MethodDelete, "/api/recipe/"+contentID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(contentID.String())
	c.Set(authContextKey, result)

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	// A missing record and a foreign record are indistinguishable.
	assertAppError(t, err, domainerrors.ErrNotOwner)
}

func TestOwnerRequired_UnregisteredTypeForbidden(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/grocery/"+uuid.NewString(), nil)
	c.Set(authContextKey, authResult())

	err := f.middleware.OwnerRequired("grocery")(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrNotOwner)
}

func TestOwnerRequired_MalformedIDForbidden(t *testing.T) {
	f := newAuthMiddlewareFixture(t)

	c, _ := newRequest(http.MethodGet, "/api/recipe/not-a-uuid", nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	c.Set(authContextKey, authResult())

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	assertAppError(t, err, domainerrors.ErrNotOwner)
}

func TestOwnerRequired_IDFromLastPathSegment(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:read")
	contentID := uuid.New()
	f.recipes.EXPECT().IsAuthor(mock.Anything, contentID, result.User.ID).Return(true, nil)

	c, _ := newRequest(http.MethodGet, "/api/recipe/"+contentID.String(), nil)
	c.Set(authContextKey, result)

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	require.NoError(t, err)
}

func TestOwnerRequired_RepositoryErrorPropagates(t *testing.T) {
	f := newAuthMiddlewareFixture(t)
	result := authResult("recipe:read")
	contentID := uuid.New()
	dbErr := errors.New("connection reset")
	f.recipes.EXPECT().IsAuthor(mock.Anything, contentID, result.User.ID).Return(false, dbErr)

	c, _ := newRequest(http.MethodGet, "/api/recipe/"+contentID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(contentID.String())
	c.Set(authContextKey, result)

	err := f.middleware.OwnerRequired(repository.ContentRecipe)(okHandler)(c)

	require.ErrorIs(t, err, dbErr)
}

func TestIsAPIRequest_ChokePoint(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		accept string
		want   bool
	}{
		{"api path", "/api/code", "", true},
		{"json accept", "/recipes", echo.MIMEApplicationJSON, true},
		{"html accept", "/recipes", echo.MIMETextHTML, false},
		{"browser accept lists both", "/recipes", "text/html,application/json", false},
		{"no accept", "/recipes", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.accept != "" {
				headers[echo.HeaderAccept] = tc.accept
			}
			c, _ := newRequest(http.MethodGet, tc.path, headers)
			assert.Equal(t, tc.want, isAPIRequest(c))
		})
	}
}
