package middleware

import (
	"net/http"
	"strings"

	"plateful/internal/delivery/http/session"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authContextKey is the echo context key the authenticated identity is
// stored under. Handlers access it through CurrentAuth, never directly.
const authContextKey = "plateful.auth"

// minTokenLength rejects obviously truncated bearer values before they
// reach signature verification.
const minTokenLength = 10

// loginPath is where unauthenticated browser requests are sent.
const loginPath = "/auth/login"

// sessionTokenKey is the session field holding the user's JWT for browser
// requests that cannot carry an Authorization header.
const sessionTokenKey = "user_jwt"

// AuthMiddleware provides middleware for token authentication, scope checks
// and content ownership checks.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	ownership   repository.OwnershipRegistry
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase, ownership repository.OwnershipRegistry) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase, ownership: ownership}
}

// CurrentAuth returns the authenticated identity attached by JWTRequired,
// or nil when authentication did not run.
func CurrentAuth(c echo.Context) *usecase.AuthResult {
	result, _ := c.Get(authContextKey).(*usecase.AuthResult)

	return result
}

// JWTRequired validates the request's bearer token and attaches the
// authenticated identity to the context. Browser requests without an
// Authorization header fall back to the token stored in their session.
func (m *AuthMiddleware) JWTRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			if sess := session.FromContext(c); sess != nil {
				token = sess.Get(sessionTokenKey)
			}
		}
		if len(token) < minTokenLength {
			return m.reject(c, domainerrors.ErrUnauthorized)
		}

		result, err := m.authUsecase.Authenticate(c.Request().Context(), token)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return m.reject(c, appErr)
			}

			return errors.WithStack(err)
		}

		c.Set(authContextKey, result)

		return next(c)
	}
}

// ScopeRequired is a middleware factory that checks the authenticated
// identity for a specific scope. It must be used after JWTRequired.
func (m *AuthMiddleware) ScopeRequired(scope entity.Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := CurrentAuth(c)
			if auth == nil {
				return m.reject(c, domainerrors.ErrUnauthorized)
			}
			if !auth.HasScope(scope) {
				return m.reject(c, domainerrors.ErrScopeMissing)
			}

			return next(c)
		}
	}
}

// OwnerRequired is a middleware factory that checks the authenticated user
// authored the content addressed by the route. The content type must be one
// of the registered types; every failure mode yields the same generic
// response so callers cannot discover which resources exist.
func (m *AuthMiddleware) OwnerRequired(contentType repository.OwnedContentType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := CurrentAuth(c)
			if auth == nil {
				return m.reject(c, domainerrors.ErrUnauthorized)
			}

			checker, ok := m.ownership[contentType]
			if !ok {
				return m.reject(c, domainerrors.ErrNotOwner)
			}

			contentID, err := uuid.Parse(contentIDParam(c, contentType))
			if err != nil {
				return m.reject(c, domainerrors.ErrNotOwner)
			}

			isAuthor, err := checker.IsAuthor(c.Request().Context(), contentID, auth.User.ID)
			if err != nil {
				return errors.WithStack(err)
			}
			if !isAuthor {
				return m.reject(c, domainerrors.ErrNotOwner)
			}

			return next(c)
		}
	}
}

// reject answers an authentication or authorization failure. API requests
// get the structured error; browser requests are redirected to the login
// page instead of seeing a bare JSON body.
func (m *AuthMiddleware) reject(c echo.Context, appErr domainerrors.AppError) error {
	if isAPIRequest(c) {
		return appErr
	}

	return c.Redirect(http.StatusSeeOther, loginPath)
}

// isAPIRequest is the single choke point deciding whether a request gets
// JSON errors or browser redirects.
func isAPIRequest(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api") {
		return true
	}

	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}

// bearerToken extracts the token from the Authorization header, or returns
// the empty string when the header is absent or not a Bearer scheme.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return strings.TrimSpace(token)
}

// contentIDParam resolves the content ID for an ownership check: the `id`
// route param, then `<type>_id`, then the last path segment.
func contentIDParam(c echo.Context, contentType repository.OwnedContentType) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	if id := c.Param(string(contentType) + "_id"); id != "" {
		return id
	}

	path := strings.TrimSuffix(c.Request().URL.Path, "/")
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return ""
}
