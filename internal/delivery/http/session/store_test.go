package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"plateful/config"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	mockRepo "plateful/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeFixture struct {
	repo  *mockRepo.MockSessionRepository
	store *Store
	now   time.Time
}

func newStoreFixture(t *testing.T, signKey string) *storeFixture {
	cfg := &config.Config{}
	cfg.Secrets.SessionSignKey = signKey

	f := &storeFixture{
		repo: mockRepo.NewMockSessionRepository(t),
		now:  time.Now(),
	}
	f.store = NewStore(f.repo, cfg)
	f.store.now = func() time.Time { return f.now }

	return f
}

func newEchoContext(cookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: defaultCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStore_Open_NoCookieYieldsFreshSession(t *testing.T) {
	f := newStoreFixture(t, "")
	c, _ := newEchoContext("")

	session, err := f.store.Open(c)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.id)
	assert.Empty(t, session.values)
	assert.False(t, session.modified)
}

func TestStore_Open_LoadsStoredValues(t *testing.T) {
	f := newStoreFixture(t, "")
	id := uuid.New()
	f.repo.EXPECT().Find(mock.Anything, id).Return(&entity.SessionRecord{
		ID:        id,
		Data:      []byte(`{"user_email":"chef@example.com"}`),
		ExpiresAt: f.now.UTC().Add(time.Hour),
	}, nil)

	c, _ := newEchoContext(id.String())
	session, err := f.store.Open(c)

	require.NoError(t, err)
	assert.Equal(t, id, session.id)
	assert.Equal(t, "chef@example.com", session.Get("user_email"))
}

func TestStore_Open_ExpiredRowDeletedAndFresh(t *testing.T) {
	f := newStoreFixture(t, "")
	id := uuid.New()
	f.repo.EXPECT().Find(mock.Anything, id).Return(&entity.SessionRecord{
		ID:        id,
		ExpiresAt: f.now.UTC().Add(-time.Minute),
	}, nil)
	f.repo.EXPECT().Delete(mock.Anything, id).Return(nil)

	c, _ := newEchoContext(id.String())
	session, err := f.store.Open(c)

	require.NoError(t, err)
	assert.NotEqual(t, id, session.id)
}

func TestStore_Open_UnknownSessionYieldsFresh(t *testing.T) {
	f := newStoreFixture(t, "")
	id := uuid.New()
	f.repo.EXPECT().Find(mock.Anything, id).Return(nil, repository.ErrSessionNotFound)

	c, _ := newEchoContext(id.String())
	session, err := f.store.Open(c)

	require.NoError(t, err)
	assert.NotEqual(t, id, session.id)
}

func TestStore_Open_BadSignatureYieldsFresh(t *testing.T) {
	f := newStoreFixture(t, "sign-key")
	id := uuid.New()

	// Forged cookie with the wrong signature never reaches the repository.
	c, _ := newEchoContext(id.String() + ".forged-signature")
	session, err := f.store.Open(c)

	require.NoError(t, err)
	assert.NotEqual(t, id, session.id)
}

func TestStore_SignRoundTrip(t *testing.T) {
	f := newStoreFixture(t, "sign-key")
	id := uuid.New()

	token := f.store.sign(id)
	got, ok := f.store.unsign(token)

	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestStore_Save_PersistsPayloadAndSetsCookie(t *testing.T) {
	f := newStoreFixture(t, "")
	var saved *entity.SessionRecord
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *entity.SessionRecord) {
			saved = record
		}).Return(nil)

	c, rec := newEchoContext("")
	session, err := f.store.Open(c)
	require.NoError(t, err)

	session.Set("user_id", "42")
	require.NoError(t, f.store.Save(c, session))

	require.NotNil(t, saved)
	assert.Equal(t, session.id, saved.ID)
	assert.JSONEq(t, `{"user_id":"42"}`, string(saved.Data))
	assert.Equal(t, f.now.UTC().Add(defaultLifetime), saved.ExpiresAt)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.id.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestStore_Save_UntouchedSessionIsNoOp(t *testing.T) {
	f := newStoreFixture(t, "")
	c, rec := newEchoContext("")

	session, err := f.store.Open(c)
	require.NoError(t, err)

	require.NoError(t, f.store.Save(c, session))
	assert.Empty(t, rec.Result().Cookies())
}

func TestStore_Save_ClearedSessionDeletesRowAndCookie(t *testing.T) {
	f := newStoreFixture(t, "")
	id := uuid.New()
	f.repo.EXPECT().Find(mock.Anything, id).Return(&entity.SessionRecord{
		ID:        id,
		Data:      []byte(`{"user_id":"42"}`),
		ExpiresAt: f.now.UTC().Add(time.Hour),
	}, nil)
	f.repo.EXPECT().Delete(mock.Anything, id).Return(nil)

	c, rec := newEchoContext(id.String())
	session, err := f.store.Open(c)
	require.NoError(t, err)

	session.Clear()
	require.NoError(t, f.store.Save(c, session))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
