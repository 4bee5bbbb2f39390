package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func flashCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var last *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName {
			last = ck
		}
	}
	require.NotNil(t, last, "flash cookie not set")
	return last
}

func TestAddThenPopNextRequest(t *testing.T) {
	e := echo.New()
	s := NewStore("secret", false)

	c, rec := newContext(e)
	s.Add(c, Info, "Venue The Musical Hop was successfully listed!")
	s.Add(c, Error, "second")
	ck := flashCookie(t, rec)

	c2, rec2 := newContext(e, ck)
	msgs := s.Pop(c2)
	assert.Equal(t, []Message{
		{Category: Info, Text: "Venue The Musical Hop was successfully listed!"},
		{Category: Error, Text: "second"},
	}, msgs)
	assert.Equal(t, -1, flashCookie(t, rec2).MaxAge)
	assert.Empty(t, s.Pop(c2), "popped messages are gone")
}

func TestPopSameRequest(t *testing.T) {
	s := NewStore("secret", false)
	c, _ := newContext(echo.New())
	s.Add(c, Error, "An error occurred.")
	assert.Len(t, s.Pop(c), 1)
}

func TestTamperedOrForeignCookieIgnored(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e)
	NewStore("other-secret", false).Add(c, Info, "forged")
	forged := flashCookie(t, rec)

	s := NewStore("secret", false)
	c2, _ := newContext(e, forged)
	assert.Empty(t, s.Pop(c2))

	c3, _ := newContext(e, &http.Cookie{Name: cookieName, Value: "not-a-token"})
	assert.Empty(t, s.Pop(c3))
}

func TestExpiredCookieIgnored(t *testing.T) {
	e := echo.New()
	s := NewStore("secret", false)
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return start }

	c, rec := newContext(e)
	s.Add(c, Info, "stale")
	ck := flashCookie(t, rec)

	s.now = func() time.Time { return start.Add(ttl + time.Minute) }
	c2, _ := newContext(e, ck)
	assert.Empty(t, s.Pop(c2))
}

func TestOnlyLatestCookieSent(t *testing.T) {
	s := NewStore("secret", false)
	c, rec := newContext(echo.New())
	s.Add(c, Error, "one")
	s.Add(c, Error, "two")

	var n int
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName {
			n++
		}
	}
	assert.Equal(t, 1, n)
}
