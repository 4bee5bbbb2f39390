// Package flash carries one-shot user messages across a redirect.  The
// messages travel in a cookie holding an HS256 token, so a client can
// drop them but not forge them.
package flash

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "fyyur_flash"
	ttl        = 5 * time.Minute
	issuer     = "fyyur"

	pendingKey = "flash.pending"
)

// Categories used by the templates for styling.
const (
	Info  = "info"
	Error = "error"
)

// Message is one flashed line.
type Message struct {
	Category string `json:"c"`
	Text     string `json:"t"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies with a shared secret.
type Store struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// NewStore returns a Store.  secure marks the cookie Secure, which should
// be set whenever the site is served over TLS.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure, now: time.Now}
}

// Add queues a message for the next page the client loads.  Messages added
// during one request accumulate.
func (s *Store) Add(c echo.Context, category, text string) {
	pending := s.pending(c)
	pending = append(pending, Message{Category: category, Text: text})
	c.Set(pendingKey, pending)
	s.write(c, pending)
}

// Pop returns the queued messages and clears the cookie.  Messages queued
// earlier in the same request are included.  A missing, expired or
// tampered cookie yields nothing.
func (s *Store) Pop(c echo.Context) []Message {
	msgs := s.pending(c)
	if len(msgs) == 0 {
		return nil
	}
	c.Set(pendingKey, []Message(nil))
	dropSetCookie(c)
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return msgs
}

// pending returns the messages queued in this request, falling back to the
// ones carried by the incoming cookie.
func (s *Store) pending(c echo.Context) []Message {
	if v, ok := c.Get(pendingKey).([]Message); ok {
		return v
	}
	ck, err := c.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	msgs, err := s.decode(ck.Value)
	if err != nil {
		return nil
	}
	return msgs
}

func (s *Store) write(c echo.Context, msgs []Message) {
	token, err := s.encode(msgs)
	if err != nil {
		c.Logger().Errorf("flash: sign cookie: %v", err)
		return
	}
	dropSetCookie(c)
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// dropSetCookie removes flash cookies already queued on the response so
// only the latest state is sent.
func dropSetCookie(c echo.Context) {
	h := c.Response().Header()
	kept := h.Values(echo.HeaderSetCookie)[:0:0]
	for _, v := range h.Values(echo.HeaderSetCookie) {
		if !strings.HasPrefix(v, cookieName+"=") {
			kept = append(kept, v)
		}
	}
	h.Del(echo.HeaderSetCookie)
	for _, v := range kept {
		h.Add(echo.HeaderSetCookie, v)
	}
}

func (s *Store) encode(msgs []Message) (string, error) {
	now := s.now().UTC()
	cl := claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(s.secret)
}

var errBadToken = errors.New("flash: invalid token")

func (s *Store) decode(raw string) ([]Message, error) {
	var cl claims
	tok, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errBadToken
	}
	return cl.Messages, nil
}
