// internal/httpserver/session.go
//
// Anonymous session plumbing for the game routes. There are no accounts:
// a player is identified by a signed HS256 token in a cookie, carrying the
// in-memory session ID and the Central-zone date it was minted for. The
// signature keeps the reference tamper-proof; the actual guess history
// lives in the store and evaporates on restart.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "citidle_session"

// sessionSecret returns the HMAC key for session tokens.
func sessionSecret() []byte {
	return []byte(getEnv("SESSION_SECRET", "dev_secret_change_me"))
}

// signSessionToken creates an HS256 token binding a session ID to a date key.
func signSessionToken(sid, date string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":  sid,
		"date": date,
		"iat":  now.Unix(),
		"exp":  now.Add(48 * time.Hour).Unix(),
	})
	return t.SignedString(sessionSecret())
}

// parseSessionToken verifies a token and extracts the session ID and date.
func parseSessionToken(tok string) (sid, date string, err error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret(), nil
	})
	if err != nil || !t.Valid {
		return "", "", errors.New("invalid session token")
	}
	sid, _ = claims["sid"].(string)
	date, _ = claims["date"].(string)
	if sid == "" || date == "" {
		return "", "", errors.New("invalid session token")
	}
	return sid, date, nil
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// setSessionCookie writes the session token cookie.
func setSessionCookie(w http.ResponseWriter, token string) {
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  time.Now().Add(48 * time.Hour),
	})
}

// genID creates a 22‑char URL‑safe, crypto‑random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
