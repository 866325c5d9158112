// Package tenant implements the session glue between the web layer and the
// encoding core: an encrypted cookie carrying the tenant id.
package tenant

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// SessionService - management of the tenant session cookie.
type SessionService interface {
	// GetTenantIDFromCookie reads the tenant id from the request cookie.
	GetTenantIDFromCookie(r *http.Request) (string, error)
	// SetTenantIDCookie writes the tenant id cookie to the response.
	SetTenantIDCookie(res http.ResponseWriter, tenantID string) error
}

type session struct {
	cookieName string
	cookie     *securecookie.SecureCookie
}

func newSecurecookie() *securecookie.SecureCookie {
	var hashKey = []byte("very-very-very-very-secret-key32")
	var blockKey = []byte("a-lot-of-secret!")
	return securecookie.New(hashKey, blockKey)
}

// NewSessionService creates the session service with its cookie codec.
func NewSessionService() SessionService {
	return &session{
		cookieName: "TenantToken",
		cookie:     newSecurecookie(),
	}
}

// GetTenantIDFromCookie returns the tenant id carried by the request.
func (s *session) GetTenantIDFromCookie(req *http.Request) (string, error) {
	cookie, err := req.Cookie(s.cookieName)
	if err != nil {
		return "", err
	}

	var tenantID string
	if err := s.cookie.Decode(s.cookieName, cookie.Value, &tenantID); err != nil {
		return "", err
	}
	return tenantID, nil
}

// SetTenantIDCookie sets the encrypted tenant id cookie.
func (s *session) SetTenantIDCookie(res http.ResponseWriter, tenantID string) error {
	encoded, err := s.cookie.Encode(s.cookieName, tenantID)
	if err != nil {
		return err
	}

	http.SetCookie(res, &http.Cookie{
		Name:    s.cookieName,
		Value:   encoded,
		Path:    "/",
		Secure:  false,
		Expires: time.Now().Add(30 * 24 * time.Hour),
	})
	return nil
}
