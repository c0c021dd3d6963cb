package auth

import (
	"net/http"
	"time"
)

// The Mercure Protocol, Section 6: a web browser subscriber SHOULD send a
// cookie called "mercureAuthorization" containing the JWS.
const MercureAuthorizationCookieName = "mercureAuthorization"

// RFC 6265bis, Section 5.5: user agents cap cookie lifetimes at 400 days.
const CookieMaxAgeLimit = 34560000 * time.Second

// AuthorizationCookie signs the subscriber token and wraps it in the
// protocol's authorization cookie.
func (j *SubscriberJwt) AuthorizationCookie() (*http.Cookie, IAuthError) {
	signed, err := j.SignedString()
	if err != nil {
		return nil, err
	}
	cookie := &http.Cookie{
		Name:     MercureAuthorizationCookieName,
		Value:    signed,
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if j.maxAge != nil {
		cookie.MaxAge = int(j.maxAge.duration / time.Second)
	}
	return cookie, nil
}
