package auth

import (
	"time"

	"github.com/golang-jwt/jwt"

	"mercure/hub_common/topic_selector"
)

// SubscriberJwtMaxAge bounds a subscriber token's lifetime. The Mercure
// Protocol, Section 12 strongly recommends short-lived subscriber tokens.
type SubscriberJwtMaxAge struct {
	duration time.Duration
}

// NewSubscriberJwtMaxAge fails when the duration exceeds the cookie lifetime
// limit, since subscriber tokens are commonly delivered via the
// mercureAuthorization cookie.
func NewSubscriberJwtMaxAge(duration time.Duration) (*SubscriberJwtMaxAge, IAuthError) {
	if duration > CookieMaxAgeLimit {
		return nil, NewMaxAgeExceededError(duration)
	}
	return &SubscriberJwtMaxAge{duration: duration}, nil
}

func (a *SubscriberJwtMaxAge) Duration() time.Duration {
	return a.duration
}

// SubscriberJwt mints compact HS256 tokens carrying subscribe selectors and
// an optional opaque payload presented to the hub.
type SubscriberJwt struct {
	secret *Secret
	claims *TokenClaims
	maxAge *SubscriberJwtMaxAge
}

func NewSubscriberJwt(secret *Secret, maxAge *SubscriberJwtMaxAge, selectors []topic_selector.TopicSelector, payload interface{}) (*SubscriberJwt, IAuthError) {
	claims, err := NewTokenClaims(nil, selectors, payload)
	if err != nil {
		return nil, err
	}
	return &SubscriberJwt{secret: secret, claims: claims, maxAge: maxAge}, nil
}

func (j *SubscriberJwt) Claims() *TokenClaims {
	return j.claims
}

func (j *SubscriberJwt) MaxAge() *SubscriberJwtMaxAge {
	return j.maxAge
}

// SignedString encodes and signs the token in its three-part compact form,
// stamping the exp claim when a max age was provided.
func (j *SubscriberJwt) SignedString() (string, IAuthError) {
	registered := jwt.StandardClaims{}
	if j.maxAge != nil {
		registered.ExpiresAt = time.Now().Add(j.maxAge.duration).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, j.claims.ToJwtClaims(registered))
	signed, err := token.SignedString(j.secret.expose())
	if err != nil {
		return "", NewSignError(err)
	}
	return signed, nil
}
