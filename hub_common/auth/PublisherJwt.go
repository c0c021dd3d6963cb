package auth

import (
	"github.com/golang-jwt/jwt"

	"mercure/hub_common/topic"
	"mercure/hub_common/topic_selector"
)

// PublisherJwt mints compact HS256 tokens carrying publish selectors.
// Tokens are signed on demand, never cached, so the selector set can be
// narrowed per publish call.
type PublisherJwt struct {
	secret *Secret
	claims *TokenClaims
}

func NewPublisherJwt(secret *Secret, selectors []topic_selector.TopicSelector) (*PublisherJwt, IAuthError) {
	claims, err := NewTokenClaims(selectors, nil, nil)
	if err != nil {
		return nil, err
	}
	return &PublisherJwt{secret: secret, claims: claims}, nil
}

func (j *PublisherJwt) Claims() *TokenClaims {
	return j.claims
}

// SignedString encodes and signs the token in its three-part compact form.
func (j *PublisherJwt) SignedString() (string, IAuthError) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, j.claims.ToJwtClaims(jwt.StandardClaims{}))
	signed, err := token.SignedString(j.secret.expose())
	if err != nil {
		return "", NewSignError(err)
	}
	return signed, nil
}

// NarrowedFor derives a publisher token restricted to the selectors of this
// token that match the topic's canonical IRI. A token that cannot authorize
// the topic is refused here rather than by the hub.
func (j *PublisherJwt) NarrowedFor(t *topic.Topic) (*PublisherJwt, IAuthError) {
	iri := t.Iri()
	matching := make([]topic_selector.TopicSelector, 0, len(j.claims.publish))
	for _, selector := range j.claims.publish {
		if selector.Matches(iri) {
			matching = append(matching, selector)
		}
	}
	if len(matching) == 0 {
		return nil, NewNoMatchingSelectorError(iri)
	}
	return NewPublisherJwt(j.secret, matching)
}
