package auth

import (
	"github.com/golang-jwt/jwt"

	"mercure/hub_common/topic_selector"
)

// The Mercure Protocol, Section 6.1/6.2: the JWS presented to the hub MUST
// contain a claim called "mercure"; "mercure.publish" authorizes publishing
// and "mercure.subscribe" authorizes receiving private updates, each holding
// an array of topic selectors.
type MercureClaim struct {
	Publish   []string    `json:"publish,omitempty"`
	Subscribe []string    `json:"subscribe,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
}

type MercureJwtClaims struct {
	jwt.StandardClaims
	Mercure MercureClaim `json:"mercure"`
}

// TokenClaims is the authorization payload of a publisher or subscriber
// token. At least one selector list must be present; selector lists are
// deduplicated by wire form with order preserved.
type TokenClaims struct {
	publish   []topic_selector.TopicSelector
	subscribe []topic_selector.TopicSelector
	payload   interface{}
}

func NewTokenClaims(publish []topic_selector.TopicSelector, subscribe []topic_selector.TopicSelector, payload interface{}) (*TokenClaims, IAuthError) {
	if len(publish) == 0 && len(subscribe) == 0 {
		return nil, NewEmptyClaimsError()
	}
	return &TokenClaims{
		publish:   dedupeSelectors(publish),
		subscribe: dedupeSelectors(subscribe),
		payload:   payload,
	}, nil
}

func (c *TokenClaims) PublishSelectors() []topic_selector.TopicSelector {
	return copySelectors(c.publish)
}

func (c *TokenClaims) SubscribeSelectors() []topic_selector.TopicSelector {
	return copySelectors(c.subscribe)
}

func (c *TokenClaims) Payload() interface{} {
	return c.payload
}

// ToJwtClaims assembles the protocol claim shape around the caller-supplied
// registered claim set.
func (c *TokenClaims) ToJwtClaims(registered jwt.StandardClaims) MercureJwtClaims {
	return MercureJwtClaims{
		StandardClaims: registered,
		Mercure: MercureClaim{
			Publish:   selectorStrings(c.publish),
			Subscribe: selectorStrings(c.subscribe),
			Payload:   c.payload,
		},
	}
}

// FromMercureClaim rebuilds TokenClaims from a parsed "mercure" claim.
func FromMercureClaim(claim MercureClaim) (*TokenClaims, IAuthError) {
	publish, err := selectorsFromStrings(claim.Publish)
	if err != nil {
		return nil, err
	}
	subscribe, err := selectorsFromStrings(claim.Subscribe)
	if err != nil {
		return nil, err
	}
	return NewTokenClaims(publish, subscribe, claim.Payload)
}

func selectorStrings(selectors []topic_selector.TopicSelector) []string {
	if len(selectors) == 0 {
		return nil
	}
	strs := make([]string, len(selectors))
	for i, selector := range selectors {
		strs[i] = selector.String()
	}
	return strs
}

func selectorsFromStrings(strs []string) ([]topic_selector.TopicSelector, IAuthError) {
	if len(strs) == 0 {
		return nil, nil
	}
	selectors := make([]topic_selector.TopicSelector, len(strs))
	for i, s := range strs {
		selector, err := topic_selector.FromString(s)
		if err != nil {
			return nil, NewInvalidSelectorError(s, err)
		}
		selectors[i] = selector
	}
	return selectors, nil
}

func dedupeSelectors(selectors []topic_selector.TopicSelector) []topic_selector.TopicSelector {
	if len(selectors) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	deduped := make([]topic_selector.TopicSelector, 0, len(selectors))
	for _, selector := range selectors {
		key := selector.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, selector)
	}
	return deduped
}

func copySelectors(selectors []topic_selector.TopicSelector) []topic_selector.TopicSelector {
	if selectors == nil {
		return nil
	}
	copied := make([]topic_selector.TopicSelector, len(selectors))
	copy(copied, selectors)
	return copied
}
