package hub_url

import (
	"net/url"
	"strings"
)

// The Mercure Protocol, Section 2: the URL of the hub MUST be the well-known
// fixed path "/.well-known/mercure".
const WellKnownPath = "/.well-known/mercure"

// HubUrl is a URL known to point at a conformant hub endpoint. The only way
// to obtain one is through the validating conversions below.
type HubUrl struct {
	url *url.URL
}

// FromUrl validates that u uses an HTTP(S) scheme and carries the well-known
// discovery path. No path normalization is performed beyond what the URL
// parser already did.
func FromUrl(u *url.URL) (HubUrl, IHubUrlError) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return HubUrl{}, NewInvalidSchemeError(u.Scheme)
	}
	if !strings.HasSuffix(u.Path, WellKnownPath) {
		return HubUrl{}, NewInvalidPathError(u.Path)
	}
	// detach from the caller's URL so later mutation of u cannot reach in
	copied := *u
	return HubUrl{url: &copied}, nil
}

func FromString(s string) (HubUrl, IHubUrlError) {
	u, err := url.Parse(s)
	if err != nil {
		return HubUrl{}, NewUnparseableUrlError(s, err)
	}
	return FromUrl(u)
}

func (h HubUrl) String() string {
	return h.url.String()
}

// Url returns a copy so callers cannot mutate the validated URL in place.
func (h HubUrl) Url() *url.URL {
	copied := *h.url
	return &copied
}
