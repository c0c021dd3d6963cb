package topic

import (
	"net/url"

	"github.com/yosida95/uritemplate/v3"
)

// Variable is a named value substituted into a topic whose canonical IRI is
// derived from a URI Template. Order is preserved but has no effect on the
// expanded IRI.
type Variable struct {
	Name  string
	Value string
}

// The Mercure Protocol, Section 5: the first topic IRI of an update is the
// canonical IRI, subsequent ones are alternate IRIs. The hub dispatches the
// update to subscribers of either.
type Topic struct {
	canonicalUrl  *url.URL
	variables     []Variable
	alternateUrls []*url.URL
}

// NewTopic constructs a topic whose canonical IRI needs no expansion.
func NewTopic(canonicalUrl *url.URL) *Topic {
	return &Topic{canonicalUrl: canonicalUrl}
}

// NewTemplatedTopic expands template with the given variables and parses the
// expansion as the canonical IRI.
func NewTemplatedTopic(template string, variables []Variable) (*Topic, ITopicError) {
	parsedTemplate, err := uritemplate.New(template)
	if err != nil {
		return nil, NewTopicInvalidTemplateError(template, err)
	}
	values := uritemplate.Values{}
	for _, variable := range variables {
		values.Set(variable.Name, uritemplate.String(variable.Value))
	}
	expanded, err := parsedTemplate.Expand(values)
	if err != nil {
		return nil, NewTopicExpansionError(template, err)
	}
	canonicalUrl, err := url.Parse(expanded)
	if err != nil {
		return nil, NewTopicInvalidIriError(expanded, err)
	}
	return &Topic{canonicalUrl: canonicalUrl, variables: variables}, nil
}

// WithAlternates attaches alternate IRIs, serialized after the canonical IRI
// on publish.
func (t *Topic) WithAlternates(alternateUrls ...*url.URL) *Topic {
	t.alternateUrls = append(t.alternateUrls, alternateUrls...)
	return t
}

func (t *Topic) CanonicalUrl() *url.URL {
	return t.canonicalUrl
}

func (t *Topic) Variables() []Variable {
	return t.variables
}

func (t *Topic) AlternateUrls() []*url.URL {
	return t.alternateUrls
}

// Iri returns the expanded canonical IRI, which is the topic's identity.
func (t *Topic) Iri() string {
	return t.canonicalUrl.String()
}

// Iris returns the expanded canonical IRI followed by alternate IRIs.
func (t *Topic) Iris() []string {
	iris := make([]string, 0, 1+len(t.alternateUrls))
	iris = append(iris, t.Iri())
	for _, alternate := range t.alternateUrls {
		iris = append(iris, alternate.String())
	}
	return iris
}

// Equals reports whether both topics identify the same stream of updates.
func (t *Topic) Equals(other *Topic) bool {
	if other == nil {
		return false
	}
	return t.Iri() == other.Iri()
}
