package topic_selector

import (
	"github.com/yosida95/uritemplate/v3"
)

// The Mercure Protocol, Section 3: a topic selector is an expression intended
// to be matched by one or several topics. It is either the string "*" which
// matches every topic, or an RFC 6570 URI Template.
const WildcardLiteral = "*"

type TopicSelector interface {
	Matches(topicIri string) bool
	String() string
	// unexported marker keeps the variant set closed to this package
	selectorMarker()
}

type WildcardSelector struct{}

func (s WildcardSelector) Matches(topicIri string) bool {
	return true
}

func (s WildcardSelector) String() string {
	return WildcardLiteral
}

func (s WildcardSelector) selectorMarker() {}

func Wildcard() TopicSelector {
	return WildcardSelector{}
}

type UriTemplateSelector struct {
	raw      string
	template *uritemplate.Template
}

func (s *UriTemplateSelector) Matches(topicIri string) bool {
	return s.template.Regexp().MatchString(topicIri)
}

func (s *UriTemplateSelector) String() string {
	return s.raw
}

func (s *UriTemplateSelector) selectorMarker() {}

// NewUriTemplateSelector parses raw as an RFC 6570 URI Template. The template
// should be in absolute form expanding to a valid URL; that constraint cannot
// be checked here due to the flexibility of URI Templates.
func NewUriTemplateSelector(raw string) (TopicSelector, ISelectorError) {
	template, err := uritemplate.New(raw)
	if err != nil {
		return nil, NewInvalidTemplateError(raw, err)
	}
	return &UriTemplateSelector{raw: raw, template: template}, nil
}

// FromString converts a selector in its wire form back into a TopicSelector.
func FromString(s string) (TopicSelector, ISelectorError) {
	if s == WildcardLiteral {
		return Wildcard(), nil
	}
	return NewUriTemplateSelector(s)
}
