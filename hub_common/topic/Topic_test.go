package topic

import (
	"net/url"
	"testing"

	"mercure/common/test_utils"
)

func mustParse(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unable to parse %s: %s", raw, err)
	}
	return u
}

func TestTopic(t *testing.T) {
	bookUrl := mustParse(t, "https://example.com/books/1")
	test_utils.NewTestGroup("topic", "identity and template expansion").Cases([]*test_utils.Assertion{
		test_utils.NewTestCase("plain topic IRI round trip", "", func() bool {
			return NewTopic(bookUrl).Iri() == "https://example.com/books/1"
		}),
		test_utils.NewTestCase("templated topic expands variables", "", func() bool {
			templated, err := NewTemplatedTopic("https://example.com/users/{user_id}/books/{book_id}", []Variable{
				{Name: "user_id", Value: "1"},
				{Name: "book_id", Value: "42"},
			})
			if err != nil {
				return false
			}
			return templated.Iri() == "https://example.com/users/1/books/42"
		}),
		test_utils.NewTestCase("invalid template fails", "", func() bool {
			_, err := NewTemplatedTopic("https://example.com/{", nil)
			return err != nil && err.Code() == TopicErrInvalidTemplate
		}),
		test_utils.NewTestCase("equality follows expanded IRI", "", func() bool {
			templated, err := NewTemplatedTopic("https://example.com/books/{id}", []Variable{{Name: "id", Value: "1"}})
			if err != nil {
				return false
			}
			other := NewTopic(mustParse(t, "https://example.com/books/2"))
			return NewTopic(bookUrl).Equals(templated) && !NewTopic(bookUrl).Equals(other)
		}),
		test_utils.NewTestCase("canonical IRI serialized first", "", func() bool {
			withAlternates := NewTopic(bookUrl).WithAlternates(mustParse(t, "https://example.com/users/1/books/1"))
			return test_utils.AssertStringSlicesEqual(withAlternates.Iris(), []string{
				"https://example.com/books/1",
				"https://example.com/users/1/books/1",
			})
		}),
	}).Do(t)
}
