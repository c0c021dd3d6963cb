package topic_selector

import (
	"testing"

	"mercure/common/test_utils"
)

func TestTopicSelector(t *testing.T) {
	var bookSelector TopicSelector
	test_utils.NewTestGroup("topic selector", "wildcard and URI template matching").Cases([]*test_utils.Assertion{
		test_utils.NewTestCase("wildcard matches any IRI", "", func() bool {
			return Wildcard().Matches("https://example.com/books/1") &&
				Wildcard().Matches("urn:uuid:5e94c686-2c0b-4f9b-958c-92ccc3bbb4eb")
		}),
		test_utils.NewTestCase("wildcard serializes to *", "", func() bool {
			return Wildcard().String() == "*"
		}),
		test_utils.NewTestCase("parse URI template selector", "", func() bool {
			selector, err := NewUriTemplateSelector("https://example.com/books/{id}")
			if err != nil {
				return false
			}
			bookSelector = selector
			return selector.String() == "https://example.com/books/{id}"
		}),
		test_utils.NewTestCase("template matches produced IRIs", "", func() bool {
			return bookSelector.Matches("https://example.com/books/1") &&
				bookSelector.Matches("https://example.com/books/foo")
		}),
		test_utils.NewTestCase("template rejects other IRIs", "", func() bool {
			return !bookSelector.Matches("https://example.com/users/1") &&
				!bookSelector.Matches("https://other.example.org/books/1")
		}),
		test_utils.NewTestCase("invalid template fails with InvalidTemplate", "", func() bool {
			_, err := NewUriTemplateSelector("https://example.com/{")
			return err != nil && err.Code() == SelectorErrInvalidTemplate
		}),
		test_utils.NewTestCase("wire form round trip", "", func() bool {
			wildcard, err := FromString("*")
			if err != nil || wildcard.String() != "*" {
				return false
			}
			template, err := FromString("https://example.com/books/{id}")
			return err == nil && template.String() == "https://example.com/books/{id}"
		}),
	}).Do(t)
}
