package hub_client

import (
	"net/url"
	"strings"
	"testing"

	"mercure/common/test_utils"
	"mercure/hub_common/topic"
)

func mustParse(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unable to parse %s: %s", raw, err)
	}
	return u
}

func TestEncodePublishParams(t *testing.T) {
	bookTopic := topic.NewTopic(mustParse(t, "https://example.com/books/1"))
	data := `{"isbn":"9780735218789"}`
	test_utils.NewTestGroup("publish params", "form encoding").Cases([]*test_utils.Assertion{
		test_utils.NewTestCase("public update omits private field", "absence is the wire form of public", func() bool {
			body := encodePublishParams(bookTopic, nil, PrivacyPublic)
			return body == "topic=https%3A%2F%2Fexample.com%2Fbooks%2F1" && !strings.Contains(body, "private")
		}),
		test_utils.NewTestCase("private update carries private=on", "", func() bool {
			body := encodePublishParams(bookTopic, nil, PrivacyPrivate)
			return body == "private=on&topic=https%3A%2F%2Fexample.com%2Fbooks%2F1"
		}),
		test_utils.NewTestCase("data serialized only when present", "", func() bool {
			withData := encodePublishParams(bookTopic, &data, PrivacyPublic)
			withoutData := encodePublishParams(bookTopic, nil, PrivacyPublic)
			return strings.Contains(withData, "data=") && !strings.Contains(withoutData, "data=")
		}),
		test_utils.NewTestCase("alternate topics repeat the topic field in order", "", func() bool {
			withAlternates := topic.NewTopic(mustParse(t, "https://example.com/books/1")).
				WithAlternates(mustParse(t, "https://example.com/users/1/books/1"))
			body := encodePublishParams(withAlternates, nil, PrivacyPrivate)
			return body == "private=on&topic=https%3A%2F%2Fexample.com%2Fbooks%2F1&topic=https%3A%2F%2Fexample.com%2Fusers%2F1%2Fbooks%2F1"
		}),
	}).Do(t)
}
