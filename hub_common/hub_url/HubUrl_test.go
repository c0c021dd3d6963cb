package hub_url

import (
	"net/url"
	"testing"

	"mercure/common/test_utils"
)

func TestHubUrl(t *testing.T) {
	test_utils.NewTestGroup("hub url", "well-known path validation").Cases([]*test_utils.Assertion{
		test_utils.NewTestCase("accepts https well-known URL", "", func() bool {
			hubUrl, err := FromString("https://example.com/.well-known/mercure")
			return err == nil && hubUrl.String() == "https://example.com/.well-known/mercure"
		}),
		test_utils.NewTestCase("accepts prefixed well-known path", "", func() bool {
			_, err := FromString("http://example.com/hub/.well-known/mercure")
			return err == nil
		}),
		test_utils.NewTestCase("rejects non-http scheme", "", func() bool {
			_, err := FromString("ftp://example.com/.well-known/mercure")
			return err != nil && err.Code() == HubUrlErrInvalidScheme
		}),
		test_utils.NewTestCase("rejects other paths", "", func() bool {
			_, err := FromString("https://example.com/hub")
			return err != nil && err.Code() == HubUrlErrInvalidPath
		}),
		test_utils.NewTestCase("rejects trailing slash", "no silent path normalization", func() bool {
			_, err := FromString("https://example.com/.well-known/mercure/")
			return err != nil && err.Code() == HubUrlErrInvalidPath
		}),
		test_utils.NewTestCase("rejects unparseable URL", "", func() bool {
			_, err := FromString("://example.com")
			return err != nil && err.Code() == HubUrlErrUnparseable
		}),
		test_utils.NewTestCase("exposed URL is a copy", "", func() bool {
			hubUrl, err := FromString("https://example.com/.well-known/mercure")
			if err != nil {
				return false
			}
			leaked := hubUrl.Url()
			leaked.Path = "/elsewhere"
			return hubUrl.String() == "https://example.com/.well-known/mercure"
		}),
		test_utils.NewTestCase("detaches from the input URL", "", func() bool {
			u, parseErr := url.Parse("https://example.com/.well-known/mercure")
			if parseErr != nil {
				return false
			}
			hubUrl, err := FromUrl(u)
			if err != nil {
				return false
			}
			u.Path = "/elsewhere"
			return hubUrl.String() == "https://example.com/.well-known/mercure"
		}),
		test_utils.NewTestCase("validates parsed urls too", "", func() bool {
			u, parseErr := url.Parse("https://example.com/.well-known/mercure")
			if parseErr != nil {
				return false
			}
			_, err := FromUrl(u)
			return err == nil
		}),
	}).Do(t)
}
