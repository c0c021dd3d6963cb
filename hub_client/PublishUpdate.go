package hub_client

import (
	"net/url"

	"mercure/hub_common/topic"
)

// PublishUpdatePrivacy controls which subscribers may receive the update.
// Private updates are only delivered to subscribers whose subscribe selectors
// match the topic; enforcement is hub-side.
type PublishUpdatePrivacy int

const (
	PrivacyPublic PublishUpdatePrivacy = iota
	PrivacyPrivate
)

// wire form of the private marker; public updates omit the field entirely
const privateFieldValue = "on"

// UpdateId is the identifier the hub assigns to a published update.
type UpdateId string

func (id UpdateId) String() string {
	return string(id)
}

func encodePublishParams(t *topic.Topic, data *string, privacy PublishUpdatePrivacy) string {
	values := url.Values{}
	for _, iri := range t.Iris() {
		values.Add("topic", iri)
	}
	if data != nil {
		values.Set("data", *data)
	}
	if privacy == PrivacyPrivate {
		values.Set("private", privateFieldValue)
	}
	return values.Encode()
}
