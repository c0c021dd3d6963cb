package hub_client

import (
	"context"
	"fmt"
	"net/http"
	"os"

	chttp "mercure/common/http"
	"mercure/common/logger"
	"mercure/hub_common/auth"
	"mercure/hub_common/hub_url"
	"mercure/hub_common/topic"
)

// Client publishes updates to a Mercure hub. All fields are immutable after
// construction and publish-scoped tokens are derived fresh per call, so a
// single Client is safe for concurrent publishes.
type Client struct {
	httpClient   chttp.IHTTPClient
	hubUrl       hub_url.HubUrl
	publisherJwt *auth.PublisherJwt
	logger       *logger.SimpleLogger
}

type IClient interface {
	PublishUpdate(ctx context.Context, t *topic.Topic, data *string, privacy PublishUpdatePrivacy) (UpdateId, IPublishError)
	Verbose(use bool)
}

func NewClient(httpClient chttp.IHTTPClient, hubUrl hub_url.HubUrl, publisherJwt *auth.PublisherJwt) IClient {
	return &Client{
		httpClient:   httpClient,
		hubUrl:       hubUrl,
		publisherJwt: publisherJwt,
		logger:       logger.New(os.Stdout, "[MercureClient]", false),
	}
}

func (c *Client) Verbose(use bool) {
	c.logger.Verbose(use)
}

// PublishUpdate publishes an update to the hub (The Mercure Protocol,
// Section 5). The bearer token sent with the request is narrowed to the
// selectors that actually authorize the topic; if none do, the publish is
// refused before any request is sent. No retries are performed.
func (c *Client) PublishUpdate(ctx context.Context, t *topic.Topic, data *string, privacy PublishUpdatePrivacy) (updateId UpdateId, err IPublishError) {
	defer func() {
		logger.LogError(c.logger, "PublishUpdate", err)
	}()

	narrowed, authErr := c.publisherJwt.NarrowedFor(t)
	if authErr != nil {
		err = NewUnauthorizedError(t.Iri())
		return
	}
	signed, signErr := narrowed.SignedString()
	if signErr != nil {
		err = NewSigningError(signErr)
		return
	}

	header := chttp.NewHeaderMaker().
		Set("Content-Type", "application/x-www-form-urlencoded").
		Set("Authorization", fmt.Sprintf("Bearer %s", signed)).
		Make()
	request := chttp.NewHTTPRequestBuilder().
		Ctx(ctx).
		Method(chttp.POST).
		Url(c.hubUrl.String()).
		Header(header).
		Body(encodePublishParams(t, data, privacy)).
		Build()

	c.logger.Printf("publishing update for topic %s to %s", t.Iri(), c.hubUrl.String())
	response := c.httpClient.Request(request)
	if response.Code() == chttp.ErrCodeTransport {
		err = NewTransportError(response.Err())
		return
	}
	if response.Code() == http.StatusUnauthorized || response.Code() == http.StatusForbidden {
		err = NewUnauthorizedError(t.Iri())
		return
	}
	if !response.Success() {
		err = NewHubRejectedError(response.Code(), response.Body())
		return
	}
	updateId = UpdateId(response.Body())
	c.logger.Printf("update %s published for topic %s", updateId, t.Iri())
	return
}
