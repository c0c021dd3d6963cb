package http

import (
	"context"
	"io/ioutil"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// rand.Rand is not goroutine safe; requests may be built concurrently
var randomGenerator = rand.New(rand.NewSource(time.Now().UnixNano()))
var randomGeneratorLock sync.Mutex

func nextRequestId() string {
	randomGeneratorLock.Lock()
	defer randomGeneratorLock.Unlock()
	return strconv.FormatInt(randomGenerator.Int63n(time.Now().Unix()), 16)
}

const (
	MaxClientSize = 20

	// HTTP methods
	GET    = "GET"
	POST   = "POST"
	PUT    = "PUT"
	DELETE = "DELETE"
	PATCH  = "PATCH"
	HEAD   = "HEAD"
)

const (
	// code used when the failure happened before/without an HTTP exchange
	ErrCodeTransport = -1
)

type HTTPError struct {
	code    int
	message string
}

func (err *HTTPError) Error() string {
	return err.message
}

func httpError(code int, message string) *HTTPError {
	return &HTTPError{code, message}
}

// HTTP Header
type HeaderMaker struct {
	header http.Header
}

type IHeaderMaker interface {
	Set(key string, value string) *HeaderMaker
	Remove(key string) *HeaderMaker
	Make() http.Header
}

func (m *HeaderMaker) Set(key string, value string) *HeaderMaker {
	m.header.Set(key, value)
	return m
}

func (m *HeaderMaker) Remove(key string) *HeaderMaker {
	m.header.Del(key)
	return m
}

func (m *HeaderMaker) Make() http.Header {
	return m.header
}

func NewHeaderMaker() *HeaderMaker {
	return &HeaderMaker{http.Header{}}
}

type HTTPRequest struct {
	Id        string
	Ctx       context.Context
	Url       string
	Method    string
	Header    http.Header
	Body      string
	Awaitable chan *HTTPResponse
}

type HTTPRequestBuilder struct {
	request *HTTPRequest
}

type IHTTPRequestBuilder interface {
	Ctx(ctx context.Context) *HTTPRequestBuilder
	Url(url string) *HTTPRequestBuilder
	Method(method string) *HTTPRequestBuilder
	Header(header http.Header) *HTTPRequestBuilder
	Body(body string) *HTTPRequestBuilder
	Build() *HTTPRequest
}

func (b *HTTPRequestBuilder) Ctx(ctx context.Context) *HTTPRequestBuilder {
	b.request.Ctx = ctx
	return b
}

func (b *HTTPRequestBuilder) Url(url string) *HTTPRequestBuilder {
	b.request.Url = url
	return b
}

func (b *HTTPRequestBuilder) Method(method string) *HTTPRequestBuilder {
	b.request.Method = method
	return b
}

func (b *HTTPRequestBuilder) Header(header http.Header) *HTTPRequestBuilder {
	if b.request.Header == nil {
		b.request.Header = http.Header{}
	}
	for key, vals := range header {
		for _, val := range vals {
			b.request.Header.Add(key, val)
		}
	}
	return b
}

func (b *HTTPRequestBuilder) Body(body string) *HTTPRequestBuilder {
	b.request.Body = body
	return b
}

func (b *HTTPRequestBuilder) Build() *HTTPRequest {
	b.request.Id = nextRequestId()
	return b.request
}

func NewHTTPRequestBuilder() *HTTPRequestBuilder {
	request := &HTTPRequest{}
	builder := &HTTPRequestBuilder{request}
	return builder
}

type HTTPResponse struct {
	success bool
	code    int
	header  http.Header
	body    string
	err     error
}

func (r *HTTPResponse) Success() bool {
	return r.success
}

func (r *HTTPResponse) Code() int {
	return r.code
}

func (r *HTTPResponse) Header() http.Header {
	return r.header
}

func (r *HTTPResponse) Body() string {
	return r.body
}

// Err returns the underlying error for transport-level failures, nil for
// responses that completed an HTTP exchange.
func (r *HTTPResponse) Err() error {
	return r.err
}

func newHTTPResponse(success bool, code int, header http.Header, body string) *HTTPResponse {
	return &HTTPResponse{success: success, code: code, header: header, body: body}
}

func newErrorHTTPResponse(errCode int, err error) *HTTPResponse {
	return &HTTPResponse{success: false, code: errCode, body: err.Error(), err: err}
}

func toHTTPResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()
	statusCode := resp.StatusCode
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	httpResp := newHTTPResponse(statusCode >= 200 && statusCode < 300, statusCode, resp.Header, string(body[:]))
	return httpResp, nil
}

type requestFilter func(request *HTTPRequest) bool

func defaultRequestFilterFunc(request *HTTPRequest) bool {
	if request.Url == "" {
		return false
	}
	if request.Method == "" {
		return false
	}
	if request.Awaitable == nil {
		request.Awaitable = make(chan *HTTPResponse, 1)
	}
	return true
}

type HTTPRequestQueue struct {
	channel chan *HTTPRequest
	requestFilter
}

func (q *HTTPRequestQueue) enqueue(request *HTTPRequest) error {
	if !q.requestFilter(request) {
		return httpError(0, "filter failed")
	}
	q.channel <- request
	return nil
}

// dequeue returns nil once the queue is closed and drained
func (q *HTTPRequestQueue) dequeue() *HTTPRequest {
	r, ok := <-q.channel
	if !ok {
		return nil
	}
	return r
}

func newHTTPRequestQueue(size int) *HTTPRequestQueue {
	return &HTTPRequestQueue{make(chan *HTTPRequest, size), defaultRequestFilterFunc}
}

type FutureHTTPResponse struct {
	channel  chan *HTTPResponse
	response *HTTPResponse
}

type AwaitableHTTPResponse interface {
	Await() *HTTPResponse
}

func (f *FutureHTTPResponse) Await() *HTTPResponse {
	channelResult := <-f.channel
	if channelResult != nil {
		f.response = channelResult
		close(f.channel)
	}
	return f.response
}

type HTTPClient struct {
	rwLock       *sync.RWMutex
	isStarted    bool
	isTerminated bool
	clients      []*http.Client
	requestQueue *HTTPRequestQueue
}

type IHTTPClient interface {
	Request(request *HTTPRequest) *HTTPResponse
	AsyncRequest(request *HTTPRequest) *FutureHTTPResponse
}

func (c *HTTPClient) hasStarted() bool {
	c.rwLock.RLock()
	defer c.rwLock.RUnlock()
	return c.isStarted
}

func (c *HTTPClient) start() {
	c.rwLock.Lock()
	defer c.rwLock.Unlock()
	if !c.isStarted {
		c.isStarted = true

		for _, client := range c.clients {
			go func(client *http.Client) {
				// drain until the queue is closed so no accepted request is
				// left without a response
				for {
					req := c.requestQueue.dequeue()
					if req == nil {
						return
					}
					awaitableChan := req.Awaitable
					rawRequest, toRawRequestErr := toRawRequest(req)
					if toRawRequestErr != nil {
						awaitableChan <- newErrorHTTPResponse(ErrCodeTransport, toRawRequestErr)
						continue
					}
					resp, err := client.Do(rawRequest)
					if err != nil {
						awaitableChan <- newErrorHTTPResponse(ErrCodeTransport, err)
					} else {
						httpResp, transformErr := toHTTPResponse(resp)
						if transformErr != nil {
							awaitableChan <- newErrorHTTPResponse(ErrCodeTransport, transformErr)
						} else {
							awaitableChan <- httpResp
						}
					}
				}
			}(client)
		}
	}
}

func (c *HTTPClient) Terminate() {
	c.rwLock.Lock()
	defer c.rwLock.Unlock()
	if !c.isTerminated {
		c.isTerminated = true
		// closing the queue unparks the workers; queued requests drain first
		close(c.requestQueue.channel)
	}
}

// enqueue holds the read lock through the send so Terminate can not close the
// queue underneath a concurrent caller.
func (c *HTTPClient) enqueue(request *HTTPRequest) error {
	c.rwLock.RLock()
	defer c.rwLock.RUnlock()
	if c.isTerminated {
		return httpError(ErrCodeTransport, "client is terminated")
	}
	return c.requestQueue.enqueue(request)
}

func (c *HTTPClient) request(request *HTTPRequest) chan *HTTPResponse {
	if !c.hasStarted() {
		c.start()
	}
	if err := c.enqueue(request); err != nil {
		if request.Awaitable == nil {
			request.Awaitable = make(chan *HTTPResponse, 1)
		}
		request.Awaitable <- newErrorHTTPResponse(ErrCodeTransport, err)
	}
	return request.Awaitable
}

func (c *HTTPClient) Request(request *HTTPRequest) *HTTPResponse {
	channel := c.request(request)
	defer close(channel)
	response := <-channel
	return response
}

func (c *HTTPClient) AsyncRequest(request *HTTPRequest) *FutureHTTPResponse {
	respChannel := c.request(request)
	return &FutureHTTPResponse{respChannel, nil}
}

func toRawRequest(request *HTTPRequest) (*http.Request, error) {
	ctx := request.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	var bodyReader *strings.Reader
	if request.Body != "" {
		bodyReader = strings.NewReader(request.Body)
	} else {
		bodyReader = strings.NewReader("")
	}
	rawRequest, err := http.NewRequestWithContext(ctx, request.Method, request.Url, bodyReader)
	if err != nil {
		return nil, err
	}
	if request.Header != nil {
		for key, vals := range request.Header {
			for _, val := range vals {
				rawRequest.Header.Add(key, val)
			}
		}
	}
	return rawRequest, nil
}

func NewHTTPClient(numClients int, queueSize int, timeoutInSec int) *HTTPClient {
	if numClients < 1 {
		numClients = 1
	}
	if numClients > MaxClientSize {
		numClients = MaxClientSize
	}
	if queueSize < 1 {
		queueSize = 1024
	}
	rawClients := make([]*http.Client, numClients)
	for i := 0; i < numClients; i++ {
		rawClients[i] = newRawHTTPClient(timeoutInSec)
	}
	return &HTTPClient{new(sync.RWMutex), false, false, rawClients, newHTTPRequestQueue(queueSize)}
}

func newRawHTTPClient(timeout int) *http.Client {
	return &http.Client{Timeout: time.Second * time.Duration(timeout)}
}
