package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderKeyRequestID request id header key
	headerKeyRequestID = "X-Request-Id"
)

// Error error envelope of the lendbook api
type Error struct {
	Status int    `json:"-"`
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %d %s", e.Status, e.Code, e.Msg)
}

// Client lendbook api client
type Client struct {
	client *resty.Client
}

// New new api client for baseURL, token may be empty for public endpoints
func New(baseURL, token string) *Client {
	c := resty.New().
		SetHostURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(10 * time.Second)

	if token != "" {
		c.SetAuthToken(token)
	}

	return &Client{client: c}
}

// Request new resty request
func (c *Client) Request(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// WithRequestID resty request with request id
func (c *Client) WithRequestID(ctx context.Context, requestID string) *resty.Request {
	return c.Request(ctx).SetHeader(headerKeyRequestID, requestID)
}

// Execute do network request, resp receives the data field of the envelope
func (c *Client) Execute(ctx context.Context, method, url string, body interface{}, resp interface{}) error {
	request := c.Request(ctx)
	if body != nil {
		request = request.SetBody(body)
	}

	r, err := request.Execute(strings.ToUpper(method), url)
	if err != nil {
		return err
	}

	logrus.Debugln("resp.status:", r.Status(), url)
	return ParseResponse(r, resp)
}

// ParseResponse parse response
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		e := &Error{Status: r.StatusCode()}
		if err := json.Unmarshal(r.Body(), e); err != nil {
			e.Msg = string(r.Body())
		}

		return e
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Body(), &envelope); err != nil {
		return err
	}

	if obj == nil || len(envelope.Data) == 0 {
		return nil
	}

	return json.Unmarshal(envelope.Data, obj)
}
