package govalorant

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public Valorant game-data API.
const DefaultBaseURL = "https://valorant-api.com"

// HTTPClient is the part of *http.Client the API client needs.
// It is owned by the caller and shared by every call.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues typed requests against the Valorant API.
// It keeps no mutable state; calls may run concurrently if the HTTPClient allows it.
type Client struct {
	http     HTTPClient
	rawBase  string
	baseURL  *url.URL
	log      log.FieldLogger
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.rawBase = base }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Client) { c.log = logger }
}

// NewClient wraps httpClient. A nil httpClient falls back to http.DefaultClient.
func NewClient(httpClient HTTPClient, opts ...Option) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		http:     httpClient,
		rawBase:  DefaultBaseURL,
		log:      log.StandardLogger(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.rawBase)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", c.rawBase)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("invalid base url %q: scheme and host are required", c.rawBase)
	}
	c.baseURL = u

	return c, nil
}

// BaseURL returns the host the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ResourceURL returns the URL of a single resource without a language parameter,
// e.g. ResourceURL("bundles", id) for https://valorant-api.com/v1/bundles/<id>.
func (c *Client) ResourceURL(family string, id uuid.UUID) string {
	return c.baseURL.JoinPath(apiVersion, family, id.String()).String()
}

// endpoint builds the request URL. The language parameter is only added for a
// selected language; an out-of-range value is rejected here, before any I/O.
func (c *Client) endpoint(lang Language, segments ...string) (string, error) {
	u := c.baseURL.JoinPath(append([]string{apiVersion}, segments...)...)

	if lang != NoLanguage {
		code := lang.Code()
		if code == "" {
			return "", errors.Wrapf(ErrUnknownLanguage, "language(%d)", uint8(lang))
		}
		q := u.Query()
		q.Set("language", code)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// validatePayload checks a decoded struct, or each element of a decoded slice.
func (c *Client) validatePayload(payload any) error {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Slice {
		return errors.Wrap(c.validate.Struct(payload), "invalid payload")
	}

	for i := 0; i < v.Len(); i++ {
		if err := c.validate.Struct(v.Index(i).Interface()); err != nil {
			return errors.Wrapf(err, "invalid payload item %d", i)
		}
	}
	return nil
}
