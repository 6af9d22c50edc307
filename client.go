package tweetkit

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
)

const (
	// Version of the client library, reported in the default user agent.
	Version = "0.2.0"
	// DefaultBaseURL is the Twitter API v2 base URL.
	DefaultBaseURL = "https://api.twitter.com/"
	// DefaultUserAgent identifies the library to the API.
	DefaultUserAgent = "tweetkit-go/" + Version
	// DefaultTimeout is the HTTP client timeout for non-streaming calls.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the Twitter client.
//
// The only required field is BearerToken (or a custom Authenticator for
// other signing schemes). Everything else defaults sensibly.
//
// Example:
//
//	client, err := tweetkit.NewClient(&tweetkit.Config{
//		BearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),
//	})
type Config struct {
	// BearerToken authenticates with app-only OAuth2. Ignored when
	// Authenticator is set.
	BearerToken string

	// Authenticator overrides BearerToken with a custom signing hook
	// (OAuth1 signatures, token refresh, proxies with their own headers).
	Authenticator Authenticator

	// BaseURL for the API. Defaults to DefaultBaseURL; only changed for
	// testing or mock servers.
	BaseURL string

	// UserAgent string sent with every request.
	UserAgent string

	// HTTPClient to use for requests. Defaults to a client with
	// DefaultTimeout. Streaming callers should supply a client without a
	// timeout, since a stream is expected to outlive any fixed deadline.
	HTTPClient *http.Client

	// Logger for structured diagnostics. Optional; when set, every API
	// call logs at debug level.
	Logger *slog.Logger
}

// Client is the Twitter API v2 client. Requests built through it share one
// rate limit scheduler, because the server's quota applies per token, not
// per call site.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	auth       Authenticator
	scheduler  *Scheduler
	logger     *slog.Logger

	// Endpoint groups, mirroring the API's path families.
	Tweets *TweetsService
	Users  *UsersService
	Spaces *SpacesService
	Lists  *ListsService
}

// NewClient validates the configuration and returns a ready client. No
// network traffic happens until the first request is sent.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &errors.ConfigError{Message: "config cannot be nil"}
	}

	auth := config.Authenticator
	if auth == nil {
		if config.BearerToken == "" {
			return nil, &errors.ConfigError{Field: "BearerToken", Message: "a bearer token or custom authenticator is required"}
		}
		auth = &BearerTokenAuth{Token: config.BearerToken}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &errors.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    parsed,
		userAgent:  userAgent,
		auth:       auth,
		scheduler:  NewScheduler(),
		logger:     config.Logger,
	}
	c.Tweets = &TweetsService{client: c}
	c.Users = &UsersService{client: c}
	c.Spaces = &SpacesService{client: c}
	c.Lists = &ListsService{client: c}
	return c, nil
}

// NewRequest builds a request against a path template relative to the base
// URL. It is the single entry point the endpoint services use, exported so
// callers can target endpoints the services have no helper for.
func (c *Client) NewRequest(method, path string) *Request {
	return &Request{
		client:     c,
		Method:     method,
		URL:        path,
		Query:      Params{},
		PathParams: map[string]string{},
		DType:      "data",
		PageParam:  defaultPageParam,
	}
}

// Scheduler returns the shared rate limit state for inspection.
func (c *Client) Scheduler() *Scheduler {
	return c.scheduler
}

// OpenAPISpec targets the API's machine-readable description. Its body has
// no data wrapper; the whole document becomes the primary payload.
func (c *Client) OpenAPISpec() *Request {
	return c.NewRequest(http.MethodGet, "/2/openapi.json")
}
