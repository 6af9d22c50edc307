package tweetkit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tweetkit/tweetkit-go/pkg/errors"
	"github.com/tweetkit/tweetkit-go/pkg/types"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(nil)
	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewClient(&Config{})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "BearerToken", cfgErr.Field)

	_, err = NewClient(&Config{BearerToken: "x", BaseURL: "://bad"})
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "BaseURL", cfgErr.Field)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(&Config{BearerToken: "token"})
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, client.userAgent)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.True(t, strings.HasSuffix(client.baseURL.Path, "/"))
	require.NotNil(t, client.Scheduler())
	assert.Equal(t, DefaultRequestsPerSecond, client.Scheduler().Limit())

	require.NotNil(t, client.Tweets)
	require.NotNil(t, client.Users)
	require.NotNil(t, client.Spaces)
	require.NotNil(t, client.Lists)
}

func TestNewClientCustomAuthenticator(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom-Auth")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{}}`)
	}))
	defer server.Close()

	client, err := NewClient(&Config{
		BaseURL: server.URL,
		Authenticator: AuthenticatorFunc(func(req *http.Request) error {
			req.Header.Set("X-Custom-Auth", "signed")
			return nil
		}),
	})
	require.NoError(t, err)

	_, err = client.NewRequest(http.MethodGet, "/2/tweets").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "signed", gotHeader)
}

func TestServiceRequestShapes(t *testing.T) {
	client, err := NewClient(&Config{BearerToken: "token"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		req       *Request
		method    string
		url       string
		dtype     string
		pageParam string
		streaming bool
	}{
		{
			name:   "FindTweetByID",
			req:    client.Tweets.FindTweetByID("20", nil),
			method: http.MethodGet, url: "/2/tweets/{id}", dtype: "Tweet", pageParam: "next_token",
		},
		{
			name:   "SearchRecent",
			req:    client.Tweets.SearchRecent(`from:jack`, Params{"max_results": 10}),
			method: http.MethodGet, url: "/2/tweets/search/recent", dtype: "Tweet", pageParam: "next_token",
		},
		{
			name:   "CountsRecent",
			req:    client.Tweets.CountsRecent("go", nil),
			method: http.MethodGet, url: "/2/tweets/counts/recent", dtype: "SearchCount", pageParam: "next_token",
		},
		{
			name:   "SampleStream",
			req:    client.Tweets.SampleStream(nil),
			method: http.MethodGet, url: "/2/tweets/sample/stream", dtype: "Tweet", pageParam: "next_token",
			streaming: true,
		},
		{
			name:   "CreateTweet",
			req:    client.Tweets.CreateTweet(types.Object{"text": "hi"}),
			method: http.MethodPost, url: "/2/tweets", dtype: "data", pageParam: "next_token",
		},
		{
			name:   "DeleteTweet",
			req:    client.Tweets.DeleteTweet("20"),
			method: http.MethodDelete, url: "/2/tweets/{id}", dtype: "data", pageParam: "next_token",
		},
		{
			name:   "FindUserByUsername",
			req:    client.Users.FindUserByUsername("jack", nil),
			method: http.MethodGet, url: "/2/users/by/username/{username}", dtype: "User", pageParam: "next_token",
		},
		{
			name:   "UserTweets",
			req:    client.Users.Tweets("501", nil),
			method: http.MethodGet, url: "/2/users/{id}/tweets", dtype: "Tweet", pageParam: "pagination_token",
		},
		{
			name:   "UserMentions",
			req:    client.Users.Mentions("501", nil),
			method: http.MethodGet, url: "/2/users/{id}/mentions", dtype: "Tweet", pageParam: "pagination_token",
		},
		{
			name:   "SpaceSearch",
			req:    client.Spaces.Search("go", nil),
			method: http.MethodGet, url: "/2/spaces/search", dtype: "Space", pageParam: "next_token",
		},
		{
			name:   "ListTweets",
			req:    client.Lists.ListTweets("li1", nil),
			method: http.MethodGet, url: "/2/lists/{id}/tweets", dtype: "Tweet", pageParam: "pagination_token",
		},
		{
			name:   "OpenAPISpec",
			req:    client.OpenAPISpec(),
			method: http.MethodGet, url: "/2/openapi.json", dtype: "data", pageParam: "next_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.req.Method)
			assert.Equal(t, tt.url, tt.req.URL)
			assert.Equal(t, tt.dtype, tt.req.DType)
			assert.Equal(t, tt.pageParam, tt.req.PageParam)
			assert.Equal(t, tt.streaming, tt.req.Streaming)
		})
	}
}

func TestFindTweetsByIDEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets", r.URL.Path)
		assert.Equal(t, "20,21", r.URL.Query().Get("ids"))
		assert.Equal(t, "author_id", r.URL.Query().Get("expansions"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"data": [
				{"id":"20","text":"just setting up my twttr","author_id":"12"},
				{"id":"21","text":"inviting coworkers","author_id":"13"}
			],
			"includes": {"users":[
				{"id":"12","username":"jack"},
				{"id":"13","username":"biz"}
			]}
		}`)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	resp, err := client.Tweets.FindTweetsByID([]string{"20", "21"}, Params{
		"expansions": "author_id",
	}).Send(context.Background())
	require.NoError(t, err)

	tweets, ok := resp.Data().([]any)
	require.True(t, ok)
	require.Len(t, tweets, 2)
	assert.Equal(t, "jack", asObject(tweets[0]).GetObject("author").GetString("username"))
	assert.Equal(t, "biz", asObject(tweets[1]).GetObject("author").GetString("username"))
}
