package tweetkit

import (
	"net/http"

	"github.com/tweetkit/tweetkit-go/pkg/types"
)

// TweetsService builds requests against the /2/tweets path family. Methods
// only assemble the request; the caller picks Send, Stream or Paginate.
type TweetsService struct {
	client *Client
}

// FindTweetByID targets a single tweet.
func (s *TweetsService) FindTweetByID(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/{id}")
	r.PathParams["id"] = id
	r.DType = "Tweet"
	r.Query.Merge(params)
	return r
}

// FindTweetsByID targets a batch of tweets by id.
func (s *TweetsService) FindTweetsByID(ids []string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets")
	r.DType = "Tweet"
	r.Query["ids"] = ids
	r.Query.Merge(params)
	return r
}

// SearchRecent targets the last seven days of tweets matching a query.
func (s *TweetsService) SearchRecent(query string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/search/recent")
	r.DType = "Tweet"
	r.Query["query"] = query
	r.Query.Merge(params)
	return r
}

// SearchAll targets the full tweet archive. Requires academic access.
func (s *TweetsService) SearchAll(query string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/search/all")
	r.DType = "Tweet"
	r.Query["query"] = query
	r.Query.Merge(params)
	return r
}

// CountsRecent targets tweet counts over the last seven days.
func (s *TweetsService) CountsRecent(query string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/counts/recent")
	r.DType = "SearchCount"
	r.Query["query"] = query
	r.Query.Merge(params)
	return r
}

// SampleStream targets the 1% sampled firehose.
func (s *TweetsService) SampleStream(params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/sample/stream")
	r.DType = "Tweet"
	r.Streaming = true
	r.Query.Merge(params)
	return r
}

// SearchStream targets the filtered stream driven by the active rule set.
func (s *TweetsService) SearchStream(params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/search/stream")
	r.DType = "Tweet"
	r.Streaming = true
	r.Query.Merge(params)
	return r
}

// SearchStreamRules targets the filtered stream's rule listing.
func (s *TweetsService) SearchStreamRules(params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/tweets/search/stream/rules")
	r.DType = "Rule"
	r.Query.Merge(params)
	return r
}

// CreateTweet posts a new tweet from the payload.
func (s *TweetsService) CreateTweet(body types.Object) *Request {
	r := s.client.NewRequest(http.MethodPost, "/2/tweets")
	r.Body = body
	return r
}

// DeleteTweet removes a tweet owned by the authenticated user.
func (s *TweetsService) DeleteTweet(id string) *Request {
	r := s.client.NewRequest(http.MethodDelete, "/2/tweets/{id}")
	r.PathParams["id"] = id
	return r
}
