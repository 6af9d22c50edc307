package tweetkit

import "net/http"

// ListsService builds requests against the /2/lists path family.
type ListsService struct {
	client *Client
}

// FindListByID targets a single list.
func (s *ListsService) FindListByID(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/lists/{id}")
	r.PathParams["id"] = id
	r.DType = "List"
	r.Query.Merge(params)
	return r
}

// UserOwnedLists targets the lists a user owns.
func (s *ListsService) UserOwnedLists(userID string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users/{id}/owned_lists")
	r.PathParams["id"] = userID
	r.DType = "List"
	r.PageParam = "pagination_token"
	r.Query.Merge(params)
	return r
}

// ListTweets targets the tweets of a list.
func (s *ListsService) ListTweets(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/lists/{id}/tweets")
	r.PathParams["id"] = id
	r.DType = "Tweet"
	r.PageParam = "pagination_token"
	r.Query.Merge(params)
	return r
}
