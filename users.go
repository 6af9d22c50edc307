package tweetkit

import "net/http"

// UsersService builds requests against the /2/users path family.
type UsersService struct {
	client *Client
}

// FindUserByID targets a single user.
func (s *UsersService) FindUserByID(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users/{id}")
	r.PathParams["id"] = id
	r.DType = "User"
	r.Query.Merge(params)
	return r
}

// FindUsersByID targets a batch of users by id.
func (s *UsersService) FindUsersByID(ids []string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users")
	r.DType = "User"
	r.Query["ids"] = ids
	r.Query.Merge(params)
	return r
}

// FindUserByUsername targets a user by handle.
func (s *UsersService) FindUserByUsername(username string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users/by/username/{username}")
	r.PathParams["username"] = username
	r.DType = "User"
	r.Query.Merge(params)
	return r
}

// Tweets targets a user's timeline. The endpoint paginates with the
// pagination_token parameter rather than next_token.
func (s *UsersService) Tweets(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users/{id}/tweets")
	r.PathParams["id"] = id
	r.DType = "Tweet"
	r.PageParam = "pagination_token"
	r.Query.Merge(params)
	return r
}

// Mentions targets tweets mentioning a user.
func (s *UsersService) Mentions(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/users/{id}/mentions")
	r.PathParams["id"] = id
	r.DType = "Tweet"
	r.PageParam = "pagination_token"
	r.Query.Merge(params)
	return r
}
