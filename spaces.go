package tweetkit

import "net/http"

// SpacesService builds requests against the /2/spaces path family.
type SpacesService struct {
	client *Client
}

// FindSpaceByID targets a single audio space.
func (s *SpacesService) FindSpaceByID(id string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/spaces/{id}")
	r.PathParams["id"] = id
	r.DType = "Space"
	r.Query.Merge(params)
	return r
}

// FindSpacesByID targets a batch of spaces by id.
func (s *SpacesService) FindSpacesByID(ids []string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/spaces")
	r.DType = "Space"
	r.Query["ids"] = ids
	r.Query.Merge(params)
	return r
}

// Search targets live and scheduled spaces matching a query.
func (s *SpacesService) Search(query string, params Params) *Request {
	r := s.client.NewRequest(http.MethodGet, "/2/spaces/search")
	r.DType = "Space"
	r.Query["query"] = query
	r.Query.Merge(params)
	return r
}
