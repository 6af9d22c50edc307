// Package tweetkit provides a Go client for the Twitter (X) API v2.
//
// The package centers on a small request pipeline rather than one wrapper
// method per endpoint: a Request carries a path template, query and path
// parameters, an optional body, and an entity-type tag; sending it yields a
// Response envelope (or a StreamResponse for live endpoints, or a Paginator
// for cursor-driven ones). The envelope exposes the API's
// data/includes/errors/meta structure and can denormalize id references
// back into nested objects on demand.
//
// Basic usage:
//
//	client, err := tweetkit.NewClient(&tweetkit.Config{
//		BearerToken: os.Getenv("TWITTER_BEARER_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Tweets.FindTweetByID("20", tweetkit.Params{
//		"expansions": []string{"author_id"},
//	}).Send(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tweet := resp.Data() // author_id resolved into an "author" object
//
// Pagination:
//
//	pager := client.Tweets.SearchRecent("golang -is:retweet", nil).Paginate()
//	items, err := pager.Collect(ctx, 500)
//
// Streaming:
//
//	stream, err := client.Tweets.SampleStream(nil).Stream(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
//	for {
//		resp, err := stream.Next()
//		if err != nil {
//			break
//		}
//		fmt.Println(resp.Get("text", ""))
//	}
//
// Rate limiting is automatic: every client owns one scheduler that paces
// requests from the x-rate-limit-* headers the server returns, spreading the
// advertised 15-minute ceiling evenly. Failed requests update the schedule
// too, since the server charges quota for them all the same.
//
// Whole-call failures surface as typed errors from the pkg/errors package
// (APIError, Problem, RequestError, DecodeError); per-item failures inside a
// successful response are available from Response.Errors. The package never
// retries: retry safety depends on the endpoint, so that decision stays with
// the caller.
package tweetkit
