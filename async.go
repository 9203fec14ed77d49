package twitter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AsyncClient is the non-blocking variant of Client. Every operation returns
// immediately with a Call that resolves once the request completes. In-flight
// requests are capped by the configured MaxConcurrent.
//
// An AsyncClient created with Async shares its underlying Client, so the
// rate-limit snapshot is common to both and reflects the most recently
// completed call (last writer wins).
type AsyncClient struct {
	c   *Client
	sem chan struct{}
}

// NewAsyncClient creates an async client with its own underlying Client.
func NewAsyncClient(cfg ClientConfig) (*AsyncClient, error) {
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return c.Async(), nil
}

// Async returns a non-blocking view over the same client.
func (c *Client) Async() *AsyncClient {
	return &AsyncClient{c: c, sem: make(chan struct{}, c.cfg.MaxConcurrent)}
}

// Client returns the underlying synchronous client.
func (a *AsyncClient) Client() *Client { return a.c }

// RateLimit returns the shared quota snapshot.
func (a *AsyncClient) RateLimit() RateLimit { return a.c.RateLimit() }

// Call is a pending API response.
type Call struct {
	done chan struct{}
	resp *Response
	err  error
}

// Done is closed when the call has completed.
func (call *Call) Done() <-chan struct{} { return call.done }

// Wait blocks until the call completes and returns its result.
func (call *Call) Wait() (*Response, error) {
	<-call.done
	return call.resp, call.err
}

// resolved returns a Call completed without any I/O.
func resolved(err error) *Call {
	call := &Call{done: make(chan struct{}), err: err}
	close(call.done)
	return call
}

// dispatch runs one operation in its own goroutine, bounded by the
// concurrency semaphore.
func (a *AsyncClient) dispatch(ctx context.Context, operation string, params map[string]string) *Call {
	call := &Call{done: make(chan struct{})}
	go func() {
		defer close(call.done)
		select {
		case a.sem <- struct{}{}:
			defer func() { <-a.sem }()
		case <-ctx.Done():
			call.err = ctx.Err()
			return
		}
		call.resp, call.err = a.c.do(ctx, operation, params)
	}()
	return call
}

// Search searches for tweets matching a query.
func (a *AsyncClient) Search(ctx context.Context, query string, opts SearchOptions) *Call {
	return a.dispatch(ctx, "Search", opts.params(query))
}

// TweetDetails fetches a tweet by id. cursor pages through the conversation;
// pass "" for the first page.
func (a *AsyncClient) TweetDetails(ctx context.Context, tweetID, cursor string) *Call {
	params := map[string]string{"tweet_id": tweetID}
	if cursor != "" {
		params["cursor"] = cursor
	}
	return a.dispatch(ctx, "TweetDetails", params)
}

// TweetRetweeters fetches users who retweeted a tweet.
func (a *AsyncClient) TweetRetweeters(ctx context.Context, tweetID string, page Page) *Call {
	return a.dispatch(ctx, "TweetRetweeters", withID(page, "tweet_id", tweetID))
}

// TweetFavoriters fetches users who favorited a tweet.
func (a *AsyncClient) TweetFavoriters(ctx context.Context, tweetID string, page Page) *Call {
	return a.dispatch(ctx, "TweetFavoriters", withID(page, "tweet_id", tweetID))
}

// UserDetails fetches a user profile by username or numeric id.
// Identifier validation failures resolve the Call before any network I/O.
func (a *AsyncClient) UserDetails(ctx context.Context, user UserQuery) *Call {
	if err := user.validate(); err != nil {
		return resolved(err)
	}
	return a.dispatch(ctx, "UserDetails", user.params())
}

// UserTweets fetches tweets of a user.
func (a *AsyncClient) UserTweets(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserTweets", user, page)
}

// UserTweetsAndReplies fetches tweets and replies of a user.
func (a *AsyncClient) UserTweetsAndReplies(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserTweetsAndReplies", user, page)
}

// UserFollowers fetches followers of a user.
func (a *AsyncClient) UserFollowers(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserFollowers", user, page)
}

// UserFollowing fetches accounts a user follows.
func (a *AsyncClient) UserFollowing(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserFollowing", user, page)
}

// UserLikes fetches tweets liked by a user.
func (a *AsyncClient) UserLikes(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserLikes", user, page)
}

// UserMedia fetches media posted by a user.
func (a *AsyncClient) UserMedia(ctx context.Context, user UserQuery, page Page) *Call {
	return a.userPaged(ctx, "UserMedia", user, page)
}

func (a *AsyncClient) userPaged(ctx context.Context, operation string, user UserQuery, page Page) *Call {
	if err := user.validate(); err != nil {
		return resolved(err)
	}
	params := page.params()
	for k, v := range user.params() {
		params[k] = v
	}
	return a.dispatch(ctx, operation, params)
}

// ListDetails fetches details of a list.
func (a *AsyncClient) ListDetails(ctx context.Context, listID string) *Call {
	return a.dispatch(ctx, "ListDetails", map[string]string{"list_id": listID})
}

// ListTweets fetches tweets of a list.
func (a *AsyncClient) ListTweets(ctx context.Context, listID string, page Page) *Call {
	return a.dispatch(ctx, "ListTweets", withID(page, "list_id", listID))
}

// TrendsLocations fetches the locations trends are available for.
func (a *AsyncClient) TrendsLocations(ctx context.Context) *Call {
	return a.dispatch(ctx, "TrendsLocations", nil)
}

// Trends fetches trends for a location by WOEID (see TrendsLocations).
func (a *AsyncClient) Trends(ctx context.Context, woeid string) *Call {
	return a.dispatch(ctx, "Trends", map[string]string{"woeid": woeid})
}

// CommunityDetails fetches details of a community.
func (a *AsyncClient) CommunityDetails(ctx context.Context, communityID string) *Call {
	return a.dispatch(ctx, "CommunityDetails", map[string]string{"community_id": communityID})
}

// CommunityTweets fetches tweets of a community.
func (a *AsyncClient) CommunityTweets(ctx context.Context, communityID string, page Page) *Call {
	return a.dispatch(ctx, "CommunityTweets", withID(page, "community_id", communityID))
}

// CommunityMembers fetches members of a community.
func (a *AsyncClient) CommunityMembers(ctx context.Context, communityID string, page Page) *Call {
	return a.dispatch(ctx, "CommunityMembers", withID(page, "community_id", communityID))
}

// UserDetailsBatch fetches many user profiles concurrently. The returned
// slice matches the order of queries. The first validation or transport
// error cancels the remaining lookups and is returned.
func (a *AsyncClient) UserDetailsBatch(ctx context.Context, queries []UserQuery) ([]*Response, error) {
	responses := make([]*Response, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.c.cfg.MaxConcurrent)
	for i, q := range queries {
		g.Go(func() error {
			resp, err := a.UserDetails(ctx, q).Wait()
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}
