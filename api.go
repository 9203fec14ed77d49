package twitter

import (
	"context"
	"strconv"
)

const defaultLimit = 20

// Page controls pagination for list-returning operations.
type Page struct {
	// Limit is the maximum number of items to return. Default: 20.
	Limit int
	// Cursor is the pagination cursor from a previous response.
	Cursor string
}

func (p Page) params() map[string]string {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if p.Cursor != "" {
		params["cursor"] = p.Cursor
	}
	return params
}

// SearchOptions controls the Search operation.
type SearchOptions struct {
	// Section selects the result tab: "top", "latest", "people", "photos",
	// or "videos". Default: "top".
	Section string
	// Limit is the maximum number of tweets to return. Default: 20.
	Limit int
	// Cursor is the pagination cursor from a previous response.
	Cursor string
}

func (o SearchOptions) params(query string) map[string]string {
	section := o.Section
	if section == "" {
		section = "top"
	}
	limit := o.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	params := map[string]string{
		"query":   query,
		"section": section,
		"limit":   strconv.Itoa(limit),
	}
	if o.Cursor != "" {
		params["cursor"] = o.Cursor
	}
	return params
}

// Search searches for tweets matching a query.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*Response, error) {
	return c.do(ctx, "Search", opts.params(query))
}

// TweetDetails fetches a tweet by id. cursor pages through the conversation;
// pass "" for the first page.
func (c *Client) TweetDetails(ctx context.Context, tweetID, cursor string) (*Response, error) {
	params := map[string]string{"tweet_id": tweetID}
	if cursor != "" {
		params["cursor"] = cursor
	}
	return c.do(ctx, "TweetDetails", params)
}

// TweetRetweeters fetches users who retweeted a tweet.
func (c *Client) TweetRetweeters(ctx context.Context, tweetID string, page Page) (*Response, error) {
	return c.do(ctx, "TweetRetweeters", withID(page, "tweet_id", tweetID))
}

// TweetFavoriters fetches users who favorited a tweet.
func (c *Client) TweetFavoriters(ctx context.Context, tweetID string, page Page) (*Response, error) {
	return c.do(ctx, "TweetFavoriters", withID(page, "tweet_id", tweetID))
}

// UserDetails fetches a user profile by username or numeric id.
func (c *Client) UserDetails(ctx context.Context, user UserQuery) (*Response, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	return c.do(ctx, "UserDetails", user.params())
}

// UserTweets fetches tweets of a user.
func (c *Client) UserTweets(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserTweets", user, page)
}

// UserTweetsAndReplies fetches tweets and replies of a user.
func (c *Client) UserTweetsAndReplies(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserTweetsAndReplies", user, page)
}

// UserFollowers fetches followers of a user.
func (c *Client) UserFollowers(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserFollowers", user, page)
}

// UserFollowing fetches accounts a user follows.
func (c *Client) UserFollowing(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserFollowing", user, page)
}

// UserLikes fetches tweets liked by a user.
func (c *Client) UserLikes(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserLikes", user, page)
}

// UserMedia fetches media posted by a user.
func (c *Client) UserMedia(ctx context.Context, user UserQuery, page Page) (*Response, error) {
	return c.userPaged(ctx, "UserMedia", user, page)
}

// userPaged is the shared shape of the paginated per-user operations.
// Identifier validation happens here, before any network I/O.
func (c *Client) userPaged(ctx context.Context, operation string, user UserQuery, page Page) (*Response, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}
	params := page.params()
	for k, v := range user.params() {
		params[k] = v
	}
	return c.do(ctx, operation, params)
}

// ListDetails fetches details of a list.
func (c *Client) ListDetails(ctx context.Context, listID string) (*Response, error) {
	return c.do(ctx, "ListDetails", map[string]string{"list_id": listID})
}

// ListTweets fetches tweets of a list.
func (c *Client) ListTweets(ctx context.Context, listID string, page Page) (*Response, error) {
	return c.do(ctx, "ListTweets", withID(page, "list_id", listID))
}

// TrendsLocations fetches the locations trends are available for.
func (c *Client) TrendsLocations(ctx context.Context) (*Response, error) {
	return c.do(ctx, "TrendsLocations", nil)
}

// Trends fetches trends for a location by WOEID (see TrendsLocations).
func (c *Client) Trends(ctx context.Context, woeid string) (*Response, error) {
	return c.do(ctx, "Trends", map[string]string{"woeid": woeid})
}

// CommunityDetails fetches details of a community.
func (c *Client) CommunityDetails(ctx context.Context, communityID string) (*Response, error) {
	return c.do(ctx, "CommunityDetails", map[string]string{"community_id": communityID})
}

// CommunityTweets fetches tweets of a community.
func (c *Client) CommunityTweets(ctx context.Context, communityID string, page Page) (*Response, error) {
	return c.do(ctx, "CommunityTweets", withID(page, "community_id", communityID))
}

// CommunityMembers fetches members of a community.
func (c *Client) CommunityMembers(ctx context.Context, communityID string, page Page) (*Response, error) {
	return c.do(ctx, "CommunityMembers", withID(page, "community_id", communityID))
}

func withID(page Page, key, value string) map[string]string {
	params := page.params()
	params[key] = value
	return params
}
