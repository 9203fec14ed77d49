package twitter

import "fmt"

// Endpoints maps operation names to their REST paths under the API base URL.
var Endpoints = map[string]string{
	"Search":               "search/",
	"TweetDetails":         "tweet/",
	"TweetRetweeters":      "tweet/retweeters/",
	"TweetFavoriters":      "tweet/favoriters/",
	"UserDetails":          "user/details",
	"UserTweets":           "user/tweets",
	"UserTweetsAndReplies": "user/tweetsandreplies",
	"UserFollowers":        "user/followers",
	"UserFollowing":        "user/following",
	"UserLikes":            "user/likes",
	"UserMedia":            "user/media",
	"ListDetails":          "lists/details",
	"ListTweets":           "lists/tweets",
	"TrendsLocations":      "trends/available",
	"Trends":               "trends/",
	"CommunityDetails":     "community/details",
	"CommunityTweets":      "community/tweets",
	"CommunityMembers":     "community/members",
}

// endpointPath returns the path for a named operation, or an error if unknown.
func endpointPath(operation string) (string, error) {
	p, ok := Endpoints[operation]
	if !ok {
		return "", fmt.Errorf("unknown operation: %s", operation)
	}
	return p, nil
}
