package twitter

// Tweet is a single recent-search hit. Ephemeral; only the author id is
// carried forward into account lookup.
type Tweet struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// PublicMetrics mirrors the user.fields public_metrics object.
type PublicMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
	ListedCount    int `json:"listed_count"`
}

// User is an account fetched per distinct author id. PublicMetrics is a
// pointer so missing metadata stays distinguishable from zero values.
type User struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	Name            string         `json:"name"`
	ProfileImageURL string         `json:"profile_image_url"`
	Verified        bool           `json:"verified"`
	CreatedAt       string         `json:"created_at"`
	PublicMetrics   *PublicMetrics `json:"public_metrics"`
}

type searchResponse struct {
	Data []Tweet `json:"data"`
}

type usersResponse struct {
	Data []User `json:"data"`
}
