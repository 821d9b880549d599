package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ngwatch/twitter"
)

func metrics(followers, following, tweets int) *twitter.PublicMetrics {
	return &twitter.PublicMetrics{
		FollowersCount: followers,
		FollowingCount: following,
		TweetCount:     tweets,
	}
}

func testAccounts() []twitter.User {
	return []twitter.User{
		{ID: "fresh", Username: "fresh", ProfileImageURL: "", PublicMetrics: metrics(0, 0, 0)},
		{ID: "eggy", Username: "eggy", ProfileImageURL: "https://pbs.example/default_profile_normal.png", PublicMetrics: metrics(50, 200, 3)},
		{ID: "active", Username: "active", Verified: true, ProfileImageURL: "https://pbs.example/me.jpg", PublicMetrics: metrics(5000, 300, 12000)},
		{ID: "ghost", Username: "ghost", ProfileImageURL: "https://pbs.example/g.jpg"},
	}
}

func passing(accounts []twitter.User, c Criteria) []string {
	var ids []string
	for _, u := range accounts {
		if Matches(u, c) {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func TestMatches_NoCriteriaPassesEverything(t *testing.T) {
	for _, u := range testAccounts() {
		assert.True(t, Matches(u, Criteria{}), "unconstrained criteria must pass %s", u.ID)
	}
}

func TestMatches_MinFollowers(t *testing.T) {
	c := Criteria{MinFollowers: 100}
	assert.Equal(t, []string{"active"}, passing(testAccounts(), c))
}

func TestMatches_MinFollowing(t *testing.T) {
	c := Criteria{MinFollowing: 150}
	assert.Equal(t, []string{"eggy", "active"}, passing(testAccounts(), c))
}

func TestMatches_RequireZeroPosts(t *testing.T) {
	c := Criteria{RequireZeroPosts: true}
	// Missing metrics carry no evidence of posts, so "ghost" passes.
	assert.Equal(t, []string{"fresh", "ghost"}, passing(testAccounts(), c))
}

func TestMatches_MinPostCount(t *testing.T) {
	c := Criteria{MinPostCount: 1}
	assert.Equal(t, []string{"eggy", "active"}, passing(testAccounts(), c))
}

func TestMatches_MissingMetricsFailMinimums(t *testing.T) {
	ghost := twitter.User{ID: "ghost"}
	assert.False(t, Matches(ghost, Criteria{MinFollowers: 1}))
	assert.False(t, Matches(ghost, Criteria{MinFollowing: 1}))
	assert.False(t, Matches(ghost, Criteria{MinPostCount: 1}))
}

func TestMatches_VerifiedOnly(t *testing.T) {
	c := Criteria{VerifiedOnly: true}
	assert.Equal(t, []string{"active"}, passing(testAccounts(), c))
}

func TestMatches_RequireDefaultAvatar(t *testing.T) {
	c := Criteria{RequireDefaultAvatar: true}
	// Empty URL and the default_profile marker both count as default.
	assert.Equal(t, []string{"fresh", "eggy"}, passing(testAccounts(), c))
}

// Adding any active constraint can only narrow the passing set, never widen
// it.
func TestMatches_Monotonic(t *testing.T) {
	accounts := testAccounts()
	base := Criteria{}

	variants := []Criteria{
		{RequireZeroPosts: true},
		{RequireDefaultAvatar: true},
		{MinFollowers: 10},
		{MinFollowing: 10},
		{MinPostCount: 10},
		{VerifiedOnly: true},
	}

	basePass := make(map[string]bool)
	for _, id := range passing(accounts, base) {
		basePass[id] = true
	}

	for _, v := range variants {
		for _, id := range passing(accounts, v) {
			assert.True(t, basePass[id], "criterion %+v widened the passing set with %s", v, id)
		}
	}
}

// RequireZeroPosts and MinPostCount remain independent AND predicates; set
// together they contradict each other and pass no account with known
// metrics.
func TestMatches_ContradictoryPostCriteria(t *testing.T) {
	c := Criteria{RequireZeroPosts: true, MinPostCount: 1}
	for _, u := range testAccounts() {
		if u.PublicMetrics == nil {
			continue
		}
		assert.False(t, Matches(u, c), "%s should fail the contradictory combination", u.ID)
	}
}
