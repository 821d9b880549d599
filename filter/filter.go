// Package filter evaluates candidate accounts against configured inclusion
// predicates. Matches is a pure function so it can be tested against
// synthetic accounts.
package filter

import (
	"strings"

	"ngwatch/twitter"
)

// defaultAvatarMarker appears in the image URL of accounts that never set
// an avatar.
const defaultAvatarMarker = "default_profile"

// Criteria is a configuration snapshot applied uniformly across one cycle.
// Zero/false fields are unconstrained. RequireZeroPosts and MinPostCount
// are deliberately independent predicates even though setting both is
// contradictory; both are ANDed as configured.
type Criteria struct {
	RequireZeroPosts     bool `json:"require_zero_posts"`
	RequireDefaultAvatar bool `json:"require_default_avatar"`
	MinFollowers         int  `json:"min_followers"`
	MinFollowing         int  `json:"min_following"`
	MinPostCount         int  `json:"min_post_count"`
	VerifiedOnly         bool `json:"verified_only"`
}

// Matches reports whether the account satisfies every active criterion.
// Missing public metrics fail any min_* threshold; absence never satisfies
// a minimum.
func Matches(u twitter.User, c Criteria) bool {
	pm := u.PublicMetrics

	if c.RequireZeroPosts && pm != nil && pm.TweetCount > 0 {
		return false
	}
	if c.MinFollowers > 0 && (pm == nil || pm.FollowersCount < c.MinFollowers) {
		return false
	}
	if c.MinFollowing > 0 && (pm == nil || pm.FollowingCount < c.MinFollowing) {
		return false
	}
	if c.MinPostCount > 0 && (pm == nil || pm.TweetCount < c.MinPostCount) {
		return false
	}
	if c.VerifiedOnly && !u.Verified {
		return false
	}
	if c.RequireDefaultAvatar && !hasDefaultAvatar(u.ProfileImageURL) {
		return false
	}

	return true
}

func hasDefaultAvatar(avatarURL string) bool {
	return avatarURL == "" || strings.Contains(avatarURL, defaultAvatarMarker)
}
