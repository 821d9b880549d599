package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngwatch/twitter"
)

func sampleUsers() []twitter.User {
	return []twitter.User{
		{
			ID:              "u1",
			Username:        "alice",
			Name:            "Alice, spammer",
			ProfileImageURL: "https://pbs.example/a.png",
			Verified:        true,
			PublicMetrics:   &twitter.PublicMetrics{FollowersCount: 10, FollowingCount: 20, TweetCount: 5},
		},
		{ID: "u2", Username: "bob"},
	}
}

func TestCSV_BOMAndRows(t *testing.T) {
	out, err := CSV(sampleUsers())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "\ufeff"), "output starts with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(out), "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,username,name,avatar_url,verified,post_count,follower_count,following_count", lines[0])
	assert.Equal(t, `u1,alice,"Alice, spammer",https://pbs.example/a.png,true,5,10,20`, strings.TrimRight(lines[1], "\r"))
	assert.Equal(t, `u2,bob,,,false,,,`, strings.TrimRight(lines[2], "\r"))
}

func TestTSV_TabSeparated(t *testing.T) {
	out, err := TSV(sampleUsers())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(out), "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 8, len(strings.Split(strings.TrimRight(lines[1], "\r"), "\t")))
}

func TestJSON_ArrayOfRecords(t *testing.T) {
	out, err := JSON(sampleUsers())
	require.NoError(t, err)

	var decoded []twitter.User
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "alice", decoded[0].Username)
	assert.Nil(t, decoded[1].PublicMetrics)
}

func TestJSON_EmptySetIsEmptyArray(t *testing.T) {
	out, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestHandles_NewlineJoined(t *testing.T) {
	out := Handles(sampleUsers())
	assert.Equal(t, "@alice\n@bob", string(out))
}

func TestHandles_SkipsMissingUsernames(t *testing.T) {
	out := Handles([]twitter.User{{ID: "u1"}, {ID: "u2", Username: "bob"}})
	assert.Equal(t, "@bob", string(out))
}
