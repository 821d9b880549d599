// Package export serializes a filtered result set for download. The formats
// are deliberately dumb leaves over []twitter.User.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"ngwatch/twitter"
)

// utf8BOM makes spreadsheet applications detect the encoding correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var columns = []string{"id", "username", "name", "avatar_url", "verified", "post_count", "follower_count", "following_count"}

// CSV renders accounts as UTF-8 CSV with a BOM prefix.
func CSV(users []twitter.User) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, u := range users {
		if err := w.Write(row(u)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// TSV renders accounts tab-separated for direct spreadsheet paste.
func TSV(users []twitter.User) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("write tsv header: %w", err)
	}
	for _, u := range users {
		if err := w.Write(row(u)); err != nil {
			return nil, fmt.Errorf("write tsv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush tsv: %w", err)
	}

	return buf.Bytes(), nil
}

// JSON renders accounts as a JSON array of records.
func JSON(users []twitter.User) ([]byte, error) {
	if users == nil {
		users = []twitter.User{}
	}
	out, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal accounts: %w", err)
	}
	return out, nil
}

// Handles renders the extracted @handles, newline-joined.
func Handles(users []twitter.User) []byte {
	handles := make([]string, 0, len(users))
	for _, u := range users {
		if u.Username == "" {
			continue
		}
		handles = append(handles, "@"+u.Username)
	}
	return []byte(strings.Join(handles, "\n"))
}

func row(u twitter.User) []string {
	var followers, following, posts string
	if pm := u.PublicMetrics; pm != nil {
		followers = fmt.Sprintf("%d", pm.FollowersCount)
		following = fmt.Sprintf("%d", pm.FollowingCount)
		posts = fmt.Sprintf("%d", pm.TweetCount)
	}
	return []string{
		u.ID,
		u.Username,
		u.Name,
		u.ProfileImageURL,
		fmt.Sprintf("%t", u.Verified),
		posts,
		followers,
		following,
	}
}
