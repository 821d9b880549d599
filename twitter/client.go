package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ngwatch/cache"
	"ngwatch/ratelimit"
)

const (
	DefaultBaseURL = "https://api.twitter.com"

	searchPath = "/2/tweets/search/recent"
	usersPath  = "/2/users"

	tweetFields = "author_id,created_at,text"
	userFields  = "username,name,profile_image_url,public_metrics,verified,created_at"

	// Successful responses are reused for this long so an identical query
	// does not count against the external rate limit twice.
	cacheTTL = 5 * time.Minute

	// The users endpoint accepts at most 100 ids per call.
	lookupBatchSize = 100
)

// LogStore receives the persistent diagnostic trail. Satisfied by
// repos.LogRepo.
type LogStore interface {
	Append(level, message string) error
}

// Config wires a Client. Limiter and Logs are shared with the monitor so
// foreground and background calls coordinate on the same cooldown state.
type Config struct {
	BearerToken string
	BaseURL     string // defaults to DefaultBaseURL
	HTTPClient  *http.Client
	Limiter     *ratelimit.Limiter
	Logs        LogStore
}

// Client performs recent-search and account-lookup calls against the API,
// caching successful responses and mapping failures to typed errors.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	bearer      string
	limiter     *ratelimit.Limiter
	searchCache *cache.TTL[[]Tweet]
	userCache   *cache.TTL[[]User]
	logs        LogStore
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 25 * time.Second}
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = ratelimit.NewLimiter()
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearer:      cfg.BearerToken,
		limiter:     limiter,
		searchCache: cache.New[[]Tweet](cacheTTL),
		userCache:   cache.New[[]User](cacheTTL),
		logs:        cfg.Logs,
	}
}

// CoolingDown reports whether the shared rate limiter is suppressing calls.
func (c *Client) CoolingDown() bool {
	return c.limiter.CoolingDown()
}

// Search runs a recent-search call. On 429 it trips the limiter and returns
// ErrRateLimited so callers can distinguish "try later" from a real failure.
func (c *Client) Search(ctx context.Context, queryText string, maxResults int) ([]Tweet, error) {
	if c.bearer == "" {
		c.logError("search", "bearer token not configured")
		return nil, ErrNotConfigured
	}

	key := "search|" + queryText + "|" + strconv.Itoa(maxResults)
	if tweets, ok := c.searchCache.Get(key); ok {
		cacheHits.WithLabelValues("search").Inc()
		return tweets, nil
	}

	params := url.Values{}
	params.Set("query", queryText)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("tweet.fields", tweetFields)

	var resp searchResponse
	if err := c.get(ctx, "search", searchPath, params, &resp); err != nil {
		return nil, err
	}

	c.searchCache.Set(key, resp.Data)
	return resp.Data, nil
}

// LookupUsers fetches accounts for the given ids, batching by 100 per call.
// An empty id set returns an empty result without a network call.
func (c *Client) LookupUsers(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if c.bearer == "" {
		c.logError("users", "bearer token not configured")
		return nil, ErrNotConfigured
	}

	key := "users|" + strings.Join(ids, ",")
	if users, ok := c.userCache.Get(key); ok {
		cacheHits.WithLabelValues("users").Inc()
		return users, nil
	}

	users := make([]User, 0, len(ids))
	for start := 0; start < len(ids); start += lookupBatchSize {
		end := start + lookupBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		params := url.Values{}
		params.Set("ids", strings.Join(ids[start:end], ","))
		params.Set("user.fields", userFields)

		var resp usersResponse
		if err := c.get(ctx, "users", usersPath, params, &resp); err != nil {
			return nil, err
		}
		users = append(users, resp.Data...)
	}

	c.userCache.Set(key, users)
	return users, nil
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiRequests.WithLabelValues(operation, "transport_error").Inc()
		c.logError(operation, fmt.Sprintf("request failed: %v", err))
		return &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.Trip()
		rateLimitTrips.Inc()
		apiRequests.WithLabelValues(operation, "rate_limited").Inc()
		c.logWarn(operation, "429 received, entering cooldown")
		return ErrRateLimited
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiRequests.WithLabelValues(operation, "api_error").Inc()
		c.logError(operation, fmt.Sprintf("returned %d %s", resp.StatusCode, truncate(string(body), 300)))
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		apiRequests.WithLabelValues(operation, "decode_error").Inc()
		c.logError(operation, fmt.Sprintf("decode response: %v", err))
		return &TransportError{Cause: err}
	}

	apiRequests.WithLabelValues(operation, "ok").Inc()
	return nil
}

func (c *Client) logWarn(operation, msg string) {
	slog.Warn("api "+operation, "detail", msg)
	if c.logs != nil {
		if err := c.logs.Append("WARN", operation+": "+msg); err != nil {
			slog.Error("failed to append log record", "error", err)
		}
	}
}

func (c *Client) logError(operation, msg string) {
	slog.Error("api "+operation, "detail", msg)
	if c.logs != nil {
		if err := c.logs.Append("ERROR", operation+": "+msg); err != nil {
			slog.Error("failed to append log record", "error", err)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
