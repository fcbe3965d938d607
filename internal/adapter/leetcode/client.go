package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"leetcode-daily-thread/internal/domain/errs"
	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

// DefaultBaseURL is the provider's public site.
const DefaultBaseURL = "https://leetcode.com"

const (
	csrfCookieName = "csrftoken"
	dateLayout     = "2006-01-02"

	dailyQuery = `query leetcodeDaily {
	activeDailyCodingChallengeQuestion {
		date
		link
		question {
			difficulty
			questionId
			title
			titleSlug
		}
	}
}`

	contentQuery = `query questionContent($titleSlug: String!) {
	question(titleSlug: $titleSlug) {
		content
	}
}`
)

// Client implements ChallengeProvider against the LeetCode GraphQL API.
// The cookie jar it owns carries the CSRF cookie between calls.
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ChallengeProvider = (*Client)(nil)

// New creates a new LeetCode client rooted at baseURL.
func New(baseURL string, timeout time.Duration, logger ports.Logger) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	return &Client{
		baseURL:    baseURL,
		endpoint:   baseURL + "/graphql",
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
		logger:     logger,
	}, nil
}

// Token performs a GET against the GraphQL endpoint and returns the CSRF
// token the provider sets as a cookie.
func (c *Client) Token(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &errs.NetworkError{Op: "get csrf token", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	for _, cookie := range resp.Cookies() {
		if cookie.Name == csrfCookieName && cookie.Value != "" {
			return cookie.Value, nil
		}
	}

	// Redirects may have set the cookie on an earlier hop.
	if c.httpClient.Jar != nil {
		for _, cookie := range c.httpClient.Jar.Cookies(req.URL) {
			if cookie.Name == csrfCookieName && cookie.Value != "" {
				return cookie.Value, nil
			}
		}
	}

	return "", &errs.AuthError{Reason: fmt.Sprintf("no %s cookie in response (status %d)", csrfCookieName, resp.StatusCode)}
}

// FetchMetadata retrieves today's daily challenge metadata.
func (c *Client) FetchMetadata(ctx context.Context, token string) (*model.ChallengeMetadata, error) {
	const op = "fetch daily metadata"

	form := url.Values{"query": {dailyQuery}}

	var data struct {
		ActiveDailyCodingChallengeQuestion *struct {
			Date     string `json:"date"`
			Link     string `json:"link"`
			Question *struct {
				Difficulty string      `json:"difficulty"`
				QuestionID json.Number `json:"questionId"`
				Title      string      `json:"title"`
				TitleSlug  string      `json:"titleSlug"`
			} `json:"question"`
		} `json:"activeDailyCodingChallengeQuestion"`
	}

	err := c.post(ctx, op, token, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &data)
	if err != nil {
		return nil, err
	}

	daily := data.ActiveDailyCodingChallengeQuestion
	if daily == nil {
		return nil, &errs.ProtocolError{Op: op, Reason: "missing data.activeDailyCodingChallengeQuestion"}
	}
	if daily.Question == nil {
		return nil, &errs.ProtocolError{Op: op, Reason: "missing data.activeDailyCodingChallengeQuestion.question"}
	}

	date, err := time.Parse(dateLayout, daily.Date)
	if err != nil {
		return nil, &errs.ProtocolError{Op: op, Reason: fmt.Sprintf("invalid date %q", daily.Date), Err: err}
	}

	id, err := strconv.Atoi(daily.Question.QuestionID.String())
	if err != nil || id <= 0 {
		return nil, &errs.ProtocolError{Op: op, Reason: fmt.Sprintf("invalid question id %q", daily.Question.QuestionID), Err: err}
	}

	difficulty, err := model.ParseDifficulty(daily.Question.Difficulty)
	if err != nil {
		return nil, &errs.ProtocolError{Op: op, Reason: "invalid difficulty", Err: err}
	}

	if daily.Question.TitleSlug == "" {
		return nil, &errs.ProtocolError{Op: op, Reason: "empty title slug"}
	}

	metadata := &model.ChallengeMetadata{
		Date:       date,
		Link:       daily.Link,
		Difficulty: difficulty,
		ID:         id,
		Title:      daily.Question.Title,
		TitleSlug:  daily.Question.TitleSlug,
	}

	c.logger.Debug(ctx, "fetched daily metadata", "slug", metadata.TitleSlug, "date", daily.Date)
	return metadata, nil
}

// FetchContent retrieves the HTML body of the question identified by titleSlug.
func (c *Client) FetchContent(ctx context.Context, token, titleSlug string) (model.ChallengeContent, error) {
	const op = "fetch question content"

	if titleSlug == "" {
		return "", &errs.ProtocolError{Op: op, Reason: "empty title slug"}
	}

	payload := map[string]any{
		"query": contentQuery,
		"variables": map[string]string{
			"titleSlug": titleSlug,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal graphql payload: %w", err)
	}

	var data struct {
		Question *struct {
			Content *string `json:"content"`
		} `json:"question"`
	}

	if err := c.post(ctx, op, token, "application/json", bytes.NewReader(body), &data); err != nil {
		return "", err
	}

	if data.Question == nil {
		return "", &errs.ProtocolError{Op: op, Reason: fmt.Sprintf("missing data.question for %q", titleSlug)}
	}
	if data.Question.Content == nil {
		return "", &errs.ProtocolError{Op: op, Reason: "missing data.question.content"}
	}

	c.logger.Debug(ctx, "fetched question content", "slug", titleSlug, "bytes", len(*data.Question.Content))
	return model.ChallengeContent(*data.Question.Content), nil
}

type graphQLError struct {
	Message string `json:"message"`
}

// post sends a GraphQL request and decodes the "data" member into out.
func (c *Client) post(ctx context.Context, op, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Referer", c.baseURL)
	req.Header.Set("X-CSRFToken", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &errs.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &errs.AuthError{Reason: fmt.Sprintf("%s rejected with status %d", op, resp.StatusCode)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &errs.ProtocolError{Op: op, Reason: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(data))}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) {
			return &errs.NetworkError{Op: op, Err: err}
		}
		return &errs.ProtocolError{Op: op, Reason: "decode response", Err: err}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return &errs.ProtocolError{Op: op, Reason: "graphql errors: " + strings.Join(messages, "; ")}
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return &errs.ProtocolError{Op: op, Reason: "missing data"}
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &errs.ProtocolError{Op: op, Reason: "decode data", Err: err}
	}

	return nil
}
