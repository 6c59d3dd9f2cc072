package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UpdateCredentials forwards an access token and post id to the backend.
func (c *Client) UpdateCredentials(ctx context.Context, accessToken, postID string) (*StatusResponse, error) {
	q := url.Values{
		"access_token": {accessToken},
		"post_id":      {postID},
	}
	resp, err := do[StatusResponse](ctx, c, http.MethodPost, PathUpdateCredentials, q)
	if err != nil {
		return nil, fmt.Errorf("updating credentials: %w", err)
	}
	return resp, nil
}

// ProcessComments asks the backend to start a comment-processing run.
func (c *Client) ProcessComments(ctx context.Context) (*MessageResponse, error) {
	resp, err := do[MessageResponse](ctx, c, http.MethodGet, PathProcessComments, nil)
	if err != nil {
		return nil, fmt.Errorf("processing comments: %w", err)
	}
	return resp, nil
}

// UpdateUserAnswer stores an operator-supplied answer for a comment.
func (c *Client) UpdateUserAnswer(ctx context.Context, comment, answer string) (*MessageResponse, error) {
	q := url.Values{
		"comment": {comment},
		"answer":  {answer},
	}
	resp, err := do[MessageResponse](ctx, c, http.MethodPost, PathUpdateUserAnswer, q)
	if err != nil {
		return nil, fmt.Errorf("updating answer: %w", err)
	}
	return resp, nil
}

// GetLogs fetches the backend's reply log.
func (c *Client) GetLogs(ctx context.Context) (*LogsResponse, error) {
	resp, err := do[LogsResponse](ctx, c, http.MethodGet, PathGetLogs, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching logs: %w", err)
	}
	return resp, nil
}

// GetCredentials reads the credentials the backend has on file.
func (c *Client) GetCredentials(ctx context.Context) (*StoredCredentials, error) {
	resp, err := do[StoredCredentials](ctx, c, http.MethodGet, PathGetCredentials, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching credentials: %w", err)
	}
	return resp, nil
}
