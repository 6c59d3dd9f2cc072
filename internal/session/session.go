// Package session holds the little operator state that outlives a single
// view: which backend the console talks to and which post the backend was
// last pointed at. The access token is never kept here.
package session

import (
	"sync"
	"time"
)

// Session is created by the composition root at startup and dropped at exit.
type Session struct {
	mu         sync.RWMutex
	backendURL string
	postID     string
	updatedAt  time.Time
}

// New creates a session bound to a backend.
func New(backendURL string) *Session {
	return &Session{backendURL: backendURL}
}

// BackendURL returns the backend address.
func (s *Session) BackendURL() string {
	return s.backendURL
}

// RecordCredentials notes that the backend accepted credentials for postID.
func (s *Session) RecordCredentials(postID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postID = postID
	s.updatedAt = at
}

// PostID returns the post id last accepted by the backend, if any.
func (s *Session) PostID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postID
}

// UpdatedAt returns when credentials were last accepted.
func (s *Session) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Summary is a one-line description for the status bar.
func (s *Session) Summary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.postID == "" {
		return "no credentials sent"
	}
	return "post " + s.postID + " @ " + s.updatedAt.Format("15:04:05")
}
