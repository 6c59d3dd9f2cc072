package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestUpdateCredentials(t *testing.T) {
	var gotMethod, gotToken, gotPost, gotCT string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotToken = r.URL.Query().Get("access_token")
		gotPost = r.URL.Query().Get("post_id")
		gotCT = r.Header.Get("Content-Type")
		assert.Equal(t, PathUpdateCredentials, r.URL.Path)
		fmt.Fprint(w, `{"status":"success","message":"Credentials updated successfully"}`)
	})

	resp, err := c.UpdateCredentials(context.Background(), "EAAB tok&en=/?", "123_456")
	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "EAAB tok&en=/?", gotToken)
	assert.Equal(t, "123_456", gotPost)
	assert.Equal(t, "application/json", gotCT)
}

func TestUpdateCredentialsFailureStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"failure"}`)
	})
	resp, err := c.UpdateCredentials(context.Background(), "t", "p")
	require.NoError(t, err)
	assert.False(t, resp.OK())
}

func TestUpdateUserAnswerEncodesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "what's the price? 50% off", r.URL.Query().Get("comment"))
		assert.Equal(t, "DM us & we'll reply #1", r.URL.Query().Get("answer"))
		fmt.Fprint(w, `{"status":"success","message":"User answer updated successfully"}`)
	})
	resp, err := c.UpdateUserAnswer(context.Background(), "what's the price? 50% off", "DM us & we'll reply #1")
	require.NoError(t, err)
	assert.Equal(t, "User answer updated successfully", resp.Message)
}

func TestProcessComments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"status":"Processing comments","message":"Check logs for details."}`)
	})
	resp, err := c.ProcessComments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Check logs for details.", resp.Message)
}

func TestGetLogs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"success","logs":"a\nb\nc"}`)
	})
	resp, err := c.GetLogs(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Failed())
	assert.Equal(t, "a\nb\nc", resp.Logs)
}

func TestGetLogsMissingFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"error","message":"Log file not found."}`)
	})
	resp, err := c.GetLogs(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Failed())
	assert.Equal(t, "Log file not found.", resp.Message)
}

func TestGetCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathGetCredentials, r.URL.Path)
		fmt.Fprint(w, `{"access_token":"EAAB","post_id":"1_2"}`)
	})
	resp, err := c.GetCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1_2", resp.PostID)
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "<html><head><title>502</title></head><body><h1>Bad Gateway</h1></body></html>")
	})
	_, err := c.ProcessComments(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatusError(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, "Bad Gateway", se.Body)
}

func TestMalformedJSONIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	})
	_, err := c.GetLogs(context.Background())
	require.Error(t, err)
	assert.False(t, IsStatusError(err))
}

func TestUnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.ProcessComments(context.Background())
	require.Error(t, err)
	assert.False(t, IsStatusError(err))
}

func TestOverlappingRequestsShareOneRoundTrip(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		fmt.Fprint(w, `{"status":"success","logs":"x"}`)
	})

	const callers = 3
	var wg sync.WaitGroup
	results := make([]*LogsResponse, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := c.GetLogs(context.Background())
			assert.NoError(t, err)
			results[i] = resp
		}(i)
	}

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	// Give the other callers time to join the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, "x", r.Logs)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
	c = NewClient("http://backend:8000/", 0)
	assert.Equal(t, "http://backend:8000", c.BaseURL())
}
