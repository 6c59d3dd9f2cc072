package api

// StatusSuccess is the status value the backend uses for a successful call.
const StatusSuccess = "success"

// StatusResponse is returned by the credentials endpoint.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the backend accepted the request.
func (r *StatusResponse) OK() bool {
	return r != nil && r.Status == StatusSuccess
}

// MessageResponse is returned by the comment-processing and answer endpoints.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LogsResponse is returned by the log endpoint. When the backend has no
// log file yet it answers 200 with Status "error" and a Message.
type LogsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Logs    string `json:"logs"`
}

// Failed reports whether the backend signalled an error in the payload.
func (r *LogsResponse) Failed() bool {
	return r != nil && r.Status == "error"
}

// StoredCredentials is what the backend currently has on file.
type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	PostID      string `json:"post_id"`
}
