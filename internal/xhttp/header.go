package xhttp

import "net/http"

const (
	Accept     = "Accept"
	UserAgent  = "User-Agent"
	XRequestID = "X-Request-ID"
)

const ApplicationJSON = "application/json"

func SetRequestHeaderRequestID(req *http.Request, requestID string) {
	req.Header.Set(XRequestID, requestID)
}

func SetRequestHeaderAcceptJSON(req *http.Request) {
	req.Header.Set(Accept, ApplicationJSON)
}
