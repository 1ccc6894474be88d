package xhttp

import (
	"net/http"
)

const (
	XForwardedFor = "X-Forwarded-For"
	XRealIP       = "X-Real-Ip"
	XRequestID    = "X-Request-ID"
	XAPIKey       = "X-Api-Key"
)

const (
	XContentTypeOpts      = "X-Content-Type-Options"
	XFrameOpts            = "X-Frame-Options"
	ReferrerPolicy        = "Referrer-Policy"
	CacheControl          = "Cache-Control"
	ContentSecurityPolicy = "Content-Security-Policy"
)

const (
	ContentType = "Content-Type"
	Accept      = "Accept"
	UserAgent   = "User-Agent"
)

const applicationJSON = "application/json"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, applicationJSON)
}

// SetRequestHeadersJSON marks an outbound request as sending and accepting JSON.
func SetRequestHeadersJSON(req *http.Request) {
	req.Header.Set(ContentType, applicationJSON)
	req.Header.Set(Accept, applicationJSON)
}
