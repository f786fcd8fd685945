package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

// Init builds the shared outbound client. Every upstream call in the service
// goes through this one client so timeout and retry policy live in one place.
func Init() {
	Client = resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)
}
