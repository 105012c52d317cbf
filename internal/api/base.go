package api

import (
	"net/http"
)

// HTTPClient is the transport seam shared by every endpoint call. The SDK
// passes its configured *http.Client; tests may substitute a stub.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
