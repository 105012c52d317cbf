package types

import (
	"fmt"
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// DirectoryQuery holds optional server-side filters for a worker directory
// fetch. Server filtering is additive to the client ranking pipeline, which
// also applies fuzzy matching the server may not perform.
type DirectoryQuery struct {
	Latitude   *float64
	Longitude  *float64
	RadiusKm   *float64
	SearchText string
	WorkType   string
	Location   string
}

// Validate rejects a geo query missing one half of its coordinate pair.
func (q DirectoryQuery) Validate() error {
	if (q.Latitude == nil) != (q.Longitude == nil) {
		return fmt.Errorf("directory query: latitude and longitude must be set together")
	}
	return nil
}

// Values encodes the query into URL parameters, omitting unset fields.
func (q DirectoryQuery) Values() url.Values {
	v := url.Values{}
	if q.Latitude != nil && q.Longitude != nil {
		v.Set("lat", formatFloat(*q.Latitude))
		v.Set("lng", formatFloat(*q.Longitude))
	}
	if q.RadiusKm != nil {
		v.Set("radiusKm", formatFloat(*q.RadiusKm))
	}
	if q.SearchText != "" {
		v.Set("search", q.SearchText)
	}
	if q.WorkType != "" && q.WorkType != WorkTypeAll {
		v.Set("workType", q.WorkType)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	return v
}

// TopUpRequest reports a completed purchase to the ledger service.
type TopUpRequest struct {
	Views   int    `json:"views"`
	OrderID string `json:"orderId,omitempty"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
