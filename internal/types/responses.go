package types

// ------------------------------
// Response Types
// ------------------------------

// ListWorkersResponse wraps the directory list endpoint response.
type ListWorkersResponse struct {
	Workers []WorkerRecord `json:"workers"`
	Count   int            `json:"count"`
}

// ViewWorkerResponse is the authoritative unlock decision. AlreadyViewed
// distinguishes a still-valid prior grant (no credit spent) from a fresh
// unlock; the counters carry the server's post-decision balance for final
// reconciliation.
type ViewWorkerResponse struct {
	Worker        WorkerProfile `json:"worker"`
	AlreadyViewed bool          `json:"alreadyViewed"`
	ViewsAllowed  int           `json:"viewsAllowed"`
	ViewsUsed     int           `json:"viewsUsed"`
}
