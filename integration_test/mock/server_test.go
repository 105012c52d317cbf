package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	client "github.com/kaamsetu/kaamsetu-client"
)

// marketplace is an in-memory stand-in for the marketplace backend. It
// tracks per-worker grants and the subscription counters the same way the
// real service does, so the flows below exercise the client against
// realistic server decisions.
type marketplace struct {
	mu           sync.Mutex
	allowed      int
	used         int
	granted      map[string]bool // workers this buyer has already unlocked
	workers      []client.WorkerRecord
	viewCalls    int
	listCalls    int
	balanceCalls int

	// rejectViews makes every view call a test failure (for fast-fail tests).
	rejectViews func()
	// failBalance makes the subscription endpoint return 500.
	failBalance bool
}

func newMarketplace(allowed, used int) *marketplace {
	return &marketplace{allowed: allowed, used: used, granted: map[string]bool{}}
}

func (m *marketplace) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/subscription", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.balanceCalls++
		if m.failBalance {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(client.CreditBalance{ViewsAllowed: m.allowed, ViewsUsed: m.used})
	})
	mux.HandleFunc("/v0/workers", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.listCalls++
		_ = json.NewEncoder(w).Encode(client.ListWorkersResponse{Workers: m.workers, Count: len(m.workers)})
	})
	mux.HandleFunc("/v0/workers/", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.viewCalls++
		if m.rejectViews != nil {
			m.rejectViews()
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v0/workers/"), "/view")
		var found *client.WorkerRecord
		for i := range m.workers {
			if m.workers[i].ID == id {
				found = &m.workers[i]
				break
			}
		}
		if found == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		already := m.granted[id]
		if !already {
			if m.allowed-m.used <= 0 {
				w.WriteHeader(http.StatusPaymentRequired)
				return
			}
			m.used++
			m.granted[id] = true
		}
		_ = json.NewEncoder(w).Encode(client.ViewWorkerResponse{
			Worker:        client.WorkerProfile{WorkerRecord: *found, Phone: "9876543210"},
			AlreadyViewed: already,
			ViewsAllowed:  m.allowed,
			ViewsUsed:     m.used,
		})
	})
	return mux
}

func (m *marketplace) counts() (views, lists, balances int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewCalls, m.listCalls, m.balanceCalls
}

// fakeClock is a settable time source shared with the client via WithClock.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func startClient(t *testing.T, m *marketplace, clk *fakeClock, extra ...client.Option) *client.Client {
	t.Helper()
	srv := httptest.NewServer(m.handler())
	t.Cleanup(srv.Close)

	opts := []client.Option{
		client.WithMemoryUnlockStore(),
		client.WithReconcileDelay(5 * time.Millisecond),
	}
	if clk != nil {
		opts = append(opts, client.WithClock(clk.Now))
	}
	opts = append(opts, extra...)

	c, err := client.New(srv.URL, "sk-test", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testWorkers() []client.WorkerRecord {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	km := func(f float64) *float64 { return &f }
	n := func(i int) *int { return &i }
	return []client.WorkerRecord{
		{ID: "w1", Name: "Ramesh Kumar", WorkType: "Plumber", Location: "Delhi", Skills: "pipe fitting", Experience: "5 years", DistanceKm: km(5), PostCount: n(3), CreatedAt: day(10)},
		{ID: "w2", Name: "Suresh Patel", WorkType: "Electrician", Location: "Mumbai", Skills: "wiring, repair", Experience: "12 years", DistanceKm: km(2), PostCount: n(7), CreatedAt: day(20)},
		{ID: "w3", Name: "Mahesh Singh", WorkType: "Plumber", Location: "New Delhi", Experience: "ten years", CreatedAt: day(15)},
	}
}
