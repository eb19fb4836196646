package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/km-arc/go-supply/framework/app"
	"github.com/km-arc/go-supply/framework/container"
	gohttp "github.com/km-arc/go-supply/framework/http"
	"github.com/km-arc/go-supply/framework/routing"
	"github.com/km-arc/go-supply/framework/supply"
)

// Demo: a report service whose constructor needs one argument the container
// cannot know — the caller's signing secret, different on every request —
// next to ordinary container-resolved collaborators. This is the
// $app->makeWith use case.

// ── Domain ───────────────────────────────────────────────────────────────────

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Report is a generated, signed report.
type Report struct {
	Title     string    `json:"title"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}

// MemoryStore keeps generated reports in memory.
type MemoryStore struct {
	mu      sync.Mutex
	reports []Report
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Save(r Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

func (s *MemoryStore) All() []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// ReportService signs reports with a per-request secret. The secret is
// caller-supplied; the store and clock come from the container.
type ReportService struct {
	secret string
	store  *MemoryStore
	clock  Clock
}

func NewReportService(secret string, store *MemoryStore, clock Clock) *ReportService {
	return &ReportService{secret: secret, store: store, clock: clock}
}

// Generate creates, signs, and stores a report.
func (s *ReportService) Generate(title string) Report {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(title))
	r := Report{
		Title:     title,
		Signature: hex.EncodeToString(mac.Sum(nil)),
		CreatedAt: s.clock.Now(),
	}
	s.store.Save(r)
	return r
}

// ── Wiring ───────────────────────────────────────────────────────────────────

// ReportServiceProvider binds the report collaborators and declares the
// hybrid construction blueprint for the service itself.
type ReportServiceProvider struct {
	container.BaseProvider
}

func (p *ReportServiceProvider) Register(c *container.Container) {
	c.Singleton("reports.store", func(c *container.Container) any {
		return NewMemoryStore()
	})
	c.Singleton("clock", func(c *container.Container) any {
		return Clock(systemClock{})
	})
}

func main() {
	application := app.New() // loads .env automatically

	application.Register(&ReportServiceProvider{})
	application.MustDefine("reports.service", NewReportService,
		supply.Supplied("secret"),
		supply.Resolved("reports.store"),
		supply.Resolved("clock"),
	)
	application.Boot()

	r := application.Router()

	r.Prefix("/api/v1", func(api *routing.Router) {

		// POST /api/v1/reports — the bearer token becomes the signing secret
		api.Post("/reports", func(w http.ResponseWriter, req *http.Request) {
			request := gohttp.NewRequest(req)
			res := gohttp.NewResponse(w)

			var body struct {
				Title string `json:"title"`
			}
			if err := request.Bind(&body); err != nil {
				res.Error(http.StatusBadRequest, err.Error())
				return
			}

			values := supply.Values{}
			if token := request.BearerToken(); token != "" {
				values["secret"] = token
			}

			svc, err := application.MakeWith("reports.service", values)
			if err != nil {
				var missing supply.MissingSuppliedError
				if errors.As(err, &missing) {
					res.Unauthorized()
					return
				}
				res.ServerError(err.Error())
				return
			}

			res.Created(svc.(*ReportService).Generate(body.Title))
		})

		// GET /api/v1/reports
		api.Get("/reports", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			store := container.Resolve[*MemoryStore](application.Container, "reports.store")
			res.Success(store.All())
		})
	})

	application.Run()
}
