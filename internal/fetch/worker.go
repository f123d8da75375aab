package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ceefax/internal/country"
	"ceefax/internal/log"
	"ceefax/internal/wttr"
)

// AppData is one complete snapshot: every region of Country has a report.
type AppData struct {
	Country   country.Country
	Reports   wttr.ReportSet
	RequestID string
	FetchedAt time.Time
}

// Result carries either Data or Err, never both.
type Result struct {
	Data *AppData
	Err  error
}

// Collect fetches every region serially, in region order, and stops at the
// first failure. Partial results are discarded.
func Collect(ctx context.Context, p wttr.Provider, c country.Country) (*AppData, error) {
	id := uuid.NewString()
	log.Infow("fetch started", "request_id", id, "country", c.Name, "regions", len(c.Regions))

	reports := make(wttr.ReportSet, len(c.Regions))
	for _, r := range c.Regions {
		started := time.Now()
		rep, err := p.Fetch(ctx, r.City)
		if err != nil {
			log.Errorw("fetch failed", "request_id", id, "region", r.Name, "city", r.City, "error", err)
			return nil, fmt.Errorf("failed to fetch weather for %s: %w", r.City, err)
		}
		log.Debugw("region fetched", "request_id", id, "city", r.City, "latency", time.Since(started).String())
		reports[r.Name] = rep
	}

	log.Infow("fetch complete", "request_id", id, "country", c.Name)
	return &AppData{
		Country:   c,
		Reports:   reports,
		RequestID: id,
		FetchedAt: time.Now(),
	}, nil
}

// Worker runs Collect off the UI goroutine.
type Worker struct {
	provider wttr.Provider
	timeout  time.Duration
}

// NewWorker bounds each fetch by timeout; zero means no bound.
func NewWorker(p wttr.Provider, timeout time.Duration) *Worker {
	return &Worker{provider: p, timeout: timeout}
}

// Start spawns one fetch for c. The returned channel receives exactly one
// Result and is then closed.
func (w *Worker) Start(c country.Country) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("fetch panicked", "country", c.Name, "panic", r)
				ch <- Result{Err: fmt.Errorf("fetch panicked: %v", r)}
			}
		}()

		ctx := context.Background()
		if w.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, w.timeout)
			defer cancel()
		}

		data, err := Collect(ctx, w.provider, c)
		if err != nil {
			ch <- Result{Err: err}
			return
		}
		ch <- Result{Data: data}
	}()
	return ch
}
