package perfclient

import (
	"context"
	"sync"

	"perfclient/performance"
	"perfclient/reviews"
)

// Dashboard holds the startup data the UI renders. Slots are fetched
// concurrently with settled semantics: each is installed on success
// and recorded in Errors on failure; one failed fetch never blocks
// the others.
type Dashboard struct {
	Cycles          []reviews.ReviewCycle
	Reviews         []reviews.Review
	SelfAssessments []reviews.SelfAssessment
	ManagerReviews  []reviews.ManagerReview
	Goals           []performance.Goal
	KPIs            []performance.KPI

	Errors []SlotError
}

// SlotError names the dashboard slot whose fetch failed.
type SlotError struct {
	Slot string
	Err  error
}

// LoadDashboard performs the six startup reads concurrently and
// primes the hub's review, cycle and artifact caches from the
// results. It never fails wholesale; per-slot failures are logged and
// returned in Dashboard.Errors.
func (h *Hub) LoadDashboard(ctx context.Context) *Dashboard {
	h.warnExpiredToken()

	var (
		dashboard Dashboard
		mu        sync.Mutex
		wg        sync.WaitGroup
	)
	run := func(slot string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				h.log.Warn("dashboard fetch failed", "slot", slot, "err", err)
				mu.Lock()
				dashboard.Errors = append(dashboard.Errors, SlotError{Slot: slot, Err: err})
				mu.Unlock()
			}
		}()
	}

	run("cycles", func() error {
		cycles, err := h.Reviews.ListCycles(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Cycles = cycles
		mu.Unlock()
		h.mu.Lock()
		for _, cycle := range cycles {
			h.cycleCache[cycle.ID] = cycle
		}
		h.mu.Unlock()
		return nil
	})
	run("reviews", func() error {
		revs, err := h.Reviews.ListReviews(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Reviews = revs
		mu.Unlock()
		h.mu.Lock()
		for _, review := range revs {
			h.reviewCache[review.ID] = review
		}
		h.mu.Unlock()
		return nil
	})
	run("self_assessments", func() error {
		assessments, err := h.Reviews.ListSelfAssessments(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.SelfAssessments = assessments
		mu.Unlock()
		h.mu.Lock()
		h.selfAssessments = assessments
		h.haveSelfAssessments = true
		h.mu.Unlock()
		return nil
	})
	run("manager_reviews", func() error {
		managerReviews, err := h.Reviews.ListManagerReviews(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.ManagerReviews = managerReviews
		mu.Unlock()
		h.mu.Lock()
		h.managerReviews = managerReviews
		h.haveManagerReviews = true
		h.mu.Unlock()
		return nil
	})
	run("goals", func() error {
		goals, err := h.Performance.ListGoals(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.Goals = goals
		mu.Unlock()
		return nil
	})
	run("kpis", func() error {
		kpis, err := h.Performance.ListKPIs(ctx, nil)
		if err != nil {
			return err
		}
		mu.Lock()
		dashboard.KPIs = kpis
		mu.Unlock()
		return nil
	})

	wg.Wait()
	return &dashboard
}
