package reviews

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"perfclient/internal/fakeapi"
	"perfclient/transport"
)

func newTestClient(t *testing.T) (*Client, *fakeapi.Server) {
	t.Helper()
	api := fakeapi.New()
	server := httptest.NewServer(api.Router)
	t.Cleanup(server.Close)
	return NewClient(transport.NewClient(server.URL, nil)), api
}

func TestCycleLifecycle(t *testing.T) {
	client, api := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateCycle(ctx, &CycleInput{
		Name:       "Q3 2024",
		ReviewType: CycleQuarterly,
		StartDate:  "2024-07-01",
		EndDate:    "2024-09-30",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 || created.Name != "Q3 2024" {
		t.Fatalf("unexpected cycle %+v", created)
	}

	got, err := client.GetCycle(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ReviewType != CycleQuarterly {
		t.Fatalf("unexpected cycle %+v", got)
	}

	if _, err := client.ActivateCycle(ctx, created.ID); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if item := api.Item("cycles", created.ID); item["status"] != "active" {
		t.Fatalf("expected active status, got %v", item["status"])
	}

	patched, err := client.PatchCycle(ctx, created.ID, map[string]any{"description": "third quarter"})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if patched.Description != "third quarter" {
		t.Fatalf("unexpected cycle %+v", patched)
	}

	cycles, err := client.ListCycles(ctx, nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cycles) != 1 {
		t.Fatalf("expected one cycle, got %d", len(cycles))
	}

	if err := client.DeleteCycle(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err = client.GetCycle(ctx, created.ID)
	var httpErr *transport.Error
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestGetCycleKeepsUnknownFields(t *testing.T) {
	client, api := newTestClient(t)
	id := api.Seed("cycles", map[string]any{
		"name":          "Annual 2024",
		"review_type":   CycleAnnual,
		"status":        CycleStatusActive,
		"quarter_label": "FY24",
	})

	cycle, err := client.GetCycle(context.Background(), id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cycle.Name != "Annual 2024" {
		t.Fatalf("unexpected cycle %+v", cycle)
	}
	if _, ok := cycle.Extra["quarter_label"]; !ok {
		t.Fatalf("expected quarter_label in Extra, got %v", cycle.Extra)
	}
	if _, ok := cycle.Extra["name"]; ok {
		t.Fatal("known fields must not land in Extra")
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	in := &ReviewInput{Cycle: 1, Employee: 7, Reviewer: 2}
	if _, err := client.CreateReview(ctx, in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := client.CreateReview(ctx, in)
	var httpErr *transport.Error
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *transport.Error, got %v", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", httpErr.Status)
	}
	body, ok := httpErr.Body.(map[string]any)
	if !ok {
		t.Fatalf("expected field-error body, got %v", httpErr.Body)
	}
	if _, ok := body["employee"]; !ok {
		t.Fatalf("expected the employee field error, got %v", body)
	}
}

func TestMyReviews(t *testing.T) {
	client, api := newTestClient(t)
	api.Seed("reviews", map[string]any{"cycle": 1, "employee": 7, "reviewer": 2, "status": "pending"})

	reviews, err := client.MyReviews(context.Background())
	if err != nil {
		t.Fatalf("my_reviews failed: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Employee != 7 {
		t.Fatalf("unexpected reviews %+v", reviews)
	}
}

func TestCycleStatistics(t *testing.T) {
	client, api := newTestClient(t)
	cycle := api.Seed("cycles", map[string]any{"name": "Q1", "status": CycleStatusActive})
	api.Seed("reviews", map[string]any{"cycle": cycle, "employee": 1, "status": "finalized"})
	api.Seed("reviews", map[string]any{"cycle": cycle, "employee": 2, "status": "pending"})

	stats, err := client.CycleStatistics(context.Background(), cycle)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	body, ok := stats.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", stats)
	}
	if body["total_reviews"] != float64(2) || body["completed_reviews"] != float64(1) {
		t.Fatalf("unexpected statistics %v", body)
	}
}

func TestSelfAssessmentCreateAndPatch(t *testing.T) {
	client, api := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateSelfAssessment(ctx, &SelfAssessmentInput{
		Review:        3,
		QualityOfWork: 4,
		Productivity:  5,
		OverallRating: 4.5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Review != 3 || created.QualityOfWork != 4 {
		t.Fatalf("unexpected assessment %+v", created)
	}

	patched, err := client.PatchSelfAssessment(ctx, created.ID, map[string]any{"strengths": "delivery"})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if patched.Strengths != "delivery" {
		t.Fatalf("unexpected assessment %+v", patched)
	}
	if item := api.Item("self_assessments", created.ID); item["strengths"] != "delivery" {
		t.Fatalf("patch not stored: %v", item)
	}
}

func TestManagerReviewDuplicateDetail(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	in := &ManagerReviewInput{Review: 9, OverallRating: 4}
	if _, err := client.CreateManagerReview(ctx, in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := client.CreateManagerReview(ctx, in)
	var httpErr *transport.Error
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "manager review already exists for this review" {
		t.Fatalf("unexpected message %q", httpErr.Message)
	}
}

func TestPeerFeedbackRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreatePeerFeedback(ctx, &PeerFeedbackInput{
		Review:      5,
		Teamwork:    4,
		IsAnonymous: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.IsAnonymous || created.Teamwork != 4 {
		t.Fatalf("unexpected feedback %+v", created)
	}

	feedback, err := client.MyFeedback(ctx)
	if err != nil {
		t.Fatalf("my_feedback failed: %v", err)
	}
	if len(feedback) != 1 || feedback[0].Review != 5 {
		t.Fatalf("unexpected feedback %+v", feedback)
	}
}
