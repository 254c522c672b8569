package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"perfclient/transport"
)

const basePath = "api/reviews"

// Client is the typed facade over the /api/reviews/ module. Every
// method maps to a single REST call and propagates *transport.Error
// unchanged.
type Client struct {
	api *transport.Client
}

func NewClient(api *transport.Client) *Client {
	return &Client{api: api}
}

func fetch[T any](ctx context.Context, api *transport.Client, path string) (T, error) {
	var out T
	raw, err := api.Get(ctx, path)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

func send[T any](ctx context.Context, api *transport.Client, method, path string, payload any) (T, error) {
	var out T
	raw, err := api.Do(ctx, method, path, payload)
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

// Cycles.

func (c *Client) ListCycles(ctx context.Context, params map[string]any) ([]ReviewCycle, error) {
	return fetch[[]ReviewCycle](ctx, c.api, basePath+"/review-cycles/"+transport.EncodeQuery(params))
}

func (c *Client) GetCycle(ctx context.Context, id int64) (ReviewCycle, error) {
	return fetch[ReviewCycle](ctx, c.api, fmt.Sprintf("%s/review-cycles/%d/", basePath, id))
}

func (c *Client) CreateCycle(ctx context.Context, in *CycleInput) (ReviewCycle, error) {
	return send[ReviewCycle](ctx, c.api, http.MethodPost, basePath+"/review-cycles/", in)
}

func (c *Client) UpdateCycle(ctx context.Context, id int64, in *CycleInput) (ReviewCycle, error) {
	return send[ReviewCycle](ctx, c.api, http.MethodPut, fmt.Sprintf("%s/review-cycles/%d/", basePath, id), in)
}

func (c *Client) PatchCycle(ctx context.Context, id int64, fields any) (ReviewCycle, error) {
	return send[ReviewCycle](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/review-cycles/%d/", basePath, id), fields)
}

func (c *Client) DeleteCycle(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/review-cycles/%d/", basePath, id))
}

func (c *Client) ActivateCycle(ctx context.Context, id int64) (any, error) {
	return c.api.DoValue(ctx, http.MethodPost, fmt.Sprintf("%s/review-cycles/%d/activate/", basePath, id), nil)
}

func (c *Client) CompleteCycle(ctx context.Context, id int64) (any, error) {
	return c.api.DoValue(ctx, http.MethodPost, fmt.Sprintf("%s/review-cycles/%d/complete/", basePath, id), nil)
}

func (c *Client) CycleStatistics(ctx context.Context, id int64) (any, error) {
	return c.api.DoValue(ctx, http.MethodGet, fmt.Sprintf("%s/review-cycles/%d/statistics/", basePath, id), nil)
}

// Reviews.

func (c *Client) ListReviews(ctx context.Context, params map[string]any) ([]Review, error) {
	return fetch[[]Review](ctx, c.api, basePath+"/reviews/"+transport.EncodeQuery(params))
}

func (c *Client) GetReview(ctx context.Context, id int64) (Review, error) {
	return fetch[Review](ctx, c.api, fmt.Sprintf("%s/reviews/%d/", basePath, id))
}

func (c *Client) CreateReview(ctx context.Context, in *ReviewInput) (Review, error) {
	return send[Review](ctx, c.api, http.MethodPost, basePath+"/reviews/", in)
}

func (c *Client) PatchReview(ctx context.Context, id int64, fields any) (Review, error) {
	return send[Review](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/reviews/%d/", basePath, id), fields)
}

func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/reviews/%d/", basePath, id))
}

func (c *Client) CalculateRating(ctx context.Context, id int64) (any, error) {
	return c.api.DoValue(ctx, http.MethodPost, fmt.Sprintf("%s/reviews/%d/calculate_rating/", basePath, id), nil)
}

func (c *Client) MyReviews(ctx context.Context) ([]Review, error) {
	return fetch[[]Review](ctx, c.api, basePath+"/reviews/my_reviews/")
}

func (c *Client) PendingReviews(ctx context.Context) ([]Review, error) {
	return fetch[[]Review](ctx, c.api, basePath+"/reviews/pending_reviews/")
}

// Self-assessments.

func (c *Client) ListSelfAssessments(ctx context.Context, params map[string]any) ([]SelfAssessment, error) {
	return fetch[[]SelfAssessment](ctx, c.api, basePath+"/self-assessments/"+transport.EncodeQuery(params))
}

func (c *Client) GetSelfAssessment(ctx context.Context, id int64) (SelfAssessment, error) {
	return fetch[SelfAssessment](ctx, c.api, fmt.Sprintf("%s/self-assessments/%d/", basePath, id))
}

func (c *Client) CreateSelfAssessment(ctx context.Context, in *SelfAssessmentInput) (SelfAssessment, error) {
	return send[SelfAssessment](ctx, c.api, http.MethodPost, basePath+"/self-assessments/", in)
}

func (c *Client) PatchSelfAssessment(ctx context.Context, id int64, fields any) (SelfAssessment, error) {
	return send[SelfAssessment](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/self-assessments/%d/", basePath, id), fields)
}

func (c *Client) DeleteSelfAssessment(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/self-assessments/%d/", basePath, id))
}

// Manager reviews.

func (c *Client) ListManagerReviews(ctx context.Context, params map[string]any) ([]ManagerReview, error) {
	return fetch[[]ManagerReview](ctx, c.api, basePath+"/manager-reviews/"+transport.EncodeQuery(params))
}

func (c *Client) GetManagerReview(ctx context.Context, id int64) (ManagerReview, error) {
	return fetch[ManagerReview](ctx, c.api, fmt.Sprintf("%s/manager-reviews/%d/", basePath, id))
}

func (c *Client) CreateManagerReview(ctx context.Context, in *ManagerReviewInput) (ManagerReview, error) {
	return send[ManagerReview](ctx, c.api, http.MethodPost, basePath+"/manager-reviews/", in)
}

func (c *Client) PatchManagerReview(ctx context.Context, id int64, fields any) (ManagerReview, error) {
	return send[ManagerReview](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/manager-reviews/%d/", basePath, id), fields)
}

func (c *Client) DeleteManagerReview(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/manager-reviews/%d/", basePath, id))
}

// Peer feedback.

func (c *Client) ListPeerFeedback(ctx context.Context, params map[string]any) ([]PeerFeedback, error) {
	return fetch[[]PeerFeedback](ctx, c.api, basePath+"/peer-feedback/"+transport.EncodeQuery(params))
}

func (c *Client) GetPeerFeedback(ctx context.Context, id int64) (PeerFeedback, error) {
	return fetch[PeerFeedback](ctx, c.api, fmt.Sprintf("%s/peer-feedback/%d/", basePath, id))
}

func (c *Client) CreatePeerFeedback(ctx context.Context, in *PeerFeedbackInput) (PeerFeedback, error) {
	return send[PeerFeedback](ctx, c.api, http.MethodPost, basePath+"/peer-feedback/", in)
}

func (c *Client) PatchPeerFeedback(ctx context.Context, id int64, fields any) (PeerFeedback, error) {
	return send[PeerFeedback](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/peer-feedback/%d/", basePath, id), fields)
}

func (c *Client) DeletePeerFeedback(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/peer-feedback/%d/", basePath, id))
}

func (c *Client) MyFeedback(ctx context.Context) ([]PeerFeedback, error) {
	return fetch[[]PeerFeedback](ctx, c.api, basePath+"/peer-feedback/my_feedback/")
}
