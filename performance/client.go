package performance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"perfclient/transport"
)

const basePath = "api/performance"

// Client is the typed facade over the /api/performance/ module. The
// action endpoints use fallback dispatch because deployed backends
// disagree on their URL scheme.
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

// withParent copies payload and fills in the parent id when the
// caller did not set it; flat collection fallbacks need the foreign
// key in the body.
func withParent(payload map[string]any, key string, id int64) map[string]any {
	enriched := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		enriched[k] = v
	}
	if _, ok := enriched[key]; !ok {
		enriched[key] = id
	}
	return enriched
}

// Goals.

func (c *Client) ListGoals(ctx context.Context, params map[string]any) ([]Goal, error) {
	return fetch[[]Goal](ctx, c.api, basePath+"/goals/"+transport.EncodeQuery(params))
}

func (c *Client) GetGoal(ctx context.Context, id int64) (Goal, error) {
	return fetch[Goal](ctx, c.api, fmt.Sprintf("%s/goals/%d/", basePath, id))
}

func (c *Client) CreateGoal(ctx context.Context, payload any) (Goal, error) {
	return send[Goal](ctx, c.api, http.MethodPost, basePath+"/goals/", payload)
}

func (c *Client) PatchGoal(ctx context.Context, id int64, fields any) (Goal, error) {
	return send[Goal](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/goals/%d/", basePath, id), fields)
}

func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/goals/%d/", basePath, id))
}

func (c *Client) UpdateGoalProgress(ctx context.Context, id int64, payload any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		fmt.Sprintf("%s/goals/%d/update-progress/", basePath, id),
		fmt.Sprintf("%s/goals/%d/update_progress/", basePath, id),
		fmt.Sprintf("%s/goals/%d/progress/", basePath, id),
		fmt.Sprintf("%s/goals/%d/updates/", basePath, id),
		fmt.Sprintf("%s/goals/%d/add-progress/", basePath, id),
	}, payload)
}

func (c *Client) CompleteGoal(ctx context.Context, id int64, payload any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		fmt.Sprintf("%s/goals/%d/complete/", basePath, id),
		fmt.Sprintf("%s/goals/%d/mark-complete/", basePath, id),
		fmt.Sprintf("%s/goals/%d/complete_goal/", basePath, id),
	}, payload)
}

func (c *Client) AddMilestoneToGoal(ctx context.Context, goalID int64, payload map[string]any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		fmt.Sprintf("%s/goals/%d/add-milestone/", basePath, goalID),
		fmt.Sprintf("%s/goals/%d/milestones/", basePath, goalID),
		basePath + "/milestones/",
	}, withParent(payload, "goal", goalID))
}

func (c *Client) AddGoalComment(ctx context.Context, goalID int64, payload map[string]any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		fmt.Sprintf("%s/goals/%d/add-comment/", basePath, goalID),
		fmt.Sprintf("%s/goals/%d/add_comment/", basePath, goalID),
		fmt.Sprintf("%s/goals/%d/comments/", basePath, goalID),
		basePath + "/comments/",
	}, withParent(payload, "goal", goalID))
}

// Milestones.

func (c *Client) ListMilestones(ctx context.Context, params map[string]any) ([]Milestone, error) {
	return fetch[[]Milestone](ctx, c.api, basePath+"/milestones/"+transport.EncodeQuery(params))
}

func (c *Client) PatchMilestone(ctx context.Context, id int64, fields any) (Milestone, error) {
	return send[Milestone](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/milestones/%d/", basePath, id), fields)
}

func (c *Client) DeleteMilestone(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/milestones/%d/", basePath, id))
}

// KPIs.

func (c *Client) ListKPIs(ctx context.Context, params map[string]any) ([]KPI, error) {
	return fetch[[]KPI](ctx, c.api, basePath+"/kpis/"+transport.EncodeQuery(params))
}

func (c *Client) GetKPI(ctx context.Context, id int64) (KPI, error) {
	return fetch[KPI](ctx, c.api, fmt.Sprintf("%s/kpis/%d/", basePath, id))
}

func (c *Client) CreateKPI(ctx context.Context, payload any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		basePath + "/kpis/",
		basePath + "/kpis/create/",
		basePath + "/kpi/",
		basePath + "/kpis/add/",
	}, payload)
}

func (c *Client) UpdateKPIValue(ctx context.Context, id int64, payload any) (any, error) {
	return c.api.PostFallback(ctx, []string{
		fmt.Sprintf("%s/kpis/%d/update-value/", basePath, id),
		fmt.Sprintf("%s/kpis/%d/update_value/", basePath, id),
		fmt.Sprintf("%s/kpis/%d/update/", basePath, id),
		fmt.Sprintf("%s/kpis/%d/value/", basePath, id),
	}, payload)
}

func (c *Client) PatchKPI(ctx context.Context, id int64, fields any) (KPI, error) {
	return send[KPI](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/kpis/%d/", basePath, id), fields)
}

func (c *Client) DeleteKPI(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/kpis/%d/", basePath, id))
}

// Categories.

func (c *Client) ListCategories(ctx context.Context, params map[string]any) ([]Category, error) {
	return fetch[[]Category](ctx, c.api, basePath+"/categories/"+transport.EncodeQuery(params))
}

func (c *Client) CreateCategory(ctx context.Context, payload any) (Category, error) {
	return send[Category](ctx, c.api, http.MethodPost, basePath+"/categories/", payload)
}

func (c *Client) PatchCategory(ctx context.Context, id int64, fields any) (Category, error) {
	return send[Category](ctx, c.api, http.MethodPatch, fmt.Sprintf("%s/categories/%d/", basePath, id), fields)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.api.Delete(ctx, fmt.Sprintf("%s/categories/%d/", basePath, id))
}

// Progress updates.

func (c *Client) ListProgressUpdates(ctx context.Context, params map[string]any) ([]ProgressUpdate, error) {
	return fetch[[]ProgressUpdate](ctx, c.api, basePath+"/progress-updates/"+transport.EncodeQuery(params))
}
