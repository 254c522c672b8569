// Package perfclient is the client SDK for the internal performance
// and reviews backend. The Hub composes the typed resource clients
// with local role, ownership, deadline and duplicate checks so denied
// actions fail fast without a round trip.
package perfclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"perfclient/auth"
	"perfclient/config"
	"perfclient/credentials"
	"perfclient/performance"
	"perfclient/report"
	"perfclient/reviews"
	"perfclient/rules"
	"perfclient/transport"
)

// User identifies the authenticated caller; the host application's
// auth context supplies it.
type User struct {
	ID   int64
	Role auth.Role
}

// Hub executes guarded actions against the backend on behalf of one
// user. It keeps only an in-memory cache of fetched reviews and
// cycles; nothing is persisted.
type Hub struct {
	Reviews     *reviews.Client
	Performance *performance.Client

	// Clock is substitutable so deadline gating is testable.
	Clock func() time.Time

	user     User
	api      *transport.Client
	tokens   *credentials.Source
	log      *slog.Logger
	validate *validator.Validate

	mu                  sync.Mutex
	reviewCache         map[int64]reviews.Review
	cycleCache          map[int64]reviews.ReviewCycle
	selfAssessments     []reviews.SelfAssessment
	managerReviews      []reviews.ManagerReview
	haveSelfAssessments bool
	haveManagerReviews  bool
}

// New wires a Hub from configuration and a credential store. logger
// may be nil.
func New(cfg config.Config, store credentials.Store, user User, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	tokens := credentials.NewSource(store, cfg.TokenKeys...)
	api := transport.NewClient(cfg.BaseURL, tokens)
	if cfg.HTTPTimeout > 0 {
		api.HTTPClient.Timeout = cfg.HTTPTimeout
	}
	return &Hub{
		Reviews:     reviews.NewClient(api),
		Performance: performance.NewClient(api),
		Clock:       time.Now,
		user:        user,
		api:         api,
		tokens:      tokens,
		log:         logger,
		validate:    validator.New(),
		reviewCache: map[int64]reviews.Review{},
		cycleCache:  map[int64]reviews.ReviewCycle{},
	}
}

// FlattenError renders any error for display. Structured HTTP error
// bodies expand to one line per field; everything else renders its
// message verbatim.
func FlattenError(err error) string {
	if err == nil {
		return ""
	}
	var httpErr *transport.Error
	if errors.As(err, &httpErr) {
		return rules.FlattenErrorBody(httpErr.Body, httpErr.Message)
	}
	return err.Error()
}

func (h *Hub) validateInput(in any) error {
	if err := h.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid payload: %v: %w", err, rules.ErrValidation)
	}
	return nil
}

func (h *Hub) warnExpiredToken() {
	token := h.tokens.Token()
	if token != "" && credentials.Expired(token, h.Clock()) {
		h.log.Warn("bearer token appears expired", "user", h.user.ID)
	}
}

func (h *Hub) resolveReview(ctx context.Context, id int64) (reviews.Review, error) {
	h.mu.Lock()
	cached, ok := h.reviewCache[id]
	h.mu.Unlock()
	if ok {
		return cached, nil
	}
	review, err := h.Reviews.GetReview(ctx, id)
	if err != nil {
		return reviews.Review{}, err
	}
	h.mu.Lock()
	h.reviewCache[id] = review
	h.mu.Unlock()
	return review, nil
}

func (h *Hub) resolveCycle(ctx context.Context, id int64) (reviews.ReviewCycle, error) {
	h.mu.Lock()
	cached, ok := h.cycleCache[id]
	h.mu.Unlock()
	if ok {
		return cached, nil
	}
	cycle, err := h.Reviews.GetCycle(ctx, id)
	if err != nil {
		return reviews.ReviewCycle{}, err
	}
	h.mu.Lock()
	h.cycleCache[id] = cycle
	h.mu.Unlock()
	return cycle, nil
}

// hasSelfAssessment and hasManagerReview consult only what has been
// loaded; when the lists were never fetched the server stays the sole
// enforcer of uniqueness.
func (h *Hub) hasSelfAssessment(reviewID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.haveSelfAssessments {
		return false
	}
	for _, sa := range h.selfAssessments {
		if sa.Review == reviewID {
			return true
		}
	}
	return false
}

func (h *Hub) hasManagerReview(reviewID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.haveManagerReviews {
		return false
	}
	for _, mr := range h.managerReviews {
		if mr.Review == reviewID {
			return true
		}
	}
	return false
}

func trimAll(fields ...*string) {
	for _, field := range fields {
		*field = strings.TrimSpace(*field)
	}
}

// SubmitSelfAssessment creates or updates the caller's
// self-assessment for a review, deriving overall_rating from the
// competency scores when the caller left it unset.
func (h *Hub) SubmitSelfAssessment(ctx context.Context, in *reviews.SelfAssessmentInput) (reviews.SelfAssessment, error) {
	var zero reviews.SelfAssessment
	if in == nil || in.Review == 0 {
		return zero, fmt.Errorf("self-assessment requires a review reference: %w", rules.ErrValidation)
	}
	op := auth.OpSelfAssessmentWrite
	if in.ID != 0 {
		op = auth.OpSelfAssessmentEdit
	}
	if !h.user.Role.Can(op) {
		return zero, fmt.Errorf("role %s may not write self-assessments: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	review, err := h.resolveReview(ctx, in.Review)
	if err != nil {
		return zero, err
	}
	if review.Employee != h.user.ID && h.user.Role != auth.RoleAdmin && h.user.Role != auth.RoleHR {
		return zero, fmt.Errorf("self-assessment belongs to another employee: %w", rules.ErrPermissionDenied)
	}
	cycle, err := h.resolveCycle(ctx, review.Cycle)
	if err != nil {
		return zero, err
	}
	if !rules.BeforeInclusive(cycle.SelfReviewDeadline, h.Clock()) {
		return zero, fmt.Errorf("self-assessment deadline %s has passed: %w", cycle.SelfReviewDeadline, rules.ErrDeadlinePassed)
	}
	if in.ID == 0 && h.hasSelfAssessment(in.Review) {
		return zero, fmt.Errorf("a self-assessment already exists for review %d: %w", in.Review, rules.ErrDuplicate)
	}

	trimAll(&in.Achievements, &in.Strengths, &in.AreasForImprovement,
		&in.ChallengesFaced, &in.GoalsForNextPeriod, &in.SkillsToDevelop, &in.AdditionalComments)
	if in.OverallRating <= 0 {
		if derived, ok := rules.DeriveOverallRating(in.Scores()...); ok {
			in.OverallRating = derived
		} else {
			in.OverallRating = 3
		}
	}
	if err := h.validateInput(in); err != nil {
		return zero, err
	}

	h.warnExpiredToken()
	if in.ID != 0 {
		return h.Reviews.PatchSelfAssessment(ctx, in.ID, in)
	}
	out, err := h.Reviews.CreateSelfAssessment(ctx, in)
	if err != nil {
		return zero, err
	}
	h.mu.Lock()
	if h.haveSelfAssessments {
		h.selfAssessments = append(h.selfAssessments, out)
	}
	h.mu.Unlock()
	return out, nil
}

// SubmitManagerReview creates or updates a manager review. An unset
// overall rating must be derivable from at least one competency
// score.
func (h *Hub) SubmitManagerReview(ctx context.Context, in *reviews.ManagerReviewInput) (reviews.ManagerReview, error) {
	var zero reviews.ManagerReview
	if in == nil || in.Review == 0 {
		return zero, fmt.Errorf("manager review requires a review reference: %w", rules.ErrValidation)
	}
	if !h.user.Role.Can(auth.OpManagerReviewWrite) {
		return zero, fmt.Errorf("role %s may not write manager reviews: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	review, err := h.resolveReview(ctx, in.Review)
	if err != nil {
		return zero, err
	}
	cycle, err := h.resolveCycle(ctx, review.Cycle)
	if err != nil {
		return zero, err
	}
	if !rules.BeforeInclusive(cycle.ManagerReviewDeadline, h.Clock()) {
		return zero, fmt.Errorf("manager review deadline %s has passed: %w", cycle.ManagerReviewDeadline, rules.ErrDeadlinePassed)
	}
	if in.ID == 0 && h.hasManagerReview(in.Review) {
		return zero, fmt.Errorf("a manager review already exists for review %d: %w", in.Review, rules.ErrDuplicate)
	}

	trimAll(&in.Strengths, &in.AreasForImprovement, &in.AchievementsSummary,
		&in.DevelopmentPlan, &in.ManagerComments)
	if in.OverallRating <= 0 {
		derived, ok := rules.DeriveOverallRating(in.Scores()...)
		if !ok {
			return zero, fmt.Errorf("overall_rating required: %w", rules.ErrValidation)
		}
		in.OverallRating = derived
	}
	if err := h.validateInput(in); err != nil {
		return zero, err
	}

	h.warnExpiredToken()
	if in.ID != 0 {
		return h.Reviews.PatchManagerReview(ctx, in.ID, in)
	}
	out, err := h.Reviews.CreateManagerReview(ctx, in)
	if err != nil {
		return zero, err
	}
	h.mu.Lock()
	if h.haveManagerReviews {
		h.managerReviews = append(h.managerReviews, out)
	}
	h.mu.Unlock()
	return out, nil
}

// SubmitPeerFeedback creates or updates peer feedback. Any
// authenticated user may give feedback, except on their own review.
func (h *Hub) SubmitPeerFeedback(ctx context.Context, in *reviews.PeerFeedbackInput) (reviews.PeerFeedback, error) {
	var zero reviews.PeerFeedback
	if in == nil || in.Review == 0 {
		return zero, fmt.Errorf("peer feedback requires a review reference: %w", rules.ErrValidation)
	}
	if !h.user.Role.Can(auth.OpPeerFeedbackSubmit) {
		return zero, fmt.Errorf("role %s may not submit peer feedback: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	review, err := h.resolveReview(ctx, in.Review)
	if err != nil {
		return zero, err
	}
	if review.Employee == h.user.ID {
		return zero, fmt.Errorf("cannot provide peer feedback for own review: %w", rules.ErrPermissionDenied)
	}
	cycle, err := h.resolveCycle(ctx, review.Cycle)
	if err != nil {
		return zero, err
	}
	if !rules.BeforeInclusive(cycle.PeerReviewDeadline, h.Clock()) {
		return zero, fmt.Errorf("peer feedback deadline %s has passed: %w", cycle.PeerReviewDeadline, rules.ErrDeadlinePassed)
	}

	trimAll(&in.Strengths, &in.AreasForImprovement, &in.AdditionalComments)
	if in.OverallRating <= 0 {
		// Leave unset when nothing is derivable; the server decides.
		if derived, ok := rules.DeriveOverallRating(in.Scores()...); ok {
			in.OverallRating = derived
		}
	}
	if err := h.validateInput(in); err != nil {
		return zero, err
	}

	h.warnExpiredToken()
	if in.ID != 0 {
		return h.Reviews.PatchPeerFeedback(ctx, in.ID, in)
	}
	return h.Reviews.CreatePeerFeedback(ctx, in)
}

// SaveCycle creates a cycle or, when in.ID is set, replaces it.
func (h *Hub) SaveCycle(ctx context.Context, in *reviews.CycleInput) (reviews.ReviewCycle, error) {
	var zero reviews.ReviewCycle
	if in == nil {
		return zero, fmt.Errorf("cycle payload required: %w", rules.ErrValidation)
	}
	if !h.user.Role.Can(auth.OpCycleManage) {
		return zero, fmt.Errorf("role %s may not manage review cycles: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	trimAll(&in.Name, &in.Description)
	if err := h.validateInput(in); err != nil {
		return zero, err
	}
	h.warnExpiredToken()
	var out reviews.ReviewCycle
	var err error
	if in.ID != 0 {
		out, err = h.Reviews.UpdateCycle(ctx, in.ID, in)
	} else {
		out, err = h.Reviews.CreateCycle(ctx, in)
	}
	if err != nil {
		return zero, err
	}
	h.mu.Lock()
	h.cycleCache[out.ID] = out
	h.mu.Unlock()
	return out, nil
}

func (h *Hub) DeleteCycle(ctx context.Context, id int64) error {
	if !h.user.Role.Can(auth.OpCycleManage) {
		return fmt.Errorf("role %s may not manage review cycles: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	if err := h.Reviews.DeleteCycle(ctx, id); err != nil {
		return err
	}
	h.mu.Lock()
	delete(h.cycleCache, id)
	h.mu.Unlock()
	return nil
}

func (h *Hub) ActivateCycle(ctx context.Context, id int64) (any, error) {
	if !h.user.Role.Can(auth.OpCycleManage) {
		return nil, fmt.Errorf("role %s may not manage review cycles: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	h.mu.Lock()
	delete(h.cycleCache, id)
	h.mu.Unlock()
	return h.Reviews.ActivateCycle(ctx, id)
}

func (h *Hub) CompleteCycle(ctx context.Context, id int64) (any, error) {
	if !h.user.Role.Can(auth.OpCycleManage) {
		return nil, fmt.Errorf("role %s may not manage review cycles: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	h.mu.Lock()
	delete(h.cycleCache, id)
	h.mu.Unlock()
	return h.Reviews.CompleteCycle(ctx, id)
}

// CreateReview links an employee to a reviewer within a cycle. The
// backend enforces (cycle, employee) uniqueness; the hub checks the
// loaded cache first for a friendlier local error.
func (h *Hub) CreateReview(ctx context.Context, in *reviews.ReviewInput) (reviews.Review, error) {
	var zero reviews.Review
	if in == nil {
		return zero, fmt.Errorf("review payload required: %w", rules.ErrValidation)
	}
	if !h.user.Role.Can(auth.OpReviewCreate) {
		return zero, fmt.Errorf("role %s may not create reviews: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	if err := h.validateInput(in); err != nil {
		return zero, err
	}
	h.mu.Lock()
	for _, cached := range h.reviewCache {
		if cached.Cycle == in.Cycle && cached.Employee == in.Employee {
			h.mu.Unlock()
			return zero, fmt.Errorf("a review for employee %d already exists in cycle %d: %w", in.Employee, in.Cycle, rules.ErrDuplicate)
		}
	}
	h.mu.Unlock()

	h.warnExpiredToken()
	out, err := h.Reviews.CreateReview(ctx, in)
	if err != nil {
		return zero, err
	}
	h.mu.Lock()
	h.reviewCache[out.ID] = out
	h.mu.Unlock()
	return out, nil
}

func (h *Hub) DeleteSelfAssessment(ctx context.Context, id int64) error {
	if !h.user.Role.Can(auth.OpSelfAssessmentDelete) {
		return fmt.Errorf("role %s may not delete self-assessments: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	return h.Reviews.DeleteSelfAssessment(ctx, id)
}

func (h *Hub) DeleteManagerReview(ctx context.Context, id int64) error {
	if !h.user.Role.Can(auth.OpManagerReviewDelete) {
		return fmt.Errorf("role %s may not delete manager reviews: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	return h.Reviews.DeleteManagerReview(ctx, id)
}

// CalculateRating asks the backend to finalize a review's overall
// rating. Managers may only finalize reviews they are the reviewer
// of; admin and hr may finalize any.
func (h *Hub) CalculateRating(ctx context.Context, reviewID int64) (any, error) {
	if !h.user.Role.Can(auth.OpRatingCalculate) {
		return nil, fmt.Errorf("role %s may not calculate ratings: %w", h.user.Role, rules.ErrPermissionDenied)
	}
	if h.user.Role == auth.RoleManager {
		review, err := h.resolveReview(ctx, reviewID)
		if err != nil {
			return nil, err
		}
		if review.Reviewer != h.user.ID {
			return nil, fmt.Errorf("only the assigned reviewer may calculate this rating: %w", rules.ErrPermissionDenied)
		}
	}
	h.warnExpiredToken()
	out, err := h.Reviews.CalculateRating(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	delete(h.reviewCache, reviewID)
	h.mu.Unlock()
	return out, nil
}

// ExportCycleStatistics fetches a cycle and its statistics and writes
// the PDF summary to path.
func (h *Hub) ExportCycleStatistics(ctx context.Context, cycleID int64, path string) error {
	cycle, err := h.resolveCycle(ctx, cycleID)
	if err != nil {
		return err
	}
	stats, err := h.Reviews.CycleStatistics(ctx, cycleID)
	if err != nil {
		return err
	}
	statsMap, _ := stats.(map[string]any)
	return report.WriteCycleStatistics(path, cycle, statsMap)
}
