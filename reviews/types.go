package reviews

import (
	"encoding/json"

	"perfclient/transport"
)

// Review cycle types and statuses as the backend spells them.
const (
	CycleQuarterly  = "quarterly"
	CycleSemiAnnual = "semi_annual"
	CycleAnnual     = "annual"
	CycleProbation  = "probation"

	CycleStatusDraft     = "draft"
	CycleStatusActive    = "active"
	CycleStatusCompleted = "completed"
	CycleStatusCancelled = "cancelled"
)

// ReviewCycle is a time-bounded evaluation period. Dates are calendar
// date strings with no time component on the wire. Unknown wire
// fields are kept in Extra.
type ReviewCycle struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	ReviewType            string  `json:"review_type"`
	Description           string  `json:"description"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	SelfReviewDeadline    string  `json:"self_review_deadline"`
	ManagerReviewDeadline string  `json:"manager_review_deadline"`
	PeerReviewDeadline    string  `json:"peer_review_deadline,omitempty"`
	Status                string  `json:"status"`
	Participants          []int64 `json:"participants"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (c *ReviewCycle) UnmarshalJSON(data []byte) error {
	type alias ReviewCycle
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*c = ReviewCycle(out)
	return nil
}

// Review links a subject employee to a reviewing manager within a
// cycle. (cycle, employee) is unique server-side; the client checks
// it too for friendlier errors.
type Review struct {
	ID             int64   `json:"id"`
	Cycle          int64   `json:"cycle"`
	Employee       int64   `json:"employee"`
	Reviewer       int64   `json:"reviewer"`
	Status         string  `json:"status"`
	OverallRating  float64 `json:"overall_rating,omitempty"`
	SelfAssessment int64   `json:"self_assessment,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (r *Review) UnmarshalJSON(data []byte) error {
	type alias Review
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*r = Review(out)
	return nil
}

// SelfAssessment is authored by the review's employee. Competency
// scores are integers in [1..5]; zero means not filled in.
type SelfAssessment struct {
	ID                  int64   `json:"id"`
	Review              int64   `json:"review"`
	QualityOfWork       int     `json:"quality_of_work"`
	Productivity        int     `json:"productivity"`
	Communication       int     `json:"communication"`
	Teamwork            int     `json:"teamwork"`
	Initiative          int     `json:"initiative"`
	Achievements        string  `json:"achievements"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	ChallengesFaced     string  `json:"challenges_faced"`
	GoalsForNextPeriod  string  `json:"goals_for_next_period"`
	SkillsToDevelop     string  `json:"skills_to_develop"`
	OverallRating       float64 `json:"overall_rating"`
	AdditionalComments  string  `json:"additional_comments"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (s *SelfAssessment) UnmarshalJSON(data []byte) error {
	type alias SelfAssessment
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*s = SelfAssessment(out)
	return nil
}

// ManagerReview is authored by the review's reviewer; at most one
// exists per review.
type ManagerReview struct {
	ID                           int64   `json:"id"`
	Review                       int64   `json:"review"`
	QualityOfWork                int     `json:"quality_of_work"`
	Productivity                 int     `json:"productivity"`
	Communication                int     `json:"communication"`
	Teamwork                     int     `json:"teamwork"`
	Initiative                   int     `json:"initiative"`
	Leadership                   int     `json:"leadership"`
	ProblemSolving               int     `json:"problem_solving"`
	Strengths                    string  `json:"strengths"`
	AreasForImprovement          string  `json:"areas_for_improvement"`
	AchievementsSummary          string  `json:"achievements_summary"`
	DevelopmentPlan              string  `json:"development_plan"`
	ManagerComments              string  `json:"manager_comments"`
	PromotionRecommendation      bool    `json:"promotion_recommendation"`
	SalaryIncreaseRecommendation bool    `json:"salary_increase_recommendation"`
	OverallRating                float64 `json:"overall_rating"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (m *ManagerReview) UnmarshalJSON(data []byte) error {
	type alias ManagerReview
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*m = ManagerReview(out)
	return nil
}

// PeerFeedback may be authored by anyone except the review's own
// employee.
type PeerFeedback struct {
	ID                  int64   `json:"id"`
	Review              int64   `json:"review"`
	QualityOfWork       int     `json:"quality_of_work"`
	Productivity        int     `json:"productivity"`
	Communication       int     `json:"communication"`
	Teamwork            int     `json:"teamwork"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	AdditionalComments  string  `json:"additional_comments"`
	OverallRating       float64 `json:"overall_rating"`
	IsAnonymous         bool    `json:"is_anonymous"`

	Extra map[string]json.RawMessage `json:"-"`
}

func (p *PeerFeedback) UnmarshalJSON(data []byte) error {
	type alias PeerFeedback
	var out alias
	extra, err := transport.DecodeExtra(data, &out)
	if err != nil {
		return err
	}
	out.Extra = extra
	*p = PeerFeedback(out)
	return nil
}
