package reviews

// Input payloads for create and full-update calls. Validation tags
// are enforced by the hub before dispatch; zero competency scores
// mean "not filled in" and are skipped by omitempty.

type CycleInput struct {
	ID                    int64   `json:"-"`
	Name                  string  `json:"name" validate:"required"`
	ReviewType            string  `json:"review_type" validate:"required,oneof=quarterly semi_annual annual probation"`
	Description           string  `json:"description"`
	StartDate             string  `json:"start_date" validate:"required"`
	EndDate               string  `json:"end_date" validate:"required"`
	SelfReviewDeadline    string  `json:"self_review_deadline"`
	ManagerReviewDeadline string  `json:"manager_review_deadline"`
	PeerReviewDeadline    string  `json:"peer_review_deadline,omitempty"`
	Status                string  `json:"status,omitempty" validate:"omitempty,oneof=draft active completed cancelled"`
	Participants          []int64 `json:"participants"`
}

type ReviewInput struct {
	ID       int64  `json:"-"`
	Cycle    int64  `json:"cycle" validate:"required"`
	Employee int64  `json:"employee" validate:"required"`
	Reviewer int64  `json:"reviewer" validate:"required"`
	Status   string `json:"status,omitempty"`
}

type SelfAssessmentInput struct {
	ID                  int64   `json:"-"`
	Review              int64   `json:"review" validate:"required"`
	QualityOfWork       int     `json:"quality_of_work,omitempty" validate:"omitempty,min=1,max=5"`
	Productivity        int     `json:"productivity,omitempty" validate:"omitempty,min=1,max=5"`
	Communication       int     `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
	Teamwork            int     `json:"teamwork,omitempty" validate:"omitempty,min=1,max=5"`
	Initiative          int     `json:"initiative,omitempty" validate:"omitempty,min=1,max=5"`
	Achievements        string  `json:"achievements"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	ChallengesFaced     string  `json:"challenges_faced"`
	GoalsForNextPeriod  string  `json:"goals_for_next_period"`
	SkillsToDevelop     string  `json:"skills_to_develop"`
	OverallRating       float64 `json:"overall_rating,omitempty" validate:"omitempty,min=1,max=5"`
	AdditionalComments  string  `json:"additional_comments"`
}

// Scores lists the competency scores in declaration order for rating
// derivation.
func (in *SelfAssessmentInput) Scores() []float64 {
	return []float64{
		float64(in.QualityOfWork),
		float64(in.Productivity),
		float64(in.Communication),
		float64(in.Teamwork),
		float64(in.Initiative),
	}
}

type ManagerReviewInput struct {
	ID                           int64   `json:"-"`
	Review                       int64   `json:"review" validate:"required"`
	QualityOfWork                int     `json:"quality_of_work,omitempty" validate:"omitempty,min=1,max=5"`
	Productivity                 int     `json:"productivity,omitempty" validate:"omitempty,min=1,max=5"`
	Communication                int     `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
	Teamwork                     int     `json:"teamwork,omitempty" validate:"omitempty,min=1,max=5"`
	Initiative                   int     `json:"initiative,omitempty" validate:"omitempty,min=1,max=5"`
	Leadership                   int     `json:"leadership,omitempty" validate:"omitempty,min=1,max=5"`
	ProblemSolving               int     `json:"problem_solving,omitempty" validate:"omitempty,min=1,max=5"`
	Strengths                    string  `json:"strengths"`
	AreasForImprovement          string  `json:"areas_for_improvement"`
	AchievementsSummary          string  `json:"achievements_summary"`
	DevelopmentPlan              string  `json:"development_plan"`
	ManagerComments              string  `json:"manager_comments"`
	PromotionRecommendation      bool    `json:"promotion_recommendation"`
	SalaryIncreaseRecommendation bool    `json:"salary_increase_recommendation"`
	OverallRating                float64 `json:"overall_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

func (in *ManagerReviewInput) Scores() []float64 {
	return []float64{
		float64(in.QualityOfWork),
		float64(in.Productivity),
		float64(in.Communication),
		float64(in.Teamwork),
		float64(in.Initiative),
		float64(in.Leadership),
		float64(in.ProblemSolving),
	}
}

type PeerFeedbackInput struct {
	ID                  int64   `json:"-"`
	Review              int64   `json:"review" validate:"required"`
	QualityOfWork       int     `json:"quality_of_work,omitempty" validate:"omitempty,min=1,max=5"`
	Productivity        int     `json:"productivity,omitempty" validate:"omitempty,min=1,max=5"`
	Communication       int     `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
	Teamwork            int     `json:"teamwork,omitempty" validate:"omitempty,min=1,max=5"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	AdditionalComments  string  `json:"additional_comments"`
	OverallRating       float64 `json:"overall_rating,omitempty" validate:"omitempty,min=1,max=5"`
	IsAnonymous         bool    `json:"is_anonymous"`
}

func (in *PeerFeedbackInput) Scores() []float64 {
	return []float64{
		float64(in.QualityOfWork),
		float64(in.Productivity),
		float64(in.Communication),
		float64(in.Teamwork),
	}
}
