package auth

import "strings"

// Role is the lower-cased role string supplied by the authentication
// context. Unknown values degrade to the least privileged non-intern
// role, employee.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleIntern   Role = "intern"
)

// ParseRole normalizes a raw role string.
func ParseRole(value string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleHR:
		return RoleHR
	case RoleManager:
		return RoleManager
	case RoleIntern:
		return RoleIntern
	default:
		return RoleEmployee
	}
}

// Operation names a user-initiated action gated by role. Ownership,
// deadline and duplicate constraints are layered on top by the hub;
// this matrix answers only "may this role ever do this".
type Operation string

const (
	OpCycleManage          Operation = "cycles.manage"
	OpReviewCreate         Operation = "reviews.create"
	OpSelfAssessmentWrite  Operation = "self_assessments.write"
	OpSelfAssessmentEdit   Operation = "self_assessments.edit"
	OpSelfAssessmentDelete Operation = "self_assessments.delete"
	OpManagerReviewWrite   Operation = "manager_reviews.write"
	OpManagerReviewDelete  Operation = "manager_reviews.delete"
	OpPeerFeedbackSubmit   Operation = "peer_feedback.submit"
	OpRatingCalculate      Operation = "reviews.calculate_rating"
)

var AllOperations = []Operation{
	OpCycleManage,
	OpReviewCreate,
	OpSelfAssessmentWrite,
	OpSelfAssessmentEdit,
	OpSelfAssessmentDelete,
	OpManagerReviewWrite,
	OpManagerReviewDelete,
	OpPeerFeedbackSubmit,
	OpRatingCalculate,
}

var RolePermissions = map[Role][]Operation{
	RoleAdmin: {
		OpCycleManage,
		OpReviewCreate,
		OpSelfAssessmentWrite,
		OpSelfAssessmentEdit,
		OpSelfAssessmentDelete,
		OpManagerReviewWrite,
		OpManagerReviewDelete,
		OpPeerFeedbackSubmit,
		OpRatingCalculate,
	},
	RoleHR: {
		OpCycleManage,
		OpReviewCreate,
		OpSelfAssessmentWrite,
		OpSelfAssessmentDelete,
		OpManagerReviewDelete,
		OpPeerFeedbackSubmit,
		OpRatingCalculate,
	},
	RoleManager: {
		OpReviewCreate,
		OpManagerReviewWrite,
		OpPeerFeedbackSubmit,
		OpRatingCalculate,
	},
	RoleEmployee: {
		OpSelfAssessmentWrite,
		OpSelfAssessmentEdit,
		OpPeerFeedbackSubmit,
	},
	RoleIntern: {
		OpSelfAssessmentWrite,
		OpSelfAssessmentEdit,
		OpPeerFeedbackSubmit,
	},
}

// Can reports whether the role is ever permitted to perform op.
func (r Role) Can(op Operation) bool {
	for _, allowed := range RolePermissions[r] {
		if allowed == op {
			return true
		}
	}
	return false
}
