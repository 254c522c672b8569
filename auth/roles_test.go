package auth

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"HR", RoleHR},
		{" Manager ", RoleManager},
		{"intern", RoleIntern},
		{"employee", RoleEmployee},
		{"contractor", RoleEmployee},
		{"", RoleEmployee},
	}
	for _, c := range cases {
		if got := ParseRole(c.in); got != c.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAdminCanDoEverything(t *testing.T) {
	for _, op := range AllOperations {
		if !RoleAdmin.Can(op) {
			t.Fatalf("admin must be allowed %q", op)
		}
	}
}

func TestRoleGates(t *testing.T) {
	if RoleEmployee.Can(OpCycleManage) {
		t.Fatal("employee must not manage cycles")
	}
	if RoleEmployee.Can(OpManagerReviewWrite) {
		t.Fatal("employee must not write manager reviews")
	}
	if !RoleEmployee.Can(OpSelfAssessmentWrite) {
		t.Fatal("employee must write self assessments")
	}
	if !RoleEmployee.Can(OpSelfAssessmentEdit) {
		t.Fatal("employee must edit own self assessments")
	}
	if RoleEmployee.Can(OpSelfAssessmentDelete) {
		t.Fatal("employee must not delete self assessments")
	}
	if !RoleManager.Can(OpManagerReviewWrite) {
		t.Fatal("manager must write manager reviews")
	}
	if RoleManager.Can(OpCycleManage) {
		t.Fatal("manager must not manage cycles")
	}
	if !RoleManager.Can(OpRatingCalculate) {
		t.Fatal("manager must trigger rating calculation")
	}
	if !RoleHR.Can(OpCycleManage) {
		t.Fatal("hr must manage cycles")
	}
	if RoleHR.Can(OpManagerReviewWrite) {
		t.Fatal("hr must not write manager reviews")
	}
	if !RoleHR.Can(OpManagerReviewDelete) {
		t.Fatal("hr must delete manager reviews")
	}
	if !RoleIntern.Can(OpPeerFeedbackSubmit) {
		t.Fatal("intern must submit peer feedback")
	}
	if RoleIntern.Can(OpReviewCreate) {
		t.Fatal("intern must not create reviews")
	}
}

func TestRolePermissionsAreKnownOperations(t *testing.T) {
	known := make(map[Operation]bool, len(AllOperations))
	for _, op := range AllOperations {
		known[op] = true
	}
	for role, ops := range RolePermissions {
		seen := make(map[Operation]bool, len(ops))
		for _, op := range ops {
			if !known[op] {
				t.Fatalf("role %q grants unknown operation %q", role, op)
			}
			if seen[op] {
				t.Fatalf("role %q lists %q twice", role, op)
			}
			seen[op] = true
		}
	}
}
