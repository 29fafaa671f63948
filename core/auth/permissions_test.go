package auth

import "testing"

func TestPermissionTable_failClosed(t *testing.T) {
	table := DefaultPermissions()

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
	}{
		{name: "empty role", role: "", resource: ResourceCourse, action: ActionIndex},
		{name: "unknown role", role: "Director", resource: ResourceCourse, action: ActionIndex},
		{name: "case-sensitive role", role: "admin", resource: ResourceCourse, action: ActionIndex},
		{name: "empty everything", role: "", resource: "", action: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if table.CanPerformAction(tt.role, tt.resource, tt.action) {
				t.Errorf("CanPerformAction(%q, %q, %q) = true; want false", tt.role, tt.resource, tt.action)
			}
		})
	}
}

func TestPermissionTable_grants(t *testing.T) {
	table := DefaultPermissions()

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		// Admin manages everything
		{"Admin", ResourceCategory, ActionIndex, true},
		{"Admin", ResourceCategory, ActionCreate, true},
		{"Admin", ResourceCategory, ActionEdit, true},
		{"Admin", ResourceCategory, ActionDelete, true},
		{"Admin", ResourceCourse, ActionDelete, true},
		{"Admin", ResourceClassRoom, ActionAddStudentToClass, true},
		{"Admin", ResourceClassRoom, ActionDetails, true},
		{"Admin", ResourceStudent, ActionEdit, true},
		{"Admin", ResourceTeacher, ActionDelete, true},
		{"Admin", ResourceRegister, ActionIndex, true},

		// Student: read-only views
		{"Student", ResourceClassRoom, ActionIndex, true},
		{"Student", ResourceClassRoom, ActionDetails, true},
		{"Student", ResourceStudent, ActionIndex, true},
		{"Student", ResourceCourse, ActionIndex, true},
		{"Student", ResourceCourse, ActionCreate, false},
		{"Student", ResourceCourse, ActionDelete, false},
		{"Student", ResourceCategory, ActionIndex, false},
		{"Student", ResourceTeacher, ActionIndex, false},
		{"Student", ResourceRegister, ActionIndex, false},

		// Teacher: read-only views incl. teachers
		{"Teacher", ResourceCourse, ActionIndex, true},
		{"Teacher", ResourceStudent, ActionIndex, true},
		{"Teacher", ResourceTeacher, ActionIndex, true},
		{"Teacher", ResourceClassRoom, ActionIndex, true},
		{"Teacher", ResourceClassRoom, ActionDetails, true},
		{"Teacher", ResourceStudent, ActionCreate, false},
		{"Teacher", ResourceCategory, ActionDelete, false},

		// exact match only, no wildcards
		{"Admin", "category", ActionIndex, false},
		{"Admin", ResourceCategory, "index", false},
		{"Admin", ResourceCategory, "", false},
		{"Admin", "", ActionIndex, false},
	}
	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			if got := table.CanPerformAction(tt.role, tt.resource, tt.action); got != tt.want {
				t.Errorf("CanPerformAction(%q, %q, %q) = %v; want %v", tt.role, tt.resource, tt.action, got, tt.want)
			}
		})
	}
}

func TestSession_isAuthenticated(t *testing.T) {
	var anon Session
	if anon.IsAuthenticated() {
		t.Error("zero Session should be anonymous")
	}
	authed := Session{UserID: 1, Username: "admin", Role: "Admin"}
	if !authed.IsAuthenticated() {
		t.Error("populated Session should be authenticated")
	}
}
