package auth

// Resources checked by the access gate. A resource/action pair is the
// two-part key authorization is evaluated against.
const (
	ResourceCategory  = "Category"
	ResourceCourse    = "Course"
	ResourceClassRoom = "ClassRoom"
	ResourceStudent   = "Student"
	ResourceTeacher   = "Teacher"
	ResourceRegister  = "Register"
)

// Actions on resources.
const (
	ActionIndex             = "Index"
	ActionCreate            = "Create"
	ActionEdit              = "Edit"
	ActionDelete            = "Delete"
	ActionDetails           = "Details"
	ActionAddStudentToClass = "AddStudentToClass"
)

type Grant struct {
	Resource string
	Action   string
}

// PermissionTable maps a role name to its set of allowed resource/action
// pairs. It is built once at startup and is read-only afterwards; concurrent
// reads are safe.
type PermissionTable struct {
	grants map[string]map[Grant]struct{}
}

func NewPermissionTable(grants map[string][]Grant) *PermissionTable {
	t := &PermissionTable{grants: make(map[string]map[Grant]struct{}, len(grants))}
	for role, gs := range grants {
		set := make(map[Grant]struct{}, len(gs))
		for _, g := range gs {
			set[g] = struct{}{}
		}
		t.grants[role] = set
	}
	return t
}

// CanPerformAction reports whether role may perform action on resource.
// Unknown or empty roles are denied; matching is exact and case-sensitive.
// Absence of permission is always expressed as false, never as an error.
func (t *PermissionTable) CanPerformAction(role, resource, action string) bool {
	set, ok := t.grants[role]
	if !ok {
		return false
	}
	_, ok = set[Grant{Resource: resource, Action: action}]
	return ok
}

// Roles reports the role names present in the table.
func (t *PermissionTable) Roles() []string {
	roles := make([]string, 0, len(t.grants))
	for role := range t.grants {
		roles = append(roles, role)
	}
	return roles
}

func crud(resource string) []Grant {
	return []Grant{
		{resource, ActionIndex},
		{resource, ActionCreate},
		{resource, ActionEdit},
		{resource, ActionDelete},
	}
}

// DefaultPermissions builds the static grant table:
// Admin manages everything, Teacher and Student get read-only views.
func DefaultPermissions() *PermissionTable {
	admin := make([]Grant, 0, 24)
	admin = append(admin, crud(ResourceCategory)...)
	admin = append(admin, crud(ResourceCourse)...)
	admin = append(admin, crud(ResourceClassRoom)...)
	admin = append(admin,
		Grant{ResourceClassRoom, ActionAddStudentToClass},
		Grant{ResourceClassRoom, ActionDetails},
	)
	admin = append(admin, crud(ResourceStudent)...)
	admin = append(admin, crud(ResourceTeacher)...)
	admin = append(admin, Grant{ResourceRegister, ActionIndex})

	return NewPermissionTable(map[string][]Grant{
		"Admin": admin,
		"Student": {
			{ResourceClassRoom, ActionIndex},
			{ResourceClassRoom, ActionDetails},
			{ResourceStudent, ActionIndex},
			{ResourceCourse, ActionIndex},
		},
		"Teacher": {
			{ResourceCourse, ActionIndex},
			{ResourceStudent, ActionIndex},
			{ResourceTeacher, ActionIndex},
			{ResourceClassRoom, ActionIndex},
			{ResourceClassRoom, ActionDetails},
		},
	})
}
