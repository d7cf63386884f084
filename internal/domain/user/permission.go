package user

type Permission string

const (
	// Employee management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Timesheets
	PermissionTimesheetGenerate Permission = "timesheet.generate"
	PermissionTimesheetEdit     Permission = "timesheet.edit"
	PermissionTimesheetView     Permission = "timesheet.view"
	PermissionTimesheetApprove  Permission = "timesheet.approve"

	// Admin access control
	PermissionUserManage Permission = "user.manage"
)

// Action is an access-control operation an actor performs on another user.
type Action string

const (
	ActionEnableAccess  Action = "access.enable"
	ActionDisableAccess Action = "access.disable"
	ActionChangeRole    Action = "access.change_role"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionTimesheetGenerate,
		PermissionTimesheetEdit,
		PermissionTimesheetView,
		PermissionTimesheetApprove,
		PermissionUserManage,
	},
	RoleAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionTimesheetGenerate,
		PermissionTimesheetEdit,
		PermissionTimesheetView,
		PermissionTimesheetApprove,
		PermissionUserManage,
	},
	RoleFinance: {
		PermissionEmployeeViewAll,
		PermissionTimesheetEdit,
		PermissionTimesheetView,
		PermissionTimesheetApprove,
	},
	RoleOperations: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionTimesheetGenerate,
		PermissionTimesheetEdit,
		PermissionTimesheetView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// roleRank orders roles for access-control comparisons. Higher outranks lower.
var roleRank = map[Role]int{
	RoleSuperAdmin: 3,
	RoleAdmin:      2,
	RoleFinance:    1,
	RoleOperations: 1,
}

// CanModify reports whether actor may perform an access-control action on
// target. The actor needs user.manage and must strictly outrank the target,
// except that a super admin may manage other super admins.
func CanModify(actor, target Role, action Action) bool {
	if !HasPermission(actor, PermissionUserManage) {
		return false
	}

	switch action {
	case ActionEnableAccess, ActionDisableAccess, ActionChangeRole:
	default:
		return false
	}

	if actor == RoleSuperAdmin {
		return true
	}
	return roleRank[actor] > roleRank[target]
}
