package user

import "slices"

type Permission string

const (
	// Attendance
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Organization
	PermissionCompanyView     Permission = "company.view"
	PermissionCompanyManage   Permission = "company.manage"
	PermissionAreaManage      Permission = "area.manage"
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionScheduleManage  Permission = "schedule.manage"

	// User Management
	PermissionUserView   Permission = "user.view"
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionReportsView,
		PermissionCompanyView,
		PermissionCompanyManage,
		PermissionAreaManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionScheduleManage,
		PermissionUserView,
		PermissionUserManage,
	},
	RoleHR: {
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionReportsView,
		PermissionCompanyView,
		PermissionAreaManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionScheduleManage,
		PermissionUserView,
		PermissionUserManage,
	},
	RoleSupervisor: {
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionReportsView,
		PermissionCompanyView,
		PermissionEmployeeViewAll,
		PermissionUserView,
	},
	RoleEmployee: {
		PermissionAttendanceClock,
		PermissionAttendanceViewOwn,
		PermissionCompanyView,
	},
	RoleCanteen: {
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionCompanyView,
		PermissionEmployeeViewAll,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}
	return slices.Contains(permissions, permission)
}
