package user

type Permission string

const (
	// Analytics
	PermissionAnalyticsView             Permission = "analytics.view"
	PermissionAnalyticsPredictAttrition Permission = "analytics.predict_attrition"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAnalyticsView,
		PermissionAnalyticsPredictAttrition,
	},
	RoleHR: {
		PermissionAnalyticsView,
		PermissionAnalyticsPredictAttrition,
	},
	RoleManager: {
		// Managers see team analytics but cannot score individuals
		PermissionAnalyticsView,
	},
	RoleEmployee: {},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
