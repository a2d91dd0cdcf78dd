// Package rbac holds the single authoritative role/permission policy. Every
// protected route goes through Can; no handler carries its own role checks.
package rbac

import "github.com/aryaduta/ecommerce-admin-service/pkg/errs"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

type Action string

const (
	ActionProductRead   Action = "product:read"
	ActionProductCreate Action = "product:create"
	ActionProductUpdate Action = "product:update"
	ActionProductDelete Action = "product:delete"
	ActionMetricsRead   Action = "metrics:read"
	ActionUploadPresign Action = "upload:presign"
	ActionGenerateText  Action = "ai:generate"
	ActionUserManage    Action = "user:manage"
)

var permissions = map[Role]map[Action]bool{
	RoleViewer: {
		ActionProductRead:  true,
		ActionMetricsRead:  true,
		ActionGenerateText: true,
	},
	RoleEditor: {
		ActionProductRead:   true,
		ActionMetricsRead:   true,
		ActionGenerateText:  true,
		ActionProductCreate: true,
		ActionProductUpdate: true,
		ActionUploadPresign: true,
	},
	RoleAdmin: {
		ActionProductRead:   true,
		ActionMetricsRead:   true,
		ActionGenerateText:  true,
		ActionProductCreate: true,
		ActionProductUpdate: true,
		ActionUploadPresign: true,
		ActionProductDelete: true,
		ActionUserManage:    true,
	},
}

func Can(role Role, action Action) bool {
	return permissions[role][action]
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleViewer:
		return Role(s), nil
	}
	return "", errs.ErrClient
}
