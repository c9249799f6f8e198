package rbac

// RolePermissions is the default role grant table for the gateway.
var RolePermissions = map[string][]string{
	"admin": {"*"},
	"student": {
		"bank:view",
		"session:*",
		"results:view-own",
	},
}
