package services

import "github.com/PizzaBo93/posapppizza/internal/models"

// rolePermissions is the static role policy table. Loaded once, never
// mutated at runtime.
var rolePermissions = map[string]models.Permissions{
	"staff": {
		CanCreateOrder: true,
	},
	"cashier": {
		CanCreateOrder: true,
		CanViewOrders:  true,
		CanPayOrder:    true,
		CanManageCash:  true,
	},
	"manager": {
		CanCreateOrder: true,
		CanEditOrder:   true,
		CanViewOrders:  true,
		CanPayOrder:    true,
		CanViewReports: true,
		CanManageCash:  true,
	},
	"admin": {
		CanCreateOrder: true,
		CanEditOrder:   true,
		CanViewOrders:  true,
		CanPayOrder:    true,
		CanViewReports: true,
		CanManageCash:  true,
	},
}

// PermissionsFor resolves a role name to its permission set. Any role not in
// the table gets the "staff" entry, so the function is total over strings.
func PermissionsFor(role string) models.Permissions {
	if perms, ok := rolePermissions[role]; ok {
		return perms
	}
	return rolePermissions["staff"]
}
