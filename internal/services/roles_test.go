package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PizzaBo93/posapppizza/internal/models"
	"github.com/PizzaBo93/posapppizza/internal/services"
)

func TestPermissionsForStaff(t *testing.T) {
	perms := services.PermissionsFor("staff")

	assert.Equal(t, models.Permissions{CanCreateOrder: true}, perms)
}

func TestPermissionsForAdmin(t *testing.T) {
	perms := services.PermissionsFor("admin")

	assert.True(t, perms.CanCreateOrder)
	assert.True(t, perms.CanEditOrder)
	assert.True(t, perms.CanViewOrders)
	assert.True(t, perms.CanPayOrder)
	assert.True(t, perms.CanViewReports)
	assert.True(t, perms.CanManageCash)
}

func TestPermissionsForCashier(t *testing.T) {
	perms := services.PermissionsFor("cashier")

	assert.True(t, perms.CanPayOrder)
	assert.True(t, perms.CanManageCash)
	assert.False(t, perms.CanEditOrder)
	assert.False(t, perms.CanViewReports)
}

func TestPermissionsForUnknownRoleFallsBackToStaff(t *testing.T) {
	staff := services.PermissionsFor("staff")

	for _, role := range []string{"", "intern", "STAFF", "superadmin", "delivery"} {
		assert.Equal(t, staff, services.PermissionsFor(role), "role %q", role)
	}
}
