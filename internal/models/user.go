package models

// Credentials is the login request body. It is never persisted and never
// echoed back in any response.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Permissions is the set of capability flags attached to a session. Derived
// from the role once at login; immutable afterwards.
type Permissions struct {
	CanCreateOrder bool `json:"canCreateOrder"`
	CanEditOrder   bool `json:"canEditOrder"`
	CanViewOrders  bool `json:"canViewOrders"`
	CanPayOrder    bool `json:"canPayOrder"`
	CanViewReports bool `json:"canViewReports"`
	CanManageCash  bool `json:"canManageCash"`
}

// User is the authenticated identity carried by a session and returned from
// the login endpoint.
type User struct {
	ID          int         `json:"id"`
	Username    string      `json:"username"`
	FullName    string      `json:"full_name,omitempty"`
	StoreCode   string      `json:"store_code,omitempty"`
	Role        string      `json:"role"`
	Permissions Permissions `json:"permissions"`
}

// StaffRecord is a row returned by the store's verify_staff_login RPC.
type StaffRecord struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	StoreCode string `json:"store_code"`
	Role      string `json:"role"`
}
