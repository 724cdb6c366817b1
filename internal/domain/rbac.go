package domain

// EnforceRequest asks whether any of the subject's roles may perform
// Action on Resource inside Tenant.
type EnforceRequest struct {
	UserID   string   `json:"user_id" binding:"required"`
	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
	Resource string   `json:"resource" binding:"required"`
	Action   string   `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
