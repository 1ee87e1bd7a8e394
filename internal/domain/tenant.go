package domain

// Tenant 租客记录（归一化后）
type Tenant struct {
	TenantID    string `json:"tenant_id"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	UnitName    string `json:"unit_name"`
	AgreementNo string `json:"agreement_no"`
	LeaseStart  string `json:"lease_start"`
	LeaseEnd    string `json:"lease_end"`
	RentAmount  int    `json:"rent_amount"`
	IsActive    bool   `json:"is_active"`
}
