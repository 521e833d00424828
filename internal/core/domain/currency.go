package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	ID       string `json:"id"`
	Code     string `json:"code"`     // ISO 4217, e.g. "USD"
	FullName string `json:"name"`     // e.g. "US Dollar"
	Sign     string `json:"sign"`     // e.g. "$"
	AuditFields
}
