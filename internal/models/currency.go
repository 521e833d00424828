package models

// Currency mirrors a row of the currencies table.
type Currency struct {
	ID       string `db:"id"`        // UUID
	Code     string `db:"code"`      // e.g. "USD", unique
	FullName string `db:"full_name"` // e.g. "US Dollar"
	Sign     string `db:"sign"`      // e.g. "$"
	AuditFields
}
