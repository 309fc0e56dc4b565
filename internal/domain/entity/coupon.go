package entity

// Coupon is one promotional record from the catalog spreadsheet. Fields are
// published as-is; nothing validates their presence or shape before use.
type Coupon struct {
	Title       string
	Description string
	Code        string
	Countries   string
	Note        string
	Link        string
	Image       string
}
