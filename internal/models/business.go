package models

// Customer is the DB shape of a banking customer row.
type Customer struct {
	CustomerID string `db:"customer_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Segment    string `db:"segment"`
}

// Business is the DB shape of a business row. Nullable text columns map to
// empty strings; years_in_business stays a pointer because zero is meaningful.
type Business struct {
	BusinessID         string `db:"business_id"`
	CustomerID         string `db:"customer_id"`
	LegalName          string `db:"legal_name"`
	TradeName          string `db:"trade_name"`
	EntityType         string `db:"entity_type"`
	TaxID              string `db:"tax_id"`
	RegistrationNumber string `db:"registration_number"`
	IndustryCode       string `db:"industry_code"`
	Country            string `db:"country"`
	State              string `db:"state"`
	City               string `db:"city"`
	Address            string `db:"address"`
	YearsInBusiness    *int   `db:"years_in_business"`
}
