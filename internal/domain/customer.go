package domain

// Customer is immutable for the duration of a session. Contact is the
// unique key used for loyalty lookups in the customer store.
type Customer struct {
	Name             string `json:"name"`
	Contact          string `json:"contact"`
	YearsWithCompany int    `json:"years_with_company"`
}
