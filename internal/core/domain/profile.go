package domain

// BusinessProfile owns a ledger and the regime it is taxed under.
type BusinessProfile struct {
	ProfileID string       `json:"profileID"`
	OwnerID   string       `json:"ownerID"`
	Name      string       `json:"name"`
	INN       string       `json:"inn"`
	Regime    RegimeConfig `json:"regime"`
	AuditFields
}
