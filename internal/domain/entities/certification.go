package entities

// CertResult is the CL-08 binding for a contract.
type CertResult struct {
	ContractID string `json:"contract_id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// CertRegistration is the CL-06 response.
type CertRegistration struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type CertificationState struct {
	Applicable bool        `json:"applicable"`
	Queried    *CertResult `json:"queried"`
	Certified  bool        `json:"certified"`
	Registered bool        `json:"registered"`
	HandOff    bool        `json:"hand_off"`
	AttemptID  string      `json:"attempt_id,omitempty"`
}
