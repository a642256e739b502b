package entities

import "time"

const dateKeyLayout = "20060102"

// WorkCode values that drive completion branching.
const (
	WorkCodeRemoval         = "02"
	WorkCodeRelocateRemoval = "08"
)

// WorkAddress is the installation address context carried into AS tickets.
type WorkAddress struct {
	PostID     string `json:"post_id"`
	BuildingID string `json:"building_id"`
	BuildingNo string `json:"building_no"`
	Detail     string `json:"detail"`
	Text       string `json:"text"`
}

// WorkOrder is owned by the host system. The orchestrator only reads it.
//
// Code fields keep the legacy backend's values (e.g. WorkCode "02" for
// removal) so they can be matched against the policy tables untouched.
type WorkOrder struct {
	ID                  string      `json:"id"`
	ReceiptID           string      `json:"receipt_id"`
	CustomerID          string      `json:"customer_id"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	ContractID          string      `json:"contract_id"`
	OldContractID       string      `json:"old_contract_id"`
	ServiceOfficeID     string      `json:"service_office_id"`
	WorkCode            string      `json:"work_code"`
	WorkStatusCode      string      `json:"work_status_code"`
	ProductCode         string      `json:"product_code"`
	OldProductCode      string      `json:"old_product_code"`
	ProductGroup        string      `json:"product_group"`
	KPIProductGroup     string      `json:"kpi_product_group"`
	VoIPContext         string      `json:"voip_context"`
	OperatorLinkCode    string      `json:"operator_link_code"`
	CertifyMode         bool        `json:"certify_mode"`
	CertificationTarget bool        `json:"certification_target"`
	NewProductCode      string      `json:"new_product_code"`
	NewServiceOfficeID  string      `json:"new_service_office_id"`
	ContractStatus      string      `json:"contract_status"`
	ISPProductCode      string      `json:"isp_product_code"`
	VoIPProductCode     string      `json:"voip_product_code"`
	MSOOutage           bool        `json:"mso_outage"`
	TerminationHopeDate string      `json:"termination_hope_date"`
	MoveType            string      `json:"move_type"`
	Address             WorkAddress `json:"address"`
}

// TargetProductCode is the product the contract moves to, falling back to
// the current product when no transfer is recorded.
func (w WorkOrder) TargetProductCode() string {
	if w.NewProductCode != "" {
		return w.NewProductCode
	}
	return w.ProductCode
}

// TargetServiceOfficeID is the post-transfer SO, falling back to the current one.
func (w WorkOrder) TargetServiceOfficeID() string {
	if w.NewServiceOfficeID != "" {
		return w.NewServiceOfficeID
	}
	return w.ServiceOfficeID
}

// DateKey formats t as the fixed-width YYYYMMDD key used by the legacy backend.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYYMMDD key in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, loc)
}
