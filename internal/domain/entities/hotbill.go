package entities

import "sort"

// HotbillStatus is the state of the early-termination billing flow.
type HotbillStatus string

const (
	HotbillLoading           HotbillStatus = "loading"
	HotbillNotApplicable     HotbillStatus = "not_applicable"
	HotbillNormalPending     HotbillStatus = "normal_pending"
	HotbillNormalConfirmed   HotbillStatus = "normal_confirmed"
	HotbillRecalcNeeded      HotbillStatus = "recalc_needed"
	HotbillRecalcInProgress  HotbillStatus = "recalc_in_progress"
	HotbillRecalcDonePending HotbillStatus = "recalc_done_pending"
	HotbillRecalcConfirmed   HotbillStatus = "recalc_confirmed"
	HotbillRecalcSkipped     HotbillStatus = "recalc_skipped"
	HotbillError             HotbillStatus = "error"
)

// Ready reports whether the status satisfies the completion gate.
func (s HotbillStatus) Ready() bool {
	switch s {
	case HotbillNormalConfirmed, HotbillRecalcConfirmed, HotbillRecalcSkipped, HotbillNotApplicable:
		return true
	}
	return false
}

type ChargeLine struct {
	Name     string `json:"name"`
	ItemCode string `json:"item_code"`
	Amount   int64  `json:"amount"`
	Required bool   `json:"required"`
	SortKey  int    `json:"sort_key"`
}

// BillableChargeLines keeps lines with a positive amount or a required flag,
// ordered by SortKey. Equal keys keep their input order.
func BillableChargeLines(lines []ChargeLine) []ChargeLine {
	out := make([]ChargeLine, 0, len(lines))
	for _, l := range lines {
		if l.Amount > 0 || l.Required {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortKey < out[j].SortKey })
	return out
}

func ChargeTotal(lines []ChargeLine) int64 {
	var total int64
	for _, l := range BillableChargeLines(lines) {
		total += l.Amount
	}
	return total
}

// BillingDetail is one row of the hotbill summary.
type BillingDetail struct {
	BillSeqNo       string `json:"bill_seq_no"`
	ProductGroup    string `json:"product_group"`
	ServiceOfficeID string `json:"service_office_id"`
	ReceiptID       string `json:"receipt_id"`
}

// BillingContract is one row of the per-contract hotbill breakdown.
type BillingContract struct {
	ContractID string `json:"contract_id"`
	BillSeqNo  string `json:"bill_seq_no"`
	CalcWorkNo string `json:"calc_work_no"`
	Amount     int64  `json:"amount"`
}

type BillingContractQuery struct {
	CustomerID      string
	ReceiptID       string
	BillSeqNo       string
	ProductGroup    string
	ServiceOfficeID string
	WorkClass       string
}

type BillingChargeQuery struct {
	BillSeqNo  string
	CalcWorkNo string
	ContractID string
}

type SimulationRequest struct {
	CustomerID      string
	ContractID      string
	ServiceOfficeID string
	Date            string
	WorkClass       string
	PenaltyExempt   bool
}

type SimulationResult struct {
	Status           string
	Message          string
	BillingSessionID string
}

// HotbillSnapshot is the read model of the hotbill flow for one work order.
type HotbillSnapshot struct {
	Status             HotbillStatus `json:"status"`
	Applicable         bool          `json:"applicable"`
	HasHistory         bool          `json:"has_history"`
	TargetDate         string        `json:"target_date"`
	Today              string        `json:"today"`
	NeedsRecalculation bool          `json:"needs_recalculation"`
	FutureDated        bool          `json:"future_dated"`
	RecalcIntent       bool          `json:"recalc_intent"`
	ContractID         string        `json:"contract_id,omitempty"`
	ChargeLines        []ChargeLine  `json:"charge_lines"`
	Total              int64         `json:"total"`
	BillingSessionID   string        `json:"billing_session_id,omitempty"`
	LastError          string        `json:"last_error,omitempty"`
	Confirmed          bool          `json:"confirmed"`
	Ready              bool          `json:"ready"`
}
