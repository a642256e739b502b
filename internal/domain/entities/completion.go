package entities

import "time"

// FixedFields are the form fields entered on the completion screen.
type FixedFields struct {
	CustomerRelation string `json:"customer_relation"`
	NetworkClass     string `json:"network_class"`
	WiringMethod     string `json:"wiring_method"`
	InstallType      string `json:"install_type"`
	CompletionDate   string `json:"completion_date"`
	CustomerName     string `json:"customer_name"`
	CustomerPhone    string `json:"customer_phone"`
	Memo             string `json:"memo"`
}

// CompletionRequest is the single payload sent on commit.
type CompletionRequest struct {
	WorkOrderID     string               `json:"work_order_id"`
	ReceiptID       string               `json:"receipt_id"`
	CustomerID      string               `json:"customer_id"`
	ContractID      string               `json:"contract_id"`
	ServiceOfficeID string               `json:"service_office_id"`
	WorkCode        string               `json:"work_code"`
	WorkerID        string               `json:"worker_id"`
	Fixed           FixedFields          `json:"fixed"`
	Installed       []EquipmentItem      `json:"installed"`
	Removed         []EquipmentItem      `json:"removed"`
	ReuseAll        bool                 `json:"reuse_all"`
	HotbillStatus   HotbillStatus        `json:"hotbill_status"`
	RemovalLine     *RemovalLineDecision `json:"removal_line,omitempty"`
	SignalNote      string               `json:"signal_note,omitempty"`
}

type CompletionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CompletionOutcome reports a successful pipeline run.
type CompletionOutcome struct {
	WorkOrderID      string    `json:"work_order_id"`
	AttemptID        string    `json:"attempt_id"`
	Message          string    `json:"message"`
	Warnings         []string  `json:"warnings,omitempty"`
	PartialFailures  []string  `json:"partial_failures,omitempty"`
	ASTicketID       string    `json:"as_ticket_id,omitempty"`
	PostCommitErrors []string  `json:"post_commit_errors,omitempty"`
	Steps            []string  `json:"steps"`
	CompletedAt      time.Time `json:"completed_at"`
}

// SuspensionEdit is a staged suspension-period adjustment.
type SuspensionEdit struct {
	ContractID string `json:"contract_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days"`
	Committed  bool   `json:"committed"`
}

// Draft is the autosaved form state of an in-progress work order.
type Draft struct {
	WorkOrderID string         `json:"work_order_id"`
	Fields      map[string]any `json:"fields"`
	SavedAt     time.Time      `json:"saved_at"`
}
