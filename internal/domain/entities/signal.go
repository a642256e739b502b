package entities

import "time"

type SignalResult string

const (
	SignalSuccess            SignalResult = "success"
	SignalBlockingFailure    SignalResult = "blocking-failure"
	SignalOverridableFailure SignalResult = "overridable-failure"
	SignalSkipped            SignalResult = "skipped"
)

const (
	SignalMessageRemoval   = "SMR05"
	SignalMessageSTBDelete = "STB_DEL"
	SignalWaitTimeClass    = "3"
)

type SignalRequest struct {
	WorkOrderID        string `json:"work_order_id"`
	MessageType        string `json:"message_type"`
	CustomerID         string `json:"customer_id"`
	ContractID         string `json:"contract_id"`
	ServiceOfficeID    string `json:"service_office_id"`
	EquipmentRef       string `json:"equipment_ref"`
	AuxiliaryData      string `json:"auxiliary_data"`
	VoIPJoinContractID string `json:"voip_join_contract_id"`
	WaitTimeClass      string `json:"wait_time_class"`
}

type SignalResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SignalAttempt struct {
	Sent        bool         `json:"sent"`
	Result      SignalResult `json:"result,omitempty"`
	MessageType string       `json:"message_type,omitempty"`
	Message     string       `json:"message,omitempty"`
	SkipReason  string       `json:"skip_reason,omitempty"`
	Overridden  bool         `json:"overridden"`
	AttemptedAt time.Time    `json:"attempted_at,omitempty"`
}
