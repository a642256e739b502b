package entities

import "time"

type WiringType string

const (
	WiringTrunkShared   WiringType = "trunk-shared"
	WiringOneToOne      WiringType = "one-to-one"
	WiringSharedDrop    WiringType = "shared-drop"
	WiringDedicatedDrop WiringType = "dedicated-drop"
)

var wiringTypeCodes = map[WiringType]string{
	WiringTrunkShared:   "1",
	WiringOneToOne:      "2",
	WiringSharedDrop:    "3",
	WiringDedicatedDrop: "4",
}

func (w WiringType) Valid() bool {
	_, ok := wiringTypeCodes[w]
	return ok
}

// LegacyCode is the REMOVE_LINE_TP value.
func (w WiringType) LegacyCode() string {
	return wiringTypeCodes[w]
}

type RemovalOutcome string

const (
	OutcomeComplete   RemovalOutcome = "complete"
	OutcomeIncomplete RemovalOutcome = "incomplete"
)

func (o RemovalOutcome) Valid() bool {
	return o == OutcomeComplete || o == OutcomeIncomplete
}

// LegacyCode is the REMOVE_GB value.
func (o RemovalOutcome) LegacyCode() string {
	if o == OutcomeIncomplete {
		return "1"
	}
	return "4"
}

type IncompleteReason string

const (
	ReasonAccessDenied   IncompleteReason = "access-denied"
	ReasonUpperFloorSolo IncompleteReason = "upper-floor-solo"
	ReasonSpecialZone    IncompleteReason = "special-zone"
)

var reasonCodes = map[IncompleteReason]struct{ stat, asDetail string }{
	ReasonAccessDenied:   {"5", "JHA"},
	ReasonUpperFloorSolo: {"6", "JHB"},
	ReasonSpecialZone:    {"7", "JHC"},
}

func (r IncompleteReason) Valid() bool {
	_, ok := reasonCodes[r]
	return ok
}

// LegacyCode is the REMOVE_STAT value.
func (r IncompleteReason) LegacyCode() string {
	return reasonCodes[r].stat
}

// ASDetailCode is the AS ticket detail code raised for this reason.
func (r IncompleteReason) ASDetailCode() string {
	return reasonCodes[r].asDetail
}

// RemovalLineStatus is the state of the removal-line decision tree.
type RemovalLineStatus string

const (
	RemovalLineEditing    RemovalLineStatus = "editing"
	RemovalLineCompleted  RemovalLineStatus = "completed"
	RemovalLineASCapture  RemovalLineStatus = "as_capture"
	RemovalLineASAssigned RemovalLineStatus = "as_assigned"
)

type RemovalLineDecision struct {
	WiringType WiringType       `json:"wiring_type"`
	Outcome    RemovalOutcome   `json:"outcome"`
	Reason     IncompleteReason `json:"reason,omitempty"`
	Resolved   bool             `json:"resolved"`
	DecidedAt  time.Time        `json:"decided_at,omitempty"`
}

// AS ticket constants used by the legacy receipt endpoint.
const (
	ASWorkDetailTypeCode = "0380"
	ASReceiptClass       = "JH"
	ASCarrierID          = "01"
)

// ASTicket is staged by the removal-line tree and created after commit.
type ASTicket struct {
	ID                 string      `json:"id"`
	WorkOrderID        string      `json:"work_order_id"`
	CustomerID         string      `json:"customer_id"`
	ContractID         string      `json:"contract_id"`
	ServiceOfficeID    string      `json:"service_office_id"`
	ReceiptID          string      `json:"receipt_id"`
	DetailCode         string      `json:"detail_code"`
	WorkDetailTypeCode string      `json:"work_detail_type_code"`
	ReceiptClass       string      `json:"receipt_class"`
	CarrierID          string      `json:"carrier_id"`
	Emergency          bool        `json:"emergency"`
	Holiday            bool        `json:"holiday"`
	HopeAt             time.Time   `json:"hope_at"`
	ContactPhone       string      `json:"contact_phone"`
	Memo               string      `json:"memo"`
	Address            WorkAddress `json:"address"`
	WorkerID           string      `json:"worker_id,omitempty"`
	StagedAt           time.Time   `json:"staged_at"`
}

// RemovalLineSnapshot is the read model of the decision tree.
type RemovalLineSnapshot struct {
	Applicable   bool                `json:"applicable"`
	Status       RemovalLineStatus   `json:"status"`
	Decision     RemovalLineDecision `json:"decision"`
	CanComplete  bool                `json:"can_complete"`
	CanAssignAS  bool                `json:"can_assign_as"`
	StagedTicket *ASTicket           `json:"staged_ticket,omitempty"`
	Registered   bool                `json:"registered"`
}
