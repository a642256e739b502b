package workflow

import (
	"slices"
	"strings"

	"fieldops_completion/internal/domain/entities"
)

// Reasons a signal is not sent.
const (
	SignalSkipAlreadySent          = "already_sent"
	SignalSkipCertificationHandled = "certification_handled"
	SignalSkipContractClosed       = "contract_closed"
	SignalSkipNothingImplicated    = "nothing_implicated"
	SignalSkipSameContractTransfer = "same_contract_stb_transfer"
)

// ProductComposition carries the composition rows of the removed product;
// the broadcast row's id becomes the equipment ref.
type SignalPlanInput struct {
	Order                entities.WorkOrder
	Removed              []entities.EquipmentItem
	ProductComposition   []entities.EquipmentItem
	Installed            []entities.EquipmentItem
	CustomerEquipment    []entities.EquipmentItem
	AlreadySent          bool
	CertificationHandled bool
	STBProducts          []string
}

type SignalPlan struct {
	Send       bool
	SkipReason string
	Request    entities.SignalRequest
}

// PlanSignal decides whether a downstream signal is needed and builds it.
func PlanSignal(p entities.Policy, in SignalPlanInput) SignalPlan {
	wo := in.Order
	switch {
	case in.AlreadySent:
		return SignalPlan{SkipReason: SignalSkipAlreadySent}
	case in.CertificationHandled:
		return SignalPlan{SkipReason: SignalSkipCertificationHandled}
	case p.ContractClosed(wo):
		return SignalPlan{SkipReason: SignalSkipContractClosed}
	case len(in.Removed) == 0 && len(in.Installed) == 0 && len(in.CustomerEquipment) == 0 && wo.ISPProductCode == "":
		return SignalPlan{SkipReason: SignalSkipNothingImplicated}
	}

	req := entities.SignalRequest{
		WorkOrderID:     wo.ID,
		MessageType:     entities.SignalMessageRemoval,
		CustomerID:      wo.CustomerID,
		ContractID:      wo.ContractID,
		ServiceOfficeID: wo.ServiceOfficeID,
		EquipmentRef:    broadcastCompositionID(p, in.ProductComposition, in.Removed),
		WaitTimeClass:   entities.SignalWaitTimeClass,
	}
	if wo.VoIPProductCode != "" {
		req.VoIPJoinContractID = wo.ContractID
	}

	if slices.Contains(in.STBProducts, wo.ProductCode) {
		req.MessageType = entities.SignalMessageSTBDelete
		if wo.OldProductCode != "" && slices.Contains(in.STBProducts, wo.OldProductCode) {
			if wo.OldContractID == "" || wo.OldContractID == wo.ContractID {
				return SignalPlan{SkipReason: SignalSkipSameContractTransfer}
			}
		} else {
			req.AuxiliaryData = stbEquipmentID(p, in.Removed)
		}
	}
	return SignalPlan{Send: true, Request: req}
}

// SignalSucceeded accepts SUCCESS/OK or a TRUE/000000 message.
func SignalSucceeded(resp entities.SignalResponse) bool {
	if resp.Status == "SUCCESS" || resp.Status == "OK" {
		return true
	}
	return strings.Contains(resp.Message, "TRUE") && strings.Contains(resp.Message, "000000")
}

// ClassifySignalFailure evaluates the blocking rules in priority order.
func ClassifySignalFailure(p entities.Policy, wo entities.WorkOrder, message string) entities.SignalResult {
	if p.IsVoIP(wo) && !containsAny(message, p.VoIPAllowedSignalErrors) {
		return entities.SignalBlockingFailure
	}
	if wo.MSOOutage {
		return entities.SignalBlockingFailure
	}
	return entities.SignalOverridableFailure
}

func broadcastCompositionID(p entities.Policy, lists ...[]entities.EquipmentItem) string {
	for _, items := range lists {
		for _, it := range items {
			if it.CompositionClass == p.BroadcastCompositionClass && it.CompositionID != "" {
				return it.CompositionID
			}
		}
	}
	return ""
}

func stbEquipmentID(p entities.Policy, removed []entities.EquipmentItem) string {
	for _, it := range removed {
		if it.ItemMidCode == p.STBItemMidCode {
			return it.ID
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
