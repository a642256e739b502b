package entities

import "slices"

// Policy holds the legacy code tables that gate the optional branches of a
// completion. Defaults match production; a YAML overlay may replace them.
type Policy struct {
	HotbillWorkCode              string   `yaml:"hotbill_work_code"`
	HotbillHiddenStatusCodes     []string `yaml:"hotbill_hidden_status_codes"`
	HotbillContractWorkClass     string   `yaml:"hotbill_contract_work_class"`
	HotbillSimulationWorkClass   string   `yaml:"hotbill_simulation_work_class"`
	RemovalLineKPIGroups         []string `yaml:"removal_line_kpi_groups"`
	RemovalLineExcludedVoIPCtx   []string `yaml:"removal_line_excluded_voip_contexts"`
	FiberOperatorLinkCodes       []string `yaml:"fiber_operator_link_codes"`
	CertifiedOfficeCodeGroup     string   `yaml:"certified_office_code_group"`
	VoIPProductGroups            []string `yaml:"voip_product_groups"`
	VoIPAllowedSignalErrors      []string `yaml:"voip_allowed_signal_errors"`
	ClosedContractStatuses       []string `yaml:"closed_contract_statuses"`
	EquipmentExemptProductGroups []string `yaml:"equipment_exempt_product_groups"`
	RemovalInstallTypeWorkCodes  []string `yaml:"removal_install_type_work_codes"`
	RemovalInstallType           string   `yaml:"removal_install_type"`
	CustomerContactWorkCodes     []string `yaml:"customer_contact_work_codes"`
	BroadcastCompositionClass    string   `yaml:"broadcast_composition_class"`
	STBItemMidCode               string   `yaml:"stb_item_mid_code"`
	ReuseMoveType                string   `yaml:"reuse_move_type"`
	ReuseWorkStatusCode          string   `yaml:"reuse_work_status_code"`
}

func DefaultPolicy() Policy {
	return Policy{
		HotbillWorkCode:              WorkCodeRemoval,
		HotbillHiddenStatusCodes:     []string{"7"},
		HotbillContractWorkClass:     "4",
		HotbillSimulationWorkClass:   "2",
		RemovalLineKPIGroups:         []string{"C", "D", "I"},
		RemovalLineExcludedVoIPCtx:   []string{"T", "R"},
		FiberOperatorLinkCodes:       []string{"F", "FG", "Z", "ZG"},
		CertifiedOfficeCodeGroup:     "CMIF006",
		VoIPProductGroups:            []string{"V"},
		VoIPAllowedSignalErrors:      []string{"PROC_VOIP_KCT-029"},
		ClosedContractStatuses:       []string{"20"},
		EquipmentExemptProductGroups: []string{"V"},
		RemovalInstallTypeWorkCodes:  []string{WorkCodeRelocateRemoval},
		RemovalInstallType:           "77",
		CustomerContactWorkCodes:     []string{WorkCodeRemoval},
		BroadcastCompositionClass:    "23",
		STBItemMidCode:               "04",
		ReuseMoveType:                "3",
		ReuseWorkStatusCode:          "2",
	}
}

// HotbillApplies reports whether the work order goes through the hotbill flow.
func (p Policy) HotbillApplies(wo WorkOrder) bool {
	return wo.WorkCode == p.HotbillWorkCode && !slices.Contains(p.HotbillHiddenStatusCodes, wo.WorkStatusCode)
}

func (p Policy) RemovalLineApplies(wo WorkOrder) bool {
	return slices.Contains(p.RemovalLineKPIGroups, wo.KPIProductGroup) &&
		!slices.Contains(p.RemovalLineExcludedVoIPCtx, wo.VoIPContext)
}

func (p Policy) IsFiberLink(wo WorkOrder) bool {
	return slices.Contains(p.FiberOperatorLinkCodes, wo.OperatorLinkCode)
}

// CertificationApplies requires a fiber-class product and either explicit
// certify mode or a fiber operator-link code.
func (p Policy) CertificationApplies(wo WorkOrder) bool {
	fiber := wo.CertificationTarget || p.IsFiberLink(wo)
	return fiber && (wo.CertifyMode || p.IsFiberLink(wo))
}

func (p Policy) IsVoIP(wo WorkOrder) bool {
	return slices.Contains(p.VoIPProductGroups, wo.ProductGroup)
}

func (p Policy) ContractClosed(wo WorkOrder) bool {
	return slices.Contains(p.ClosedContractStatuses, wo.ContractStatus)
}

func (p Policy) EquipmentExempt(wo WorkOrder) bool {
	return slices.Contains(p.EquipmentExemptProductGroups, wo.ProductGroup)
}

func (p Policy) RequiresRemovalInstallType(wo WorkOrder) bool {
	return slices.Contains(p.RemovalInstallTypeWorkCodes, wo.WorkCode)
}

func (p Policy) RequiresCustomerContact(wo WorkOrder) bool {
	return slices.Contains(p.CustomerContactWorkCodes, wo.WorkCode)
}

// DefaultReuse is the initial reuse flag for removed equipment when the
// contract is replaced during a move.
func (p Policy) DefaultReuse(wo WorkOrder) bool {
	return wo.MoveType == p.ReuseMoveType &&
		wo.WorkStatusCode == p.ReuseWorkStatusCode &&
		wo.OldContractID != "" &&
		wo.ContractID != wo.OldContractID
}
