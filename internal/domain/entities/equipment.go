package entities

import (
	"sort"
	"time"
)

// Disposition tags where an item stands within one work order.
type Disposition string

const (
	DispositionContractOnly     Disposition = "contract-only"
	DispositionInstalled        Disposition = "installed"
	DispositionMarkedForRemoval Disposition = "marked-for-removal"
	DispositionRemovedConfirmed Disposition = "removed-confirmed"
)

// IsRemoval reports whether the item leaves the premises with this work order.
func (d Disposition) IsRemoval() bool {
	return d == DispositionMarkedForRemoval || d == DispositionRemovedConfirmed
}

// LossField names one of the per-item loss/damage flags.
type LossField string

const (
	LossFieldLost             LossField = "lost"
	LossFieldPartLossOrBroken LossField = "part_loss_or_broken"
	LossFieldBroken           LossField = "broken"
	LossFieldCableLost        LossField = "cable_lost"
	LossFieldCradleLost       LossField = "cradle_lost"
)

func (f LossField) Valid() bool {
	switch f {
	case LossFieldLost, LossFieldPartLossOrBroken, LossFieldBroken, LossFieldCableLost, LossFieldCradleLost:
		return true
	}
	return false
}

type LossFlags struct {
	Lost             bool `json:"lost"`
	PartLossOrBroken bool `json:"part_loss_or_broken"`
	Broken           bool `json:"broken"`
	CableLost        bool `json:"cable_lost"`
	CradleLost       bool `json:"cradle_lost"`
}

// Toggle flips one flag. Unknown fields are ignored.
func (l *LossFlags) Toggle(field LossField) {
	switch field {
	case LossFieldLost:
		l.Lost = !l.Lost
	case LossFieldPartLossOrBroken:
		l.PartLossOrBroken = !l.PartLossOrBroken
	case LossFieldBroken:
		l.Broken = !l.Broken
	case LossFieldCableLost:
		l.CableLost = !l.CableLost
	case LossFieldCradleLost:
		l.CradleLost = !l.CradleLost
	}
}

type EquipmentItem struct {
	ID               string      `json:"id"`
	SerialNo         string      `json:"serial_no"`
	MAC              string      `json:"mac"`
	ModelName        string      `json:"model_name"`
	ItemMidCode      string      `json:"item_mid_code"`
	CompositionClass string      `json:"composition_class"`
	CompositionID    string      `json:"composition_id"`
	ContractID       string      `json:"contract_id"`
	Disposition      Disposition `json:"disposition"`
	Loss             LossFlags   `json:"loss"`
	Reuse            bool        `json:"reuse"`
}

// EquipmentLists is a partial bulk update from the server. A nil list is
// left untouched.
type EquipmentLists struct {
	ContractEquipment []EquipmentItem `json:"contract_equipment"`
	TechnicianStock   []EquipmentItem `json:"technician_stock"`
	CustomerEquipment []EquipmentItem `json:"customer_equipment"`
	RemovalCandidates []EquipmentItem `json:"removal_candidates"`
	Removed           []EquipmentItem `json:"removed"`
}

// EquipmentRecord is the history row returned by the equipment lookup.
type EquipmentRecord struct {
	EquipmentID    string `json:"equipment_id"`
	SerialNo       string `json:"serial_no"`
	MAC            string `json:"mac"`
	ModelName      string `json:"model_name"`
	Status         string `json:"status"`
	LocationName   string `json:"location_name"`
	LastContractID string `json:"last_contract_id"`
}

// EquipmentAggregate is the per-work-order disposition state. Every
// mutation below touches only the field it addresses.
type EquipmentAggregate struct {
	WorkOrderID       string                     `json:"work_order_id"`
	ContractEquipment []EquipmentItem            `json:"contract_equipment"`
	TechnicianStock   []EquipmentItem            `json:"technician_stock"`
	CustomerEquipment []EquipmentItem            `json:"customer_equipment"`
	RemovalCandidates []EquipmentItem            `json:"removal_candidates"`
	Removed           []EquipmentItem            `json:"removed"`
	Installed         map[string][]EquipmentItem `json:"installed"`
	ReuseAll          bool                       `json:"reuse_all"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

func NewEquipmentAggregate(workOrderID string) *EquipmentAggregate {
	return &EquipmentAggregate{WorkOrderID: workOrderID, Installed: map[string][]EquipmentItem{}}
}

func (a *EquipmentAggregate) ApplyLists(l EquipmentLists) {
	if l.ContractEquipment != nil {
		a.ContractEquipment = withDisposition(l.ContractEquipment, DispositionContractOnly)
	}
	if l.TechnicianStock != nil {
		a.TechnicianStock = withDisposition(l.TechnicianStock, DispositionContractOnly)
	}
	if l.CustomerEquipment != nil {
		a.CustomerEquipment = withDisposition(l.CustomerEquipment, DispositionContractOnly)
	}
	if l.RemovalCandidates != nil {
		a.RemovalCandidates = withDisposition(l.RemovalCandidates, DispositionContractOnly)
	}
	if l.Removed != nil {
		a.Removed = withDisposition(l.Removed, DispositionRemovedConfirmed)
	}
}

// SetInstalled replaces the installed list for one contract.
func (a *EquipmentAggregate) SetInstalled(contractID string, items []EquipmentItem) {
	if a.Installed == nil {
		a.Installed = map[string][]EquipmentItem{}
	}
	a.Installed[contractID] = withDisposition(items, DispositionInstalled)
}

func (a *EquipmentAggregate) RemoveInstalled(contractID string) {
	delete(a.Installed, contractID)
}

// MarkForRemoval flags a customer item or removal candidate. It reports
// whether the item was found.
func (a *EquipmentAggregate) MarkForRemoval(itemID string) bool {
	it := a.findCandidate(itemID)
	if it == nil {
		return false
	}
	if it.Disposition != DispositionRemovedConfirmed {
		it.Disposition = DispositionMarkedForRemoval
		it.Reuse = a.ReuseAll
	}
	return true
}

func (a *EquipmentAggregate) Unmark(itemID string) bool {
	it := a.findCandidate(itemID)
	if it == nil {
		return false
	}
	if it.Disposition == DispositionMarkedForRemoval {
		it.Disposition = DispositionContractOnly
		it.Loss = LossFlags{}
		it.Reuse = false
	}
	return true
}

// ToggleLossFlag flips a flag on an item leaving the premises.
func (a *EquipmentAggregate) ToggleLossFlag(itemID string, field LossField) bool {
	it := a.findRemoval(itemID)
	if it == nil {
		return false
	}
	it.Loss.Toggle(field)
	return true
}

func (a *EquipmentAggregate) SetReuseAll(reuse bool) {
	a.ReuseAll = reuse
	for i := range a.Removed {
		a.Removed[i].Reuse = reuse
	}
	for _, list := range [][]EquipmentItem{a.CustomerEquipment, a.RemovalCandidates} {
		for i := range list {
			if list[i].Disposition.IsRemoval() {
				list[i].Reuse = reuse
			}
		}
	}
}

// RemovedItems returns confirmed removals followed by items marked in this
// session, without duplicates.
func (a *EquipmentAggregate) RemovedItems() []EquipmentItem {
	seen := map[string]bool{}
	out := make([]EquipmentItem, 0, len(a.Removed))
	add := func(it EquipmentItem) {
		if it.ID != "" && seen[it.ID] {
			return
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	for _, it := range a.Removed {
		add(it)
	}
	for _, list := range [][]EquipmentItem{a.CustomerEquipment, a.RemovalCandidates} {
		for _, it := range list {
			if it.Disposition.IsRemoval() {
				add(it)
			}
		}
	}
	return out
}

// InstalledItems flattens the installed lists ordered by contract id.
func (a *EquipmentAggregate) InstalledItems() []EquipmentItem {
	keys := make([]string, 0, len(a.Installed))
	for k := range a.Installed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []EquipmentItem
	for _, k := range keys {
		out = append(out, a.Installed[k]...)
	}
	return out
}

// HasDisposition reports whether anything is marked removed or installed.
// Equipment merely held by the customer is not a disposition.
func (a *EquipmentAggregate) HasDisposition() bool {
	return len(a.RemovedItems()) > 0 || len(a.InstalledItems()) > 0
}

func (a *EquipmentAggregate) findCandidate(itemID string) *EquipmentItem {
	for _, list := range [][]EquipmentItem{a.CustomerEquipment, a.RemovalCandidates} {
		for i := range list {
			if list[i].ID == itemID {
				return &list[i]
			}
		}
	}
	return nil
}

func (a *EquipmentAggregate) findRemoval(itemID string) *EquipmentItem {
	for i := range a.Removed {
		if a.Removed[i].ID == itemID {
			return &a.Removed[i]
		}
	}
	if it := a.findCandidate(itemID); it != nil && it.Disposition.IsRemoval() {
		return it
	}
	return nil
}

func withDisposition(items []EquipmentItem, d Disposition) []EquipmentItem {
	out := make([]EquipmentItem, len(items))
	for i, it := range items {
		if it.Disposition == "" || d != DispositionContractOnly {
			it.Disposition = d
		}
		out[i] = it
	}
	return out
}
