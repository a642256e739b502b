package workflow

import (
	"testing"
	"time"

	"fieldops_completion/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestPlanSignal_SkipRules(t *testing.T) {
	p := entities.DefaultPolicy()
	removed := []entities.EquipmentItem{{ID: "EQ-1"}}
	wo := entities.WorkOrder{ID: "WO-1", ContractID: "C-1"}

	cases := []struct {
		name   string
		in     SignalPlanInput
		reason string
	}{
		{name: "already sent", in: SignalPlanInput{Order: wo, Removed: removed, AlreadySent: true}, reason: SignalSkipAlreadySent},
		{name: "certification handled", in: SignalPlanInput{Order: wo, Removed: removed, CertificationHandled: true}, reason: SignalSkipCertificationHandled},
		{name: "contract closed", in: SignalPlanInput{Order: entities.WorkOrder{ContractStatus: "20"}, Removed: removed}, reason: SignalSkipContractClosed},
		{name: "nothing implicated", in: SignalPlanInput{Order: wo}, reason: SignalSkipNothingImplicated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanSignal(p, tc.in)
			assert.False(t, plan.Send)
			assert.Equal(t, tc.reason, plan.SkipReason)
		})
	}

	t.Run("isp product alone is enough", func(t *testing.T) {
		plan := PlanSignal(p, SignalPlanInput{Order: entities.WorkOrder{ContractID: "C-1", ISPProductCode: "ISP1"}})
		assert.True(t, plan.Send)
		assert.Equal(t, entities.SignalMessageRemoval, plan.Request.MessageType)
	})
}

func TestPlanSignal_Variants(t *testing.T) {
	p := entities.DefaultPolicy()
	stb := []string{"LGHV1", "LGHV2"}
	removed := []entities.EquipmentItem{
		{ID: "MODEM-1", ItemMidCode: "02"},
		{ID: "STB-1", ItemMidCode: "04", CompositionClass: "23", CompositionID: "CMPS-9"},
	}

	t.Run("generic removal", func(t *testing.T) {
		wo := entities.WorkOrder{ContractID: "C-1", ProductCode: "CATV", VoIPProductCode: "VP1"}
		plan := PlanSignal(p, SignalPlanInput{Order: wo, Removed: removed, STBProducts: stb})
		assert.True(t, plan.Send)
		assert.Equal(t, entities.SignalMessageRemoval, plan.Request.MessageType)
		assert.Equal(t, "CMPS-9", plan.Request.EquipmentRef)
		assert.Equal(t, "C-1", plan.Request.VoIPJoinContractID)
		assert.Empty(t, plan.Request.AuxiliaryData)
		assert.Equal(t, "3", plan.Request.WaitTimeClass)
	})

	t.Run("equipment ref prefers product composition", func(t *testing.T) {
		wo := entities.WorkOrder{ContractID: "C-1", ProductCode: "CATV"}
		comp := []entities.EquipmentItem{{ID: "P-1", CompositionClass: "11", CompositionID: "CMPS-1"}, {ID: "P-2", CompositionClass: "23", CompositionID: "CMPS-2"}}
		plan := PlanSignal(p, SignalPlanInput{Order: wo, Removed: removed, ProductComposition: comp})
		assert.Equal(t, "CMPS-2", plan.Request.EquipmentRef)
	})

	t.Run("stb deletion attaches stb equipment", func(t *testing.T) {
		wo := entities.WorkOrder{ContractID: "C-1", ProductCode: "LGHV1", OldProductCode: "CATV"}
		plan := PlanSignal(p, SignalPlanInput{Order: wo, Removed: removed, STBProducts: stb})
		assert.True(t, plan.Send)
		assert.Equal(t, entities.SignalMessageSTBDelete, plan.Request.MessageType)
		assert.Equal(t, "STB-1", plan.Request.AuxiliaryData)
	})

	t.Run("stb family transfer on same contract is skipped", func(t *testing.T) {
		wo := entities.WorkOrder{ContractID: "C-1", OldContractID: "C-1", ProductCode: "LGHV1", OldProductCode: "LGHV2"}
		plan := PlanSignal(p, SignalPlanInput{Order: wo, Removed: removed, STBProducts: stb})
		assert.False(t, plan.Send)
		assert.Equal(t, SignalSkipSameContractTransfer, plan.SkipReason)
	})

	t.Run("stb family transfer to new contract sends without aux", func(t *testing.T) {
		wo := entities.WorkOrder{ContractID: "C-2", OldContractID: "C-1", ProductCode: "LGHV1", OldProductCode: "LGHV2"}
		plan := PlanSignal(p, SignalPlanInput{Order: wo, Removed: removed, STBProducts: stb})
		assert.True(t, plan.Send)
		assert.Equal(t, entities.SignalMessageSTBDelete, plan.Request.MessageType)
		assert.Empty(t, plan.Request.AuxiliaryData)
	})
}

func TestSignalSucceeded(t *testing.T) {
	assert.True(t, SignalSucceeded(entities.SignalResponse{Status: "SUCCESS"}))
	assert.True(t, SignalSucceeded(entities.SignalResponse{Status: "OK"}))
	assert.True(t, SignalSucceeded(entities.SignalResponse{Status: "FAIL", Message: "RESULT=TRUE CODE=000000"}))
	assert.False(t, SignalSucceeded(entities.SignalResponse{Status: "FAIL", Message: "RESULT=TRUE CODE=000123"}))
}

func TestClassifySignalFailure(t *testing.T) {
	p := entities.DefaultPolicy()
	voip := entities.WorkOrder{ProductGroup: "V"}

	t.Run("voip with disallowed code is blocking regardless of other flags", func(t *testing.T) {
		assert.Equal(t, entities.SignalBlockingFailure, ClassifySignalFailure(p, voip, "PROC_VOIP_KCT-001 line busy"))
		withOutage := voip
		withOutage.MSOOutage = true
		assert.Equal(t, entities.SignalBlockingFailure, ClassifySignalFailure(p, withOutage, "PROC_VOIP_KCT-001"))
	})

	t.Run("voip with allow-listed code falls through", func(t *testing.T) {
		assert.Equal(t, entities.SignalOverridableFailure, ClassifySignalFailure(p, voip, "PROC_VOIP_KCT-029 already released"))
	})

	t.Run("mso outage is blocking", func(t *testing.T) {
		assert.Equal(t, entities.SignalBlockingFailure, ClassifySignalFailure(p, entities.WorkOrder{MSOOutage: true}, "timeout"))
	})

	t.Run("anything else is overridable", func(t *testing.T) {
		assert.Equal(t, entities.SignalOverridableFailure, ClassifySignalFailure(p, entities.WorkOrder{ProductGroup: "C"}, "timeout"))
	})
}

func TestIsCertifiedAndHandOff(t *testing.T) {
	assert.False(t, IsCertified(nil, "C-1"))
	assert.False(t, IsCertified(&entities.CertResult{ContractID: "C-1", Error: "E"}, "C-1"))
	assert.False(t, IsCertified(&entities.CertResult{ContractID: "C-2"}, "C-1"))
	assert.True(t, IsCertified(&entities.CertResult{ContractID: "C-1"}, "C-1"))

	wo := entities.WorkOrder{ProductCode: "OLD", NewProductCode: "FIB1", ServiceOfficeID: "SO1", NewServiceOfficeID: "SO9"}
	assert.True(t, IsHandOff(wo, []string{"FIB1"}, []string{"SO9"}))
	assert.False(t, IsHandOff(wo, []string{"FIB1"}, []string{"SO1"}))
	assert.False(t, IsHandOff(wo, nil, []string{"SO9"}))
}

func TestDefaultASHopeAt(t *testing.T) {
	mid := time.Date(2024, 1, 15, 14, 3, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), DefaultASHopeAt(mid))

	lastWeek := time.Date(2024, 1, 26, 14, 3, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC), DefaultASHopeAt(lastWeek))

	assert.NoError(t, ValidateASHopeAt(DefaultASHopeAt(mid), mid))
	assert.ErrorIs(t, ValidateASHopeAt(time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC), mid), ErrASHopeInPast)
	assert.ErrorIs(t, ValidateASHopeAt(time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC), mid), ErrASHopeOutOfSlot)
	assert.ErrorIs(t, ValidateASHopeAt(time.Date(2024, 1, 20, 10, 5, 0, 0, time.UTC), mid), ErrASHopeOutOfSlot)
}
