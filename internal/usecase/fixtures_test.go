package usecase

import (
	"testing"
	"time"

	"fieldops_completion/internal/domain/entities"
)

var kst = time.FixedZone("KST", 9*60*60)

func testClock() Clock {
	return FixedClock(time.Date(2024, 1, 15, 10, 0, 0, 0, kst))
}

func removalOrder(id string) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                  id,
		ReceiptID:           "RCPT-" + id,
		CustomerID:          "CUST-1",
		CustomerName:        "Kim",
		CustomerPhone:       "010-0000-0000",
		ContractID:          "CTRT-1",
		ServiceOfficeID:     "SO-1",
		WorkCode:            entities.WorkCodeRemoval,
		WorkStatusCode:      "1",
		ProductCode:         "CATV",
		ProductGroup:        "C",
		KPIProductGroup:     "A",
		TerminationHopeDate: "20240115",
	}
}

func openTestSession(t *testing.T, reg *SessionRegistry, wo entities.WorkOrder) *WorkSession {
	t.Helper()
	u := &WorkOrderUseCase{policy: entities.DefaultPolicy(), clock: testClock()}
	s, _, err := reg.Open(wo.ID, func() *WorkSession { return u.newSession(wo) })
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

func validFixed() entities.FixedFields {
	return entities.FixedFields{
		CustomerRelation: "01",
		NetworkClass:     "HFC",
		WiringMethod:     "01",
		InstallType:      "01",
		CompletionDate:   "20240115",
	}
}
