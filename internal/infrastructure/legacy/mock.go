package legacy

import (
	json "github.com/goccy/go-json"
)

// mockResponse answers every endpoint with a canned success so the service
// can run without the legacy backend (LEGACY_API_MOCK).
func (c *Client) mockResponse(endpoint string, payload []byte) envelope {
	req := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		if err := json.Unmarshal(payload, &req); err != nil {
			req = map[string]any{}
		}
	}
	str := func(key string) string {
		s, _ := req[key].(string)
		return s
	}

	var data any
	switch endpoint {
	case pathBillingSummary:
		data = []billingSummaryRow{}
	case pathBillingDetail:
		data = []any{}
	case pathBillingSimulate:
		data = simulationRow{Status: statusSuccess, Message: "mock simulation", ReceiptID: str("CUST_ID") + "-SIM"}
	case pathCertifyCL08:
		return envelope{Code: "NO_DATA", Message: "mock: no certification binding"}
	case pathCertifyProdMap, pathSTBProdMap:
		data = []prodRow{}
	case pathCommonCodes:
		data = []commonCodeRow{}
	case pathEquipmentHistory:
		data = []equipmentHistoryRow{}
	case pathSignalSend:
		data = signalRow{Status: statusSuccess, Message: "mock signal accepted"}
	case pathWorkComplete:
		data = completionRow{Status: statusSuccess, Message: "mock completion accepted"}
	}

	env := envelope{Code: statusSuccess, Message: "mock"}
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			c.log.Warnw("[legacy][client] mock response marshal failed", "endpoint", endpoint, "error", err)
			return env
		}
		env.Data = b
	}
	return env
}
