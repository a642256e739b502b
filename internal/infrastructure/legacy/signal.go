package legacy

import (
	"context"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var _ interfaces.ISignalGateway = (*Client)(nil)

type signalRow struct {
	Status  string `json:"STATUS"`
	Message string `json:"MESSAGE"`
}

// SendSignal passes the legacy verdict through for classification. It is
// never retried.
func (c *Client) SendSignal(ctx context.Context, req entities.SignalRequest) (entities.SignalResponse, error) {
	env, err := c.write(ctx, pathSignalSend, map[string]string{
		"WRK_ID":            req.WorkOrderID,
		"MSG_ID":            req.MessageType,
		"CUST_ID":           req.CustomerID,
		"CTRT_ID":           req.ContractID,
		"SO_ID":             req.ServiceOfficeID,
		"EQT_NO":            req.EquipmentRef,
		"ETC_1":             req.AuxiliaryData,
		"VOIP_JOIN_CTRT_ID": req.VoIPJoinContractID,
		"WTIME":             req.WaitTimeClass,
	})
	if err != nil {
		return entities.SignalResponse{}, err
	}

	resp := entities.SignalResponse{Status: env.Code, Message: env.Message}
	if !env.ok() {
		return resp, nil
	}
	var row signalRow
	if err := decode(pathSignalSend, env, &row); err != nil {
		return entities.SignalResponse{}, err
	}
	resp.Status = statusSuccess
	if row.Status != "" {
		resp.Status = row.Status
		resp.Message = row.Message
	}
	return resp, nil
}

func (c *Client) ListSTBProducts(ctx context.Context) ([]string, error) {
	return c.cachedCodes(ctx, cacheKeySTBProds, func(ctx context.Context) ([]string, error) {
		return c.productList(ctx, pathSTBProdMap)
	})
}
