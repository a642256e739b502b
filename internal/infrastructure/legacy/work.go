package legacy

import (
	"context"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var _ interfaces.IWorkGateway = (*Client)(nil)

type completionRow struct {
	Status  string `json:"STATUS"`
	Message string `json:"MESSAGE"`
}

func (c *Client) RegisterRemovalLine(ctx context.Context, wo entities.WorkOrder, d entities.RemovalLineDecision) error {
	body := map[string]string{
		"WRK_ID":         wo.ID,
		"RCPT_ID":        wo.ReceiptID,
		"CUST_ID":        wo.CustomerID,
		"CTRT_ID":        wo.ContractID,
		"SO_ID":          wo.ServiceOfficeID,
		"REMOVE_LINE_TP": d.WiringType.LegacyCode(),
		"REMOVE_GB":      d.Outcome.LegacyCode(),
		"REMOVE_STAT":    "",
	}
	if d.Outcome == entities.OutcomeIncomplete {
		body["REMOVE_STAT"] = d.Reason.LegacyCode()
	}
	env, err := c.write(ctx, pathRemovalLine, body)
	if err != nil {
		return err
	}
	return decode(pathRemovalLine, env, nil)
}

func (c *Client) CreateASTicket(ctx context.Context, t entities.ASTicket) error {
	env, err := c.write(ctx, pathASReceipt, map[string]string{
		"AS_ID":       t.ID,
		"WRK_ID":      t.WorkOrderID,
		"CUST_ID":     t.CustomerID,
		"CTRT_ID":     t.ContractID,
		"SO_ID":       t.ServiceOfficeID,
		"RCPT_ID":     t.ReceiptID,
		"AS_RESN_CD":  t.DetailCode,
		"WRK_DTL_TCD": t.WorkDetailTypeCode,
		"RCPT_CL":     t.ReceiptClass,
		"CARRIER_ID":  t.CarrierID,
		"EMRGNCY_YN":  yn(t.Emergency),
		"HOLY_YN":     yn(t.Holiday),
		"HOPE_DTTM":   t.HopeAt.Format("200601021504"),
		"TEL_NO":      t.ContactPhone,
		"MEMO":        t.Memo,
		"POST_ID":     t.Address.PostID,
		"BLD_ID":      t.Address.BuildingID,
		"ADDR":        t.Address.Text,
		"REG_UID":     t.WorkerID,
	})
	if err != nil {
		return err
	}
	return decode(pathASReceipt, env, nil)
}

func (c *Client) AdjustSuspensionPeriod(ctx context.Context, e entities.SuspensionEdit) error {
	env, err := c.write(ctx, pathSuspension, map[string]any{
		"CTRT_ID":  e.ContractID,
		"SUS_STRT": e.StartDate,
		"SUS_END":  e.EndDate,
		"SUS_DAYS": e.Days,
	})
	if err != nil {
		return err
	}
	return decode(pathSuspension, env, nil)
}

// SubmitCompletion returns the legacy verdict as the response status; only
// transport failures are errors.
func (c *Client) SubmitCompletion(ctx context.Context, req entities.CompletionRequest) (entities.CompletionResponse, error) {
	env, err := c.write(ctx, pathWorkComplete, req)
	if err != nil {
		return entities.CompletionResponse{}, err
	}

	resp := entities.CompletionResponse{Status: env.Code, Message: env.Message}
	if !env.ok() {
		return resp, nil
	}
	var row completionRow
	if err := decode(pathWorkComplete, env, &row); err != nil {
		return entities.CompletionResponse{}, err
	}
	resp.Status = statusSuccess
	if row.Status != "" {
		resp.Status = row.Status
		resp.Message = row.Message
	}
	return resp, nil
}
