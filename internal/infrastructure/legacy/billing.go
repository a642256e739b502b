package legacy

import (
	"context"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var _ interfaces.IBillingGateway = (*Client)(nil)

type billingSummaryRow struct {
	BillSeqNo    string `json:"BILL_SEQ_NO"`
	ProductGroup string `json:"PROD_GRP"`
	SOID         string `json:"SO_ID"`
	ReceiptID    string `json:"RCPT_ID"`
}

type billingContractRow struct {
	ContractID string `json:"CTRT_ID"`
	BillSeqNo  string `json:"BILL_SEQ_NO"`
	CalcWorkNo string `json:"CALC_WRK_NO"`
	Amount     int64  `json:"BILL_AMT"`
}

type chargeRow struct {
	Name     string `json:"CHRG_ITM_NM"`
	ItemCode string `json:"CHRG_ITM_CD"`
	Amount   int64  `json:"BILL_AMT"`
	Required string `json:"ESSN_YN"`
	SortNo   int    `json:"SORT_NO"`
}

type simulationRow struct {
	Status    string `json:"STATUS"`
	Message   string `json:"MESSAGE"`
	ReceiptID string `json:"RCPT_ID"`
}

func (c *Client) FetchBillingSummary(ctx context.Context, customerID, receiptID string) ([]entities.BillingDetail, error) {
	env, err := c.read(ctx, pathBillingSummary, map[string]string{
		"CUST_ID": customerID,
		"RCPT_ID": receiptID,
	})
	if err != nil {
		return nil, err
	}
	var rows []billingSummaryRow
	if err := decode(pathBillingSummary, env, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.BillingDetail, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.BillingDetail{
			BillSeqNo:       r.BillSeqNo,
			ProductGroup:    r.ProductGroup,
			ServiceOfficeID: r.SOID,
			ReceiptID:       r.ReceiptID,
		})
	}
	return out, nil
}

func (c *Client) FetchBillingByContract(ctx context.Context, q entities.BillingContractQuery) ([]entities.BillingContract, error) {
	env, err := c.read(ctx, pathBillingDetail, map[string]string{
		"QUERY_TP":    detailQueryByContract,
		"CUST_ID":     q.CustomerID,
		"RCPT_ID":     q.ReceiptID,
		"BILL_SEQ_NO": q.BillSeqNo,
		"PROD_GRP":    q.ProductGroup,
		"SO_ID":       q.ServiceOfficeID,
		"WRK_CL":      q.WorkClass,
	})
	if err != nil {
		return nil, err
	}
	var rows []billingContractRow
	if err := decode(pathBillingDetail, env, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.BillingContract, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.BillingContract(r))
	}
	return out, nil
}

func (c *Client) FetchBillingByCharge(ctx context.Context, q entities.BillingChargeQuery) ([]entities.ChargeLine, error) {
	env, err := c.read(ctx, pathBillingDetail, map[string]string{
		"QUERY_TP":    detailQueryByCharge,
		"BILL_SEQ_NO": q.BillSeqNo,
		"CALC_WRK_NO": q.CalcWorkNo,
		"CTRT_ID":     q.ContractID,
	})
	if err != nil {
		return nil, err
	}
	var rows []chargeRow
	if err := decode(pathBillingDetail, env, &rows); err != nil {
		return nil, err
	}

	out := make([]entities.ChargeLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.ChargeLine{
			Name:     r.Name,
			ItemCode: r.ItemCode,
			Amount:   r.Amount,
			Required: r.Required == "Y",
			SortKey:  r.SortNo,
		})
	}
	return out, nil
}

// RunBillingSimulation is not retried. A rejected simulation is returned as
// a result, not an error.
func (c *Client) RunBillingSimulation(ctx context.Context, req entities.SimulationRequest) (entities.SimulationResult, error) {
	env, err := c.write(ctx, pathBillingSimulate, map[string]string{
		"CUST_ID":    req.CustomerID,
		"CTRT_ID":    req.ContractID,
		"SO_ID":      req.ServiceOfficeID,
		"CALC_DT":    req.Date,
		"WRK_CL":     req.WorkClass,
		"PENALTY_YN": yn(!req.PenaltyExempt),
	})
	if err != nil {
		return entities.SimulationResult{}, err
	}

	res := entities.SimulationResult{Status: env.Code, Message: env.Message}
	if !env.ok() {
		return res, nil
	}
	var row simulationRow
	if err := decode(pathBillingSimulate, env, &row); err != nil {
		return entities.SimulationResult{}, err
	}
	res.Status = statusSuccess
	if row.Status != "" {
		res.Status = row.Status
		res.Message = row.Message
	}
	res.BillingSessionID = row.ReceiptID
	return res, nil
}
