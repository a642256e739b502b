package legacy

import (
	"context"
	"strings"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var _ interfaces.ICertificationGateway = (*Client)(nil)

type certRow struct {
	ContractID string `json:"CTRT_ID"`
	CustomerID string `json:"CUST_ID"`
	Status     string `json:"STATUS"`
	Error      string `json:"ERROR"`
}

type prodRow struct {
	ProductCode string `json:"PROD_CD"`
}

type commonCodeRow struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// QueryCertification reports a legacy rejection in CertResult.Error.
func (c *Client) QueryCertification(ctx context.Context, contractID, customerID, serviceOfficeID string) (entities.CertResult, error) {
	env, err := c.read(ctx, pathCertifyCL08, map[string]string{
		"CTRT_ID": contractID,
		"CUST_ID": customerID,
		"SO_ID":   serviceOfficeID,
	})
	if err != nil {
		return entities.CertResult{}, err
	}
	if !env.ok() {
		return entities.CertResult{Status: env.Code, Error: env.Message}, nil
	}
	var row certRow
	if err := decode(pathCertifyCL08, env, &row); err != nil {
		return entities.CertResult{}, err
	}
	return entities.CertResult(row), nil
}

func (c *Client) RegisterCertificationTermination(ctx context.Context, contractID, customerID, serviceOfficeID string) (entities.CertRegistration, error) {
	env, err := c.write(ctx, pathCertifyCL06, map[string]string{
		"CTRT_ID": contractID,
		"CUST_ID": customerID,
		"SO_ID":   serviceOfficeID,
		"PROC_TP": "TERM",
	})
	if err != nil {
		return entities.CertRegistration{}, err
	}
	if !env.ok() {
		msg := env.Message
		if msg == "" {
			msg = env.Code
		}
		return entities.CertRegistration{Status: env.Code, Error: msg}, nil
	}
	return entities.CertRegistration{Status: statusSuccess}, nil
}

func (c *Client) ListCertifiedProducts(ctx context.Context) ([]string, error) {
	return c.cachedCodes(ctx, cacheKeyCertifiedProds, func(ctx context.Context) ([]string, error) {
		return c.productList(ctx, pathCertifyProdMap)
	})
}

func (c *Client) ListCertifiedOffices(ctx context.Context) ([]string, error) {
	return c.cachedCodes(ctx, "common_codes:"+c.codeGroup, func(ctx context.Context) ([]string, error) {
		env, err := c.read(ctx, pathCommonCodes, map[string]string{"CODE_GROUP": c.codeGroup})
		if err != nil {
			return nil, err
		}
		var rows []commonCodeRow
		if err := decode(pathCommonCodes, env, &rows); err != nil {
			return nil, err
		}
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			if code := strings.TrimSpace(r.Code); code != "" {
				out = append(out, code)
			}
		}
		return out, nil
	})
}

func (c *Client) productList(ctx context.Context, endpoint string) ([]string, error) {
	env, err := c.read(ctx, endpoint, map[string]string{})
	if err != nil {
		return nil, err
	}
	var rows []prodRow
	if err := decode(endpoint, env, &rows); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if code := strings.TrimSpace(r.ProductCode); code != "" {
			out = append(out, code)
		}
	}
	return out, nil
}
