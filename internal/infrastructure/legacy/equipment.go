package legacy

import (
	"context"

	"fieldops_completion/internal/domain/entities"
	"fieldops_completion/internal/usecase/interfaces"
)

var _ interfaces.IEquipmentLookupGateway = (*Client)(nil)

type equipmentHistoryRow struct {
	EquipmentID    string `json:"EQT_NO"`
	SerialNo       string `json:"EQT_SERNO"`
	MAC            string `json:"MAC_ADDRESS"`
	ModelName      string `json:"EQT_CL_NM"`
	Status         string `json:"EQT_STAT_CD_NM"`
	LocationName   string `json:"EQT_LOC_NM"`
	LastContractID string `json:"CTRT_ID"`
}

// LookupEquipmentHistory returns nil when the legacy side has no record.
func (c *Client) LookupEquipmentHistory(ctx context.Context, serialNo, mac string) (*entities.EquipmentRecord, error) {
	env, err := c.read(ctx, pathEquipmentHistory, map[string]string{
		"EQT_SERNO":   serialNo,
		"MAC_ADDRESS": mac,
	})
	if err != nil {
		return nil, err
	}
	var rows []equipmentHistoryRow
	if err := decode(pathEquipmentHistory, env, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec := entities.EquipmentRecord(rows[0])
	return &rec, nil
}
