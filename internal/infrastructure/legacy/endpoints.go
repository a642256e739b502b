package legacy

// Legacy endpoint paths.
const (
	pathBillingSummary     = "/hotbill/summary"
	pathBillingDetail      = "/hotbill/detail"
	pathBillingSimulate    = "/hotbill/simulate"
	pathRemovalLine        = "/customer/work/insertWorkRemoveStat"
	pathASReceipt          = "/customer/work/modAsPdaReceipt"
	pathSuspension         = "/customer/etc/modMmtSusInfo"
	pathWorkComplete       = "/customer/work/workComplete"
	pathCertifyCL08        = "/customer/etc/getCertifyCL08"
	pathCertifyCL06        = "/customer/etc/setCertifyCL06"
	pathCertifyProdMap     = "/customer/work/getCertifyProdMap"
	pathCommonCodes        = "/common/getCommonCodes"
	pathSignalSend         = "/signal/send"
	pathSTBProdMap         = "/customer/work/getLghvProdMap"
	pathEquipmentHistory   = "/statistics/equipment/getEquipmentHistoryInfo"
	detailQueryByContract  = "CTRT"
	detailQueryByCharge    = "CHRG"
	cacheKeyCertifiedProds = "certified_products"
	cacheKeySTBProds       = "stb_products"
)

// statusSuccess is reported for a success envelope that carries no status of its own.
const statusSuccess = "SUCCESS"

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
