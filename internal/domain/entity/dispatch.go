package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransportInfo datos de transporte que viajan en la irsaliye (conductor, vehículo, transportista).
type TransportInfo struct {
	DriverName   string `json:"driverName"`
	DriverID     string `json:"driverId"`
	VehiclePlate string `json:"vehiclePlate"`
	TrailerPlate string `json:"trailerPlate,omitempty"`
	CarrierName  string `json:"carrierName,omitempty"`
	Note         string `json:"note,omitempty"`
}

// DispatchRecord copia local de la irsaliye escrita en el ERP.
type DispatchRecord struct {
	ID                 string
	WorkflowID         string
	OrderNumber        string
	CustomerCode       string
	CustomerName       string
	DocumentNo         string // <serie>-<secuencia>
	Series             string
	Sequence           int64
	Transport          TransportInfo
	DispatchedByUserID string
	DispatchedAt       time.Time
	NetTotal           decimal.Decimal
	VATTotal           decimal.Decimal
	GrandTotal         decimal.Decimal
	Lines              []DispatchRecordLine
}

// DispatchRecordLine línea despachada con su enlace al movimiento del ERP.
type DispatchRecordLine struct {
	LineKey       string
	ProductCode   string
	ProductName   string
	Unit          string
	RowNumber     int
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	VATRate       decimal.Decimal
	NetAmount     decimal.Decimal
	VATAmount     decimal.Decimal
	MovementGUID  string
	MovementRowNo int
}
