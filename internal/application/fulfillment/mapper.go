package fulfillment

import (
	"strings"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

func toWorkflowResponse(w *entity.OrderWorkflow, withItems bool) *dto.WorkflowResponse {
	out := &dto.WorkflowResponse{
		ID:                   w.ID,
		OrderNumber:          w.OrderNumber,
		Status:               w.Status,
		AssignedPickerUserID: w.AssignedPickerUserID,
		StartedAt:            w.StartedAt,
		LoadingStartedAt:     w.LoadingStartedAt,
		LoadedAt:             w.LoadedAt,
		DispatchedAt:         w.DispatchedAt,
		DispatchedByUserID:   w.DispatchedByUserID,
		DeliveryNoteNo:       w.DeliveryNoteNo,
		LastActionAt:         w.LastActionAt,
	}
	if withItems {
		out.Items = make([]dto.WorkflowItemResponse, 0, len(w.Items))
		for _, it := range w.Items {
			out.Items = append(out.Items, toItemResponse(it))
		}
	}
	return out
}

func toItemResponse(it *entity.WorkflowItem) dto.WorkflowItemResponse {
	return dto.WorkflowItemResponse{
		LineKey:       it.LineKey,
		ProductCode:   it.ProductCode,
		ProductName:   it.ProductName,
		RequestedQty:  it.RequestedQty,
		DeliveredQty:  it.DeliveredQty,
		RemainingQty:  it.RemainingQty,
		PickedQty:     it.PickedQty,
		ExtraQty:      it.ExtraQty,
		ShortageQty:   it.ShortageQty,
		StockSnapshot: it.StockSnapshot,
		ShelfCode:     it.ShelfCode,
		ImageURL:      it.ImageURL,
		Status:        it.Status,
	}
}

func toTransport(in dto.TransportRequest) entity.TransportInfo {
	return entity.TransportInfo{
		DriverName:   strings.TrimSpace(in.DriverName),
		DriverID:     strings.TrimSpace(in.DriverID),
		VehiclePlate: strings.ToUpper(strings.TrimSpace(in.VehiclePlate)),
		TrailerPlate: strings.ToUpper(strings.TrimSpace(in.TrailerPlate)),
		CarrierName:  strings.TrimSpace(in.CarrierName),
		Note:         strings.TrimSpace(in.Note),
	}
}

func toDispatchResponse(rec *entity.DispatchRecord, w *entity.OrderWorkflow) *dto.DispatchResponse {
	out := &dto.DispatchResponse{
		DocumentNo:     rec.DocumentNo,
		WorkflowStatus: w.Status,
		DispatchedAt:   rec.DispatchedAt,
		NetTotal:       rec.NetTotal,
		VATTotal:       rec.VATTotal,
		GrandTotal:     rec.GrandTotal,
		Lines:          make([]dto.DispatchLineResponse, 0, len(rec.Lines)),
	}
	for _, l := range rec.Lines {
		line := dto.DispatchLineResponse{
			LineKey:      l.LineKey,
			ProductCode:  l.ProductCode,
			DeliveredQty: l.Quantity,
			UnitPrice:    l.UnitPrice,
			VATRate:      l.VATRate,
			NetAmount:    l.NetAmount,
			VATAmount:    l.VATAmount,
		}
		if it := w.ItemByKey(l.LineKey); it != nil {
			line.RemainingQty = it.RemainingQty
		}
		out.Lines = append(out.Lines, line)
	}
	return out
}

func toReservationDTO(r entity.Reservation) dto.ReservationDTO {
	return dto.ReservationDTO{
		OrderNumber:    r.OrderNumber,
		RowNumber:      r.RowNumber,
		CustomerCode:   r.CustomerCode,
		CustomerName:   r.CustomerName,
		WarehouseCode:  r.WarehouseCode,
		ActiveQty:      r.ActiveQty,
		IsCurrentOrder: r.IsCurrentOrder,
		IsCurrentLine:  r.IsCurrentLine,
	}
}

func toImageIssueResponse(r *entity.ImageIssueReport) *dto.ImageIssueResponse {
	return &dto.ImageIssueResponse{
		ID:               r.ID,
		OrderNumber:      r.OrderNumber,
		LineKey:          r.LineKey,
		ProductCode:      r.ProductCode,
		ProductName:      r.ProductName,
		ImageURL:         r.ImageURL,
		Note:             r.Note,
		Status:           r.Status,
		ReportedByUserID: r.ReportedByUserID,
		ReportedByName:   r.ReportedByName,
		ReviewedByUserID: r.ReviewedByUserID,
		ReviewNote:       r.ReviewNote,
		ReviewedAt:       r.ReviewedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toShelfResponse(s *entity.ShelfLocation) *dto.ShelfResponse {
	return &dto.ShelfResponse{
		ProductCode: s.ProductCode,
		ShelfCode:   s.ShelfCode,
		UpdatedBy:   s.UpdatedBy,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toDeliveryNoteSummary(rec *entity.DispatchRecord) dto.DeliveryNoteSummary {
	return dto.DeliveryNoteSummary{
		DocumentNo:         rec.DocumentNo,
		OrderNumber:        rec.OrderNumber,
		CustomerCode:       rec.CustomerCode,
		DispatchedAt:       rec.DispatchedAt,
		DispatchedByUserID: rec.DispatchedByUserID,
		VehiclePlate:       rec.Transport.VehiclePlate,
		LineCount:          len(rec.Lines),
		GrandTotal:         rec.GrandTotal,
	}
}
