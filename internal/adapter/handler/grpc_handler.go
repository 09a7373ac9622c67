package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/ticket-inventory/internal/adapter/handler/pb"
	"github.com/rl1809/ticket-inventory/internal/core/domain"
	"github.com/rl1809/ticket-inventory/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedTicketServiceServer
	purchases *service.PurchaseService
	tickets   *service.TicketService
}

func NewGRPCHandler(purchases *service.PurchaseService, tickets *service.TicketService) *GRPCHandler {
	return &GRPCHandler{purchases: purchases, tickets: tickets}
}

func (h *GRPCHandler) CheckAvailability(ctx context.Context, req *pb.AvailabilityRequest) (*pb.AvailabilityResponse, error) {
	avail, err := h.tickets.CheckAvailability(ctx, req.GetTicketId())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "ticket not found")
		}
		return nil, status.Error(codes.Unavailable, "storage unavailable")
	}

	return &pb.AvailabilityResponse{
		TicketId:          avail.TicketID,
		AvailableQuantity: int32(avail.AvailableQuantity),
		Available:         avail.Available,
	}, nil
}

func (h *GRPCHandler) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	receipt, err := h.purchases.Purchase(ctx, domain.PurchaseRequest{
		TicketID: req.GetTicketId(),
		Quantity: int(req.GetQuantity()),
	})
	if err != nil {
		var valErr *domain.ValidationError
		var stockErr *domain.InsufficientStockError

		switch {
		case errors.As(err, &valErr):
			return &pb.PurchaseResponse{Success: false, Message: valErr.Error()}, nil
		case errors.As(err, &stockErr):
			return &pb.PurchaseResponse{Success: false, Message: stockErr.Error()}, nil
		case errors.Is(err, domain.ErrNotFound):
			return nil, status.Error(codes.NotFound, "ticket not found")
		case errors.Is(err, domain.ErrConflict):
			return &pb.PurchaseResponse{Success: false, Message: "purchase conflict, please retry"}, nil
		default:
			return nil, status.Error(codes.Unavailable, "storage unavailable")
		}
	}

	return &pb.PurchaseResponse{
		Success: true,
		Message: "purchase committed",
		Receipt: &pb.Receipt{
			PurchaseId:         receipt.PurchaseID,
			TicketId:           receipt.TicketID,
			TicketType:         receipt.TicketType,
			QuantityPurchased:  int32(receipt.QuantityPurchased),
			UnitPrice:          receipt.UnitPrice.InexactFloat64(),
			TotalAmount:        receipt.TotalAmount.InexactFloat64(),
			RemainingAvailable: int32(receipt.RemainingAvailable),
		},
	}, nil
}
