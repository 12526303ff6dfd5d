package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
)

type OrderUsecase struct {
	orders repo.OrderRepository
}

// DI
func NewOrderUsecase(orders repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orders: orders}
}

type OrderInput struct {
	ClientID     int64   `json:"clientId"`
	OrderDate    string  `json:"orderDate"`
	Status       string  `json:"status"`
	OrderName    string  `json:"orderName"`
	OrderRef     string  `json:"orderId"`
	Description  string  `json:"description"`
	Quantity     int64   `json:"quantity"`
	PricePerUnit float64 `json:"pricePerUnit"`
	TotalPrice   float64 `json:"totalPrice"`
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, NewDBError("Error fetching orders", err)
	}
	return orders, nil
}

func (u *OrderUsecase) Get(ctx context.Context, id int64) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.Order{}, NewDBError("Error fetching order", err)
	}
	return o, nil
}

func (u *OrderUsecase) Create(ctx context.Context, in OrderInput) (model.Order, error) {
	if err := validateOrderInput(in); err != nil {
		return model.Order{}, err
	}

	created, err := u.orders.Create(ctx, orderFromInput(0, in))
	if err != nil {
		return model.Order{}, NewDBError("Error creating order", err)
	}
	return created, nil
}

func (u *OrderUsecase) Update(ctx context.Context, id int64, in OrderInput) (model.Order, error) {
	if id <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateOrderInput(in); err != nil {
		return model.Order{}, err
	}

	o := orderFromInput(id, in)
	err := u.orders.Update(ctx, o)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.Order{}, NewDBError("Error updating order", err)
	}
	return o, nil
}

// 取引先ごとの注文一覧（orderDate降順）
func (u *OrderUsecase) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	if clientID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid clientId")
	}

	orders, err := u.orders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, NewDBError("Error fetching client orders", err)
	}
	return orders, nil
}

func validateOrderInput(in OrderInput) error {
	if in.ClientID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "clientId is required")
	}
	if strings.TrimSpace(in.OrderName) == "" {
		return NewHTTPError(http.StatusBadRequest, "orderName is required")
	}
	return nil
}

func orderFromInput(id int64, in OrderInput) model.Order {
	return model.Order{
		ID:           id,
		ClientID:     in.ClientID,
		OrderDate:    in.OrderDate,
		Status:       in.Status,
		OrderName:    in.OrderName,
		OrderRef:     in.OrderRef,
		Description:  in.Description,
		Quantity:     in.Quantity,
		PricePerUnit: in.PricePerUnit,
		TotalPrice:   in.TotalPrice,
	}
}
