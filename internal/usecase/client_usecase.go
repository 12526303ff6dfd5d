package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
)

type ClientUsecase struct {
	clients repo.ClientRepository
	orders  repo.OrderRepository
}

// DI
func NewClientUsecase(clients repo.ClientRepository, orders repo.OrderRepository) *ClientUsecase {
	return &ClientUsecase{clients: clients, orders: orders}
}

type ClientInput struct {
	ClientName      string `json:"clientName"`
	BusinessAddress string `json:"businessAddress"`
	ContactNo       string `json:"contactNo"`
	Email           string `json:"email"`
	BusinessName    string `json:"businessName"`
}

func (u *ClientUsecase) List(ctx context.Context) ([]model.Client, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, NewDBError("Error fetching clients", err)
	}
	return clients, nil
}

func (u *ClientUsecase) Get(ctx context.Context, id int64) (model.Client, error) {
	if id <= 0 {
		return model.Client{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.clients.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Client{}, NewHTTPError(http.StatusNotFound, "Client not found")
	}
	if err != nil {
		return model.Client{}, NewDBError("Error fetching client", err)
	}
	return c, nil
}

// 取引先の注文履歴（orderDate降順）
func (u *ClientUsecase) ListOrders(ctx context.Context, clientID int64) ([]model.Order, error) {
	if clientID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	orders, err := u.orders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, NewDBError("Error fetching client orders", err)
	}
	return orders, nil
}

func (u *ClientUsecase) Create(ctx context.Context, in ClientInput) (model.Client, error) {
	if strings.TrimSpace(in.ClientName) == "" {
		return model.Client{}, NewHTTPError(http.StatusBadRequest, "clientName is required")
	}

	created, err := u.clients.Create(ctx, model.Client{
		ClientName:      in.ClientName,
		BusinessAddress: in.BusinessAddress,
		ContactNo:       in.ContactNo,
		Email:           in.Email,
		BusinessName:    in.BusinessName,
	})
	if err != nil {
		return model.Client{}, NewDBError("Error creating client", err)
	}
	return created, nil
}

func (u *ClientUsecase) Update(ctx context.Context, id int64, in ClientInput) (model.Client, error) {
	if id <= 0 {
		return model.Client{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.ClientName) == "" {
		return model.Client{}, NewHTTPError(http.StatusBadRequest, "clientName is required")
	}

	c := model.Client{
		ID:              id,
		ClientName:      in.ClientName,
		BusinessAddress: in.BusinessAddress,
		ContactNo:       in.ContactNo,
		Email:           in.Email,
		BusinessName:    in.BusinessName,
	}

	err := u.clients.Update(ctx, c)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Client{}, NewHTTPError(http.StatusNotFound, "Client not found")
	}
	if err != nil {
		return model.Client{}, NewDBError("Error updating client", err)
	}
	return c, nil
}
