package repository

import (
	"context"

	"erp/internal/domain/model"
)

type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, id int64) (model.Client, error)
	Create(ctx context.Context, c model.Client) (model.Client, error)
	Update(ctx context.Context, c model.Client) error
}
