package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
)

type SupplierUsecase struct {
	suppliers repo.SupplierRepository
}

// DI
func NewSupplierUsecase(suppliers repo.SupplierRepository) *SupplierUsecase {
	return &SupplierUsecase{suppliers: suppliers}
}

type SupplierInput struct {
	SupplierName           string  `json:"supplierName"`
	TIN                    string  `json:"tin"`
	BusinessRegNo          string  `json:"businessRegNo"`
	PrimaryContact         string  `json:"primaryContact"`
	PrimaryContactNumber   string  `json:"primaryContactNumber"`
	SecondaryContact       string  `json:"secondaryContact"`
	SecondaryContactNumber string  `json:"secondaryContactNumber"`
	Email                  string  `json:"email"`
	AlternativeEmail       string  `json:"alternativeEmail"`
	Website                string  `json:"website"`
	Address                string  `json:"address"`
	ProductCategories      string  `json:"productCategories"`
	PaymentTerms           string  `json:"paymentTerms"`
	CreditLimit            float64 `json:"creditLimit"`
	LeadTime               int64   `json:"leadTime"`
	Status                 string  `json:"status"`
	SupplyRating           int64   `json:"supplyRating"`
	QualityRating          int64   `json:"qualityRating"`
	DeliveryRating         int64   `json:"deliveryRating"`
	PaymentMethod          string  `json:"paymentMethod"`
}

func (u *SupplierUsecase) List(ctx context.Context) ([]model.Supplier, error) {
	suppliers, err := u.suppliers.List(ctx)
	if err != nil {
		return nil, NewDBError("Error fetching suppliers", err)
	}
	return suppliers, nil
}

func (u *SupplierUsecase) Get(ctx context.Context, id int64) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	s, err := u.suppliers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Supplier with ID %d not found", id))
	}
	if err != nil {
		return model.Supplier{}, NewDBError("Error fetching supplier", err)
	}
	return s, nil
}

func (u *SupplierUsecase) Create(ctx context.Context, in SupplierInput) (model.Supplier, error) {
	if strings.TrimSpace(in.SupplierName) == "" {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "supplierName is required")
	}

	created, err := u.suppliers.Create(ctx, supplierFromInput(0, in))
	if err != nil {
		return model.Supplier{}, NewDBError("Error creating supplier", err)
	}
	return created, nil
}

func (u *SupplierUsecase) Update(ctx context.Context, id int64, in SupplierInput) (model.Supplier, error) {
	if id <= 0 {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.SupplierName) == "" {
		return model.Supplier{}, NewHTTPError(http.StatusBadRequest, "supplierName is required")
	}

	s := supplierFromInput(id, in)
	err := u.suppliers.Update(ctx, s)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Supplier{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("Supplier with ID %d not found", id))
	}
	if err != nil {
		return model.Supplier{}, NewDBError("Error updating supplier", err)
	}
	return s, nil
}

func supplierFromInput(id int64, in SupplierInput) model.Supplier {
	return model.Supplier{
		ID:                     id,
		SupplierName:           in.SupplierName,
		TIN:                    in.TIN,
		BusinessRegNo:          in.BusinessRegNo,
		PrimaryContact:         in.PrimaryContact,
		PrimaryContactNumber:   in.PrimaryContactNumber,
		SecondaryContact:       in.SecondaryContact,
		SecondaryContactNumber: in.SecondaryContactNumber,
		Email:                  in.Email,
		AlternativeEmail:       in.AlternativeEmail,
		Website:                in.Website,
		Address:                in.Address,
		ProductCategories:      in.ProductCategories,
		PaymentTerms:           in.PaymentTerms,
		CreditLimit:            in.CreditLimit,
		LeadTime:               in.LeadTime,
		Status:                 in.Status,
		SupplyRating:           in.SupplyRating,
		QualityRating:          in.QualityRating,
		DeliveryRating:         in.DeliveryRating,
		PaymentMethod:          in.PaymentMethod,
	}
}
