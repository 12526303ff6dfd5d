package repository

import (
	"context"
	"errors"

	"erp/internal/domain/model"
	repo "erp/internal/repository"

	"gorm.io/gorm"
)

type SupplierGormRepository struct {
	db *gorm.DB
}

// DI
func NewSupplierGormRepository(db *gorm.DB) *SupplierGormRepository {
	return &SupplierGormRepository{db: db}
}

// 仕入先一覧（新しいものから）
func (r *SupplierGormRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.db.WithContext(ctx).Order("id desc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierGormRepository) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Supplier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierGormRepository) Update(ctx context.Context, s model.Supplier) error {
	res := r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"supplier_name":            s.SupplierName,
		"tin":                      s.TIN,
		"business_reg_no":          s.BusinessRegNo,
		"primary_contact":          s.PrimaryContact,
		"primary_contact_number":   s.PrimaryContactNumber,
		"secondary_contact":        s.SecondaryContact,
		"secondary_contact_number": s.SecondaryContactNumber,
		"email":                    s.Email,
		"alternative_email":        s.AlternativeEmail,
		"website":                  s.Website,
		"address":                  s.Address,
		"product_categories":       s.ProductCategories,
		"payment_terms":            s.PaymentTerms,
		"credit_limit":             s.CreditLimit,
		"lead_time":                s.LeadTime,
		"status":                   s.Status,
		"supply_rating":            s.SupplyRating,
		"quality_rating":           s.QualityRating,
		"delivery_rating":          s.DeliveryRating,
		"payment_method":           s.PaymentMethod,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
