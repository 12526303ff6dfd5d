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

type InventoryUsecase struct {
	items  repo.InventoryRepository
	ledger repo.InventoryTransactionRepository
	tx     repo.TransactionManager
	clock  Clock
}

// DI
func NewInventoryUsecase(
	items repo.InventoryRepository,
	ledger repo.InventoryTransactionRepository,
	tx repo.TransactionManager,
	clock Clock,
) *InventoryUsecase {
	return &InventoryUsecase{
		items:  items,
		ledger: ledger,
		tx:     tx,
		clock:  clock,
	}
}

type InventoryItemInput struct {
	ItemName     string `json:"itemName"`
	Description  string `json:"description"`
	CurrentStock int64  `json:"currentStock"`
	MinimumStock int64  `json:"minimumStock"`
	Unit         string `json:"unit"`
	Category     string `json:"category"`
}

func (u *InventoryUsecase) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := u.items.List(ctx)
	if err != nil {
		return nil, NewDBError("Error fetching inventory items", err)
	}
	return items, nil
}

func (u *InventoryUsecase) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	if id <= 0 {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.items.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.InventoryItem{}, NewHTTPError(http.StatusNotFound, itemNotFoundMessage(id))
	}
	if err != nil {
		return model.InventoryItem{}, NewDBError("Error fetching inventory item", err)
	}
	return item, nil
}

func (u *InventoryUsecase) CreateItem(ctx context.Context, in InventoryItemInput) (model.InventoryItem, error) {
	if strings.TrimSpace(in.ItemName) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "itemName is required")
	}

	created, err := u.items.Create(ctx, model.InventoryItem{
		ItemName:     in.ItemName,
		Description:  in.Description,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		Unit:         in.Unit,
		Category:     in.Category,
	})
	if err != nil {
		return model.InventoryItem{}, NewDBError("Error creating inventory item", err)
	}
	return created, nil
}

func (u *InventoryUsecase) UpdateItem(ctx context.Context, id int64, in InventoryItemInput) (model.InventoryItem, error) {
	if id <= 0 {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.ItemName) == "" {
		return model.InventoryItem{}, NewHTTPError(http.StatusBadRequest, "itemName is required")
	}

	item := model.InventoryItem{
		ID:           id,
		ItemName:     in.ItemName,
		Description:  in.Description,
		CurrentStock: in.CurrentStock,
		MinimumStock: in.MinimumStock,
		Unit:         in.Unit,
		Category:     in.Category,
	}

	err := u.items.Update(ctx, item)
	if errors.Is(err, repo.ErrNotFound) {
		return model.InventoryItem{}, NewHTTPError(http.StatusNotFound, itemNotFoundMessage(id))
	}
	if err != nil {
		return model.InventoryItem{}, NewDBError("Error updating inventory item", err)
	}
	return item, nil
}

// 台帳が1件でもあれば削除不可
func (u *InventoryUsecase) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	count, err := u.ledger.CountByItem(ctx, id)
	if err != nil {
		return NewDBError("Error deleting inventory item", err)
	}
	if count > 0 {
		return NewHTTPError(http.StatusBadRequest, "Cannot delete inventory item with existing transactions")
	}

	err = u.items.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, itemNotFoundMessage(id))
	}
	if err != nil {
		return NewDBError("Error deleting inventory item", err)
	}
	return nil
}

// 品目の取引履歴（supplier名付き・date降順）。品目が無ければ404。
func (u *InventoryUsecase) ListTransactions(ctx context.Context, itemID int64) ([]model.InventoryTransactionEntry, error) {
	if itemID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.items.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, itemNotFoundMessage(itemID))
		}
		return nil, NewDBError("Error fetching inventory transactions", err)
	}

	rows, err := u.ledger.ListByItem(ctx, itemID)
	if err != nil {
		return nil, NewDBError("Error fetching inventory transactions", err)
	}
	return rows, nil
}

type RecordStockTransactionInput struct {
	InventoryItemID int64  `json:"inventoryItemId"`
	SupplierID      *int64 `json:"supplierId"`
	TransactionType string `json:"transactionType"`
	Quantity        int64  `json:"quantity"`
	Reason          string `json:"reason"`
}

type RecordStockTransactionOutput struct {
	TransactionID   int64  `json:"transactionId"`
	InventoryItemID int64  `json:"inventoryItemId"`
	SupplierID      *int64 `json:"supplierId"`
	TransactionType string `json:"transactionType"`
	Quantity        int64  `json:"quantity"`
}

// ストック取引の記録。台帳への追記とcurrentStockの増減を
// 1つのDBトランザクションで行い、途中で失敗したら全て巻き戻す。
func (u *InventoryUsecase) RecordStockTransaction(ctx context.Context, in RecordStockTransactionInput) (RecordStockTransactionOutput, error) {
	if in.InventoryItemID <= 0 {
		return RecordStockTransactionOutput{}, NewHTTPError(http.StatusBadRequest, "inventoryItemId is required")
	}
	if in.TransactionType != model.TransactionTypeStockIn && in.TransactionType != model.TransactionTypeStockOut {
		return RecordStockTransactionOutput{}, NewHTTPError(http.StatusBadRequest, "transactionType must be 'Stock In' or 'Stock Out'")
	}
	if in.Quantity <= 0 {
		return RecordStockTransactionOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be a positive integer")
	}
	if in.SupplierID != nil && *in.SupplierID <= 0 {
		return RecordStockTransactionOutput{}, NewHTTPError(http.StatusBadRequest, "invalid supplierId")
	}

	var out RecordStockTransactionOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 品目の存在チェック
		if _, err := r.Inventory().FindByID(ctx, in.InventoryItemID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, itemNotFoundMessage(in.InventoryItemID))
			}
			return NewDBError("Error processing inventory transaction", err)
		}

		// Stock Inでsupplierが指定されていれば存在チェック。
		// 指定なしのStock Inも通す（元システムの挙動に合わせる）。
		if in.TransactionType == model.TransactionTypeStockIn && in.SupplierID != nil {
			if _, err := r.Suppliers().FindByID(ctx, *in.SupplierID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Supplier with ID %d not found", *in.SupplierID))
				}
				return NewDBError("Error processing inventory transaction", err)
			}
		}

		// 台帳へ追記（タイムスタンプはサーバ時刻）
		created, err := r.InventoryTransactions().Create(ctx, model.InventoryTransaction{
			InventoryItemID: in.InventoryItemID,
			TransactionType: in.TransactionType,
			Quantity:        in.Quantity,
			Date:            u.clock.Now(),
			Reason:          in.Reason,
			SupplierID:      in.SupplierID,
		})
		if err != nil {
			return NewDBError("Error processing inventory transaction", err)
		}

		// currentStockへ差分適用。Stock Outで負になってもクランプしない。
		delta := in.Quantity
		if in.TransactionType == model.TransactionTypeStockOut {
			delta = -in.Quantity
		}
		if err := r.Inventory().ApplyStockDelta(ctx, in.InventoryItemID, delta); err != nil {
			return NewDBError("Error processing inventory transaction", err)
		}

		out = RecordStockTransactionOutput{
			TransactionID:   created.ID,
			InventoryItemID: in.InventoryItemID,
			SupplierID:      in.SupplierID,
			TransactionType: in.TransactionType,
			Quantity:        in.Quantity,
		}
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return RecordStockTransactionOutput{}, err
		}
		return RecordStockTransactionOutput{}, NewDBError("Error processing inventory transaction", err)
	}

	return out, nil
}

func itemNotFoundMessage(id int64) string {
	return fmt.Sprintf("Inventory item with ID %d not found", id)
}
