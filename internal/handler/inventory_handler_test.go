package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"erp/internal/domain/model"
	"erp/internal/handler"
	repo "erp/internal/repository"
	"erp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（handler層テスト用）
// =====================

type HItemRepoMock struct{ mock.Mock }

func (m *HItemRepoMock) List(ctx context.Context) ([]model.InventoryItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.InventoryItem)
	return items, args.Error(1)
}

func (m *HItemRepoMock) FindByID(ctx context.Context, id int64) (model.InventoryItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.InventoryItem)
	return item, args.Error(1)
}

func (m *HItemRepoMock) Create(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.InventoryItem)
	return created, args.Error(1)
}

func (m *HItemRepoMock) Update(ctx context.Context, item model.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *HItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *HItemRepoMock) ApplyStockDelta(ctx context.Context, itemID int64, delta int64) error {
	args := m.Called(ctx, itemID, delta)
	return args.Error(0)
}

type HLedgerRepoMock struct{ mock.Mock }

func (m *HLedgerRepoMock) ListByItem(ctx context.Context, itemID int64) ([]model.InventoryTransactionEntry, error) {
	args := m.Called(ctx, itemID)
	rows, _ := args.Get(0).([]model.InventoryTransactionEntry)
	return rows, args.Error(1)
}

func (m *HLedgerRepoMock) CountByItem(ctx context.Context, itemID int64) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *HLedgerRepoMock) Create(ctx context.Context, t model.InventoryTransaction) (model.InventoryTransaction, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.InventoryTransaction)
	return created, args.Error(1)
}

type HSupplierRepoMock struct{ mock.Mock }

func (m *HSupplierRepoMock) List(ctx context.Context) ([]model.Supplier, error) {
	panic("not used in handler tests")
}

func (m *HSupplierRepoMock) FindByID(ctx context.Context, id int64) (model.Supplier, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *HSupplierRepoMock) Create(ctx context.Context, s model.Supplier) (model.Supplier, error) {
	panic("not used in handler tests")
}

func (m *HSupplierRepoMock) Update(ctx context.Context, s model.Supplier) error {
	panic("not used in handler tests")
}

type hTxRepos struct {
	items  *HItemRepoMock
	ledger *HLedgerRepoMock
	sup    *HSupplierRepoMock
}

func (s *hTxRepos) Inventory() repo.InventoryRepository { return s.items }
func (s *hTxRepos) InventoryTransactions() repo.InventoryTransactionRepository {
	return s.ledger
}
func (s *hTxRepos) Suppliers() repo.SupplierRepository { return s.sup }

type hTxManager struct{ repos repo.TxRepos }

func (m *hTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

type hClock struct{}

func (c *hClock) Now() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }

func newInventoryServer(items *HItemRepoMock, ledger *HLedgerRepoMock, sup *HSupplierRepoMock) *echo.Echo {
	tx := &hTxManager{repos: &hTxRepos{items: items, ledger: ledger, sup: sup}}
	uc := usecase.NewInventoryUsecase(items, ledger, tx, &hClock{})

	e := echo.New()
	handler.NewInventoryHandler(uc).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// Tests
// =====================

// 一覧は封筒なしの素の配列で返る
func TestInventoryList_BareArray(t *testing.T) {
	items := new(HItemRepoMock)
	items.On("List", mock.Anything).Return([]model.InventoryItem{
		{ID: 1, ItemName: "Glossy Paper A4", CurrentStock: 120},
	}, nil)
	e := newInventoryServer(items, new(HLedgerRepoMock), new(HSupplierRepoMock))

	rec := doJSON(e, http.MethodGet, "/api/inventory", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "Glossy Paper A4", got[0]["itemName"])
}

func TestInventoryDetail_NotFoundEnvelope(t *testing.T) {
	items := new(HItemRepoMock)
	items.On("FindByID", mock.Anything, int64(999)).Return(model.InventoryItem{}, repo.ErrNotFound)
	e := newInventoryServer(items, new(HLedgerRepoMock), new(HSupplierRepoMock))

	rec := doJSON(e, http.MethodGet, "/api/inventory/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Inventory item with ID 999 not found", got["message"])
}

func TestInventoryCreate_ReturnsEnvelope(t *testing.T) {
	items := new(HItemRepoMock)
	items.On("Create", mock.Anything, mock.Anything).
		Return(model.InventoryItem{ID: 5, ItemName: "Magenta Ink", Unit: "bottle"}, nil)
	e := newInventoryServer(items, new(HLedgerRepoMock), new(HSupplierRepoMock))

	rec := doJSON(e, http.MethodPost, "/api/inventory", `{"itemName":"Magenta Ink","unit":"bottle"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "Inventory item created successfully", got["message"])
	data := got["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["id"])
}

func TestInventoryTransaction_CreatedEnvelope(t *testing.T) {
	items := new(HItemRepoMock)
	ledger := new(HLedgerRepoMock)
	sup := new(HSupplierRepoMock)

	items.On("FindByID", mock.Anything, int64(1)).
		Return(model.InventoryItem{ID: 1, CurrentStock: 10}, nil)
	sup.On("FindByID", mock.Anything, int64(2)).
		Return(model.Supplier{ID: 2, SupplierName: "PaperCo"}, nil)
	ledger.On("Create", mock.Anything, mock.Anything).
		Return(model.InventoryTransaction{ID: 77}, nil)
	items.On("ApplyStockDelta", mock.Anything, int64(1), int64(5)).Return(nil)

	e := newInventoryServer(items, ledger, sup)
	rec := doJSON(e, http.MethodPost, "/api/inventory/transactions",
		`{"inventoryItemId":1,"supplierId":2,"transactionType":"Stock In","quantity":5,"reason":"restock"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	data := got["data"].(map[string]interface{})
	assert.Equal(t, float64(77), data["transactionId"])
	assert.Equal(t, "Stock In", data["transactionType"])
}

func TestInventoryTransaction_BadTypeRejected(t *testing.T) {
	e := newInventoryServer(new(HItemRepoMock), new(HLedgerRepoMock), new(HSupplierRepoMock))

	rec := doJSON(e, http.MethodPost, "/api/inventory/transactions",
		`{"inventoryItemId":1,"transactionType":"Adjustment","quantity":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
}

func TestInventoryDelete_BlockedByLedger(t *testing.T) {
	items := new(HItemRepoMock)
	ledger := new(HLedgerRepoMock)
	ledger.On("CountByItem", mock.Anything, int64(1)).Return(int64(2), nil)

	e := newInventoryServer(items, ledger, new(HSupplierRepoMock))
	rec := doJSON(e, http.MethodDelete, "/api/inventory/1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Cannot delete inventory item with existing transactions", got["message"])
	items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// 500系は生エラーがerrorフィールドに載る
func TestInventoryList_DBErrorExposesDetail(t *testing.T) {
	items := new(HItemRepoMock)
	items.On("List", mock.Anything).Return(nil, assert.AnError)

	e := newInventoryServer(items, new(HLedgerRepoMock), new(HSupplierRepoMock))
	rec := doJSON(e, http.MethodGet, "/api/inventory", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Error fetching inventory items", got["message"])
	assert.NotEmpty(t, got["error"])
}
