package main

import (
	"time"

	"erp/internal/config"
	"erp/internal/domain/model"
	"erp/internal/handler"
	"erp/internal/infra/db"
	infraRepo "erp/internal/infra/repository"
	"erp/internal/server"
	"erp/internal/usecase"

	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは任意（無ければ環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.InventoryItem{},
		&model.InventoryTransaction{},
		&model.Client{},
		&model.Order{},
		&model.Supplier{},
		&model.Employee{},
	); err != nil {
		panic(err)
	}
	// 勤怠は午前・午後で同じ構造のテーブルを2つ持つ
	if err := gormDB.Table(infraRepo.MorningTable).AutoMigrate(&model.Attendance{}); err != nil {
		panic(err)
	}
	if err := gormDB.Table(infraRepo.AfternoonTable).AutoMigrate(&model.Attendance{}); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	ledgerRepo := infraRepo.NewInventoryTransactionGormRepository(gormDB)
	clientRepo := infraRepo.NewClientGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(gormDB)
	attendanceRepo := infraRepo.NewAttendanceGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	clock := &realClock{}

	//Usecase生成
	inventoryUC := usecase.NewInventoryUsecase(inventoryRepo, ledgerRepo, txManager, clock)
	clientUC := usecase.NewClientUsecase(clientRepo, orderRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo)
	attendanceUC := usecase.NewAttendanceUsecase(attendanceRepo, employeeRepo)

	//Handler生成
	e := server.New(cfg,
		handler.NewInventoryHandler(inventoryUC),
		handler.NewClientHandler(clientUC),
		handler.NewOrderHandler(orderUC),
		handler.NewSupplierHandler(supplierUC),
		handler.NewEmployeeHandler(employeeUC),
		handler.NewAttendanceHandler(attendanceUC),
	)

	//Server起動
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		panic(err)
	}
}
