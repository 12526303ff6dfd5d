package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"erp/internal/domain/model"
	repo "erp/internal/repository"
)

type EmployeeUsecase struct {
	employees repo.EmployeeRepository
}

// DI
func NewEmployeeUsecase(employees repo.EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{employees: employees}
}

type EmployeeInput struct {
	FirstName     string `json:"firstName"`
	MiddleInitial string `json:"middleInitial"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	DateHired     string `json:"dateHired"`
	Status        string `json:"status"`
}

type EmployeeCreatedOutput struct {
	ID           int64  `json:"id"`
	EmployeeCode string `json:"employeeId"`
}

func (u *EmployeeUsecase) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := u.employees.List(ctx)
	if err != nil {
		return nil, NewDBError("Error fetching employees", err)
	}
	return employees, nil
}

func (u *EmployeeUsecase) Get(ctx context.Context, id int64) (model.Employee, error) {
	if id <= 0 {
		return model.Employee{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	e, err := u.employees.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Employee{}, NewHTTPError(http.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return model.Employee{}, NewDBError("Error fetching employee", err)
	}
	return e, nil
}

// メール重複チェック→EMPコード採番→作成
func (u *EmployeeUsecase) Create(ctx context.Context, in EmployeeInput) (EmployeeCreatedOutput, error) {
	if err := validateEmployeeInput(in); err != nil {
		return EmployeeCreatedOutput{}, err
	}

	exists, err := u.employees.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return EmployeeCreatedOutput{}, NewDBError("Error creating employee", err)
	}
	if exists {
		return EmployeeCreatedOutput{}, NewHTTPError(http.StatusBadRequest, "Email already exists")
	}

	last, err := u.employees.LastEmployeeCode(ctx)
	if err != nil {
		return EmployeeCreatedOutput{}, NewDBError("Error creating employee", err)
	}

	status := in.Status
	if status == "" {
		status = "Active"
	}

	created, err := u.employees.Create(ctx, model.Employee{
		EmployeeCode:  nextEmployeeCode(last),
		FirstName:     in.FirstName,
		MiddleInitial: in.MiddleInitial,
		LastName:      in.LastName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Position:      in.Position,
		Department:    in.Department,
		DateHired:     in.DateHired,
		Status:        status,
	})
	if err != nil {
		return EmployeeCreatedOutput{}, NewDBError("Error creating employee", err)
	}

	return EmployeeCreatedOutput{ID: created.ID, EmployeeCode: created.EmployeeCode}, nil
}

func (u *EmployeeUsecase) Update(ctx context.Context, id int64, in EmployeeInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateEmployeeInput(in); err != nil {
		return err
	}

	// 自分以外での重複のみ弾く
	exists, err := u.employees.EmailExists(ctx, in.Email, id)
	if err != nil {
		return NewDBError("Error updating employee", err)
	}
	if exists {
		return NewHTTPError(http.StatusBadRequest, "Email already exists")
	}

	err = u.employees.Update(ctx, model.Employee{
		ID:            id,
		FirstName:     in.FirstName,
		MiddleInitial: in.MiddleInitial,
		LastName:      in.LastName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Position:      in.Position,
		Department:    in.Department,
		DateHired:     in.DateHired,
		Status:        in.Status,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Employee not found")
	}
	if err != nil {
		return NewDBError("Error updating employee", err)
	}
	return nil
}

func validateEmployeeInput(in EmployeeInput) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return NewHTTPError(http.StatusBadRequest, "firstName is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return NewHTTPError(http.StatusBadRequest, "lastName is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return NewHTTPError(http.StatusBadRequest, "email is required")
	}
	return nil
}

// "EMP007" → "EMP008"。未登録なら"EMP001"。
func nextEmployeeCode(last string) string {
	if last == "" {
		return "EMP001"
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, "EMP"))
	if err != nil {
		return "EMP001"
	}
	return fmt.Sprintf("EMP%03d", n+1)
}
