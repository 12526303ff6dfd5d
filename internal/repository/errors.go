package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// 台帳に紐づく在庫品目は削除できない
	ErrHasTransactions = errors.New("has dependent transactions")

	// 従業員のメール重複
	ErrDuplicateEmail = errors.New("email already exists")
)
