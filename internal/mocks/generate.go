// Package mocks holds gomock doubles for loginform interfaces.
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=store_mock.go github.com/naveenspark/loginform/internal/store Store
