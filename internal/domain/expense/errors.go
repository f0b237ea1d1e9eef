package expense

import "errors"

var (
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrExpenseAlreadyProcessed = errors.New("expense already processed")
	ErrReceiptUploadFailed     = errors.New("failed to store receipt file")
	ErrReceiptNotFound         = errors.New("expense has no receipt")
)
