package expense

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/domain/auth"
	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type ExpenseServiceImpl struct {
	expense.ExpenseRepository
	fileService file.FileService
}

func NewExpenseService(expenseRepository expense.ExpenseRepository, fileService file.FileService) expense.ExpenseService {
	return &ExpenseServiceImpl{
		ExpenseRepository: expenseRepository,
		fileService:       fileService,
	}
}

// Submit implements expense.ExpenseService. The receipt, if any, is stored
// before the expense row is written; the record then references both the
// original filename and the sanitized storage path.
func (s *ExpenseServiceImpl) Submit(ctx context.Context, identity auth.Identity, req expense.SubmitExpenseRequest) (expense.Expense, error) {
	if !employee.HasPermission(identity.Role, employee.PermissionExpenseSubmit) {
		return expense.Expense{}, employee.ErrInsufficientPermission
	}

	if err := req.Validate(); err != nil {
		return expense.Expense{}, err
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to parse expense date: %w", err)
	}

	newExpense := expense.Expense{
		EmployeeID:  identity.EmployeeID,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		Category:    expense.Category(req.Category),
		Status:      expense.StatusPending,
		Comments:    req.Comments,
		SubmittedAt: time.Now(),
	}

	if req.File != nil && req.FileHeader != nil {
		storedPath, err := s.fileService.UploadReceipt(ctx, identity.EmployeeID, req.File, req.FileHeader.Filename)
		if err != nil {
			return expense.Expense{}, fmt.Errorf("%w: %v", expense.ErrReceiptUploadFailed, err)
		}
		originalName := req.FileHeader.Filename
		newExpense.ReceiptFileName = &originalName
		newExpense.ReceiptFilePath = &storedPath
	}

	created, err := s.ExpenseRepository.Create(ctx, newExpense)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

// Get implements expense.ExpenseService. Owners see their own claims; holders
// of expense.view_all see any claim. Everyone else gets not-found, the same
// answer as for an id that does not exist.
func (s *ExpenseServiceImpl) Get(ctx context.Context, identity auth.Identity, id string) (expense.Expense, error) {
	found, err := s.ExpenseRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	if found.EmployeeID != identity.EmployeeID && !employee.HasPermission(identity.Role, employee.PermissionExpenseViewAll) {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}

	return found, nil
}

// Approve implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Approve(ctx context.Context, identity auth.Identity, id string) (expense.Expense, error) {
	return s.resolve(ctx, identity, id, expense.StatusApproved)
}

// Reject implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Reject(ctx context.Context, identity auth.Identity, id string) (expense.Expense, error) {
	return s.resolve(ctx, identity, id, expense.StatusRejected)
}

// resolve performs the one-way PENDING -> APPROVED/REJECTED transition:
// status, approver, and approval time are set together, exactly once.
func (s *ExpenseServiceImpl) resolve(ctx context.Context, identity auth.Identity, id string, status expense.Status) (expense.Expense, error) {
	if !employee.HasPermission(identity.Role, employee.PermissionExpenseApprove) {
		return expense.Expense{}, employee.ErrManagerAccessRequired
	}

	found, err := s.ExpenseRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	if found.Status.IsTerminal() {
		return expense.Expense{}, expense.ErrExpenseAlreadyProcessed
	}

	approvedAt := time.Now()
	approvedBy := identity.EmployeeID
	found.Status = status
	found.ApprovedBy = &approvedBy
	found.ApprovedAt = &approvedAt

	update := expense.UpdateExpenseStatusRequest{
		ID:         found.ID,
		Status:     status,
		ApprovedBy: approvedBy,
		ApprovedAt: approvedAt,
	}
	if err := s.ExpenseRepository.UpdateStatus(ctx, update); err != nil {
		return expense.Expense{}, fmt.Errorf("failed to update expense status: %w", err)
	}

	return found, nil
}

// DownloadReceipt implements expense.ExpenseService. Access follows the same
// ownership rules as Get.
func (s *ExpenseServiceImpl) DownloadReceipt(ctx context.Context, identity auth.Identity, id string) (io.ReadCloser, string, error) {
	found, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, "", err
	}

	if found.ReceiptFilePath == nil || found.ReceiptFileName == nil {
		return nil, "", expense.ErrReceiptNotFound
	}

	reader, err := s.fileService.DownloadFile(ctx, *found.ReceiptFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download receipt: %w", err)
	}

	return reader, *found.ReceiptFileName, nil
}
