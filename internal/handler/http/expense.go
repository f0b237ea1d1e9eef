package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/expenseflow/expense-backend-go/internal/domain/expense"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/middleware"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	DownloadReceipt(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{
		expenseService: expenseService,
	}
}

// Submit implements ExpenseHandler. The request is multipart: a "data" field
// holding the JSON claim and an optional "receipt" file field.
func (h *ExpenseHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req expense.SubmitExpenseRequest

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	file, fileHeader, err := r.FormFile("receipt")
	if err != nil && err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	if file != nil {
		defer file.Close()
	}
	req.File = file
	req.FileHeader = fileHeader

	created, err := h.expenseService.Submit(r.Context(), identity, req)
	if err != nil {
		slog.Error("Submit expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense submitted successfully", "expense_id", created.ID)
	response.Created(w, "Expense submitted successfully", created)
}

// Get implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	found, err := h.expenseService.Get(r.Context(), identity, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Approve implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	approved, err := h.expenseService.Approve(r.Context(), identity, id)
	if err != nil {
		slog.Error("Approve expense service error", "error", err, "expense_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense approved", "expense_id", id, "approved_by", identity.EmployeeID)
	response.SuccessWithMessage(w, "Expense approved successfully", approved)
}

// Reject implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	rejected, err := h.expenseService.Reject(r.Context(), identity, id)
	if err != nil {
		slog.Error("Reject expense service error", "error", err, "expense_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Expense rejected", "expense_id", id, "approved_by", identity.EmployeeID)
	response.SuccessWithMessage(w, "Expense rejected successfully", rejected)
}

// DownloadReceipt implements ExpenseHandler. Streams the stored receipt with
// the original filename.
func (h *ExpenseHandlerImpl) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.IdentityFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Expense ID is required", nil)
		return
	}

	reader, fileName, err := h.expenseService.DownloadReceipt(r.Context(), identity, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))

	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream receipt", "error", err, "expense_id", id)
	}
}

// ListCategories implements ExpenseHandler.
func (h *ExpenseHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, expense.Categories)
}
