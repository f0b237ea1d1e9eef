package expense

import "time"

type Category string

const (
	CategoryTravel         Category = "travel"
	CategoryFood           Category = "food"
	CategoryAccommodation  Category = "accommodation"
	CategoryTransportation Category = "transportation"
	CategoryOfficeSupplies Category = "office_supplies"
	CategoryTraining       Category = "training"
	CategoryOther          Category = "other"
)

// Categories lists every valid expense category, in presentation order.
var Categories = []Category{
	CategoryTravel,
	CategoryFood,
	CategoryAccommodation,
	CategoryTransportation,
	CategoryOfficeSupplies,
	CategoryTraining,
	CategoryOther,
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Expense struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"` // owner, immutable after creation
	Description string    `json:"description"`
	Amount      float64   `json:"amount"` // whole-cent currency, always > 0
	ExpenseDate time.Time `json:"expense_date"`
	Category    Category  `json:"category"`
	Status      Status    `json:"status"`

	// Receipt reference: original upload name and the sanitized path the
	// storage collaborator returned. The path never leaves the server.
	ReceiptFileName *string `json:"receipt_file_name,omitempty"`
	ReceiptFilePath *string `json:"-"`

	Comments *string `json:"comments,omitempty"`

	SubmittedAt time.Time  `json:"submitted_at"`
	ApprovedBy  *string    `json:"approved_by,omitempty"` // set together with ApprovedAt, exactly once
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
