package model

// AccountID uniquely identifies an account on the backend
type AccountID string

// TransactionID uniquely identifies a transaction on the backend
type TransactionID string

// Account is a single account summary card on the dashboard
type Account struct {
	ID             AccountID `json:"id"`
	AccountName    string    `json:"accountName"`
	AccountType    string    `json:"accountType"`
	CurrentBalance float64   `json:"currentBalance"`
	SpendingLimit  float64   `json:"spendingLimit,omitempty"`
	TotalLimit     float64   `json:"totalLimit,omitempty"`
	CardType       string    `json:"cardType,omitempty"`
}

// AccountList is the backend response for a user's accounts
type AccountList struct {
	Accounts     []Account `json:"accounts"`
	TotalBalance float64   `json:"totalBalance"`
}

// WalletInfo describes the user's wallet card
type WalletInfo struct {
	ID            AccountID `json:"id"`
	OwnerName     string    `json:"ownerName"`
	Balance       float64   `json:"balance"`
	SpendingLimit float64   `json:"spendingLimit"`
	UsedAmount    float64   `json:"usedAmount"`
	CardType      string    `json:"cardType"`
}

// Transaction statuses as reported by the backend
const (
	TransactionPending = "pending"
	TransactionSuccess = "success"
	TransactionFailed  = "failed"
)

// Transaction is a single payment or deposit
type Transaction struct {
	ID           TransactionID `json:"id"`
	BusinessName string        `json:"businessName"`
	Date         string        `json:"date"`
	Amount       float64       `json:"amount"`
	Status       string        `json:"status"`
	Type         string        `json:"type"`
	Category     string        `json:"category,omitempty"`
	Icon         string        `json:"icon,omitempty"`
}

// TransactionPage is one page of a user's transaction history
type TransactionPage struct {
	Transactions  []Transaction `json:"transactions"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
}

// ChartData holds the per-month income/expense series for the dashboard chart
type ChartData struct {
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
	Months  []string  `json:"months"`
}

// StatisticItem is one spending category slice
type StatisticItem struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	Color      string  `json:"color,omitempty"`
	Percentage float64 `json:"percentage"`
}

// Statistics is the backend's category breakdown response
type Statistics struct {
	Categories []StatisticItem `json:"categories"`
	Total      float64         `json:"total"`
}
