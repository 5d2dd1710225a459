package backend

import (
	"context"
	"fmt"

	"github.com/finboard/finboard/internal/model"
)

// CreateTransactionRequest carries the fields for a new transaction
type CreateTransactionRequest struct {
	BusinessName string  `json:"businessName"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	Category     string  `json:"category,omitempty"`
	AccountID    string  `json:"accountId,omitempty"`
}

// RecentTransactions returns the user's most recent transactions
func (c *Client) RecentTransactions(ctx context.Context, token string, userID model.UserID) ([]model.Transaction, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var txns []model.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transactions/recent/user/%d", userID), token, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// Transactions returns one page of the user's transaction history
func (c *Client) Transactions(ctx context.Context, token string, userID model.UserID, page, size int) (*model.TransactionPage, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var result model.TransactionPage
	path := fmt.Sprintf("/transactions/user/%d?page=%d&size=%d", userID, page, size)
	if err := c.get(ctx, path, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ChartData returns the monthly income/expense series. A zero year means
// the backend's default (current) year.
func (c *Client) ChartData(ctx context.Context, token string, userID model.UserID, year int) (*model.ChartData, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	path := fmt.Sprintf("/transactions/chart/user/%d", userID)
	if year != 0 {
		path = fmt.Sprintf("%s?year=%d", path, year)
	}
	var chart model.ChartData
	if err := c.get(ctx, path, token, &chart); err != nil {
		return nil, err
	}
	return &chart, nil
}

// Statistics returns the spending category breakdown
func (c *Client) Statistics(ctx context.Context, token string, userID model.UserID) (*model.Statistics, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var stats model.Statistics
	if err := c.get(ctx, fmt.Sprintf("/transactions/statistics/user/%d", userID), token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateTransaction records a new transaction
func (c *Client) CreateTransaction(ctx context.Context, token string, req CreateTransactionRequest) (*model.Transaction, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var txn model.Transaction
	if err := c.post(ctx, "/transactions", token, req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransactionStatus changes a transaction's status
func (c *Client) UpdateTransactionStatus(ctx context.Context, token string, id model.TransactionID, status string) (*model.Transaction, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	req := map[string]string{"status": status}
	var txn model.Transaction
	if err := c.put(ctx, fmt.Sprintf("/transactions/%s/status", id), token, req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction
func (c *Client) DeleteTransaction(ctx context.Context, token string, id model.TransactionID) error {
	if token == "" {
		return model.ErrNoToken
	}
	return c.delete(ctx, fmt.Sprintf("/transactions/%s", id), token)
}
