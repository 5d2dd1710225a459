package backend

import (
	"context"
	"fmt"

	"github.com/finboard/finboard/internal/model"
)

// CreateAccountRequest carries the fields for account creation
type CreateAccountRequest struct {
	AccountName    string  `json:"accountName"`
	AccountType    string  `json:"accountType"`
	InitialBalance float64 `json:"initialBalance"`
}

// UpdateAccountRequest carries the updatable account fields
type UpdateAccountRequest struct {
	AccountName    string  `json:"accountName"`
	CurrentBalance float64 `json:"currentBalance"`
	SpendingLimit  float64 `json:"spendingLimit"`
	TotalLimit     float64 `json:"totalLimit"`
	CardType       string  `json:"cardType"`
}

// ListAccounts returns a user's accounts and total balance
func (c *Client) ListAccounts(ctx context.Context, token string, userID model.UserID) (*model.AccountList, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var list model.AccountList
	if err := c.get(ctx, fmt.Sprintf("/accounts/user/%d", userID), token, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// WalletAccount returns a user's wallet card
func (c *Client) WalletAccount(ctx context.Context, token string, userID model.UserID) (*model.WalletInfo, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var wallet model.WalletInfo
	if err := c.get(ctx, fmt.Sprintf("/accounts/wallet/user/%d", userID), token, &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

// CreateAccount creates a new account for the user
func (c *Client) CreateAccount(ctx context.Context, token string, userID model.UserID, req CreateAccountRequest) (*model.Account, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var account model.Account
	if err := c.post(ctx, fmt.Sprintf("/accounts/user/%d", userID), token, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount updates an existing account
func (c *Client) UpdateAccount(ctx context.Context, token string, accountID model.AccountID, req UpdateAccountRequest) (*model.Account, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var account model.Account
	if err := c.put(ctx, fmt.Sprintf("/accounts/%s", accountID), token, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes an account
func (c *Client) DeleteAccount(ctx context.Context, token string, accountID model.AccountID) error {
	if token == "" {
		return model.ErrNoToken
	}
	return c.delete(ctx, fmt.Sprintf("/accounts/%s", accountID), token)
}
