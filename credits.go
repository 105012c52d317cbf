package client

import "context"

// Balance returns the locally-known credit balance. It may be an optimistic
// guess for up to the reconcile delay after a view or top-up; callers must
// tolerate a brief window where the displayed balance is off by one
// operation before the authoritative fetch corrects it.
func (c *Client) Balance() CreditBalance {
	return c.ledger.Balance()
}

// RemainingCredits returns the locally-known spendable credit count.
func (c *Client) RemainingCredits() int {
	return c.ledger.Remaining()
}

// RefreshBalance fetches the authoritative balance from the ledger service,
// overwriting any optimistic local state. Typically called on dashboard
// load.
func (c *Client) RefreshBalance(ctx context.Context) (CreditBalance, error) {
	return c.ledger.Fetch(ctx)
}

// TopUp registers a completed credit purchase: the allowance is bumped
// immediately so the UI reflects it, and a reconciling fetch converges on
// the server's ground truth shortly after.
func (c *Client) TopUp(ctx context.Context, views int) error {
	return c.ledger.TopUp(ctx, views)
}
