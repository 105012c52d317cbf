package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apierrors "github.com/kaamsetu/kaamsetu-client/internal/errors"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// GetSubscriptionStatus fetches the authoritative credit balance. Failures
// are classified so the reconcile machinery can decide whether to retry.
func GetSubscriptionStatus(ctx context.Context, httpClient HTTPClient, baseURL string) (types.CreditBalance, error) {
	if err := ctx.Err(); err != nil {
		return types.CreditBalance{}, err
	}
	url := fmt.Sprintf("%s/v0/subscription", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.CreditBalance{}, err
	}
	// Note: Authorization header will be added by transport layer

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return types.CreditBalance{}, apierrors.NewNetworkError("subscription status", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return types.CreditBalance{}, apierrors.NewHTTPError(resp.StatusCode, "", "subscription status")
	}

	var bal types.CreditBalance
	if err := json.NewDecoder(resp.Body).Decode(&bal); err != nil {
		return types.CreditBalance{}, err
	}
	return bal, nil
}
