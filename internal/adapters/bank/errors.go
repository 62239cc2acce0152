package bank

import (
	"fmt"
	"net/http"
)

// BankError reports a bank reply whose status code is worth retrying.
type BankError struct {
	StatusCode int
	Message    string
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank error: %s (status: %d)", e.Message, e.StatusCode)
}

func newBankError(resp *http.Response) *BankError {
	return &BankError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}

// isRetryableStatus matches transient HTTP failures: any 5xx and 408.
func isRetryableStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusRequestTimeout
}
