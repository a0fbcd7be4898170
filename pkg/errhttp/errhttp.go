// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/stockflow/backend/pkg/httpx"
	accountdomain "github.com/stockflow/backend/services/account/domain"
	customerdomain "github.com/stockflow/backend/services/customer/domain"
	invdomain "github.com/stockflow/backend/services/inventory/domain"
	orderdomain "github.com/stockflow/backend/services/order/domain"
	prefdomain "github.com/stockflow/backend/services/preference/domain"
	reportdomain "github.com/stockflow/backend/services/report/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrProductNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, customerdomain.ErrCustomerNotFound),
		errors.Is(err, accountdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrSKUAlreadyExists),
		errors.Is(err, accountdomain.ErrEmailAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrInvalidProduct),
		errors.Is(err, invdomain.ErrEmptyPatch),
		errors.Is(err, orderdomain.ErrInvalidOrder),
		errors.Is(err, orderdomain.ErrEmptyPatch),
		errors.Is(err, customerdomain.ErrInvalidCustomer),
		errors.Is(err, customerdomain.ErrEmptyPatch),
		errors.Is(err, accountdomain.ErrInvalidUser),
		errors.Is(err, prefdomain.ErrEmptyPatch),
		errors.Is(err, prefdomain.ErrInvalidPreferences):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, accountdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized // 401
	case errors.Is(err, reportdomain.ErrInvalidDateRange):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
