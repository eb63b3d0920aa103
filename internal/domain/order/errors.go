package order

import "github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"

const codeNotFound = "Order.NotFound"

func ErrNotFound(id ID) result.Error {
	return result.NotFound(codeNotFound, result.SeverityBusiness,
		result.Arg{Key: "orderId", Value: id.String()})
}

// Codes lists every error code this package can emit, for the startup
// uniqueness registry.
func Codes() []result.Error {
	return []result.Error{
		result.NotFound(codeNotFound, result.SeverityBusiness),
	}
}
