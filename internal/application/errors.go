package application

import "github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"

const codeReadFailed = "Order.ReadFailed"

func errReadFailed() result.Error {
	return result.Internal(codeReadFailed, result.SeverityTechnical)
}

// Codes lists every error code this package can emit, for the startup
// uniqueness registry.
func Codes() []result.Error {
	return []result.Error{
		result.Internal(codeReadFailed, result.SeverityTechnical),
	}
}
