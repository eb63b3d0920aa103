package postgres

import "github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"

const codeSaveFailed = "Db.OperationFailed"

// errSaveFailed is the single technical failure crossing the persistence
// boundary; store-specific error shapes never leak past it.
func errSaveFailed() result.Error {
	return result.Internal(codeSaveFailed, result.SeverityTechnical)
}

// Codes lists every error code this package can emit, for the startup
// uniqueness registry.
func Codes() []result.Error {
	return []result.Error{
		result.Internal(codeSaveFailed, result.SeverityTechnical),
	}
}
