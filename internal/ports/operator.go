package ports

import (
	"context"

	"github.com/google/uuid"
)

// OperatorProvider yields the acting principal for audit stamping. The commit
// sequence refuses to run without a known operator.
type OperatorProvider interface {
	OperatorID(ctx context.Context) uuid.UUID
}
