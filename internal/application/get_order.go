package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type GetOrderByIDHandler struct {
	sessions ports.SessionFactory
	cache    ports.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewGetOrderByIDHandler(sessions ports.SessionFactory, cache ports.Cache, cacheTTL time.Duration, logger *slog.Logger) *GetOrderByIDHandler {
	return &GetOrderByIDHandler{sessions: sessions, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func cacheKey(id order.ID) string { return "order:" + id.String() }

// Handle reads through the cache; cache trouble degrades to a store read and
// is never surfaced to the caller.
func (h *GetOrderByIDHandler) Handle(ctx context.Context, query GetOrderByIDQuery) result.Result[OrderDTO] {
	if cached, err := h.cache.Get(ctx, cacheKey(query.OrderID)); err == nil && cached != "" {
		var dto OrderDTO
		if unmarshalErr := json.Unmarshal([]byte(cached), &dto); unmarshalErr == nil {
			return result.Success(dto)
		}
	}

	session := h.sessions.NewSession()
	found, err := session.Orders().GetByDomainID(ctx, query.OrderID)
	if err != nil {
		return result.Failure[OrderDTO](errReadFailed())
	}
	if found == nil {
		return result.Failure[OrderDTO](order.ErrNotFound(query.OrderID))
	}

	dto := toOrderDTO(found)
	if raw, marshalErr := json.Marshal(dto); marshalErr == nil {
		if cacheErr := h.cache.Set(ctx, cacheKey(query.OrderID), string(raw), h.cacheTTL); cacheErr != nil {
			h.logger.WarnContext(ctx, "order cache write failed",
				"module", "application.get_order", "order_id", query.OrderID.String(), "error", cacheErr)
		}
	}
	return result.Success(dto)
}
