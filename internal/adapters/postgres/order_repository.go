package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"gorm.io/gorm"
)

// sortColumns is the allow-list for filter sorting; anything else falls back
// to the surrogate key.
var sortColumns = map[string]string{
	"id":          "id",
	"orderNumber": "order_number",
	"status":      "status",
}

type orderRepository struct {
	session *Session
}

func (r *orderRepository) db() *gorm.DB { return r.session.factory.db }

// notDeleted excludes soft-deleted rows from default reads.
func notDeleted(tx *gorm.DB) *gorm.DB {
	return tx.Where("record_state <> ?", int(domain.RecordStateDeleted))
}

func (r *orderRepository) Create(o *order.Order) {
	r.session.track(o, stateAdded)
}

// Delete stages the root and all owned children as removals. The commit
// sequence converts them into soft-delete updates.
func (r *orderRepository) Delete(o *order.Order) {
	r.session.track(o, stateDeleted)
}

func (r *orderRepository) GetByDomainID(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.load(ctx, "domain_id = ?", uuid.UUID(id))
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.load(ctx, "id = ?", id)
}

func (r *orderRepository) load(ctx context.Context, query string, arg any) (*order.Order, error) {
	var m orderModel
	err := notDeleted(r.db().WithContext(ctx)).
		Preload("Items", "record_state <> ?", int(domain.RecordStateDeleted)).
		Where(query, arg).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	o := toDomainOrder(m)
	r.session.track(o, stateTracked)
	return o, nil
}

func (r *orderRepository) Filter(ctx context.Context, params ports.OrderFilter) ([]*order.Order, int64, error) {
	page := params.Page.Normalized()

	base := notDeleted(r.db().WithContext(ctx).Model(&orderModel{}))
	if params.OrderNumber != "" {
		base = base.Where("order_number LIKE ?", "%"+params.OrderNumber+"%")
	}
	if len(params.Statuses) > 0 {
		statuses := make([]int, 0, len(params.Statuses))
		for _, s := range params.Statuses {
			statuses = append(statuses, int(s))
		}
		base = base.Where("status IN ?", statuses)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := " ASC"
	if page.SortDesc {
		direction = " DESC"
	}
	clauses := make([]string, 0, len(page.SortBy))
	for _, field := range page.SortBy {
		if column, ok := sortColumns[field]; ok {
			clauses = append(clauses, column+direction)
		}
	}
	if len(clauses) == 0 {
		clauses = append(clauses, "id"+direction)
	}

	var models []orderModel
	if err := base.Session(&gorm.Session{}).
		Order(strings.Join(clauses, ", ")).
		Offset(page.Offset()).
		Limit(page.FetchLimit()).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toDomainOrder(m))
	}
	return orders, total, nil
}
