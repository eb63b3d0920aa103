// Package postgres implements the persistence session: a per-request unit of
// work over gorm with audit stamping before the physical write and domain
// event publication after it.
package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
	"gorm.io/gorm"
)

// PublishFunc delivers one batch of drained domain events; in the wired
// service it is the mediator's Publish.
type PublishFunc func(ctx context.Context, events ...domain.Event) error

var errRowVersionConflict = errors.New("row version conflict")

type SessionFactory struct {
	db        *gorm.DB
	operators ports.OperatorProvider
	publish   PublishFunc
	logger    *slog.Logger
	nowFn     func() time.Time
}

func NewSessionFactory(db *gorm.DB, operators ports.OperatorProvider, publish PublishFunc, logger *slog.Logger) *SessionFactory {
	return &SessionFactory{
		db:        db,
		operators: operators,
		publish:   publish,
		logger:    logger,
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

// WithNow overrides the commit clock; used by tests.
func (f *SessionFactory) WithNow(nowFn func() time.Time) *SessionFactory {
	f.nowFn = nowFn
	return f
}

func (f *SessionFactory) NewSession() ports.Session {
	s := &Session{factory: f}
	s.orders = &orderRepository{session: s}
	return s
}

type trackState int

const (
	stateTracked trackState = iota
	stateAdded
	stateDeleted
)

type entry struct {
	order *order.Order
	state trackState
}

// Session owns one request's working set. It is not safe for concurrent use;
// each inbound request builds its own session.
type Session struct {
	factory *SessionFactory
	orders  *orderRepository
	entries []*entry
}

func (s *Session) Orders() ports.OrderRepository { return s.orders }

func (s *Session) track(o *order.Order, state trackState) {
	for _, e := range s.entries {
		if e.order == o {
			if state != stateTracked {
				e.state = state
			}
			return
		}
	}
	s.entries = append(s.entries, &entry{order: o, state: state})
}

func (s *Session) pending() []*entry {
	var out []*entry
	for _, e := range s.entries {
		if e.state != stateTracked || e.order.Changed() {
			out = append(out, e)
		}
	}
	return out
}

// SaveChanges commits the staged working set. Sequencing within one commit is
// fixed: audit stamping, then the physical write, then event publication.
// Events published here never observe a state that failed to commit; a
// publication failure after the write does not roll it back.
func (s *Session) SaveChanges(ctx context.Context) result.Result[result.Void] {
	pending := s.pending()
	if len(pending) == 0 {
		return result.Ok()
	}
	if err := ctx.Err(); err != nil {
		s.factory.logger.ErrorContext(ctx, "save changes aborted",
			"module", "postgres.session", "operation", "save_changes", "error", err)
		return result.Fail(errSaveFailed())
	}

	operatorID := s.factory.operators.OperatorID(ctx)
	if operatorID == uuid.Nil {
		panic(domain.InvariantError("postgres: commit requires a known operator"))
	}
	now := s.factory.nowFn()

	for _, e := range pending {
		s.applyAudit(e, operatorID, now)
	}

	err := s.factory.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range pending {
			if writeErr := s.write(tx, e); writeErr != nil {
				return writeErr
			}
		}
		return nil
	})
	if err != nil {
		s.factory.logger.ErrorContext(ctx, "save changes failed",
			"module", "postgres.session", "operation", "save_changes", "error", err)
		return result.Fail(errSaveFailed())
	}

	var events []domain.Event
	for _, e := range pending {
		events = append(events, e.order.DomainEvents()...)
		e.order.ClearDomainEvents()
		e.order.MarkClean()
		e.state = stateTracked
	}
	if len(events) > 0 {
		if err := s.factory.publish(ctx, events...); err != nil {
			s.factory.logger.ErrorContext(ctx, "event publication failed after commit",
				"module", "postgres.session", "operation", "save_changes", "error", err)
			return result.Fail(errSaveFailed())
		}
	}
	return result.Ok()
}

// applyAudit stamps each staged entry per its capability set. Deletions stay
// staged as deletions but are written as updates (soft delete).
func (s *Session) applyAudit(e *entry, operatorID uuid.UUID, now time.Time) {
	switch e.state {
	case stateAdded:
		if c, ok := any(e.order).(domain.Creatable); ok {
			c.SetCreated(operatorID, now)
		}
		for _, item := range e.order.Items() {
			item.SetCreated(operatorID, now)
		}
	case stateDeleted:
		if d, ok := any(e.order).(domain.SoftDeletable); ok {
			d.SetDeleted(operatorID, now)
		}
		for _, item := range e.order.Items() {
			item.SetDeleted(operatorID, now)
		}
	default:
		if m, ok := any(e.order).(domain.Modifiable); ok {
			m.SetModified(operatorID, now)
		}
		for _, item := range e.order.Items() {
			if item.ID() == 0 {
				item.SetCreated(operatorID, now)
			}
		}
	}
}

func (s *Session) write(tx *gorm.DB, e *entry) error {
	switch e.state {
	case stateAdded:
		return s.insert(tx, e.order)
	case stateDeleted:
		return s.softDelete(tx, e.order)
	default:
		return s.update(tx, e.order)
	}
}

func (s *Session) insert(tx *gorm.DB, o *order.Order) error {
	m := toOrderModel(o)
	m.RowVersion = 1
	for i := range m.Items {
		m.Items[i].RowVersion = 1
	}
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	o.BindStored(m.ID, m.RowVersion)
	for i, item := range o.Items() {
		item.BindStored(m.Items[i].ID, m.Items[i].RowVersion)
	}
	return nil
}

func (s *Session) update(tx *gorm.DB, o *order.Order) error {
	audit := o.Audit()
	res := tx.Model(&orderModel{}).
		Where("id = ? AND row_version = ?", o.ID(), o.RowVersion()).
		Updates(map[string]any{
			"order_number": o.OrderNumber(),
			"total_amount": o.TotalAmount(),
			"status":       int(o.Status()),
			"modifier_id":  audit.ModifierID,
			"modified_at":  audit.ModifiedAt,
			"record_state": int(audit.RecordState),
			"row_version":  o.RowVersion() + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errRowVersionConflict
	}
	for _, item := range o.Items() {
		if item.ID() != 0 {
			continue
		}
		im := toOrderItemModel(item, o.ID())
		im.RowVersion = 1
		if err := tx.Create(&im).Error; err != nil {
			return err
		}
		item.BindStored(im.ID, im.RowVersion)
	}
	o.BindStored(o.ID(), o.RowVersion()+1)
	return nil
}

// softDelete rewrites a staged deletion as an update: the rows stay present
// and are filtered out of default reads by record state.
func (s *Session) softDelete(tx *gorm.DB, o *order.Order) error {
	audit := o.Audit()
	res := tx.Model(&orderModel{}).
		Where("id = ? AND row_version = ?", o.ID(), o.RowVersion()).
		Updates(map[string]any{
			"deleter_id":   audit.DeleterID,
			"deleted_at":   audit.DeletedAt,
			"record_state": int(domain.RecordStateDeleted),
			"row_version":  o.RowVersion() + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errRowVersionConflict
	}
	if err := tx.Model(&orderItemModel{}).
		Where("order_id = ?", o.ID()).
		Updates(map[string]any{
			"deleter_id":   audit.DeleterID,
			"deleted_at":   audit.DeletedAt,
			"record_state": int(domain.RecordStateDeleted),
		}).Error; err != nil {
		return err
	}
	o.BindStored(o.ID(), o.RowVersion()+1)
	return nil
}
