package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/domain/order"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/pagination"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/ports"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"
)

type fakeRepository struct {
	orders   map[order.ID]*order.Order
	failRead bool
	created  []*order.Order
	deleted  []*order.Order
	filtered []*order.Order
	total    int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: make(map[order.ID]*order.Order)}
}

func (r *fakeRepository) Create(o *order.Order) { r.created = append(r.created, o) }
func (r *fakeRepository) Delete(o *order.Order) { r.deleted = append(r.deleted, o) }

func (r *fakeRepository) GetByDomainID(_ context.Context, id order.ID) (*order.Order, error) {
	if r.failRead {
		return nil, errors.New("store unavailable")
	}
	return r.orders[id], nil
}

func (r *fakeRepository) GetByID(context.Context, int64) (*order.Order, error) {
	return nil, nil
}

func (r *fakeRepository) Filter(context.Context, ports.OrderFilter) ([]*order.Order, int64, error) {
	if r.failRead {
		return nil, 0, errors.New("store unavailable")
	}
	return r.filtered, r.total, nil
}

type fakeSession struct {
	repo       *fakeRepository
	saveResult result.Result[result.Void]
	saves      int
}

func (s *fakeSession) Orders() ports.OrderRepository { return s.repo }

func (s *fakeSession) SaveChanges(context.Context) result.Result[result.Void] {
	s.saves++
	return s.saveResult
}

type fakeFactory struct {
	session *fakeSession
}

func (f *fakeFactory) NewSession() ports.Session { return f.session }

func newFakeFactory() (*fakeFactory, *fakeSession, *fakeRepository) {
	repo := newFakeRepository()
	session := &fakeSession{repo: repo, saveResult: result.Ok()}
	return &fakeFactory{session: session}, session, repo
}

type fakeCache struct {
	values  map[string]string
	setErr  error
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.values[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.values, key)
		c.deletes++
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateOrderStagesAndSaves(t *testing.T) {
	t.Parallel()

	factory, session, repo := newFakeFactory()
	handler := NewCreateOrderHandler(factory)

	res := handler.Handle(context.Background(), CreateOrderCommand{
		Items: []NewOrderItem{{ProductName: "keyboard", Quantity: 2, Price: 49.50}},
	})
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %v", res.Error())
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one staged order")
	}
	if session.saves != 1 {
		t.Fatalf("expected one commit, got %d", session.saves)
	}
	created := repo.created[0]
	if created.TotalAmount() != 99.00 {
		t.Fatalf("expected derived total 99.00, got %.2f", created.TotalAmount())
	}
	if res.Value().OrderID != created.DomainID().String() {
		t.Fatalf("response must carry the new domain id")
	}
}

func TestCreateOrderPropagatesCommitFailure(t *testing.T) {
	t.Parallel()

	factory, session, _ := newFakeFactory()
	session.saveResult = result.Fail(result.Internal("Db.OperationFailed", result.SeverityTechnical))
	handler := NewCreateOrderHandler(factory)

	res := handler.Handle(context.Background(), CreateOrderCommand{})
	if res.IsSuccess() {
		t.Fatalf("expected commit failure to propagate")
	}
	if res.Error().Code() != "Db.OperationFailed" {
		t.Fatalf("unexpected code %q", res.Error().Code())
	}
}

func TestSubmitOrderNotFound(t *testing.T) {
	t.Parallel()

	factory, session, _ := newFakeFactory()
	handler := NewSubmitOrderHandler(factory)

	res := handler.Handle(context.Background(), SubmitOrderCommand{OrderID: order.NewID()})
	if res.IsSuccess() {
		t.Fatalf("expected not found failure")
	}
	if res.Error().Code() != "Order.NotFound" {
		t.Fatalf("unexpected code %q", res.Error().Code())
	}
	if res.Error().Category() != result.CategoryNotFound {
		t.Fatalf("unexpected category %s", res.Error().Category())
	}
	if session.saves != 0 {
		t.Fatalf("nothing to commit for a missing order")
	}
}

func TestSubmitOrderReadFailure(t *testing.T) {
	t.Parallel()

	factory, _, repo := newFakeFactory()
	repo.failRead = true
	handler := NewSubmitOrderHandler(factory)

	res := handler.Handle(context.Background(), SubmitOrderCommand{OrderID: order.NewID()})
	if res.Error().Code() != "Order.ReadFailed" {
		t.Fatalf("unexpected code %q", res.Error().Code())
	}
}

func TestSubmitOrderTransitionsAndSaves(t *testing.T) {
	t.Parallel()

	factory, session, repo := newFakeFactory()
	o := order.New("ORD-20260831-00001")
	o.AddItem("keyboard", 1, 80.00)
	o.ClearDomainEvents()
	repo.orders[o.DomainID()] = o
	handler := NewSubmitOrderHandler(factory)

	res := handler.Handle(context.Background(), SubmitOrderCommand{OrderID: o.DomainID()})
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %v", res.Error())
	}
	if o.Status() != order.StatusSubmitted {
		t.Fatalf("expected submitted status")
	}
	if session.saves != 1 {
		t.Fatalf("expected one commit")
	}
}

func TestDeleteOrderStagesRemoval(t *testing.T) {
	t.Parallel()

	factory, session, repo := newFakeFactory()
	o := order.New("ORD-20260831-00002")
	o.ClearDomainEvents()
	repo.orders[o.DomainID()] = o
	handler := NewDeleteOrderHandler(factory)

	res := handler.Handle(context.Background(), DeleteOrderCommand{OrderID: o.DomainID()})
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %v", res.Error())
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != o {
		t.Fatalf("order must be staged for deletion")
	}
	events := o.DomainEvents()
	if len(events) != 1 {
		t.Fatalf("expected deleted event, got %d events", len(events))
	}
	if _, ok := events[0].(order.Deleted); !ok {
		t.Fatalf("expected Deleted event, got %T", events[0])
	}
	if session.saves != 1 {
		t.Fatalf("expected one commit")
	}
}

func TestGetOrderReadsThroughCache(t *testing.T) {
	t.Parallel()

	factory, _, repo := newFakeFactory()
	cache := newFakeCache()
	o := order.New("ORD-20260831-00003")
	o.AddItem("keyboard", 1, 80.00)
	repo.orders[o.DomainID()] = o
	handler := NewGetOrderByIDHandler(factory, cache, time.Minute, discardLogger())

	res := handler.Handle(context.Background(), GetOrderByIDQuery{OrderID: o.DomainID()})
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %v", res.Error())
	}
	if res.Value().OrderNumber != "ORD-20260831-00003" {
		t.Fatalf("unexpected dto %+v", res.Value())
	}
	if cache.sets != 1 {
		t.Fatalf("store read must populate the cache")
	}

	repo.failRead = true
	res = handler.Handle(context.Background(), GetOrderByIDQuery{OrderID: o.DomainID()})
	if res.IsFailure() {
		t.Fatalf("cached read must not touch the store: %v", res.Error())
	}
}

func TestGetOrderCacheWriteFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	factory, _, repo := newFakeFactory()
	cache := newFakeCache()
	cache.setErr = errors.New("redis down")
	o := order.New("ORD-20260831-00004")
	repo.orders[o.DomainID()] = o
	handler := NewGetOrderByIDHandler(factory, cache, time.Minute, discardLogger())

	res := handler.Handle(context.Background(), GetOrderByIDQuery{OrderID: o.DomainID()})
	if res.IsFailure() {
		t.Fatalf("cache trouble must not fail the read: %v", res.Error())
	}
}

func TestGetOrderNotFound(t *testing.T) {
	t.Parallel()

	factory, _, _ := newFakeFactory()
	handler := NewGetOrderByIDHandler(factory, newFakeCache(), time.Minute, discardLogger())

	res := handler.Handle(context.Background(), GetOrderByIDQuery{OrderID: order.NewID()})
	if res.Error().Code() != "Order.NotFound" {
		t.Fatalf("unexpected code %q", res.Error().Code())
	}
}

func TestFilterOrdersBuildsPageEnvelope(t *testing.T) {
	t.Parallel()

	factory, _, repo := newFakeFactory()
	for i := 0; i < 3; i++ {
		o := order.New("ORD-20260831-1000" + string(rune('0'+i)))
		repo.filtered = append(repo.filtered, o)
	}
	repo.total = 12
	handler := NewFilterOrdersHandler(factory)

	res := handler.Handle(context.Background(), FilterOrdersQuery{
		Page: pagination.PageRequest{PageIndex: 0, PageSize: 2},
	})
	if res.IsFailure() {
		t.Fatalf("unexpected failure: %v", res.Error())
	}
	page := res.Value()
	if len(page.Items) != 2 {
		t.Fatalf("over-fetch must be trimmed to the page size, got %d", len(page.Items))
	}
	if !page.Info.HasNext {
		t.Fatalf("expected has_next with an extra row")
	}
	if page.Info.Total != 12 {
		t.Fatalf("expected total 12, got %d", page.Info.Total)
	}
}

func TestOrderDTORoundTripsThroughJSON(t *testing.T) {
	t.Parallel()

	o := order.New("ORD-20260831-00005")
	o.AddItem("keyboard", 2, 49.50)
	dto := toOrderDTO(o)

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded OrderDTO
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.OrderID != dto.OrderID || decoded.TotalAmount != 99.00 || len(decoded.Items) != 1 {
		t.Fatalf("dto lost data: %+v", decoded)
	}
}
