package commands_test

import (
	"context"
	"sync"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/chat"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// memoryStore is a shared in-memory backing for the fake repositories. The
// mutex makes AcceptPending behave like the conditional update it stands for,
// so concurrency tests exercise the real contract.
type memoryStore struct {
	mu       sync.Mutex
	orders   map[string]*order.AssignedOrder
	couriers map[string]*courier.Courier
	messages []*chat.Message
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:   make(map[string]*order.AssignedOrder),
		couriers: make(map[string]*courier.Courier),
	}
}

type fakeOrderRepository struct {
	store *memoryStore
}

func (r fakeOrderRepository) Add(_ context.Context, aggregate *order.AssignedOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeOrderRepository) Update(_ context.Context, aggregate *order.AssignedOrder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.AssignedOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	aggregate, ok := r.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("assignedOrderID", id)
	}
	return restoreOrderCopy(aggregate)
}

func (r fakeOrderRepository) GetByOrderID(_ context.Context, orderID kernel.UUID) (*order.AssignedOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, aggregate := range r.store.orders {
		if aggregate.OrderID().IsEqual(orderID) {
			return restoreOrderCopy(aggregate)
		}
	}
	return nil, errs.NewObjectNotFoundError("orderID", orderID)
}

func (r fakeOrderRepository) GetAllPending(_ context.Context) ([]*order.AssignedOrder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*order.AssignedOrder
	for _, aggregate := range r.store.orders {
		if aggregate.Status() == order.Pending {
			copied, err := restoreOrderCopy(aggregate)
			if err != nil {
				return nil, err
			}
			result = append(result, copied)
		}
	}
	return result, nil
}

func (r fakeOrderRepository) AcceptPending(_ context.Context, id kernel.UUID, courierID kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	aggregate, ok := r.store.orders[id.String()]
	if !ok {
		return errs.NewObjectNotFoundError("assignedOrderID", id)
	}
	if aggregate.Status() != order.Pending {
		return order.ErrOrderAlreadyTaken
	}
	if err := aggregate.Accept(courierID); err != nil {
		return err
	}
	return nil
}

func restoreOrderCopy(aggregate *order.AssignedOrder) (*order.AssignedOrder, error) {
	return order.RestoreAssignedOrder(
		aggregate.ID(),
		aggregate.OrderID(),
		aggregate.CustomerLocation(),
		aggregate.Status(),
		aggregate.Courier(),
	)
}

type fakeCourierRepository struct {
	store *memoryStore
}

func (r fakeCourierRepository) Add(_ context.Context, aggregate *courier.Courier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.couriers[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeCourierRepository) Update(_ context.Context, aggregate *courier.Courier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.couriers[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeCourierRepository) Get(_ context.Context, id kernel.UUID) (*courier.Courier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	aggregate, ok := r.store.couriers[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courierID", id)
	}
	return aggregate, nil
}

func (r fakeCourierRepository) GetAllAvailable(_ context.Context) ([]*courier.Courier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*courier.Courier
	for _, aggregate := range r.store.couriers {
		if aggregate.IsAvailable() {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

type fakeChatRepository struct {
	store *memoryStore
}

func (r fakeChatRepository) Add(_ context.Context, message *chat.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages = append(r.store.messages, message)
	return nil
}

func (r fakeChatRepository) GetByAssignedOrderID(_ context.Context, assignedOrderID kernel.UUID) ([]*chat.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*chat.Message
	for _, message := range r.store.messages {
		if message.AssignedOrderID().IsEqual(assignedOrderID) {
			result = append(result, message)
		}
	}
	return result, nil
}

type fakeUnitOfWork struct {
	store *memoryStore
}

func (u fakeUnitOfWork) Begin(context.Context) error    { return nil }
func (u fakeUnitOfWork) Commit(context.Context) error   { return nil }
func (u fakeUnitOfWork) Rollback(context.Context) error { return nil }

func (u fakeUnitOfWork) OrderRepository() ports.OrderRepository {
	return fakeOrderRepository{store: u.store}
}

func (u fakeUnitOfWork) CourierRepository() ports.CourierRepository {
	return fakeCourierRepository{store: u.store}
}

func (u fakeUnitOfWork) ChatRepository() ports.ChatRepository {
	return fakeChatRepository{store: u.store}
}

type fakeUoWFactory struct {
	store *memoryStore
}

func (f fakeUoWFactory) Create() commands.UoW {
	return fakeUnitOfWork{store: f.store}
}

type fakeOrderUoWFactory struct {
	store *memoryStore
}

func (f fakeOrderUoWFactory) Create() commands.OrderUoW {
	return fakeUnitOfWork{store: f.store}
}

type fakeCourierUoWFactory struct {
	store *memoryStore
}

func (f fakeCourierUoWFactory) Create() commands.CourierUoW {
	return fakeUnitOfWork{store: f.store}
}

type fakeChatUoWFactory struct {
	store *memoryStore
}

func (f fakeChatUoWFactory) Create() commands.ChatUoW {
	return fakeUnitOfWork{store: f.store}
}

type stubGeocoder struct {
	point kernel.GeoPoint
	err   error
}

func (g stubGeocoder) Forward(context.Context, string) (kernel.GeoPoint, error) {
	if g.err != nil {
		return kernel.GeoPoint{}, g.err
	}
	return g.point, nil
}

func (g stubGeocoder) Reverse(context.Context, kernel.GeoPoint) (string, error) {
	return "", nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	notified []string
}

func (n *recordingNotifier) NotifyAssignment(_ context.Context, c *courier.Courier, _ *order.AssignedOrder) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notified = append(n.notified, c.ID().String())
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notified)
}
