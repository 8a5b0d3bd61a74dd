package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/Domenick1991/airport/internal/repository"
	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultPublishTimeout = 3 * time.Second
)

type BookingUseCase interface {
	CreateOrder(ctx context.Context, identity domain.Identity, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, identity domain.Identity, page domain.Page) (*domain.OrderPage, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketInput struct {
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
	FlightID int64 `json:"flight"`
}

type CreateOrderInput struct {
	Tickets []TicketInput `json:"tickets"`
}

type BookingService struct {
	tx                 repository.Transactor
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	producer           Producer
	ordersTopic        string
	notificationsTopic string
	pageSize           int
	maxPageSize        int
	publishTimeout     time.Duration
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishTimeout bounds how long an order response waits for its events.
func WithPublishTimeout(timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func WithPageSize(size, max int) BookingServiceOption {
	return func(s *BookingService) {
		if size > 0 {
			s.pageSize = size
		}
		if max > 0 {
			s.maxPageSize = max
		}
	}
}

func NewBookingService(
	tx repository.Transactor,
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	producer Producer,
	ordersTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tx:             tx,
		orders:         orders,
		flights:        flights,
		producer:       producer,
		ordersTopic:    ordersTopic,
		pageSize:       DefaultPageSize,
		maxPageSize:    MaxPageSize,
		publishTimeout: DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateOrder validates every ticket against its flight's seat layout and
// then writes the order with all tickets in one transaction. A failure on
// any ticket, including a seat taken by a concurrent order, rolls the whole
// order back. Seat uniqueness is decided by the store, not by this method.
func (s *BookingService) CreateOrder(ctx context.Context, identity domain.Identity, input CreateOrderInput) (*domain.Order, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validateTickets(ctx, input.Tickets); err != nil {
		return nil, err
	}

	order := &domain.Order{UserID: identity.UserID}
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.orders.Create(txCtx, order); err != nil {
			return err
		}
		order.Tickets = make([]domain.Ticket, 0, len(input.Tickets))
		for i, in := range input.Tickets {
			ticket := domain.Ticket{FlightID: in.FlightID, Row: in.Row, Seat: in.Seat, OrderID: order.ID}
			if err := s.orders.AddTicket(txCtx, &ticket); err != nil {
				return ticketError(i, ticket, err)
			}
			order.Tickets = append(order.Tickets, ticket)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.SeatConflicts.Inc()
		}
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.TicketsBooked.Add(float64(len(order.Tickets)))

	if err := s.publish(ctx, identity, order); err != nil {
		metrics.EventPublishErrors.Inc()
		log.Printf("WARNING: failed to publish %s event for order %d: %v", kafka.EventOrderCreated, order.ID, err)
	}
	return order, nil
}

func (s *BookingService) validateTickets(ctx context.Context, tickets []TicketInput) error {
	if len(tickets) == 0 {
		return domain.NewValidationError("tickets", "This list may not be empty.")
	}

	ids := make([]int64, 0, len(tickets))
	seenFlight := make(map[int64]bool)
	for _, t := range tickets {
		if !seenFlight[t.FlightID] {
			seenFlight[t.FlightID] = true
			ids = append(ids, t.FlightID)
		}
	}

	layouts, err := s.flights.SeatLayouts(ctx, ids)
	if err != nil {
		return fmt.Errorf("load seat layouts: %w", err)
	}

	verr := &domain.ValidationError{}
	seenSeat := make(map[domain.SeatKey]int, len(tickets))
	for i, t := range tickets {
		prefix := fmt.Sprintf("tickets[%d].", i)
		layout, ok := layouts[t.FlightID]
		if !ok {
			verr.Add(prefix+"flight", "Invalid pk - object does not exist.")
			continue
		}
		if verr.Merge(prefix, domain.ValidateTicket(t.Row, t.Seat, layout)) {
			continue
		}
		key := domain.SeatKey{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
		if first, dup := seenSeat[key]; dup {
			verr.Add(prefix+domain.NonFieldErrors, fmt.Sprintf("Same seat as tickets[%d].", first))
			continue
		}
		seenSeat[key] = i
	}
	return verr.OrNil()
}

func ticketError(i int, ticket domain.Ticket, err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return &domain.ConflictError{
			Field: fmt.Sprintf("tickets[%d]", i),
			Message: fmt.Sprintf("Seat (row %d, seat %d) on flight %d is already booked.",
				ticket.Row, ticket.Seat, ticket.FlightID),
		}
	}
	verr := &domain.ValidationError{}
	if verr.Merge(fmt.Sprintf("tickets[%d].", i), err) {
		return verr
	}
	return fmt.Errorf("add ticket %d: %w", i, err)
}

func (s *BookingService) ListOrders(ctx context.Context, identity domain.Identity, page domain.Page) (*domain.OrderPage, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	page = s.normalizePage(page)
	if !page.InRange() {
		return nil, domain.ErrInvalidPage
	}

	orders, total, err := s.orders.ListByUser(ctx, identity.UserID, page)
	if err != nil {
		return nil, err
	}
	return &domain.OrderPage{Orders: orders, Total: total, Page: page}, nil
}

func (s *BookingService) normalizePage(page domain.Page) domain.Page {
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size <= 0 {
		page.Size = s.pageSize
	}
	if page.Size > s.maxPageSize {
		page.Size = s.maxPageSize
	}
	return page
}

func (s *BookingService) publish(ctx context.Context, identity domain.Identity, order *domain.Order) error {
	if s.producer == nil || s.ordersTopic == "" {
		return nil
	}
	event := kafka.OrderEvent{
		ID:        uuid.NewString(),
		Type:      kafka.EventOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Email:     identity.Email,
		Tickets:   make([]kafka.TicketEvent, 0, len(order.Tickets)),
		CreatedAt: order.CreatedAt,
	}
	for _, t := range order.Tickets {
		event.Tickets = append(event.Tickets, kafka.TicketEvent{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat})
	}

	// the order is already committed; a slow broker must not hold the response
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	key := strconv.FormatInt(order.ID, 10)
	if err := s.producer.Publish(ctx, s.ordersTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
