package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"orderdeck/internal/api"
	"orderdeck/internal/domain"
)

// Router receives the view and create navigation intents. The list model
// forwards them verbatim; whatever happens next is the router's business.
type Router interface {
	ViewOrder(id string) tea.Cmd
	CreateOrder() tea.Cmd
}

// PagerRouter shows order details in the ov pager and creates draft orders
// through the orders service.
type PagerRouter struct {
	svc     api.Service
	log     zerolog.Logger
	timeout time.Duration
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewRouter creates the default router over the orders service.
func NewRouter(svc api.Service, timeout time.Duration, log zerolog.Logger) *PagerRouter {
	return &PagerRouter{svc: svc, log: log, timeout: timeout}
}

// SetProgram sets the program reference for terminal management
func (r *PagerRouter) SetProgram(p *tea.Program) {
	r.program = p
}

// ViewOrder fetches the order and shows it in the pager.
func (r *PagerRouter) ViewOrder(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		order, err := r.svc.Get(ctx, id)
		if err != nil {
			r.log.Error().Err(err).Str("order", id).Msg("view order failed")
			return orderViewedMsg{id: id, err: err}
		}

		return orderViewedMsg{id: id, err: showInPager(r.program, renderOrderDetail(order))}
	}
}

// CreateOrder creates an empty draft order for later editing.
func (r *PagerRouter) CreateOrder() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		order, err := r.svc.Create(ctx, domain.OrderDraft{})
		if err != nil {
			r.log.Error().Err(err).Msg("create order failed")
		}
		return orderCreatedMsg{order: order, err: err}
	}
}
