// Package demoapi is a small in-memory orders service used for local demos
// and manual testing of the client. It is not a production surface.
package demoapi

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"orderdeck/internal/domain"
)

// Server holds the in-memory order set behind the HTTP handlers.
type Server struct {
	mu     sync.Mutex
	orders []domain.Order
	log    zerolog.Logger
}

// NewServer creates an empty demo server.
func NewServer(log zerolog.Logger) *Server {
	return &Server{log: log}
}

// Seed fills the server with n random orders, newest first.
func (s *Server) Seed(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := 0; i < n; i++ {
		cents := rand.Int63n(250_000) + 99
		s.orders = append(s.orders, domain.Order{
			ID:         uuid.NewString(),
			CustomerID: fmt.Sprintf("customer-%03d", rand.Intn(40)+1),
			CreatedAt:  now.Add(-time.Duration(i) * 37 * time.Minute),
			TotalPrice: decimal.New(cents, -2),
		})
	}
	s.sortLocked()
}

// Add inserts a single order, keeping newest-first ordering.
func (s *Server) Add(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	s.sortLocked()
}

func (s *Server) sortLocked() {
	sort.Slice(s.orders, func(i, j int) bool {
		return s.orders[i].CreatedAt.After(s.orders[j].CreatedAt)
	})
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/orders", s.handleList)
	r.Get("/orders/search", s.handleSearch)
	r.Get("/orders/{id}", s.handleGet)
	r.Post("/orders", s.handleCreate)
	r.Delete("/orders/{id}", s.handleDelete)
	return r
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	s.mu.Lock()
	result := paginate(s.orders, page, pageSize)
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	query := strings.ToLower(r.URL.Query().Get("q"))

	s.mu.Lock()
	var matched []domain.Order
	for _, order := range s.orders {
		if strings.Contains(strings.ToLower(order.ID), query) ||
			strings.Contains(strings.ToLower(order.CustomerID), query) {
			matched = append(matched, order)
		}
	}
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, paginate(matched, page, pageSize))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			s.writeJSON(w, http.StatusOK, order)
			return
		}
	}
	http.Error(w, "order not found", http.StatusNotFound)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft domain.OrderDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: draft.CustomerID,
		CreatedAt:  time.Now(),
		TotalPrice: draft.TotalPrice,
	}
	if order.CustomerID == "" {
		order.CustomerID = "draft"
	}
	s.Add(order)

	s.log.Info().Str("order", order.ID).Msg("order created")
	s.writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, order := range s.orders {
		if order.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.log.Info().Str("order", id).Msg("order deleted")
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "order not found", http.StatusNotFound)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encoding response")
	}
}

func pageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}

// paginate slices one page out of orders and fills in the pagination
// metadata the client trusts as-is.
func paginate(orders []domain.Order, page, pageSize int) domain.Page {
	totalPages := (len(orders) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > len(orders) {
		start = len(orders)
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}

	items := make([]domain.Order, end-start)
	copy(items, orders[start:end])

	return domain.Page{
		Orders:     items,
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
