package service

import (
	"context"
	"sync"
	"time"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/basket"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/catalog"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/checkout"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/recommend"
	"go.uber.org/zap"
)

// BasketView is the derived state of a basket at read time.
type BasketView struct {
	Items            []models.LineItem `json:"items"`
	ItemCount        int               `json:"item_count"`
	SubtotalCents    int64             `json:"subtotal_cents"`
	ComboEligible    bool              `json:"combo_eligible"`
	DiscountCents    int64             `json:"discount_cents"`
	DeliveryFeeCents int64             `json:"delivery_fee_cents"`
	TotalCents       int64             `json:"total_cents"`
}

// CheckoutView reflects the in-progress checkout plus the basket totals the
// form screens display. Pricing always comes from the basket; the checkout
// never recomputes it.
type CheckoutView struct {
	Step        checkout.Step `json:"step"`
	OrderNumber string        `json:"order_number,omitempty"`
	Basket      BasketView    `json:"basket"`
}

// session is the per-customer state: the basket plus, while the panel is
// open, the checkout flow. Guarded by its own mutex; each mutation is atomic
// with respect to every other.
type session struct {
	mu       sync.Mutex
	basket   *basket.Basket
	checkout *checkout.Session
	lastSeen time.Time
}

// Storefront is the session controller composing basket, recommendations and
// checkout over the shared catalog.
type Storefront struct {
	cat     *catalog.Catalog
	sink    OrderSink
	numbers *checkout.NumberGenerator
	log     *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
}

func New(cat *catalog.Catalog, sink OrderSink, ttl time.Duration, log *zap.Logger) *Storefront {
	return &Storefront{
		cat:      cat,
		sink:     sink,
		numbers:  checkout.NewNumberGenerator(),
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
}

// Catalog exposes the product list for the shell.
func (s *Storefront) Catalog() []models.Product { return s.cat.Products() }

func (s *Storefront) session(id string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[id]; ok {
		return sess
	}
	sess = &session{basket: basket.New(s.cat), lastSeen: s.now()}
	s.sessions[id] = sess
	return sess
}

func (s *Storefront) withSession(id string, fn func(sess *session)) {
	sess := s.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	fn(sess)
}

func basketView(b *basket.Basket) BasketView {
	return BasketView{
		Items:            b.LineItems(),
		ItemCount:        b.ItemCount(),
		SubtotalCents:    b.SubtotalCents(),
		ComboEligible:    b.ComboEligible(),
		DiscountCents:    b.DiscountCents(),
		DeliveryFeeCents: b.DeliveryFeeCents(),
		TotalCents:       b.TotalCents(),
	}
}

// ApplyDelta moves the quantity for productID by one step in the direction of
// delta and returns the resulting basket state.
func (s *Storefront) ApplyDelta(sessionID, productID string, delta int) BasketView {
	var view BasketView
	s.withSession(sessionID, func(sess *session) {
		sess.basket.ApplyDelta(productID, delta)
		view = basketView(sess.basket)
	})
	return view
}

func (s *Storefront) Basket(sessionID string) BasketView {
	var view BasketView
	s.withSession(sessionID, func(sess *session) {
		view = basketView(sess.basket)
	})
	return view
}

func (s *Storefront) Recommendations(sessionID string, limit int) []models.Product {
	var out []models.Product
	s.withSession(sessionID, func(sess *session) {
		out = recommend.Recommend(sess.basket, s.cat, limit)
	})
	return out
}

// OpenCheckout starts a fresh checkout flow. Any prior flow, whatever state
// it reached, is discarded: reopening always begins at collecting-details
// with cleared fields.
func (s *Storefront) OpenCheckout(sessionID string) (CheckoutView, error) {
	var (
		view CheckoutView
		err  error
	)
	s.withSession(sessionID, func(sess *session) {
		if sess.basket.IsEmpty() {
			err = ErrEmptyBasket
			return
		}
		sess.checkout = checkout.NewSession()
		view = CheckoutView{Step: sess.checkout.Step(), Basket: basketView(sess.basket)}
	})
	return view, err
}

func (s *Storefront) SubmitDetails(sessionID string, in models.CustomerInfo) (CheckoutView, error) {
	var (
		view CheckoutView
		err  error
	)
	s.withSession(sessionID, func(sess *session) {
		if sess.checkout == nil {
			err = ErrCheckoutNotOpen
			return
		}
		if err = sess.checkout.SubmitDetails(in, s.numbers); err != nil {
			return
		}
		view = CheckoutView{
			Step:        sess.checkout.Step(),
			OrderNumber: sess.checkout.OrderNumber(),
			Basket:      basketView(sess.basket),
		}
	})
	return view, err
}

func (s *Storefront) SelectPayment(sessionID string, m models.PaymentMethod) (CheckoutView, error) {
	var (
		view CheckoutView
		err  error
	)
	s.withSession(sessionID, func(sess *session) {
		if sess.checkout == nil {
			err = ErrCheckoutNotOpen
			return
		}
		if err = sess.checkout.SelectPayment(m); err != nil {
			return
		}
		view = CheckoutView{
			Step:        sess.checkout.Step(),
			OrderNumber: sess.checkout.OrderNumber(),
			Basket:      basketView(sess.basket),
		}
	})
	return view, err
}

// ConfirmOrder drives the confirm transition and emits exactly one order to
// the sink. A sink failure is logged and never blocks the confirmation.
func (s *Storefront) ConfirmOrder(ctx context.Context, sessionID string) (models.Order, error) {
	var (
		ord models.Order
		err error
	)
	s.withSession(sessionID, func(sess *session) {
		if sess.checkout == nil {
			err = ErrCheckoutNotOpen
			return
		}
		if err = sess.checkout.Confirm(); err != nil {
			return
		}
		ord = checkout.Finalize(sess.checkout, sess.basket, s.now())
	})
	if err != nil {
		return models.Order{}, err
	}

	if s.sink != nil {
		if perr := s.sink.PublishOrderConfirmed(ctx, ord); perr != nil {
			s.log.Error("publish confirmed order",
				zap.String("order_number", ord.Number),
				zap.Error(perr))
		}
	}
	s.log.Info("order confirmed",
		zap.String("order_number", ord.Number),
		zap.Int64("total_cents", ord.TotalCents),
		zap.String("payment_method", string(ord.PaymentMethod)))
	return ord, nil
}

// CloseCheckout discards the checkout flow. When the flow reached confirmed,
// the basket is cleared as well; closing mid-flow just drops the transient
// state, no partial order is ever emitted.
func (s *Storefront) CloseCheckout(sessionID string) {
	s.withSession(sessionID, func(sess *session) {
		if sess.checkout != nil && sess.checkout.Step() == checkout.StepConfirmed {
			sess.basket.Clear()
		}
		sess.checkout = nil
	})
}

// RunEviction sweeps idle sessions until ctx is cancelled.
func (s *Storefront) RunEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Storefront) evictIdle() {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}
}

// SessionCount is used by eviction tests and the health endpoint.
func (s *Storefront) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
