package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

// Step is the closed set of checkout states.
type Step string

const (
	StepCollectingDetails Step = "collecting-details"
	StepSelectingPayment  Step = "selecting-payment"
	StepConfirmed         Step = "confirmed"
)

var (
	ErrInvalidStep          = errors.New("action not allowed in current checkout step")
	ErrNoPaymentMethod      = errors.New("no payment method selected")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrAlreadyConfirmed     = errors.New("checkout already confirmed")
)

// FieldError names one invalid delivery-form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a transition without advancing it. Local and
// recoverable: the caller fixes the fields and submits again.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid delivery details: %s", strings.Join(names, ", "))
}

// Session is the transient checkout state. A fresh Session is constructed on
// every panel open; there are no resume semantics, so stale state can never
// leak into a new flow.
type Session struct {
	step    Step
	details models.CustomerInfo
	payment models.PaymentMethod
	number  string
}

func NewSession() *Session {
	return &Session{step: StepCollectingDetails}
}

func (s *Session) Step() Step { return s.step }

func (s *Session) Details() models.CustomerInfo { return s.details }

func (s *Session) PaymentMethod() models.PaymentMethod { return s.payment }

// OrderNumber is empty until the details step succeeds.
func (s *Session) OrderNumber() string { return s.number }

// SubmitDetails validates the delivery form and, on success, assigns an order
// number and advances to payment selection. A validation failure leaves the
// session exactly where it was.
func (s *Session) SubmitDetails(in models.CustomerInfo, gen *NumberGenerator) error {
	if s.step != StepCollectingDetails {
		if s.step == StepConfirmed {
			return ErrAlreadyConfirmed
		}
		return ErrInvalidStep
	}

	var fields []FieldError
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields = append(fields, FieldError{Field: "phone", Message: "phone is required"})
	}
	if strings.TrimSpace(in.Address) == "" {
		fields = append(fields, FieldError{Field: "address", Message: "address is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	s.details = in
	s.number = gen.Next()
	s.step = StepSelectingPayment
	return nil
}

// SelectPayment records the chosen method. Only valid while selecting payment.
func (s *Session) SelectPayment(m models.PaymentMethod) error {
	if s.step != StepSelectingPayment {
		if s.step == StepConfirmed {
			return ErrAlreadyConfirmed
		}
		return ErrInvalidStep
	}
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	s.payment = m
	return nil
}

// Confirm moves to the terminal confirmed state. Requires a chosen payment
// method; rejecting here is a precondition failure, not a transition.
func (s *Session) Confirm() error {
	if s.step != StepSelectingPayment {
		if s.step == StepConfirmed {
			return ErrAlreadyConfirmed
		}
		return ErrInvalidStep
	}
	if s.payment == "" {
		return ErrNoPaymentMethod
	}
	s.step = StepConfirmed
	return nil
}
