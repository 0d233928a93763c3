package checkout

import (
	"errors"
	"testing"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
)

var validDetails = models.CustomerInfo{
	Name:    "Juan Pérez",
	Phone:   "+53 55512345",
	Address: "Calle 23 #456, La Habana",
	Notes:   "sin cebolla",
}

func TestNewSessionStartsClean(t *testing.T) {
	s := NewSession()
	if s.Step() != StepCollectingDetails {
		t.Fatalf("step = %s, want %s", s.Step(), StepCollectingDetails)
	}
	if s.OrderNumber() != "" {
		t.Fatalf("fresh session must have no order number")
	}
	if s.PaymentMethod() != "" {
		t.Fatalf("fresh session must have no payment method")
	}
	if s.Details() != (models.CustomerInfo{}) {
		t.Fatalf("fresh session must have empty form fields")
	}
}

func TestSubmitDetailsMissingFieldsBlocks(t *testing.T) {
	gen := NewNumberGenerator()
	cases := []struct {
		name    string
		in      models.CustomerInfo
		missing []string
	}{
		{"no name", models.CustomerInfo{Phone: "x", Address: "y"}, []string{"name"}},
		{"no phone", models.CustomerInfo{Name: "x", Address: "y"}, []string{"phone"}},
		{"no address", models.CustomerInfo{Name: "x", Phone: "y"}, []string{"address"}},
		{"whitespace only", models.CustomerInfo{Name: "  ", Phone: "x", Address: "y"}, []string{"name"}},
		{"all empty", models.CustomerInfo{}, []string{"name", "phone", "address"}},
	}

	for _, tc := range cases {
		s := NewSession()
		err := s.SubmitDetails(tc.in, gen)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: err = %v, want ValidationError", tc.name, err)
		}
		if len(verr.Fields) != len(tc.missing) {
			t.Fatalf("%s: got %d field errors, want %d", tc.name, len(verr.Fields), len(tc.missing))
		}
		for i, f := range verr.Fields {
			if f.Field != tc.missing[i] {
				t.Fatalf("%s: field[%d] = %s, want %s", tc.name, i, f.Field, tc.missing[i])
			}
		}
		if s.Step() != StepCollectingDetails {
			t.Fatalf("%s: validation failure must not transition, step = %s", tc.name, s.Step())
		}
		if s.OrderNumber() != "" {
			t.Fatalf("%s: no order number may be assigned on failure", tc.name)
		}
	}
}

func TestSubmitDetailsAdvances(t *testing.T) {
	s := NewSession()
	if err := s.SubmitDetails(validDetails, NewNumberGenerator()); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if s.Step() != StepSelectingPayment {
		t.Fatalf("step = %s, want %s", s.Step(), StepSelectingPayment)
	}
	if s.OrderNumber() == "" {
		t.Fatalf("a non-empty order number must be assigned")
	}
	if s.Details() != validDetails {
		t.Fatalf("details not retained: %+v", s.Details())
	}
}

func TestSelectPaymentGuards(t *testing.T) {
	s := NewSession()
	if err := s.SelectPayment(models.PaymentCash); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("err = %v, want ErrInvalidStep before details", err)
	}

	if err := s.SubmitDetails(validDetails, NewNumberGenerator()); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if err := s.SelectPayment("credit-card"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("err = %v, want ErrInvalidPaymentMethod", err)
	}
	if err := s.SelectPayment(models.PaymentMobileTransfer); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}
	if s.PaymentMethod() != models.PaymentMobileTransfer {
		t.Fatalf("method = %s", s.PaymentMethod())
	}
}

func TestConfirmRequiresMethod(t *testing.T) {
	s := NewSession()
	if err := s.SubmitDetails(validDetails, NewNumberGenerator()); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if err := s.Confirm(); !errors.Is(err, ErrNoPaymentMethod) {
		t.Fatalf("err = %v, want ErrNoPaymentMethod", err)
	}
	if s.Step() != StepSelectingPayment {
		t.Fatalf("rejected confirm must not transition, step = %s", s.Step())
	}

	if err := s.SelectPayment(models.PaymentCash); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}
	if err := s.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if s.Step() != StepConfirmed {
		t.Fatalf("step = %s, want %s", s.Step(), StepConfirmed)
	}
}

func TestConfirmedIsTerminal(t *testing.T) {
	s := NewSession()
	gen := NewNumberGenerator()
	if err := s.SubmitDetails(validDetails, gen); err != nil {
		t.Fatalf("SubmitDetails: %v", err)
	}
	if err := s.SelectPayment(models.PaymentCash); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}
	if err := s.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	if err := s.Confirm(); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("second confirm: err = %v, want ErrAlreadyConfirmed", err)
	}
	if err := s.SubmitDetails(validDetails, gen); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("details after confirm: err = %v, want ErrAlreadyConfirmed", err)
	}
	if err := s.SelectPayment(models.PaymentCash); !errors.Is(err, ErrAlreadyConfirmed) {
		t.Fatalf("payment after confirm: err = %v, want ErrAlreadyConfirmed", err)
	}
}

func TestNumberGeneratorUniqueAndShaped(t *testing.T) {
	gen := NewNumberGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := gen.Next()
		if len(n) != 10 || n[:4] != "HAB-" {
			t.Fatalf("order number %q has the wrong shape", n)
		}
		if seen[n] {
			t.Fatalf("duplicate order number %q", n)
		}
		seen[n] = true
	}
}
