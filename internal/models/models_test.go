package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"volunteer-connect/internal/apperror"
)

func TestUserResponseOmitsPasswordHash(t *testing.T) {
	user := User{
		ID:           1,
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Role:         RoleVolunteer,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	for name, v := range map[string]interface{}{"model": user, "response": user.ToResponse()} {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", name, err)
		}
		if strings.Contains(string(raw), "secret") || strings.Contains(string(raw), "password") {
			t.Errorf("%s: serialized user leaks password hash: %s", name, raw)
		}
	}

	if got := user.ToResponse().CreatedAt; got != "2024-05-01T12:00:00Z" {
		t.Errorf("expected RFC 3339 timestamp, got %q", got)
	}
}

func TestOrganizationDetailHasNoBackReference(t *testing.T) {
	org := Organization{
		ID:      3,
		Name:    "Helping Hands",
		OwnerID: 1,
		Opportunities: []Opportunity{
			{ID: 7, OrganizationID: 3, Title: "Cleanup"},
		},
	}

	raw, err := json.Marshal(org.ToDetailResponse())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if _, ok := decoded["owner"]; ok {
		t.Errorf("organization must reference its owner by id only: %s", raw)
	}

	opps, ok := decoded["opportunities"].([]interface{})
	if !ok || len(opps) != 1 {
		t.Fatalf("expected one embedded opportunity, got %s", raw)
	}
	opp := opps[0].(map[string]interface{})
	if _, ok := opp["organization"]; ok {
		t.Errorf("opportunity must not embed its organization: %s", raw)
	}
}

func TestOrganizationDetailEmptyOpportunities(t *testing.T) {
	org := Organization{ID: 1, Name: "Green Earth", OwnerID: 2}

	raw, err := json.Marshal(org.ToDetailResponse())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"opportunities":[]`) {
		t.Errorf("expected empty opportunities array, got %s", raw)
	}
}

func TestPaymentValidate(t *testing.T) {
	tests := []struct {
		name    string
		payment Payment
		field   string
	}{
		{"valid", Payment{UserID: 1, OpportunityID: 1, Amount: decimal.NewFromInt(5), PaymentStatus: PaymentStatusCompleted}, ""},
		{"zero amount", Payment{UserID: 1, OpportunityID: 1, Amount: decimal.Zero, PaymentStatus: PaymentStatusPending}, "amount"},
		{"negative amount", Payment{UserID: 1, OpportunityID: 1, Amount: decimal.NewFromInt(-5), PaymentStatus: PaymentStatusPending}, "amount"},
		{"bad status", Payment{UserID: 1, OpportunityID: 1, Amount: decimal.NewFromInt(5), PaymentStatus: "refunded"}, "payment_status"},
		{"missing user", Payment{OpportunityID: 1, Amount: decimal.NewFromInt(5), PaymentStatus: PaymentStatusPending}, "user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var ae *apperror.Error
			if !asAppError(err, &ae) {
				t.Fatalf("expected *apperror.Error, got %v", err)
			}
			if ae.Kind != apperror.KindValidation || ae.Field != tt.field {
				t.Errorf("expected validation error on %s, got %v", tt.field, ae)
			}
		})
	}
}

func TestPaymentBeforeCreateDefaultsStatus(t *testing.T) {
	p := Payment{UserID: 1, OpportunityID: 2, Amount: decimal.RequireFromString("12.50")}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate failed: %v", err)
	}
	if p.PaymentStatus != PaymentStatusPending {
		t.Errorf("expected pending default, got %s", p.PaymentStatus)
	}
}

func TestApplicationBeforeCreateDefaultsStatus(t *testing.T) {
	a := Application{UserID: 1, OpportunityID: 2}
	if err := a.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate failed: %v", err)
	}
	if a.Status != ApplicationStatusPending {
		t.Errorf("expected pending default, got %s", a.Status)
	}

	a.Status = "maybe"
	if err := a.BeforeUpdate(nil); !apperror.IsKind(err, apperror.KindValidation) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}
}

func TestUserValidateRole(t *testing.T) {
	u := User{Name: "A", Email: "a@x.com", PasswordHash: "h", Role: "admin"}
	if err := u.Validate(); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	u.Role = RoleOrganization
	if err := u.Validate(); err != nil {
		t.Fatalf("expected organization role to be valid, got %v", err)
	}
}

func TestOpportunityValidate(t *testing.T) {
	negative := -1
	o := Opportunity{Title: "Cleanup", OrganizationID: 1, Duration: &negative}
	if err := o.Validate(); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected negative duration to be rejected, got %v", err)
	}

	o.Duration = nil
	o.Title = "   "
	if err := o.Validate(); !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected blank title to be rejected, got %v", err)
	}
}

func asAppError(err error, target **apperror.Error) bool {
	ae, ok := err.(*apperror.Error)
	if ok {
		*target = ae
	}
	return ok
}
