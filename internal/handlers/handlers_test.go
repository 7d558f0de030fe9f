package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm/logger"

	"volunteer-connect/internal/auth"
	"volunteer-connect/internal/database"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:http_%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := database.Open(sqlite.Open(dsn), logger.Discard)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	repo := repository.NewRepository(db)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	userService := services.NewUserService(repo)

	return NewRouter(Handlers{
		Auth:          NewAuthHandler(services.NewAuthService(repo, auth.NewPasswordHasher(bcrypt.MinCost), tokens), userService),
		Users:         NewUserHandler(userService),
		Organizations: NewOrganizationHandler(services.NewOrganizationService(repo)),
		Opportunities: NewOpportunityHandler(services.NewOpportunityService(repo)),
		Applications:  NewApplicationHandler(services.NewApplicationService(repo)),
		Payments:      NewPaymentHandler(services.NewPaymentService(repo)),
	}, tokens, "")
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func idOf(t *testing.T, body map[string]interface{}) int {
	t.Helper()
	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("response has no id: %v", body)
	}
	return int(id)
}

func registerOwner(t *testing.T, router *gin.Engine) int {
	t.Helper()
	w, body := doRequest(t, router, http.MethodPost, "/register",
		`{"name":"Nus","email":"nus@example.com","password":"pw","role":"organization"}`)
	expectStatus(t, w, http.StatusCreated)
	return idOf(t, body["user"].(map[string]interface{}))
}

func TestRegisterLoginScenario(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/register",
		`{"name":"A","email":"a@x.com","password":"p","role":"volunteer"}`)
	expectStatus(t, w, http.StatusCreated)
	if user, ok := body["user"].(map[string]interface{}); !ok || user["password_hash"] != nil {
		t.Errorf("unexpected register body: %v", body)
	}

	w, body = doRequest(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"wrong"}`)
	expectStatus(t, w, http.StatusUnauthorized)
	if body["kind"] != "authentication" {
		t.Errorf("expected authentication kind, got %v", body)
	}

	w, body = doRequest(t, router, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`)
	expectStatus(t, w, http.StatusOK)
	if body["role"] != "volunteer" || body["name"] != "A" {
		t.Errorf("unexpected login body: %v", body)
	}

	token, _ := body["token"].(string)
	w, body = doRequest(t, router, http.MethodGet, "/auth/me", "", "Authorization", "Bearer "+token)
	expectStatus(t, w, http.StatusOK)
	if body["email"] != "a@x.com" {
		t.Errorf("unexpected /auth/me body: %v", body)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/auth/me", "")
	expectStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterErrors(t *testing.T) {
	router := setupRouter(t)
	registerOwner(t, router)

	tests := []struct {
		name  string
		body  string
		kind  string
		field string
	}{
		{"duplicate email", `{"name":"B","email":"nus@example.com","password":"p","role":"volunteer"}`, "conflict", "email"},
		{"missing role", `{"name":"B","email":"b@x.com","password":"p"}`, "validation", "role"},
		{"bad role", `{"name":"B","email":"b@x.com","password":"p","role":"admin"}`, "validation", "role"},
		{"empty body", "", "validation", ""},
		{"password too long", `{"name":"B","email":"b@x.com","password":"` + strings.Repeat("p", 80) + `","role":"volunteer"}`, "validation", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := doRequest(t, router, http.MethodPost, "/register", tt.body)
			expectStatus(t, w, http.StatusBadRequest)
			if body["kind"] != tt.kind {
				t.Errorf("expected kind %s, got %v", tt.kind, body)
			}
			if tt.field != "" && body["field"] != tt.field {
				t.Errorf("expected field %s, got %v", tt.field, body)
			}
		})
	}
}

func TestOrganizationAndOpportunityScenario(t *testing.T) {
	router := setupRouter(t)
	ownerID := registerOwner(t, router)

	w, body := doRequest(t, router, http.MethodPost, "/organizations",
		fmt.Sprintf(`{"name":"Helping Hands","owner_id":%d}`, ownerID))
	expectStatus(t, w, http.StatusCreated)
	orgID := idOf(t, body)

	w, body = doRequest(t, router, http.MethodPost, "/opportunities",
		fmt.Sprintf(`{"title":"Cleanup","organization_id":%d,"duration":"abc"}`, orgID))
	expectStatus(t, w, http.StatusBadRequest)
	if body["error"] != "Duration must be a numeric value" {
		t.Errorf("unexpected error body: %v", body)
	}

	w, body = doRequest(t, router, http.MethodPost, "/opportunities",
		fmt.Sprintf(`{"title":"Cleanup","organization_id":%d,"duration":3}`, orgID))
	expectStatus(t, w, http.StatusCreated)
	oppID := idOf(t, body)
	if body["duration"] != float64(3) {
		t.Errorf("expected duration 3, got %v", body["duration"])
	}

	w, body = doRequest(t, router, http.MethodGet, fmt.Sprintf("/organizations/%d", orgID), "")
	expectStatus(t, w, http.StatusOK)
	if opps, ok := body["opportunities"].([]interface{}); !ok || len(opps) != 1 {
		t.Errorf("expected one embedded opportunity, got %v", body)
	}

	w, body = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/opportunities/%d", oppID), `{"location":"Nairobi"}`)
	expectStatus(t, w, http.StatusOK)
	if body["title"] != "Cleanup" || body["location"] != "Nairobi" {
		t.Errorf("unexpected patched opportunity: %v", body)
	}

	w, _ = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/opportunities/%d", oppID), `{}`)
	expectStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodPatch, "/organizations/999", `{"name":"X"}`)
	expectStatus(t, w, http.StatusNotFound)

	w, body = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/organizations/%d", orgID), "")
	expectStatus(t, w, http.StatusOK)
	if body["message"] != "Organization deleted successfully" {
		t.Errorf("unexpected delete body: %v", body)
	}

	w, _ = doRequest(t, router, http.MethodGet, fmt.Sprintf("/opportunities/%d", oppID), "")
	expectStatus(t, w, http.StatusNotFound)

	w, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/organizations/%d", orgID), "")
	expectStatus(t, w, http.StatusNotFound)
}

func TestCreateOrganizationValidation(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/organizations", `{"owner_id":"one","name":"X"}`)
	expectStatus(t, w, http.StatusBadRequest)
	if body["field"] != "owner_id" {
		t.Errorf("expected owner_id field error, got %v", body)
	}

	w, _ = doRequest(t, router, http.MethodPost, "/organizations", `{"name":"X"}`)
	expectStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodPost, "/organizations", `{"name":"X","owner_id":77}`)
	expectStatus(t, w, http.StatusNotFound)
}

func TestPaymentEndpoints(t *testing.T) {
	router := setupRouter(t)
	ownerID := registerOwner(t, router)

	_, body := doRequest(t, router, http.MethodPost, "/organizations",
		fmt.Sprintf(`{"name":"Green Earth","owner_id":%d}`, ownerID))
	orgID := idOf(t, body)
	_, body = doRequest(t, router, http.MethodPost, "/opportunities",
		fmt.Sprintf(`{"title":"Tree Planting","organization_id":%d}`, orgID))
	oppID := idOf(t, body)

	w, body := doRequest(t, router, http.MethodPost, "/payments",
		fmt.Sprintf(`{"user_id":%d,"opportunity_id":%d,"amount":0}`, ownerID, oppID))
	expectStatus(t, w, http.StatusBadRequest)
	if body["error"] != "Amount must be positive" {
		t.Errorf("unexpected error body: %v", body)
	}

	w, _ = doRequest(t, router, http.MethodPost, "/payments",
		fmt.Sprintf(`{"user_id":%d,"opportunity_id":%d,"amount":5,"payment_status":"refunded"}`, ownerID, oppID))
	expectStatus(t, w, http.StatusBadRequest)

	w, body = doRequest(t, router, http.MethodPost, "/payments",
		fmt.Sprintf(`{"user_id":%d,"opportunity_id":%d,"amount":5}`, ownerID, oppID))
	expectStatus(t, w, http.StatusCreated)
	paymentID := idOf(t, body)
	if body["payment_status"] != "pending" {
		t.Errorf("expected pending default, got %v", body)
	}
	paymentDate := body["payment_date"]

	w, body = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/payments/%d", paymentID), `{"payment_status":"completed"}`)
	expectStatus(t, w, http.StatusOK)
	if body["payment_status"] != "completed" || body["payment_date"] != paymentDate {
		t.Errorf("unexpected patched payment: %v", body)
	}

	w, _ = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/payments/%d", paymentID), `{"amount":-1}`)
	expectStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodPatch, "/payments/999", `{"payment_status":"failed"}`)
	expectStatus(t, w, http.StatusNotFound)

	w, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/payments/%d", paymentID), "")
	expectStatus(t, w, http.StatusOK)

	w, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/payments/%d", paymentID), "")
	expectStatus(t, w, http.StatusNotFound)
}

func TestApplicationEndpoints(t *testing.T) {
	router := setupRouter(t)
	ownerID := registerOwner(t, router)

	_, body := doRequest(t, router, http.MethodPost, "/organizations",
		fmt.Sprintf(`{"name":"Food for All","owner_id":%d}`, ownerID))
	orgID := idOf(t, body)
	_, body = doRequest(t, router, http.MethodPost, "/opportunities",
		fmt.Sprintf(`{"title":"Food Drive","organization_id":%d}`, orgID))
	oppID := idOf(t, body)

	w, _ := doRequest(t, router, http.MethodPost, "/applications", fmt.Sprintf(`{"opportunity_id":%d}`, oppID))
	expectStatus(t, w, http.StatusBadRequest)

	w, body = doRequest(t, router, http.MethodPost, "/applications",
		fmt.Sprintf(`{"user_id":%d,"opportunity_id":%d,"motivation_message":"Happy to help"}`, ownerID, oppID))
	expectStatus(t, w, http.StatusCreated)
	if body["status"] != "pending" {
		t.Errorf("expected pending status, got %v", body)
	}

	w, _ = doRequest(t, router, http.MethodGet, fmt.Sprintf("/applications?opportunity_id=%d", oppID), "")
	expectStatus(t, w, http.StatusOK)
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 1 {
		t.Fatalf("expected one application, got %s", w.Body.String())
	}

	w, _ = doRequest(t, router, http.MethodGet, "/applications?user_id=abc", "")
	expectStatus(t, w, http.StatusBadRequest)

	w, _ = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/users/%d", ownerID), "")
	expectStatus(t, w, http.StatusOK)

	w, _ = doRequest(t, router, http.MethodGet, "/applications", "")
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected cascade to remove applications, got %s", w.Body.String())
	}
}

func TestRespondErrorHidesUnknownErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("connection refused"))

	expectStatus(t, w, http.StatusInternalServerError)
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["kind"] != "store" || body["error"] != "Internal server error" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestBannerAndRequestID(t *testing.T) {
	router := setupRouter(t)

	w, body := doRequest(t, router, http.MethodGet, "/", "")
	expectStatus(t, w, http.StatusOK)
	if body["message"] != "Volunteer Connect API running" {
		t.Errorf("unexpected banner: %v", body)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	const id = "5b0c4c9e-6f2f-4b8e-9f33-0d6f0c3b2a11"
	w, _ = doRequest(t, router, http.MethodGet, "/health", "", "X-Request-ID", id)
	if got := w.Header().Get("X-Request-ID"); got != id {
		t.Errorf("expected request id %s to be echoed, got %s", id, got)
	}

	w, _ = doRequest(t, router, http.MethodGet, "/users/abc", "")
	expectStatus(t, w, http.StatusBadRequest)
}
