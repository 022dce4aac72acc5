package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage/memstore"
	adminservice "github.com/mmsswimming/go_academy_backend/internal/app/admin"
	"github.com/mmsswimming/go_academy_backend/internal/app/auth"
	catalogservice "github.com/mmsswimming/go_academy_backend/internal/app/catalog"
	contentservice "github.com/mmsswimming/go_academy_backend/internal/app/content"
	enrollmentservice "github.com/mmsswimming/go_academy_backend/internal/app/enrollment"
	memberservice "github.com/mmsswimming/go_academy_backend/internal/app/members"
	"github.com/mmsswimming/go_academy_backend/internal/app/messagebus"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	bus := messagebus.New(logger)
	t.Cleanup(bus.Close)

	authorizer := &auth.Authorizer{
		Cost:     bcrypt.MinCost,
		Secret:   "test-secret",
		TokenTTL: 24 * time.Hour,
	}

	return NewServer(
		Addr("localhost", 0),
		Logger(logger),
		AuthService(auth.NewService(store, authorizer, bus, logger)),
		MemberService(memberservice.New(store, logger)),
		CatalogService(catalogservice.New(store, logger)),
		EnrollmentService(enrollmentservice.New(store, bus, logger)),
		ContentService(contentservice.New(store, bus, logger)),
		AdminService(adminservice.New(store, logger)),
	)
}

func doRequest(t *testing.T, s *Server, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerBody() map[string]any {
	return map[string]any{
		"email":         "a@x.com",
		"password":      "secret1",
		"fullName":      "A B",
		"phone":         "01012345678",
		"age":           20,
		"swimmingLevel": "beginner",
		"program":       "adult",
	}
}

// tokenFor issues a token directly, for roles that cannot self-register.
func tokenFor(t *testing.T, s *Server, id int, email, role string) string {
	t.Helper()

	token, err := s.authService.Authorizer.GenerateToken(&user.User{ID: id, Email: email, Role: role})
	require.NoError(t, err)
	return token
}

func registerAndToken(t *testing.T, s *Server) (token string, memberID int) {
	t.Helper()

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register", registerBody(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	m := body["member"].(map[string]any)
	return body["token"].(string), int(m["id"].(float64))
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register", registerBody(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	u := body["user"].(map[string]any)
	assert.Equal(t, "member", u["role"])
	assert.Equal(t, "a@x.com", u["email"])
	assert.NotEmpty(t, body["token"])

	m := body["member"].(map[string]any)
	assert.Equal(t, "A B", m["fullName"])
	assert.Equal(t, "active", m["status"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register", registerBody(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/auth/register", registerBody(), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	s := newTestServer(t)

	body := registerBody()
	body["swimmingLevel"] = "olympian"

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	registerAndToken(t, s)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "a@x.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["token"])
	require.NotNil(t, body["profile"])
	profile := body["profile"].(map[string]any)
	assert.Equal(t, "A B", profile["fullName"])
}

func TestLoginGenericFailure(t *testing.T) {
	s := newTestServer(t)
	registerAndToken(t, s)

	unknown := doRequest(t, s, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nobody@x.com",
		"password": "secret1",
	}, "")
	badPass := doRequest(t, s, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "a@x.com",
		"password": "wrong-pass",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, badPass.Code)
	assert.Equal(t, decodeBody(t, unknown)["message"], decodeBody(t, badPass)["message"])
}

func TestMembersAdminGate(t *testing.T) {
	s := newTestServer(t)

	noToken := doRequest(t, s, http.MethodGet, "/api/members", nil, "")
	require.Equal(t, http.StatusUnauthorized, noToken.Code)
	assert.Equal(t, "Access token required", decodeBody(t, noToken)["message"])

	garbage := doRequest(t, s, http.MethodGet, "/api/members", nil, "not.a.token")
	require.Equal(t, http.StatusForbidden, garbage.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, garbage)["message"])

	coachToken := tokenFor(t, s, 2, "ahmed.hassan@mmsswimming.com", user.RoleCoach)
	coach := doRequest(t, s, http.MethodGet, "/api/members", nil, coachToken)
	require.Equal(t, http.StatusForbidden, coach.Code)
	assert.Equal(t, "Admin access required", decodeBody(t, coach)["message"])

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	admin := doRequest(t, s, http.MethodGet, "/api/members", nil, adminToken)
	assert.Equal(t, http.StatusOK, admin.Code)
}

func TestMembersMeWithoutProfile(t *testing.T) {
	s := newTestServer(t)

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	rec := doRequest(t, s, http.MethodGet, "/api/members/me", nil, adminToken)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Member not found", decodeBody(t, rec)["message"])
}

func TestMembersMe(t *testing.T) {
	s := newTestServer(t)
	token, memberID := registerAndToken(t, s)

	rec := doRequest(t, s, http.MethodGet, "/api/members/me", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(memberID), decodeBody(t, rec)["id"])
}

func TestPublicCatalog(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/coaches", "/api/programs", "/api/classes"} {
		rec := doRequest(t, s, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := doRequest(t, s, http.MethodGet, "/api/programs", nil, "")
	var programs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &programs))
	require.Len(t, programs, 3)
	assert.Equal(t, "Kids Program", programs[0]["name"])
}

func TestBookingDerivesMemberFromIdentity(t *testing.T) {
	s := newTestServer(t)
	token, memberID := registerAndToken(t, s)

	// A memberId in the body is ignored; the caller's own profile wins.
	rec := doRequest(t, s, http.MethodPost, "/api/bookings", map[string]any{
		"classId":  1,
		"memberId": 999,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	booking := decodeBody(t, rec)
	assert.Equal(t, float64(memberID), booking["memberId"])
	assert.Equal(t, "confirmed", booking["status"])

	list := doRequest(t, s, http.MethodGet, "/api/bookings/me", nil, token)
	require.Equal(t, http.StatusOK, list.Code)
	var bookings []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
}

func TestBookingWithoutProfile(t *testing.T) {
	s := newTestServer(t)

	coachToken := tokenFor(t, s, 2, "ahmed.hassan@mmsswimming.com", user.RoleCoach)
	rec := doRequest(t, s, http.MethodPost, "/api/bookings", map[string]any{"classId": 1}, coachToken)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Member not found", decodeBody(t, rec)["message"])
}

func TestPayments(t *testing.T) {
	s := newTestServer(t)
	token, memberID := registerAndToken(t, s)

	rec := doRequest(t, s, http.MethodPost, "/api/payments", map[string]any{
		"amount":        "1200",
		"paymentMethod": "card",
		"paymentStatus": "completed",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(memberID), decodeBody(t, rec)["memberId"])

	mine := doRequest(t, s, http.MethodGet, "/api/payments/me", nil, token)
	require.Equal(t, http.StatusOK, mine.Code)
	var payments []map[string]any
	require.NoError(t, json.Unmarshal(mine.Body.Bytes(), &payments))
	assert.Len(t, payments, 1)

	// The full listing is admin only.
	all := doRequest(t, s, http.MethodGet, "/api/payments", nil, token)
	assert.Equal(t, http.StatusForbidden, all.Code)

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	allAdmin := doRequest(t, s, http.MethodGet, "/api/payments", nil, adminToken)
	assert.Equal(t, http.StatusOK, allAdmin.Code)
}

func TestProgress(t *testing.T) {
	s := newTestServer(t)
	token, memberID := registerAndToken(t, s)

	rec := doRequest(t, s, http.MethodPost, "/api/progress", map[string]any{
		"memberId": memberID,
		"coachId":  1,
		"stroke":   "freestyle",
		"progress": 40,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	mine := doRequest(t, s, http.MethodGet, "/api/progress/me", nil, token)
	require.Equal(t, http.StatusOK, mine.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(mine.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "freestyle", entries[0]["stroke"])
}

func TestBlog(t *testing.T) {
	s := newTestServer(t)

	list := doRequest(t, s, http.MethodGet, "/api/blog", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	var posts []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &posts))
	require.Len(t, posts, 2)

	one := doRequest(t, s, http.MethodGet, "/api/blog/1", nil, "")
	require.Equal(t, http.StatusOK, one.Code)
	assert.Equal(t, "Mastering the Freestyle Stroke", decodeBody(t, one)["title"])

	missing := doRequest(t, s, http.MethodGet, "/api/blog/999", nil, "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "Blog post not found", decodeBody(t, missing)["message"])
}

func TestCreateBlogPostRequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	post := map[string]any{
		"title":    "Breathing Drills",
		"content":  "Start with bilateral breathing...",
		"excerpt":  "Bilateral breathing drills for beginners.",
		"author":   "Ahmed Hassan",
		"category": "Technique",
	}

	token, _ := registerAndToken(t, s)
	denied := doRequest(t, s, http.MethodPost, "/api/blog", post, token)
	assert.Equal(t, http.StatusForbidden, denied.Code)

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	created := doRequest(t, s, http.MethodPost, "/api/blog", post, adminToken)
	require.Equal(t, http.StatusOK, created.Code, created.Body.String())
	assert.Equal(t, float64(3), decodeBody(t, created)["id"])
}

func TestContact(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/contact", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@x.com",
		"subject": "Opening hours",
		"message": "When does the pool open on weekends?",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "new", decodeBody(t, rec)["status"])

	unauthorized := doRequest(t, s, http.MethodGet, "/api/contacts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, unauthorized.Code)

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	list := doRequest(t, s, http.MethodGet, "/api/contacts", nil, adminToken)
	require.Equal(t, http.StatusOK, list.Code)
	var contacts []map[string]any
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 1)
}

func TestAdminStats(t *testing.T) {
	s := newTestServer(t)
	token, _ := registerAndToken(t, s)

	payment := doRequest(t, s, http.MethodPost, "/api/payments", map[string]any{
		"amount":        "1200",
		"paymentMethod": "card",
		"paymentStatus": "completed",
	}, token)
	require.Equal(t, http.StatusOK, payment.Code)

	adminToken := tokenFor(t, s, 1, "admin@mmsswimming.com", user.RoleAdmin)
	rec := doRequest(t, s, http.MethodGet, "/api/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody(t, rec)
	assert.Equal(t, float64(1), stats["totalMembers"])
	assert.Equal(t, float64(1), stats["activeMembers"])
	assert.Equal(t, float64(1200), stats["totalRevenue"])
	assert.Equal(t, stats["totalRevenue"], stats["monthlyRevenue"])
	assert.Equal(t, float64(2), stats["activeClasses"])
	assert.Equal(t, float64(64), stats["poolUtilization"])
}
