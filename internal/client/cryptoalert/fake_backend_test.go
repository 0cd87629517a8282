package cryptoalert

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var fakeSigningKey = []byte("test-signing-key")

// fakeRequest is a request as seen by the fake backend.
type fakeRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	UserAgent     string
	RequestID     string
	ContentType   string
	Body          []byte
}

// fakeBackend is an in-memory CryptoAlert API issuing HS256 JWTs.
type fakeBackend struct {
	t      *testing.T
	server *httptest.Server

	mu            sync.Mutex
	users         map[string]string
	subscriptions map[string][]Subscription
	bindings      map[string]string
	bound         map[string]string
	requests      []fakeRequest
	bindExpiresIn int64
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		t:             t,
		users:         make(map[string]string),
		subscriptions: make(map[string][]Subscription),
		bindings:      make(map[string]string),
		bound:         make(map[string]string),
		bindExpiresIn: 600,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", b.handleLogin)
	mux.HandleFunc("POST /api/auth/register", b.handleRegister)
	mux.HandleFunc("POST /api/auth/tg/bind/start", b.authenticated(b.handleBindStart))
	mux.HandleFunc("GET /api/auth/tg/bind/status", b.handleBindStatus)
	mux.HandleFunc("GET /api/user/me", b.authenticated(b.handleMe))
	mux.HandleFunc("GET /api/subscription/", b.authenticated(b.handleListSubscriptions))
	mux.HandleFunc("POST /api/subscription/", b.authenticated(b.handleCreateSubscription))
	mux.HandleFunc("DELETE /api/subscription/", b.authenticated(b.handleDeleteSubscription))

	b.server = httptest.NewServer(b.record(mux))
	t.Cleanup(b.server.Close)

	return b
}

// URL returns the origin of the fake backend.
func (b *fakeBackend) URL() string {
	return b.server.URL
}

// addUser registers a user directly.
func (b *fakeBackend) addUser(email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.users[email] = password
}

// mintToken issues a valid token for email.
func (b *fakeBackend) mintToken(email string, ttl time.Duration) string {
	b.t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}).SignedString(fakeSigningKey)
	if err != nil {
		b.t.Fatalf("failed to sign token: %v", err)
	}

	return token
}

// completeBinding simulates the user starting the bot with the correlation token.
func (b *fakeBackend) completeBinding(correlationToken, telegramID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bound[correlationToken] = telegramID
}

// recorded returns a copy of every request received so far.
func (b *fakeBackend) recorded() []fakeRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]fakeRequest(nil), b.requests...)
}

func (b *fakeBackend) lastRequest() fakeRequest {
	b.t.Helper()

	requests := b.recorded()
	if len(requests) == 0 {
		b.t.Fatal("no requests recorded")
	}

	return requests[len(requests)-1]
}

func (b *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, fakeRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			UserAgent:     r.Header.Get("User-Agent"),
			RequestID:     r.Header.Get("X-Request-ID"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) authenticated(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})

			return
		}

		claims := new(jwt.RegisteredClaims)

		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
			func(token *jwt.Token) (any, error) {
				if token.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}

				return fakeSigningKey, nil
			})
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token"})

			return
		}

		next(w, r, claims.Subject)
	}
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "malformed body"})

		return
	}

	b.mu.Lock()
	password, ok := b.users[creds.Email]
	b.mu.Unlock()

	if !ok || password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})

		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: b.mintToken(creds.Email, time.Hour), Email: creds.Email})
}

func (b *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || !strings.Contains(creds.Email, "@") {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body", "email"}, "msg": "value is not a valid email address"}},
		})

		return
	}

	b.mu.Lock()
	_, exists := b.users[creds.Email]
	if !exists {
		b.users[creds.Email] = creds.Password
	}
	b.mu.Unlock()

	if exists {
		writeJSON(w, http.StatusConflict, map[string]string{"code": "EMAIL_TAKEN", "message": "Email already registered"})

		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Token: b.mintToken(creds.Email, time.Hour), Email: creds.Email})
}

func (b *fakeBackend) handleBindStart(w http.ResponseWriter, _ *http.Request, email string) {
	correlationToken := uuid.NewString()

	b.mu.Lock()
	b.bindings[correlationToken] = email
	expiresIn := b.bindExpiresIn
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, BindingSession{
		Token:     correlationToken,
		ExpiresIn: expiresIn,
		BotName:   "cryptoalert_bot",
		StartURL:  "https://t.me/cryptoalert_bot?start=" + correlationToken,
	})
}

func (b *fakeBackend) handleBindStatus(w http.ResponseWriter, r *http.Request) {
	correlationToken := r.URL.Query().Get("token")

	b.mu.Lock()
	_, known := b.bindings[correlationToken]
	telegramID, bound := b.bound[correlationToken]
	b.mu.Unlock()

	if !known || !bound {
		writeJSON(w, http.StatusOK, map[string]any{"bound": false})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"bound": true, "telegram_id": json.Number(telegramID)})
}

func (b *fakeBackend) handleMe(w http.ResponseWriter, _ *http.Request, email string) {
	writeJSON(w, http.StatusOK, map[string]any{"email": email, "telegram_linked": false})
}

func (b *fakeBackend) handleListSubscriptions(w http.ResponseWriter, r *http.Request, email string) {
	symbol := r.URL.Query().Get("symbol")

	b.mu.Lock()
	data := make([]Subscription, 0, len(b.subscriptions[email]))

	for _, s := range b.subscriptions[email] {
		if symbol == "" || s.Symbol == symbol {
			data = append(data, s)
		}
	}
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, SubscriptionList{Data: data})
}

func (b *fakeBackend) handleCreateSubscription(w http.ResponseWriter, r *http.Request, email string) {
	var request CreateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Cycles) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "cycles required"})

		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, cycle := range request.Cycles {
		pair := Subscription{Symbol: request.Symbol, Cycle: cycle}
		if !(&SubscriptionList{Data: b.subscriptions[email]}).Contains(pair.Symbol, pair.Cycle) {
			b.subscriptions[email] = append(b.subscriptions[email], pair)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "subscribed"})
}

func (b *fakeBackend) handleDeleteSubscription(w http.ResponseWriter, r *http.Request, email string) {
	symbol := r.URL.Query().Get("symbol")
	cycle := r.URL.Query().Get("cycle")

	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subscriptions[email][:0]
	removed := false

	for _, s := range b.subscriptions[email] {
		if s.Symbol == symbol && s.Cycle == cycle {
			removed = true

			continue
		}

		kept = append(kept, s)
	}

	b.subscriptions[email] = kept

	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Subscription not found"})

		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
