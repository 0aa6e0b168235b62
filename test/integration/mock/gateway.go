package mock

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Gateway emulates the hosted payment gateway's HTTP API. It records every
// checkout and refund request the application sends and can sign webhook
// payloads with the shared secret, the same way the real gateway would.
type Gateway struct {
	mu             sync.Mutex
	server         *httptest.Server
	webhookSecret  string
	sessionCounter int
	unavailable    bool
	CheckoutBodies []map[string]any
	RefundBodies   []map[string]any
	LastSessionID  string
}

func NewGateway(webhookSecret string) *Gateway {
	g := &Gateway{webhookSecret: webhookSecret}
	g.server = httptest.NewServer(http.HandlerFunc(g.handle))
	return g
}

func (g *Gateway) URL() string {
	return g.server.URL
}

// SetUnavailable makes every subsequent request fail with a 503.
func (g *Gateway) SetUnavailable(down bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unavailable = down
}

// Reset clears recorded requests between scenarios.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.CheckoutBodies = nil
	g.RefundBodies = nil
	g.LastSessionID = ""
	g.sessionCounter = 0
	g.unavailable = false
}

// Sign computes the hex HMAC-SHA256 signature the gateway puts in the
// X-Gateway-Signature header.
func (g *Gateway) Sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *Gateway) handle(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.unavailable {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	switch r.URL.Path {
	case "/v1/checkout/sessions":
		g.CheckoutBodies = append(g.CheckoutBodies, body)
		g.sessionCounter++
		g.LastSessionID = fmt.Sprintf("sess_test_%d", g.sessionCounter)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         g.LastSessionID,
			"url":        "https://checkout.gateway.test/" + g.LastSessionID,
			"expires_at": time.Now().UTC().Add(30 * time.Minute),
		})
	case "/v1/refunds":
		g.RefundBodies = append(g.RefundBodies, body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "succeeded"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}
