package dto

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// bindJSON runs gin's JSON binding against a request body and reports
// whether validation passed.
func bindJSON(t *testing.T, target interface{}, body interface{}) error {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c.ShouldBindJSON(target)
}

func TestDepositRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]interface{}
		wantErr bool
	}{
		{"valid", map[string]interface{}{"currency": "USD", "amount": "100.50"}, false},
		{"lowercase currency accepted", map[string]interface{}{"currency": "usd", "amount": "1"}, false},
		{"missing currency", map[string]interface{}{"amount": "1"}, true},
		{"currency too long", map[string]interface{}{"currency": "USDC", "amount": "1"}, true},
		{"currency with digits", map[string]interface{}{"currency": "U5D", "amount": "1"}, true},
		{"missing amount", map[string]interface{}{"currency": "USD"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req DepositRequest
			err := bindJSON(t, &req, tt.body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSendRequest_AddressValidation(t *testing.T) {
	valid := map[string]interface{}{
		"from_currency": "USD",
		"to_address":    "0xE536aF7A65B20d6d4CAfA25e05A7906D0",
		"amount":        "15",
	}

	var req SendRequest
	assert.NoError(t, bindJSON(t, &req, valid))

	for name, addr := range map[string]string{
		"no 0x prefix":   "E536aF7A65B20d6d4CAfA25e05A7906D0",
		"non-hex chars":  "0xZZZZaF7A65B20d6d4CAfA25e05A7906D0",
		"too short":      "0xabc123",
		"empty":          "",
		"injection-like": "0x<script>alert(1)</script>",
	} {
		t.Run(name, func(t *testing.T) {
			body := map[string]interface{}{"from_currency": "USD", "to_address": addr, "amount": "15"}
			var r SendRequest
			assert.Error(t, bindJSON(t, &r, body))
		})
	}
}

func TestSwapRequest_Validation(t *testing.T) {
	var req SwapRequest
	err := bindJSON(t, &req, map[string]interface{}{
		"from_currency": "USD",
		"to_currency":   "NGN",
		"amount":        "10",
	})
	assert.NoError(t, err)

	var reqMissing SwapRequest
	err = bindJSON(t, &reqMissing, map[string]interface{}{
		"from_currency": "USD",
		"amount":        "10",
	})
	assert.Error(t, err, "to_currency is required")
}

func TestOnboardingRequest_EmailValidation(t *testing.T) {
	var req OnboardingRequest
	assert.NoError(t, bindJSON(t, &req, map[string]interface{}{"email": "demo@example.com"}))
	assert.Error(t, bindJSON(t, &req, map[string]interface{}{"email": "not-an-email"}))
	assert.Error(t, bindJSON(t, &req, map[string]interface{}{}))
}

func TestSanitizeStruct(t *testing.T) {
	extra := "  <i>note</i>  "
	type sample struct {
		Name  string
		Extra *string
	}
	s := sample{Name: "  <b>hello</b>  ", Extra: &extra}

	SanitizeStruct(&s)

	assert.Equal(t, "&lt;b&gt;hello&lt;/b&gt;", s.Name)
	assert.Equal(t, "&lt;i&gt;note&lt;/i&gt;", *s.Extra)
}

func TestSanitizeStruct_NonStructIsNoop(t *testing.T) {
	v := "unchanged"
	SanitizeStruct(&v)
	assert.Equal(t, "unchanged", v)

	SanitizeStruct(nil)
}
