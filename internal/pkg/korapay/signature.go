package korapay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// SignatureHeader carries the webhook signature. Header lookup is case-insensitive.
const SignatureHeader = "X-Korapay-Signature"

// Verifier checks webhook signatures against a shared secret
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier. An empty secret rejects every signature.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign returns the hex HMAC-SHA256 of raw
func (v *Verifier) Sign(raw []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(raw)
	return hex.EncodeToString(mac.Sum(nil))
}

// IsValidSignature reports whether header signs either the whole body or its
// compacted "data" member. It never fails; anything unverifiable is false.
func (v *Verifier) IsValidSignature(raw []byte, header string) bool {
	if len(v.secret) == 0 || header == "" {
		return false
	}
	if v.matches(raw, header) {
		return true
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return false
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return false
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, envelope.Data); err != nil {
		return false
	}
	return v.matches(compact.Bytes(), header)
}

func (v *Verifier) matches(raw []byte, header string) bool {
	return hmac.Equal([]byte(v.Sign(raw)), []byte(header))
}
