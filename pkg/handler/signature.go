package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

// SignatureHeader carries the HMAC-SHA256 of the upload event body.
const SignatureHeader = "X-Upload-Signature"

const signaturePrefix = "hmac-sha256="

// Sign returns the signature header value of body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature header value of body. It fails with
// ErrUnauthorized.
func VerifySignature(secret string, body []byte, header string) error {
	hexSum, ok := strings.CutPrefix(strings.TrimSpace(header), signaturePrefix)
	if !ok {
		return fmt.Errorf("%w: missing or malformed %s header", errdomain.ErrUnauthorized, SignatureHeader)
	}

	got, err := hex.DecodeString(hexSum)
	if err != nil {
		return fmt.Errorf("%w: signature isn't hex encoded", errdomain.ErrUnauthorized)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return fmt.Errorf("%w: signature mismatch", errdomain.ErrUnauthorized)
	}
	return nil
}
