package security

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/config"

	"github.com/rs/zerolog/log"
)

// CaptchaVerifier checks CAPTCHA responses against the provider's siteverify
// endpoint. Verification is network-backed with a bounded timeout and fails
// closed: any transport error or timeout counts as a failed verification.
type CaptchaVerifier struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

// NewCaptchaVerifier creates a verifier. An empty secret means CAPTCHA is not
// configured and Verify always succeeds.
func NewCaptchaVerifier(cfg config.CaptchaConfig) *CaptchaVerifier {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CaptchaVerifier{
		secret:    cfg.SecretKey,
		verifyURL: cfg.VerifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether a CAPTCHA secret is present. When false, the
// verification step is treated as satisfied; that is a configuration choice,
// not a bypass.
func (v *CaptchaVerifier) Configured() bool {
	return v.secret != ""
}

// Verify confirms a CAPTCHA response token for the given client IP.
func (v *CaptchaVerifier) Verify(ctx context.Context, response, remoteIP string) bool {
	if !v.Configured() {
		return true
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {response},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		log.Error().Err(err).Msg("Failed to build CAPTCHA verification request")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("CAPTCHA verification request failed")
		return false
	}
	defer resp.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Msg("Failed to decode CAPTCHA verification response")
		return false
	}

	if !result.Success {
		log.Warn().
			Strs("error_codes", result.ErrorCodes).
			Str("ip", remoteIP).
			Msg("CAPTCHA verification rejected")
	}
	return result.Success
}
