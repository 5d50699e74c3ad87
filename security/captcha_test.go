package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elsonpulikkan96/reborncloud.online/config"
)

func TestCaptchaVerifier_Unconfigured(t *testing.T) {
	v := NewCaptchaVerifier(config.CaptchaConfig{})

	if v.Configured() {
		t.Error("Configured() = true with no secret")
	}
	if !v.Verify(context.Background(), "anything", "1.2.3.4") {
		t.Error("Verify() = false for unconfigured verifier, want true")
	}
}

func TestCaptchaVerifier_Verify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"Provider accepts", `{"success": true}`, true},
		{"Provider rejects", `{"success": false, "error-codes": ["invalid-input-response"]}`, false},
		{"Malformed response", `not json`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := r.ParseForm(); err != nil {
					t.Fatalf("ParseForm() error = %v", err)
				}
				if got := r.PostForm.Get("secret"); got != "test-secret" {
					t.Errorf("secret = %q, want test-secret", got)
				}
				if got := r.PostForm.Get("response"); got != "captcha-token" {
					t.Errorf("response = %q, want captcha-token", got)
				}
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			v := NewCaptchaVerifier(config.CaptchaConfig{
				SecretKey:      "test-secret",
				VerifyURL:      server.URL,
				TimeoutSeconds: 2,
			})
			if got := v.Verify(context.Background(), "captcha-token", "1.2.3.4"); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCaptchaVerifier_FailsClosedOnUnreachableProvider(t *testing.T) {
	v := NewCaptchaVerifier(config.CaptchaConfig{
		SecretKey:      "test-secret",
		VerifyURL:      "http://127.0.0.1:1/siteverify",
		TimeoutSeconds: 1,
	})
	if v.Verify(context.Background(), "captcha-token", "1.2.3.4") {
		t.Error("Verify() = true when provider is unreachable, want false")
	}
}
