package security

import (
	"sync"
	"testing"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/model"
)

func TestTokenStore_IssueAndValidate(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}

	token, err := ts.Issue(sess)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	if !ts.Validate(sess, token) {
		t.Error("Validate() = false for a fresh token")
	}
	// Validate never consumes.
	if !ts.Validate(sess, token) {
		t.Error("Validate() = false on second call, want true")
	}
}

func TestTokenStore_ValidateRejections(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	tests := []struct {
		name  string
		sess  *model.Session
		value string
	}{
		{"Nil session", nil, token},
		{"Empty value", sess, ""},
		{"Wrong value", sess, "bogus"},
		{"No token issued", &model.Session{ID: "s2"}, token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ts.Validate(tt.sess, tt.value) {
				t.Error("Validate() = true, want false")
			}
		})
	}
}

func TestTokenStore_Expiry(t *testing.T) {
	ts := NewTokenStore(10 * time.Millisecond)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	time.Sleep(20 * time.Millisecond)

	if ts.Validate(sess, token) {
		t.Error("Validate() = true after expiry, want false")
	}
	// Expired validation clears the token.
	if sess.DownloadToken != "" {
		t.Error("expired token not cleared from session")
	}
}

func TestTokenStore_IssueOverwritesPrior(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}

	first, _ := ts.Issue(sess)
	second, _ := ts.Issue(sess)
	if first == second {
		t.Fatal("two issued tokens are identical")
	}

	if ts.Validate(sess, first) {
		t.Error("Validate() = true for the overwritten token")
	}
	if !ts.Validate(sess, second) {
		t.Error("Validate() = false for the live token")
	}
}

func TestTokenStore_RedeemOnce(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	if !ts.Redeem(sess, token) {
		t.Fatal("Redeem() = false for a fresh token")
	}
	if ts.Redeem(sess, token) {
		t.Error("Redeem() = true on reuse, want false")
	}
	if ts.Validate(sess, token) {
		t.Error("Validate() = true after redeem, want false")
	}
}

func TestTokenStore_RedeemExpired(t *testing.T) {
	ts := NewTokenStore(10 * time.Millisecond)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	time.Sleep(20 * time.Millisecond)

	if ts.Redeem(sess, token) {
		t.Error("Redeem() = true after expiry, want false")
	}
}

func TestTokenStore_RedeemConcurrent(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	const workers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ts.Redeem(sess, token) {
				wins <- true
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("concurrent Redeem() won %d times, want exactly 1", count)
	}
}

func TestTokenStore_ConsumeIdempotent(t *testing.T) {
	ts := NewTokenStore(300 * time.Second)
	sess := &model.Session{ID: "s1"}
	token, _ := ts.Issue(sess)

	ts.Consume(sess)
	ts.Consume(sess)
	ts.Consume(nil)

	if ts.Validate(sess, token) {
		t.Error("Validate() = true after consume, want false")
	}
}
