package auth

import "testing"

func TestVerify_OK(t *testing.T) {
	v := NewVerifier("dev-secret")

	token := v.Sign("user_1")

	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got != "user_1" {
		t.Fatalf("user id = %q, want user_1", got)
	}
}

func TestVerify_UserIDWithDots(t *testing.T) {
	v := NewVerifier("dev-secret")

	token := v.Sign("user.with.dots")

	got, err := v.Verify(token)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got != "user.with.dots" {
		t.Fatalf("user id = %q", got)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	minter := NewVerifier("WRONG-SECRET")
	v := NewVerifier("dev-secret")

	_, err := v.Verify(minter.Sign("user_1"))
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	v := NewVerifier("dev-secret")

	for _, token := range []string{
		"",
		"user_1",
		".deadbeef",
		"user_1.",
		"user_1.not-hex!!!",
	} {
		if _, err := v.Verify(token); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerify_TrimsWhitespace(t *testing.T) {
	v := NewVerifier("dev-secret")

	got, err := v.Verify("  " + v.Sign("user_1") + "\n")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if got != "user_1" {
		t.Fatalf("user id = %q", got)
	}
}
