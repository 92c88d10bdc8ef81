package hash

import (
	"regexp"
	"testing"
	"time"
)

func TestSHA256Sum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "hello",
			input: "hello",
			want:  "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SHA256Sum(tt.input)
			if got != tt.want {
				t.Errorf("SHA256Sum(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestSessionID(t *testing.T) {
	at := time.Unix(1700000000, 123456789)
	hexPattern := regexp.MustCompile(`^[0-9a-f]{8}$`)

	t.Run("fixed length hex", func(t *testing.T) {
		got := SessionID("/home/alice/proj", at)
		if !hexPattern.MatchString(got) {
			t.Errorf("SessionID() = %q, want 8 lowercase hex chars", got)
		}
	})

	t.Run("matches digest prefix", func(t *testing.T) {
		got := SessionID("/home/alice/proj", at)
		want := SHA256Sum("/home/alice/proj:1700000000123456789")[:8]
		if got != want {
			t.Errorf("SessionID() = %q, want %q", got, want)
		}
	})

	t.Run("deterministic for same input", func(t *testing.T) {
		if SessionID("/p", at) != SessionID("/p", at) {
			t.Error("SessionID() not deterministic for identical inputs")
		}
	})

	t.Run("different instants differ", func(t *testing.T) {
		a := SessionID("/home/alice/proj", at)
		b := SessionID("/home/alice/proj", at.Add(time.Millisecond))
		if a == b {
			t.Errorf("SessionID() collided across instants: %s", a)
		}
	})

	t.Run("different paths differ", func(t *testing.T) {
		a := SessionID("/home/alice/proj", at)
		b := SessionID("/home/alice/other", at)
		if a == b {
			t.Errorf("SessionID() collided across paths: %s", a)
		}
	})
}
