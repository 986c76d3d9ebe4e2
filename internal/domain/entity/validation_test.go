package entity

import (
	"strings"
	"testing"
)

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{
			name:    "normal user id",
			userID:  "user-123",
			wantErr: false,
		},
		{
			name:    "opaque token",
			userID:  "c9b1f1a0-4f9f-4a0a-9c33-2f9b2e7d2a11",
			wantErr: false,
		},
		{
			name:    "empty",
			userID:  "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			userID:  "   ",
			wantErr: true,
		},
		{
			name:    "too long",
			userID:  strings.Repeat("a", 129),
			wantErr: true,
		},
		{
			name:    "at length limit",
			userID:  strings.Repeat("a", 128),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUserID(%q) error = %v, wantErr %v", tt.userID, err, tt.wantErr)
			}
		})
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		name    string
		style   Style
		wantErr bool
	}{
		{name: "bullet", style: StyleBullet, wantErr: false},
		{name: "abstract", style: StyleAbstract, wantErr: false},
		{name: "detailed", style: StyleDetailed, wantErr: false},
		{name: "empty", style: Style(""), wantErr: true},
		{name: "unknown", style: Style("haiku"), wantErr: true},
		{name: "case sensitive", style: Style("Bullet"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyle(tt.style)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
		})
	}
}

func TestSummaryRecordValidate(t *testing.T) {
	score := 85
	valid := SummaryRecord{
		UserID:       "user-1",
		DocumentName: "report.pdf",
		DocumentType: "pdf",
		SummaryText:  "A short summary.",
		SummaryStyle: StyleBullet,
		QualityScore: &score,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid record returned %v", err)
	}

	t.Run("missing summary text", func(t *testing.T) {
		r := valid
		r.SummaryText = ""
		if err := r.Validate(); err == nil {
			t.Error("expected error for empty summary text")
		}
	})

	t.Run("score out of range", func(t *testing.T) {
		r := valid
		bad := 101
		r.QualityScore = &bad
		if err := r.Validate(); err == nil {
			t.Error("expected error for score > 100")
		}
	})

	t.Run("nil score allowed", func(t *testing.T) {
		r := valid
		r.QualityScore = nil
		if err := r.Validate(); err != nil {
			t.Errorf("nil quality score should be valid, got %v", err)
		}
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		if got := Excerpt("hello"); got != "hello" {
			t.Errorf("Excerpt = %q", got)
		}
	})

	t.Run("long text cut at limit", func(t *testing.T) {
		long := strings.Repeat("x", 2000)
		got := Excerpt(long)
		if len([]rune(got)) != ExcerptLimit {
			t.Errorf("excerpt length = %d, want %d", len([]rune(got)), ExcerptLimit)
		}
	})

	t.Run("multibyte text cut on rune boundary", func(t *testing.T) {
		long := strings.Repeat("日", 1500)
		got := Excerpt(long)
		if len([]rune(got)) != ExcerptLimit {
			t.Errorf("excerpt rune length = %d, want %d", len([]rune(got)), ExcerptLimit)
		}
		for _, r := range got {
			if r != '日' {
				t.Fatalf("excerpt contains corrupted rune %q", r)
			}
		}
	})
}
