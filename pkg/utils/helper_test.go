package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact cents stay fixed", 4817.15, 4817.15},
		{"third decimal above half rounds up", 10.006, 10.01},
		{"third decimal below half rounds down", 10.004, 10.0},
		{"long fraction truncates to cents", 100.10 * 48.1234, 4817.15},
		{"zero stays zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Round2(tc.in); got != tc.want {
				t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want int64
	}{
		{"whole pounds", 4817, 481700},
		{"cents preserved", 4817.15, 481715},
		{"float noise rounds to the nearest cent", 0.1 + 0.2, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToMinorUnits(tc.in); got != tc.want {
				t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("", 10); got != 10 {
		t.Errorf("empty string = %d, want default 10", got)
	}
	if got := ParseInt("3", 10); got != 3 {
		t.Errorf("\"3\" = %d, want 3", got)
	}
	if got := ParseInt("abc", 10); got != 10 {
		t.Errorf("garbage = %d, want default 10", got)
	}
	if got := ParseInt("0", 10); got != 10 {
		t.Errorf("zero = %d, want default 10", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	if got := CalculateTotalPages(5, 2); got != 3 {
		t.Errorf("5/2 = %d pages, want 3", got)
	}
	if got := CalculateTotalPages(4, 2); got != 2 {
		t.Errorf("4/2 = %d pages, want 2", got)
	}
	if got := CalculateTotalPages(0, 2); got != 0 {
		t.Errorf("0/2 = %d pages, want 0", got)
	}
}

func TestValidateCellPhone(t *testing.T) {
	type phone struct {
		CellPhone string `validate:"required,cellphone"`
	}

	if errs := ValidateStruct(phone{"01234567890"}); len(errs) != 0 {
		t.Errorf("11 digits rejected: %v", errs)
	}
	if errs := ValidateStruct(phone{"123456789"}); len(errs) == 0 {
		t.Error("9 digits must be rejected")
	}
	if errs := ValidateStruct(phone{"+2012345678"}); len(errs) == 0 {
		t.Error("plus prefix must be rejected")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	token, err := GenerateToken(config, "64f000000000000000000001", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sub, role, err := ParseToken(config, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sub != "64f000000000000000000001" || role != "admin" {
		t.Errorf("claims = %s/%s", sub, role)
	}

	if _, _, err := ParseToken(JWTConfig{Secret: "other-secret"}, token); err == nil {
		t.Error("token signed with another secret must be rejected")
	}
}
