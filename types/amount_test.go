package types

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
)

func TestAmountConstructors(t *testing.T) {
	tests := []struct {
		name  string
		a     Amount
		units string
	}{
		{"Zero", Zero(), "0"},
		{"New zero", New(0), "0"},
		{"New units", New(2500), "2500"},
		{"One token", Tokens(1), "1000000000000000000"},
		{"Hundred tokens", Tokens(100), "100000000000000000000"},
		{"Parsed", MustParse("42"), "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.String(); got != tt.units {
				t.Errorf("String: got %s, want %s", got, tt.units)
			}
		})
	}
}

func TestTokensNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for negative token count")
		}
	}()

	_ = Tokens(-1)
}

func TestAmountParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Valid", "12345", nil},
		{"Valid with spaces", "  12345  ", nil},
		{"Zero", "0", nil},
		{"Max", maxAmount.String(), nil},
		{"Empty", "", ErrAmountInvalid},
		{"Garbage", "12abc", ErrAmountInvalid},
		{"Negative", "-5", ErrAmountNegative},
		{"Too large", new(big.Int).Add(maxAmount, big.NewInt(1)).String(), ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Parse(%q): unexpected error %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q): got %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestAmountArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func() (Amount, error)
		expected Amount
		wantErr  error
	}{
		{"Add", func() (Amount, error) { return New(100).Add(New(200)) }, New(300), nil},
		{"Add zero", func() (Amount, error) { return New(100).Add(Zero()) }, New(100), nil},
		{"Sub", func() (Amount, error) { return New(500).Sub(New(200)) }, New(300), nil},
		{"Sub to zero", func() (Amount, error) { return New(500).Sub(New(500)) }, Zero(), nil},
		{"Sub underflow", func() (Amount, error) { return New(100).Sub(New(200)) }, Zero(), ErrAmountNegative},
		{"Add overflow", func() (Amount, error) { return MaxAmount().Add(New(1)) }, Zero(), ErrAmountOverflow},
		{"Max plus zero", func() (Amount, error) { return MaxAmount().Add(Zero()) }, MaxAmount(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAmountImmutability(t *testing.T) {
	a := New(100)
	b := New(50)

	if _, err := a.Add(b); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Sub(b); err != nil {
		t.Fatal(err)
	}

	if a.String() != "100" || b.String() != "50" {
		t.Errorf("Operands mutated: a=%s b=%s", a, b)
	}
}

func TestAmountComparison(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Amount
		less    bool
		greater bool
		equal   bool
	}{
		{"Equal", New(100), New(100), false, false, true},
		{"Less", New(50), New(100), true, false, false},
		{"Greater", New(200), New(100), false, true, false},
		{"Zero equal", Zero(), New(0), false, false, true},
		{"Zero less", Zero(), New(1), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.LessThan(tt.b); got != tt.less {
				t.Errorf("LessThan: got %v, want %v", got, tt.less)
			}
			if got := tt.a.GreaterThan(tt.b); got != tt.greater {
				t.Errorf("GreaterThan: got %v, want %v", got, tt.greater)
			}
			if got := tt.a.Equal(tt.b); got != tt.equal {
				t.Errorf("Equal: got %v, want %v", got, tt.equal)
			}
			if got := tt.a.AtLeast(tt.b); got != (tt.greater || tt.equal) {
				t.Errorf("AtLeast: got %v, want %v", got, tt.greater || tt.equal)
			}
		})
	}
}

func TestAmountFormat(t *testing.T) {
	tests := []struct {
		a        Amount
		expected string
	}{
		{Zero(), "0.000000000000000000"},
		{New(1), "0.000000000000000001"},
		{Tokens(1), "1.000000000000000000"},
		{Tokens(100), "100.000000000000000000"},
		{MustParse("1500000000000000000"), "1.500000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.a.Format(); got != tt.expected {
				t.Errorf("Format: got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestAmountJSON(t *testing.T) {
	a := Tokens(1)

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `"1000000000000000000"` {
		t.Errorf("JSON: got %s", data)
	}

	var back Amount
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !back.Equal(a) {
		t.Errorf("Round trip: got %v, want %v", back, a)
	}

	// Number encoding accepted too
	if err := json.Unmarshal([]byte(`2500`), &back); err != nil {
		t.Fatalf("Unmarshal number: %v", err)
	}
	if !back.Equal(New(2500)) {
		t.Errorf("Number decode: got %v", back)
	}
}

func TestAmountScan(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected Amount
		wantErr  bool
	}{
		{"String", "2500", New(2500), false},
		{"Bytes", []byte("42"), New(42), false},
		{"Int64", int64(7), New(7), false},
		{"Nil", nil, Zero(), false},
		{"Negative int64", int64(-1), Zero(), true},
		{"Bad type", 3.14, Zero(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := a.Scan(tt.src)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan error: %v", err)
			}
			if !a.Equal(tt.expected) {
				t.Errorf("Got %v, want %v", a, tt.expected)
			}
		})
	}
}

func TestSumAmounts(t *testing.T) {
	tests := []struct {
		name     string
		values   []Amount
		expected Amount
		wantErr  error
	}{
		{"Empty", nil, Zero(), nil},
		{"Single", []Amount{New(100)}, New(100), nil},
		{"Multiple", []Amount{New(100), New(200), New(300)}, New(600), nil},
		{"Overflow", []Amount{MaxAmount(), New(1)}, Zero(), ErrAmountOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.values...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("Sum: got %v, want %v", got, tt.expected)
			}
		})
	}
}

func BenchmarkAmountAdd(b *testing.B) {
	a1 := Tokens(100)
	a2 := Tokens(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a1.Add(a2)
	}
}

func BenchmarkAmountCmp(b *testing.B) {
	a1 := Tokens(100)
	a2 := Tokens(50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a1.Cmp(a2)
	}
}

func BenchmarkAmountString(b *testing.B) {
	a := Tokens(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.String()
	}
}
