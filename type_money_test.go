package networth

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m      Money
		want   string
		whole  string
		signed string
	}{
		{USD(1234.5), "$1,234.50", "$1,235", "+$1,234.50"},
		{USD(-6000), "-$6,000.00", "-$6,000", "-$6,000.00"},
		{USD(0), "$0.00", "$0", "-"},
		{USD(2502542.13), "$2,502,542.13", "$2,502,542", "+$2,502,542.13"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
		if got := tc.m.Whole(); got != tc.whole {
			t.Errorf("Whole() = %q, want %q", got, tc.whole)
		}
		if got := tc.m.SignedString(); got != tc.signed {
			t.Errorf("SignedString() = %q, want %q", got, tc.signed)
		}
	}
}

func TestMoney_Sub(t *testing.T) {
	got := USD(100).Sub(M(30, ""))
	if got.Currency() != "USD" || got.String() != "$70.00" {
		t.Errorf("Sub() = %v %q", got, got.Currency())
	}
	defer func() {
		if recover() == nil {
			t.Error("Sub() across currencies did not panic")
		}
	}()
	USD(1).Sub(M(1, "EUR"))
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(USD(1234.567))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if got, want := string(b), `{"currency":"USD","amount":"1234.57"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		p      Percent
		want   string
		signed string
	}{
		{Ratio(0.065), "6.5%", "+6.5%"},
		{Ratio(-0.012), "-1.2%", "-1.2%"},
		{Ratio(0), "0.0%", "-"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("SignedString() = %q, want %q", got, tc.signed)
		}
	}
	if !Ratio(0.07).Equal(7) {
		t.Error("Ratio(0.07) != 7%")
	}
}

func TestStrategy_Text(t *testing.T) {
	b, err := json.Marshal(map[string]Strategy{"s": InvestFirst})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if got, want := string(b), `{"s":"invest_first"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var v map[string]Strategy
	if err := json.Unmarshal(b, &v); err != nil || v["s"] != InvestFirst {
		t.Errorf("Unmarshal() = %v, %v", v, err)
	}
	if err := json.Unmarshal([]byte(`{"s":"yolo"}`), &v); err == nil {
		t.Error("Unmarshal(yolo) succeeded")
	}
	if _, err := json.Marshal(Strategy(5)); err == nil {
		t.Error("Marshal(Strategy(5)) succeeded")
	}
}
