package cart

import (
	"testing"
)

func TestAddCreatesAndIncrements(t *testing.T) {
	c := Cart{}
	c.Add("7")
	if c["7"] != 1 {
		t.Errorf("Add on empty cart = %d, want 1", c["7"])
	}
	c.Add("7")
	if c["7"] != 2 {
		t.Errorf("second Add = %d, want 2", c["7"])
	}
	c.Add("9")
	if c["9"] != 1 || len(c) != 2 {
		t.Errorf("Add of new id: got %v", c)
	}
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name    string
		qty     int
		wantQty int
		removed bool
	}{
		{"positive replaces", 3, 3, false},
		{"one keeps entry", 1, 1, false},
		{"zero removes", 0, 0, true},
		{"negative removes", -2, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cart{"5": 10}
			c.SetQuantity("5", tt.qty)
			got, ok := c["5"]
			if ok == tt.removed {
				t.Fatalf("entry present = %v, want removed = %v", ok, tt.removed)
			}
			if !tt.removed && got != tt.wantQty {
				t.Errorf("quantity = %d, want %d", got, tt.wantQty)
			}
		})
	}
}

func TestSetQuantitiesSkipsBadFields(t *testing.T) {
	c := Cart{"1": 1, "2": 2, "3": 3}
	c.SetQuantities(map[string]string{
		"1": "5",
		"2": "not-a-number", // skipped, entry untouched
		"3": "0",            // removed
		"4": " 7 ",          // trimmed, added
	})
	want := Cart{"1": 5, "2": 2, "4": 7}
	if len(c) != len(want) {
		t.Fatalf("cart = %v, want %v", c, want)
	}
	for id, qty := range want {
		if c[id] != qty {
			t.Errorf("cart[%s] = %d, want %d", id, c[id], qty)
		}
	}
}

// Two adds followed by a set must end at exactly the set quantity.
func TestAddThenSetQuantity(t *testing.T) {
	c := Cart{}
	c.Add("1")
	c.Add("1")
	c.SetQuantities(map[string]string{"1": "3"})
	if c["1"] != 3 {
		t.Errorf("quantity after add,add,set = %d, want 3", c["1"])
	}
}

func TestTokenRoundtrip(t *testing.T) {
	secret := []byte("test_secret")
	orig := Cart{"1": 2, "14": 1}

	tok, err := Token(orig, secret)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}

	got := FromToken(tok, secret)
	if len(got) != len(orig) {
		t.Fatalf("roundtrip cart = %v, want %v", got, orig)
	}
	for id, qty := range orig {
		if got[id] != qty {
			t.Errorf("roundtrip cart[%s] = %d, want %d", id, got[id], qty)
		}
	}
}

func TestFromTokenLenient(t *testing.T) {
	secret := []byte("test_secret")
	tok, err := Token(Cart{"1": 2}, secret)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"empty", ""},
		{"wrong key", func() string {
			other, _ := Token(Cart{"1": 2}, []byte("other_secret"))
			return other
		}()},
		{"tampered", tok + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromToken(tt.token, secret)
			if got == nil {
				t.Fatal("FromToken returned nil cart")
			}
			if len(got) != 0 {
				t.Errorf("FromToken(%q) = %v, want empty cart", tt.name, got)
			}
		})
	}
}
