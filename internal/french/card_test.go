package french

import "testing"

func TestCardEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{"same rank and suit", NewCard(Ace, Spades), NewCard(Ace, Spades), true},
		{"same rank different suit", NewCard(Ace, Spades), NewCard(Ace, Hearts), false},
		{"same suit different rank", NewCard(Ace, Hearts), NewCard(King, Hearts), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("(%v == %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchRankAndSuit(t *testing.T) {
	aceSpades := NewCard(Ace, Spades)
	aceHearts := NewCard(Ace, Hearts)
	kingHearts := NewCard(King, Hearts)

	if !aceSpades.MatchRank(aceHearts) {
		t.Error("aces should match by rank across suits")
	}
	if aceSpades.MatchRank(kingHearts) {
		t.Error("ace and king should not match by rank")
	}
	if !aceHearts.MatchSuit(kingHearts) {
		t.Error("two hearts should match by suit")
	}
	if aceSpades.MatchSuit(aceHearts) {
		t.Error("spade and heart should not match by suit")
	}
}

func TestRankValues(t *testing.T) {
	if got := NewCard(Ten, Clubs).Value(); got != 10 {
		t.Errorf("Ten Value() = %d, want 10", got)
	}
	if got := NewCard(Ace, Clubs).Value(); got != 14 {
		t.Errorf("Ace Value() = %d, want 14", got)
	}
}

func TestCardString(t *testing.T) {
	if got := NewCard(Ace, Spades).String(); got != "A♠" {
		t.Errorf("String() = %q, want %q", got, "A♠")
	}
}
