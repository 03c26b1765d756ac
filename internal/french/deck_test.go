package french

import (
	"testing"

	"github.com/anguschiu1/cardgame/internal/randutil"
)

func TestStandardDeckHas52UniqueCards(t *testing.T) {
	deck := StandardDeck(nil)
	if deck.Len() != 52 {
		t.Fatalf("Len() = %d, want 52", deck.Len())
	}

	seen := make(map[Card]bool)
	for _, c := range deck.Cards() {
		if seen[c] {
			t.Errorf("card %v appears twice", c)
		}
		seen[c] = true
	}
}

func TestDeckPushPop(t *testing.T) {
	deck := NewDeck(nil)
	if _, ok := deck.Pop(); ok {
		t.Error("Pop() on empty deck should report false")
	}

	card := NewCard(Ace, Spades)
	deck.Push(card)
	got, ok := deck.Pop()
	if !ok || got != card {
		t.Errorf("Pop() = %v, %v, want %v, true", got, ok, card)
	}
	if !deck.IsEmpty() {
		t.Error("deck should be empty after pop")
	}
}

func TestShufflePreservesCards(t *testing.T) {
	deck := StandardDeck(randutil.New(99))
	deck.Shuffle()
	if deck.Len() != 52 {
		t.Fatalf("Len() = %d after shuffle, want 52", deck.Len())
	}

	seen := make(map[Card]bool)
	for _, c := range deck.Cards() {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("shuffle lost cards: %d unique, want 52", len(seen))
	}
}
