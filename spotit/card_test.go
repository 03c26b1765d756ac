package spotit

import "testing"

func TestCardEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{
			name: "same single symbol",
			a:    NewCard(Banana),
			b:    NewCard(Banana),
			want: true,
		},
		{
			name: "different symbols",
			a:    NewCard(Banana),
			b:    NewCard(Apple),
			want: false,
		},
		{
			name: "subset is not equal",
			a:    NewCard(Apple),
			b:    NewCard(Banana, Apple),
			want: false,
		},
		{
			name: "same set different insertion order",
			a:    NewCard(Banana, Apple),
			b:    NewCard(Apple, Banana),
			want: true,
		},
		{
			name: "duplicate insertion collapses",
			a:    NewCard(Apple, Apple),
			b:    NewCard(Apple),
			want: true,
		},
		{
			name: "both empty",
			a:    NewCard(),
			b:    NewCard(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchExactlyOneSymbol(t *testing.T) {
	tests := []struct {
		name string
		a, b Card
		want bool
	}{
		{
			name: "one shared symbol",
			a:    NewCard(Banana),
			b:    NewCard(Banana, Apple),
			want: true,
		},
		{
			name: "two shared symbols",
			a:    NewCard(Banana, Apple),
			b:    NewCard(Banana, Apple),
			want: false,
		},
		{
			name: "no shared symbol",
			a:    NewCard(ChicoFruit),
			b:    NewCard(Banana, Apple),
			want: false,
		},
		{
			name: "both empty share nothing",
			a:    NewCard(),
			b:    NewCard(),
			want: false,
		},
		{
			name: "one empty",
			a:    NewCard(),
			b:    NewCard(Apple),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.MatchExactlyOneSymbol(tt.b); got != tt.want {
				t.Errorf("MatchExactlyOneSymbol() = %v, want %v", got, tt.want)
			}
			// The relation is symmetric.
			if got := tt.b.MatchExactlyOneSymbol(tt.a); got != tt.want {
				t.Errorf("MatchExactlyOneSymbol() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCardAddIsNoOpOnDuplicate(t *testing.T) {
	c := NewCard(Apple)
	c.Add(Apple)
	if c.Size() != 1 {
		t.Errorf("Size() = %d after duplicate add, want 1", c.Size())
	}
	c.Add(Banana)
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
}

func TestCardSymbolsSorted(t *testing.T) {
	c := NewCard(Yuzu, Apple, Mango)
	got := c.Symbols()
	want := []Symbol{Apple, Mango, Yuzu}
	if len(got) != len(want) {
		t.Fatalf("Symbols() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Symbols()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCardSharedSymbols(t *testing.T) {
	a := NewCard(Apple, Banana, Cherry)
	b := NewCard(Cherry, Apple, Durian)
	got := a.SharedSymbols(b)
	if len(got) != 2 || got[0] != Apple || got[1] != Cherry {
		t.Errorf("SharedSymbols() = %v, want [Apple Cherry]", got)
	}
	if shared := a.SharedSymbols(NewCard()); shared != nil {
		t.Errorf("SharedSymbols(empty) = %v, want nil", shared)
	}
}

func TestCardString(t *testing.T) {
	c := NewCard(Banana, Apple)
	if got := c.String(); got != "[Apple Banana]" {
		t.Errorf("String() = %q, want %q", got, "[Apple Banana]")
	}
}
