// Package spotit builds and manipulates Spot It! style card decks in
// which every pair of cards shares exactly one symbol. Decks are
// constructed from a finite projective plane of prime order n, giving
// n²+n+1 cards of n+1 symbols each.
package spotit

// Symbol is one picture from the fixed game alphabet. Symbols are
// compared by value and ordered by their position in the alphabet.
type Symbol int

// The full symbol alphabet, in enumeration order. The plane builder
// consumes symbols from the front of this list.
const (
	Apple Symbol = iota
	Apricot
	Avocado
	Banana
	Bilberry
	Blackberry
	Blackcurrant
	Blueberry
	Boysenberry
	Currant
	Cherry
	Cherimoya
	ChicoFruit
	Cloudberry
	Coconut
	Cranberry
	Cucumber
	CustardApple
	Damson
	Date
	Dragonfruit
	Durian
	Elderberry
	Feijoa
	Fig
	GojiBerry
	Gooseberry
	Grape
	Raisin
	Grapefruit
	Guava
	Honeyberry
	Huckleberry
	Jabuticaba
	Jackfruit
	Jambul
	Jujube
	JuniperBerry
	Kiwano
	Kiwifruit
	Kumquat
	Lemon
	Lime
	Loquat
	Longan
	Lychee
	Mango
	Mangosteen
	Marionberry
	Melon
	Cantaloupe
	Honeydew
	Watermelon
	MiracleFruit
	Mulberry
	Nectarine
	Nance
	Olive
	Orange
	BloodOrange
	Clementine
	Mandarine
	Tangerine
	Papaya
	Passionfruit
	Peach
	Pear
	Persimmon
	Physalis
	Plantain
	Plum
	Prune
	Pineapple
	Plumcot
	Pomegranate
	Pomelo
	PurpleMangosteen
	Quince
	Raspberry
	Salmonberry
	Rambutan
	Redcurrant
	SalalBerry
	Salak
	Satsuma
	Soursop
	StarFruit
	SolanumQuitoense
	Strawberry
	Tamarillo
	Tamarind
	UgliFruit
	Yuzu
)

var symbolNames = [...]string{
	"Apple", "Apricot", "Avocado", "Banana", "Bilberry", "Blackberry",
	"Blackcurrant", "Blueberry", "Boysenberry", "Currant", "Cherry",
	"Cherimoya", "ChicoFruit", "Cloudberry", "Coconut", "Cranberry",
	"Cucumber", "CustardApple", "Damson", "Date", "Dragonfruit",
	"Durian", "Elderberry", "Feijoa", "Fig", "GojiBerry", "Gooseberry",
	"Grape", "Raisin", "Grapefruit", "Guava", "Honeyberry",
	"Huckleberry", "Jabuticaba", "Jackfruit", "Jambul", "Jujube",
	"JuniperBerry", "Kiwano", "Kiwifruit", "Kumquat", "Lemon", "Lime",
	"Loquat", "Longan", "Lychee", "Mango", "Mangosteen", "Marionberry",
	"Melon", "Cantaloupe", "Honeydew", "Watermelon", "MiracleFruit",
	"Mulberry", "Nectarine", "Nance", "Olive", "Orange", "BloodOrange",
	"Clementine", "Mandarine", "Tangerine", "Papaya", "Passionfruit",
	"Peach", "Pear", "Persimmon", "Physalis", "Plantain", "Plum",
	"Prune", "Pineapple", "Plumcot", "Pomegranate", "Pomelo",
	"PurpleMangosteen", "Quince", "Raspberry", "Salmonberry",
	"Rambutan", "Redcurrant", "SalalBerry", "Salak", "Satsuma",
	"Soursop", "StarFruit", "SolanumQuitoense", "Strawberry",
	"Tamarillo", "Tamarind", "UgliFruit", "Yuzu",
}

// AlphabetSize is the number of distinct symbols available. It bounds
// the plane orders that can be generated: n²+n+1 must fit inside it.
const AlphabetSize = len(symbolNames)

// SymbolAt returns the i-th symbol of the alphabet.
// It panics if i is outside [0, AlphabetSize).
func SymbolAt(i int) Symbol {
	if i < 0 || i >= AlphabetSize {
		panic("spotit: symbol index out of range")
	}
	return Symbol(i)
}

// String returns the symbol's name.
func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "?"
	}
	return symbolNames[s]
}
