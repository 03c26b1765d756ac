// Package protocol defines the JSON messages exchanged between the
// deck dealer server and its clients.
package protocol

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of message
type MessageType string

const (
	// Client -> Server
	TypeJoin = MessageType("join")
	TypeDraw = MessageType("draw")

	// Server -> Client
	TypeWelcome   = MessageType("welcome")
	TypeDeal      = MessageType("deal")
	TypeDeckEmpty = MessageType("deck_empty")
	TypeError     = MessageType("error")
)

// Message is the envelope carried on the wire.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Decode unmarshals the envelope payload into v.
func (m *Message) Decode(v any) error {
	return json.Unmarshal(m.Data, v)
}

// Client → Server payloads

// JoinData announces a player joining the table.
type JoinData struct {
	Name string `json:"name"`
}

// DrawData asks the dealer for the next cards.
type DrawData struct {
	Count int `json:"count,omitempty"` // default 1
}

// Server → Client payloads

// WelcomeData describes the deck the dealer is holding.
type WelcomeData struct {
	Order          int `json:"order"`
	TotalCards     int `json:"totalCards"`
	SymbolsPerCard int `json:"symbolsPerCard"`
	CardsLeft      int `json:"cardsLeft"`
}

// DealData carries one dealt card.
type DealData struct {
	Symbols   []string `json:"symbols"`
	CardsLeft int      `json:"cardsLeft"`
}

// DeckEmptyData signals that every card has been dealt.
type DeckEmptyData struct {
	Dealt int `json:"dealt"`
}

// ErrorData reports a request failure.
type ErrorData struct {
	Message string `json:"message"`
}
