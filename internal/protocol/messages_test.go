package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(TypeDeal, DealData{
		Symbols:   []string{"Apple", "Banana"},
		CardsLeft: 12,
	})
	require.NoError(t, err)

	wire, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(wire, &decoded))
	assert.Equal(t, TypeDeal, decoded.Type)

	var deal DealData
	require.NoError(t, decoded.Decode(&deal))
	assert.Equal(t, []string{"Apple", "Banana"}, deal.Symbols)
	assert.Equal(t, 12, deal.CardsLeft)
}

func TestMessageDecodeWrongPayload(t *testing.T) {
	msg, err := NewMessage(TypeError, ErrorData{Message: "deck exhausted"})
	require.NoError(t, err)

	// Decoding into a mismatched struct leaves zero values, not an error;
	// the type field is what routes payloads.
	var join JoinData
	require.NoError(t, msg.Decode(&join))
	assert.Empty(t, join.Name)

	var errData ErrorData
	require.NoError(t, msg.Decode(&errData))
	assert.Equal(t, "deck exhausted", errData.Message)
}

func TestJoinOmitsEmptyData(t *testing.T) {
	msg, err := NewMessage(TypeDraw, DrawData{})
	require.NoError(t, err)

	var draw DrawData
	require.NoError(t, msg.Decode(&draw))
	assert.Zero(t, draw.Count)
}
