package protocol_test

import (
	"testing"

	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClient(t *testing.T) {
	scenarios := []struct {
		description string
		payload     string
		ok          bool
	}{
		{
			description: "join",
			payload:     `{"type":"JOIN","join":{"id":"p1","name":"Ada"}}`,
			ok:          true,
		},
		{
			description: "draw_action",
			payload:     `{"type":"ACTION","action":{"type":"DRAW","playerId":"p1","fromDiscard":true}}`,
			ok:          true,
		},
		{
			description: "meld_action",
			payload:     `{"type":"ACTION","action":{"type":"MELD","playerId":"p1","cardIds":[1,2,3]}}`,
			ok:          true,
		},
		{
			description: "unknown_message_tag",
			payload:     `{"type":"CHAT","text":"hi"}`,
			ok:          false,
		},
		{
			description: "unknown_action_tag",
			payload:     `{"type":"ACTION","action":{"type":"UNDO","playerId":"p1"}}`,
			ok:          false,
		},
		{
			description: "join_without_payload",
			payload:     `{"type":"JOIN"}`,
			ok:          false,
		},
		{
			description: "action_without_payload",
			payload:     `{"type":"ACTION"}`,
			ok:          false,
		},
		{
			description: "not_json",
			payload:     `nope`,
			ok:          false,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := protocol.DecodeClient([]byte(scenario.payload))
			if scenario.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDecodeServerRejectsUnknownTag(t *testing.T) {
	_, err := protocol.DecodeServer([]byte(`{"type":"PING"}`))
	assert.Error(t, err)

	_, err = protocol.DecodeServer([]byte(`{"type":"STATE"}`))
	assert.Error(t, err, "state message without payload")

	msg, err := protocol.DecodeServer([]byte(`{"type":"NOTICE","notice":{"code":3,"message":"Not your turn. "}}`))
	require.NoError(t, err)
	assert.Equal(t, 3, msg.Notice.Code)
}

func TestStateMessageRoundTrip(t *testing.T) {
	data, err := protocol.EncodeServer(protocol.NoticeMessage(4, "Deck and discard pile are exhausted. "))
	require.NoError(t, err)
	msg, err := protocol.DecodeServer(data)
	require.NoError(t, err)
	assert.Equal(t, protocol.TypeNotice, msg.Type)
	assert.Equal(t, 4, msg.Notice.Code)
}
