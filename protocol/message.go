package protocol

import (
	"fmt"

	"github.com/jackson-harris-iii/inifinite-phase-game/game"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client -> host message tags.
type ClientType string

const (
	TypeJoin   ClientType = "JOIN"
	TypeAction ClientType = "ACTION"
)

// Host -> client message tags.
type ServerType string

const (
	TypeState  ServerType = "STATE"
	TypeNotice ServerType = "NOTICE"
)

// ActionType enumerates every intent a participant can submit.
type ActionType string

const (
	ActionStart   ActionType = "START"
	ActionDraw    ActionType = "DRAW"
	ActionDiscard ActionType = "DISCARD"
	ActionMeld    ActionType = "MELD"
	ActionHit     ActionType = "HIT"
	ActionReorder ActionType = "REORDER"
)

// Join is sent once on connect.
type Join struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Action carries one intent. Only the fields for its type are meaningful.
type Action struct {
	Type        ActionType `json:"type"`
	PlayerID    string     `json:"playerId"`
	FromDiscard bool       `json:"fromDiscard,omitempty"`
	CardID      int        `json:"cardId,omitempty"`
	CardIDs     []int      `json:"cardIds,omitempty"`
	MeldID      string     `json:"meldId,omitempty"`
	FromIndex   int        `json:"fromIndex,omitempty"`
	ToIndex     int        `json:"toIndex,omitempty"`
}

// Notice is a transient user-facing message; it never implies a state change.
type Notice struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ClientMessage is the closed union of everything a client may send. Exactly
// one payload field is set, selected by Type.
type ClientMessage struct {
	Type   ClientType `json:"type"`
	Join   *Join      `json:"join,omitempty"`
	Action *Action    `json:"action,omitempty"`
}

// ServerMessage is the closed union of everything the host may broadcast.
type ServerMessage struct {
	Type   ServerType     `json:"type"`
	State  *game.Snapshot `json:"state,omitempty"`
	Notice *Notice        `json:"notice,omitempty"`
}

func EncodeClient(m ClientMessage) ([]byte, error) {
	return json.Marshal(m)
}

// DecodeClient parses a client message and rejects unrecognized or malformed
// tags so the host never dispatches on a half-formed union.
func DecodeClient(data []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return ClientMessage{}, err
	}
	switch m.Type {
	case TypeJoin:
		if m.Join == nil {
			return ClientMessage{}, fmt.Errorf("join message missing payload")
		}
	case TypeAction:
		if m.Action == nil {
			return ClientMessage{}, fmt.Errorf("action message missing payload")
		}
		switch m.Action.Type {
		case ActionStart, ActionDraw, ActionDiscard, ActionMeld, ActionHit, ActionReorder:
		default:
			return ClientMessage{}, fmt.Errorf("unknown action type %q", m.Action.Type)
		}
	default:
		return ClientMessage{}, fmt.Errorf("unknown client message type %q", m.Type)
	}
	return m, nil
}

func EncodeServer(m ServerMessage) ([]byte, error) {
	return json.Marshal(m)
}

func DecodeServer(data []byte) (ServerMessage, error) {
	var m ServerMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return ServerMessage{}, err
	}
	switch m.Type {
	case TypeState:
		if m.State == nil {
			return ServerMessage{}, fmt.Errorf("state message missing payload")
		}
	case TypeNotice:
		if m.Notice == nil {
			return ServerMessage{}, fmt.Errorf("notice message missing payload")
		}
	default:
		return ServerMessage{}, fmt.Errorf("unknown server message type %q", m.Type)
	}
	return m, nil
}

func StateMessage(s game.Snapshot) ServerMessage {
	return ServerMessage{Type: TypeState, State: &s}
}

func NoticeMessage(code int, message string) ServerMessage {
	return ServerMessage{Type: TypeNotice, Notice: &Notice{Code: code, Message: message}}
}
