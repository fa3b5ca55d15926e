package consts

import "time"

// GameState is the coarse lifecycle state broadcast to every mirror.
type GameState string

const (
	StateLobby     GameState = "LOBBY"
	StatePlaying   GameState = "PLAYING"
	StateRoundOver GameState = "ROUND_OVER"
	StateGameOver  GameState = "GAME_OVER"
)

// TurnPhase is the sub-phase of the current player's turn.
type TurnPhase string

const (
	PhaseDraw    TurnPhase = "DRAW"
	PhaseAction  TurnPhase = "ACTION"
	PhaseDiscard TurnPhase = "DISCARD"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
	HandSize   = 10

	// MaxSelection bounds the bipartition search for two-requirement melds.
	MaxSelection = 15

	TurnSeconds = 40

	BotDelay       = 2 * time.Second
	RoundOverDelay = 5 * time.Second
	JoinTimeout    = 3 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsExist           = NewErr(1, true, "Exist. ")
	ErrorsTimeout         = NewErr(1, false, "Timeout. ")
	ErrorsJoinFail        = NewErr(1, true, "Join fail. ")
	ErrorsLobbyFull       = NewErr(2, false, "Lobby is full. ")
	ErrorsGameRunning     = NewErr(2, false, "Game already running. ")
	ErrorsGameNotPlaying  = NewErr(2, false, "Game is not in play. ")
	ErrorsPlayersInvalid  = NewErr(2, false, "Need two to four players. ")
	ErrorsNotOwner        = NewErr(2, false, "Only the room owner can start. ")
	ErrorsNotYourTurn     = NewErr(3, false, "Not your turn. ")
	ErrorsWrongPhase      = NewErr(3, false, "Wrong turn phase for that action. ")
	ErrorsCardNotInHand   = NewErr(3, false, "Card is not in your hand. ")
	ErrorsSkipFromDiscard = NewErr(3, false, "A skip card cannot be drawn from the discard pile. ")
	ErrorsDiscardEmpty    = NewErr(3, false, "The discard pile is empty. ")
	ErrorsInvalidMeld     = NewErr(3, false, "Selection does not satisfy your phase. ")
	ErrorsSelectionTooBig = NewErr(3, false, "Too many cards selected. ")
	ErrorsAlreadyLaidDown = NewErr(3, false, "Phase already laid down this round. ")
	ErrorsNotLaidDown     = NewErr(3, false, "Lay down your phase before hitting. ")
	ErrorsMeldNotFound    = NewErr(3, false, "No such meld. ")
	ErrorsInvalidHit      = NewErr(3, false, "Card does not extend that meld. ")
	ErrorsInvalidReorder  = NewErr(3, false, "Reorder indexes out of range. ")
	ErrorsStalemate       = NewErr(4, false, "Deck and discard pile are exhausted. ")
)
