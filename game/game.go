package game

import (
	"math/rand"
	"time"

	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
)

// Game is the canonical state. Exactly one instance exists per session, owned
// by the host; every method mutates synchronously in response to one action at
// a time. Illegal actions return an error and leave the state untouched.
type Game struct {
	r       *rand.Rand
	phases  []phase.Phase
	players []*Player

	deck *Deck
	pile *Pile

	state         consts.GameState
	current       int
	turnPhase     consts.TurnPhase
	roundWinner   string
	turnSeconds   int
	turnRemaining int
}

func New(phases []phase.Phase, seed int64, turnSeconds int) *Game {
	if len(phases) == 0 {
		phases = phase.Standard()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if turnSeconds <= 0 {
		turnSeconds = consts.TurnSeconds
	}
	return &Game{
		r:           rand.New(rand.NewSource(seed)),
		phases:      phases,
		state:       consts.StateLobby,
		turnSeconds: turnSeconds,
	}
}

func (g *Game) State() consts.GameState {
	return g.state
}

func (g *Game) TurnPhase() consts.TurnPhase {
	return g.turnPhase
}

func (g *Game) Phases() []phase.Phase {
	return g.phases
}

func (g *Game) Players() []*Player {
	return g.players
}

func (g *Game) Player(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Current returns the player whose turn it is, or nil outside of play.
func (g *Game) Current() *Player {
	if g.state != consts.StatePlaying {
		return nil
	}
	return g.players[g.current]
}

// AddPlayer seats a participant while the game is still in the lobby.
func (g *Game) AddPlayer(id, name string, bot bool) error {
	if g.state != consts.StateLobby {
		return consts.ErrorsGameRunning
	}
	if len(g.players) >= consts.MaxPlayers {
		return consts.ErrorsLobbyFull
	}
	if g.Player(id) != nil {
		return consts.ErrorsExist
	}
	g.players = append(g.players, newPlayer(id, name, bot))
	return nil
}

func (g *Game) RemovePlayer(id string) {
	if g.state != consts.StateLobby {
		return
	}
	for i, p := range g.players {
		if p.ID == id {
			g.players = append(g.players[:i], g.players[i+1:]...)
			return
		}
	}
}

// Start moves the lobby into play and deals the first round.
func (g *Game) Start() error {
	if g.state != consts.StateLobby {
		return consts.ErrorsGameRunning
	}
	if len(g.players) < consts.MinPlayers || len(g.players) > consts.MaxPlayers {
		return consts.ErrorsPlayersInvalid
	}
	g.startRound()
	return nil
}

// StartRound tears down round-scoped state and deals afresh. Scores and phase
// indices persist; the first player rotates back to index 0.
func (g *Game) StartRound() error {
	if g.state != consts.StateRoundOver {
		return consts.ErrorsGameNotPlaying
	}
	g.startRound()
	return nil
}

func (g *Game) startRound() {
	g.deck = NewDeck()
	g.deck.Shuffle(g.r)
	g.pile = NewPile()
	hands := g.deck.Deal(len(g.players), consts.HandSize)
	for i, p := range g.players {
		p.resetRound(hands[i])
	}
	if first, ok := g.deck.Pop(); ok {
		g.pile.Add(first)
	}
	g.current = 0
	g.turnPhase = consts.PhaseDraw
	g.roundWinner = ""
	g.turnRemaining = g.turnSeconds
	g.state = consts.StatePlaying
}

func (g *Game) currentPhase(p *Player) phase.Phase {
	return g.phases[p.PhaseIndex]
}

func (g *Game) checkTurn(playerID string, phases ...consts.TurnPhase) (*Player, error) {
	if g.state != consts.StatePlaying {
		return nil, consts.ErrorsGameNotPlaying
	}
	p := g.players[g.current]
	if p.ID != playerID {
		return nil, consts.ErrorsNotYourTurn
	}
	for _, tp := range phases {
		if g.turnPhase == tp {
			return p, nil
		}
	}
	return nil, consts.ErrorsWrongPhase
}

// Draw moves the current player from DRAW to ACTION. Drawing the discard top
// is refused when it is a skip card. An empty deck recycles the discard pile
// first; failing that the stalemate is reported and nothing changes.
func (g *Game) Draw(playerID string, fromDiscard bool) error {
	p, err := g.checkTurn(playerID, consts.PhaseDraw)
	if err != nil {
		return err
	}
	var c card.Card
	if fromDiscard {
		top, ok := g.pile.Top()
		if !ok {
			return consts.ErrorsDiscardEmpty
		}
		if top.IsSkip() {
			return consts.ErrorsSkipFromDiscard
		}
		c, _ = g.pile.PopTop()
	} else {
		if g.deck.Size() == 0 {
			if err := g.deck.Recycle(g.pile, g.r); err != nil {
				return err
			}
		}
		var ok bool
		c, ok = g.deck.Pop()
		if !ok {
			return consts.ErrorsStalemate
		}
	}
	p.Hand.Add(c)
	g.turnPhase = consts.PhaseAction
	return nil
}

// Meld lays down the player's current phase. The selection must partition into
// every requirement group simultaneously; on success each group becomes one
// meld and the player is marked laid down for the round.
func (g *Game) Meld(playerID string, cardIDs []int) error {
	p, err := g.checkTurn(playerID, consts.PhaseAction)
	if err != nil {
		return err
	}
	if p.LaidDown {
		return consts.ErrorsAlreadyLaidDown
	}
	if len(cardIDs) > consts.MaxSelection {
		return consts.ErrorsSelectionTooBig
	}
	cards, ok := p.Hand.Collect(cardIDs)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	reqs := g.currentPhase(p).Requirements
	groups, ok := FindSplit(cards, reqs)
	if !ok {
		return consts.ErrorsInvalidMeld
	}
	p.Hand.RemoveAll(cardIDs)
	for i, group := range groups {
		p.Melds = append(p.Melds, NewMeld(p.ID, reqs[i].Kind, group))
	}
	p.LaidDown = true
	if p.Hand.Empty() {
		g.endRound(p)
	}
	return nil
}

// Hit appends one hand card onto an existing meld, own or another player's.
// Only a player who has already laid down may hit.
func (g *Game) Hit(playerID string, cardID int, meldID string) error {
	p, err := g.checkTurn(playerID, consts.PhaseAction)
	if err != nil {
		return err
	}
	if !p.LaidDown {
		return consts.ErrorsNotLaidDown
	}
	m := g.findMeld(meldID)
	if m == nil {
		return consts.ErrorsMeldNotFound
	}
	c, ok := p.Hand.Find(cardID)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	if !CanAddToMeld(c, m) {
		return consts.ErrorsInvalidHit
	}
	p.Hand.Remove(cardID)
	m.Add(c)
	if p.Hand.Empty() {
		g.endRound(p)
	}
	return nil
}

// Discard ends the turn. A skip discard marks the following player skipped and
// jumps one further; the skip never cascades. Emptying the hand ends the round
// on the spot.
func (g *Game) Discard(playerID string, cardID int) error {
	p, err := g.checkTurn(playerID, consts.PhaseAction, consts.PhaseDiscard)
	if err != nil {
		return err
	}
	c, ok := p.Hand.Remove(cardID)
	if !ok {
		return consts.ErrorsCardNotInHand
	}
	g.pile.Add(c)
	if p.Hand.Empty() {
		g.endRound(p)
		return nil
	}
	g.advance(c.IsSkip())
	return nil
}

// Reorder rearranges the caller's own hand. Legal at any time during play,
// turn or not.
func (g *Game) Reorder(playerID string, from, to int) error {
	if g.state != consts.StatePlaying {
		return consts.ErrorsGameNotPlaying
	}
	p := g.Player(playerID)
	if p == nil {
		return consts.ErrorsExist
	}
	if !p.Hand.Reorder(from, to) {
		return consts.ErrorsInvalidReorder
	}
	return nil
}

// Tick drives the host-owned per-turn countdown. At zero a deterministic
// auto-play fires for human players; bots run on their own cadence. A blocked
// auto-play, stalemate above all, is returned so the caller can report it.
func (g *Game) Tick() error {
	if g.state != consts.StatePlaying {
		return nil
	}
	if g.turnRemaining > 0 {
		g.turnRemaining--
	}
	if g.turnRemaining > 0 {
		return nil
	}
	p := g.players[g.current]
	if p.Bot {
		return nil
	}
	if g.turnPhase == consts.PhaseDraw {
		if err := g.Draw(p.ID, false); err != nil {
			// Nothing to auto-play. Re-arm so the blocked turn is reported
			// once per countdown, not once per second.
			g.turnRemaining = g.turnSeconds
			return err
		}
		return nil
	}
	if c, ok := p.Hand.AutoDiscard(); ok {
		return g.Discard(p.ID, c.ID)
	}
	return nil
}

func (g *Game) TurnRemaining() int {
	return g.turnRemaining
}

func (g *Game) advance(skipNext bool) {
	next := (g.current + 1) % len(g.players)
	if skipNext {
		g.players[next].Skipped = true
		next = (next + 1) % len(g.players)
	}
	g.current = next
	g.players[next].Skipped = false
	g.turnPhase = consts.PhaseDraw
	g.turnRemaining = g.turnSeconds
}

func (g *Game) findMeld(id string) *Meld {
	for _, p := range g.players {
		for _, m := range p.Melds {
			if m.ID == id {
				return m
			}
		}
	}
	return nil
}

// endRound charges every non-winner their remaining hand, advances the phase
// index of everyone who laid down, and decides whether the game is over.
func (g *Game) endRound(winner *Player) {
	g.roundWinner = winner.ID
	gameOver := false
	last := len(g.phases) - 1
	for _, p := range g.players {
		if p.ID != winner.ID {
			p.Score += p.Hand.Score()
		}
		if p.LaidDown {
			if p.PhaseIndex == last {
				gameOver = true
			}
			if p.PhaseIndex < last {
				p.PhaseIndex++
			}
		}
	}
	if gameOver {
		g.state = consts.StateGameOver
	} else {
		g.state = consts.StateRoundOver
	}
}

func (g *Game) RoundWinner() string {
	return g.roundWinner
}

// Winner returns the game winner once state is GAME_OVER: among players who
// finished the last phase, the one with the lowest cumulative score.
func (g *Game) Winner() *Player {
	if g.state != consts.StateGameOver {
		return nil
	}
	last := len(g.phases) - 1
	var best *Player
	for _, p := range g.players {
		if p.PhaseIndex != last || !p.LaidDown {
			continue
		}
		if best == nil || p.Score < best.Score {
			best = p
		}
	}
	return best
}
