package network

import (
	"fmt"
	"sync"
	"time"

	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/game"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
	"github.com/ratel-online/core/log"
)

// Config describes one hosted session.
type Config struct {
	TurnSeconds int
	BotDelay    time.Duration
	RoundDelay  time.Duration
	Seed        int64 // 0 => time-based
	Bots        int   // bot seats filled before anyone joins
	Theme       string
	Provider    phase.Provider
}

func (c Config) validate() error {
	if c.TurnSeconds < 0 {
		return fmt.Errorf("TurnSeconds must be >= 0")
	}
	if c.BotDelay < 0 || c.RoundDelay < 0 {
		return fmt.Errorf("delays must be >= 0")
	}
	if c.Bots < 0 || c.Bots >= consts.MaxPlayers {
		return fmt.Errorf("Bots must leave at least one open seat")
	}
	return nil
}

type command struct {
	action  *protocol.Action
	join    *joinCmd
	leave   string
	botTurn string
	next    bool
}

type joinCmd struct {
	sess *session
	done chan error
}

// Host owns the canonical game state. All mutation funnels through one
// command channel consumed by Run, so actions apply strictly in arrival order
// and never interleave. Mirrors read the latest published snapshot.
type Host struct {
	cfg   Config
	game  *game.Game
	cmds  chan command
	owner string
	done  chan struct{}

	botPending   string
	roundPending bool

	mu   sync.RWMutex
	snap game.Snapshot
}

func NewHost(cfg Config) (*Host, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.BotDelay == 0 {
		cfg.BotDelay = consts.BotDelay
	}
	if cfg.RoundDelay == 0 {
		cfg.RoundDelay = consts.RoundOverDelay
	}
	phases := phase.Resolve(cfg.Provider, cfg.Theme)
	h := &Host{
		cfg:  cfg,
		game: game.New(phases, cfg.Seed, cfg.TurnSeconds),
		cmds: make(chan command, 64),
		done: make(chan struct{}),
	}
	for i := 1; i <= cfg.Bots; i++ {
		if err := h.game.AddPlayer(fmt.Sprintf("bot-%d", i), fmt.Sprintf("Bot %d", i), true); err != nil {
			return nil, err
		}
	}
	h.snap = h.game.Snapshot()
	return h, nil
}

// Run consumes commands until Close. The one-second ticker drives the
// host-owned turn countdown that mirrors passively display.
func (h *Host) Run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case cmd := <-h.cmds:
			h.handle(cmd)
		case <-ticker.C:
			h.tick()
		case <-h.done:
			return
		}
	}
}

func (h *Host) Close() {
	close(h.done)
}

// tick advances the countdown and publishes. A blocked timeout auto-play, a
// stalemated draw above all, still has to reach the participants.
func (h *Host) tick() {
	var id string
	if cur := h.game.Current(); cur != nil {
		id = cur.ID
	}
	if err := h.game.Tick(); err != nil {
		log.Infof("turn auto-play for %s blocked: %v\n", id, err)
		h.notify(id, err)
	}
	h.afterApply()
}

// Snapshot returns the latest published state.
func (h *Host) Snapshot() game.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Submit queues one intent. Fire-and-forget: a rejected action produces no
// reply beyond the next broadcast reflecting no change.
func (h *Host) Submit(action protocol.Action) {
	h.enqueue(command{action: &action})
}

func (h *Host) enqueue(cmd command) {
	select {
	case h.cmds <- cmd:
	case <-h.done:
	}
}

func (h *Host) handle(cmd command) {
	switch {
	case cmd.join != nil:
		cmd.join.done <- h.join(cmd.join.sess)
	case cmd.leave != "":
		h.part(cmd.leave)
	case cmd.action != nil:
		h.apply(*cmd.action)
	case cmd.botTurn != "":
		h.botPending = ""
		if err := h.game.PlayBot(cmd.botTurn); err != nil {
			h.notify(cmd.botTurn, err)
		}
	case cmd.next:
		h.roundPending = false
		if err := h.game.StartRound(); err != nil {
			log.Error(err)
		}
	}
	h.afterApply()
}

func (h *Host) join(sess *session) error {
	if err := h.game.AddPlayer(sess.id, sess.name, false); err != nil {
		return err
	}
	registerSession(sess)
	if h.owner == "" {
		h.owner = sess.id
	}
	log.Infof("%s joined as %s\n", sess.name, sess.id)
	return nil
}

func (h *Host) part(id string) {
	sess := getSession(id)
	if sess == nil {
		return
	}
	unregisterSession(id)
	close(sess.send)
	h.game.RemovePlayer(id)
	log.Infof("%s left\n", id)
}

// apply executes one intent against the canonical state. Illegal actions are
// dropped; the sender gets a transient notice, everyone else sees nothing.
func (h *Host) apply(a protocol.Action) {
	var err error
	switch a.Type {
	case protocol.ActionStart:
		if a.PlayerID != h.owner {
			err = consts.ErrorsNotOwner
		} else {
			err = h.game.Start()
		}
	case protocol.ActionDraw:
		err = h.game.Draw(a.PlayerID, a.FromDiscard)
	case protocol.ActionDiscard:
		err = h.game.Discard(a.PlayerID, a.CardID)
	case protocol.ActionMeld:
		err = h.game.Meld(a.PlayerID, a.CardIDs)
	case protocol.ActionHit:
		err = h.game.Hit(a.PlayerID, a.CardID, a.MeldID)
	case protocol.ActionReorder:
		err = h.game.Reorder(a.PlayerID, a.FromIndex, a.ToIndex)
	}
	if err != nil {
		log.Infof("action %s from %s dropped: %v\n", a.Type, a.PlayerID, err)
		h.notify(a.PlayerID, err)
	}
}

func (h *Host) notify(playerID string, err error) {
	code := 0
	if e, ok := err.(consts.Error); ok {
		code = e.Code
	}
	msg, encErr := protocol.EncodeServer(protocol.NoticeMessage(code, err.Error()))
	if encErr != nil {
		log.Error(encErr)
		return
	}
	if err == consts.ErrorsStalemate {
		// Everyone needs to see that the round is blocked.
		broadcast(msg)
		return
	}
	if s := getSession(playerID); s != nil {
		s.write(msg)
	}
}

// afterApply publishes the new canonical snapshot and schedules the timers
// the new state calls for: a bot's turn delay, or the pause before the next
// round deals.
func (h *Host) afterApply() {
	h.publish()
	if cur := h.game.Current(); cur != nil && cur.Bot && h.game.TurnPhase() == consts.PhaseDraw {
		if h.botPending != cur.ID {
			h.botPending = cur.ID
			id := cur.ID
			time.AfterFunc(h.cfg.BotDelay, func() {
				h.enqueue(command{botTurn: id})
			})
		}
	} else {
		h.botPending = ""
	}
	if h.game.State() == consts.StateRoundOver && !h.roundPending {
		h.roundPending = true
		time.AfterFunc(h.cfg.RoundDelay, func() {
			h.enqueue(command{next: true})
		})
	}
}

func (h *Host) publish() {
	snap := h.game.Snapshot()
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
	msg, err := protocol.EncodeServer(protocol.StateMessage(snap))
	if err != nil {
		log.Error(err)
		return
	}
	broadcast(msg)
}
