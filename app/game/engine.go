package game

import "errors"

var (
	ErrNilBoard        = errors.New("engine needs a board")
	ErrNilDeck         = errors.New("engine needs a deck")
	ErrNilEconomy      = errors.New("engine needs an economy")
	ErrNoPlayers       = errors.New("engine needs at least one player")
	ErrBadStartIndex   = errors.New("start index out of range")
	ErrBadPlayerIndex  = errors.New("player index out of range")
	ErrBadDiceValue    = errors.New("dice values must be between 1 and 6")
	ErrIndexOutOfRange = errors.New("board index out of range")
	ErrNotYourProperty = errors.New("square is not owned by the current player")
)

// Buy/build rejection reasons surfaced to the caller. These are expected
// outcomes, not faults.
const (
	ReasonNotOwnable        = "this square cannot be purchased"
	ReasonAlreadyOwned      = "property already has an owner"
	ReasonInsufficientFunds = "insufficient funds"
	ReasonNotAStreet        = "this square cannot be built on"
	ReasonNotStreetOwner    = "you do not own this street"
	ReasonHotelCapped       = "street already has a hotel"
	ReasonAlreadyBuilt      = "you already built this turn"
)

// turnState is the transient per-turn state. built and the roll guard reset
// at the turn boundary; the mocked roll is single-use and cleared the moment
// it is consumed.
type turnState struct {
	lastRoll    *DiceRoll
	lastRoller  int
	lastCard    int
	lastOwnable string
	built       bool
	mock        *DiceRoll
	buyReason   string
	buildReason string
}

// Engine orchestrates one full turn: dice, jail rule, movement, landing
// effect, optional buy/build, end-turn rotation.
type Engine struct {
	board   *Board
	players []*Player
	deck    *Deck
	economy *Economy

	current int
	turn    turnState
}

func NewEngine(board *Board, players []*Player, deck *Deck, economy *Economy, startIndex int) (*Engine, error) {
	if board == nil {
		return nil, ErrNilBoard
	}
	if deck == nil {
		return nil, ErrNilDeck
	}
	if economy == nil {
		return nil, ErrNilEconomy
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if startIndex < 0 || startIndex >= len(players) {
		return nil, ErrBadStartIndex
	}
	return &Engine{
		board:   board,
		players: players,
		deck:    deck,
		economy: economy,
		current: startIndex,
		turn:    turnState{lastRoller: -1, lastCard: -1},
	}, nil
}

// RollAllowed reports whether the current player may roll: once per turn,
// guarded by the index of whoever rolled last.
func (e *Engine) RollAllowed() bool {
	return e.turn.lastRoller != e.current
}

// RollAndResolve runs the non-interactive part of a turn: roll the dice,
// apply the jail rule, move, and resolve the landing square. Rolling twice
// without an intervening end-turn is a silent no-op.
func (e *Engine) RollAndResolve() error {
	if !e.RollAllowed() {
		return nil
	}
	p := e.currentPlayer()
	e.turn.lastRoller = e.current
	e.turn.lastCard = -1
	e.turn.lastOwnable = ""

	roll := e.rollDice()
	e.turn.lastRoll = &roll

	e.applyJailRules(p, roll)
	if p.InJail() {
		return nil
	}

	pos, err := e.board.NextPosition(p.Position(), roll.Sum)
	if err != nil {
		return err
	}
	p.moveTo(pos)

	return e.resolveLanding(p)
}

// rollDice consumes the single-use mocked pair if one is set, otherwise
// produces a random roll.
func (e *Engine) rollDice() DiceRoll {
	if e.turn.mock != nil {
		roll := *e.turn.mock
		e.turn.mock = nil
		return roll
	}
	return NewDiceRoll()
}

// applyJailRules releases a jailed player on a double, or by spending a
// get-out-of-jail card (which returns to the deck bottom). Neither means
// the player stays put for the turn.
func (e *Engine) applyJailRules(p *Player, roll DiceRoll) {
	if !p.InJail() {
		return
	}
	if roll.Double {
		p.setInJail(false)
		return
	}
	if p.consumeJailCard() {
		p.setInJail(false)
		e.deck.ReturnJailCardToBottom()
	}
}

// resolveLanding dispatches the landing effect of the square the player is
// standing on.
func (e *Engine) resolveLanding(p *Player) error {
	sq := e.board.SquareAt(p.Position())

	if sq.Ownable() {
		e.turn.lastOwnable = sq.Name
	} else {
		e.turn.lastOwnable = ""
	}

	switch sq.Kind {
	case SquareStart:
		return e.economy.ApplyIncome(p, sq.Bonus)
	case SquareMoney:
		if sq.Amount >= 0 {
			return e.economy.ApplyIncome(p, sq.Amount)
		}
		return e.economy.ApplyPayment(p, -sq.Amount)
	case SquareChance:
		return e.drawAndApplyCard(p)
	case SquareGoToJail:
		e.sendToJail(p)
		return nil
	case SquareStreet, SquareCompany:
		return e.economy.ChargeRent(p, sq, e.lastRollValue())
	}
	// jail visit, free parking: no effect
	return nil
}

// drawAndApplyCard draws from the deck and applies the card's effect. A MOVE
// card teleports to its absolute index and resolves that square, except that
// a chance destination does not draw again.
func (e *Engine) drawAndApplyCard(p *Player) error {
	card, ok := e.deck.Draw()
	if !ok {
		return nil
	}
	e.turn.lastCard = card.Index

	switch card.Kind {
	case CardPayBank:
		return e.economy.ApplyPayment(p, card.Value)
	case CardReceiveBank:
		return e.economy.ApplyIncome(p, card.Value)
	case CardMove:
		pos, err := e.board.NextPosition(0, card.Value)
		if err != nil {
			return err
		}
		p.moveTo(pos)
		if e.board.SquareAt(pos).Kind == SquareChance {
			return nil
		}
		return e.resolveLanding(p)
	case CardGetOutOfJail:
		p.grantJailCard()
	}
	return nil
}

func (e *Engine) sendToJail(p *Player) {
	p.setInJail(true)
	p.moveTo(e.board.JailIndex())
}

// ChooseBuy attempts to purchase the square the current player stands on.
// On rejection the reason is retrievable via BuyBlockedReason.
func (e *Engine) ChooseBuy() bool {
	p := e.currentPlayer()
	sq := e.board.SquareAt(p.Position())

	switch {
	case !sq.Ownable():
		e.turn.buyReason = ReasonNotOwnable
	case sq.HasOwner():
		e.turn.buyReason = ReasonAlreadyOwned
	case !p.CanAfford(sq.Price):
		e.turn.buyReason = ReasonInsufficientFunds
	default:
		e.turn.buyReason = ""
		return e.economy.AttemptBuy(p, sq)
	}
	return false
}

func (e *Engine) BuyBlockedReason() string { return e.turn.buyReason }

// ChooseBuild attempts one construction level on the street the current
// player stands on. Allowed once per turn.
func (e *Engine) ChooseBuild() bool {
	p := e.currentPlayer()
	sq := e.board.SquareAt(p.Position())

	switch {
	case e.turn.built:
		e.turn.buildReason = ReasonAlreadyBuilt
	case sq.Kind != SquareStreet:
		e.turn.buildReason = ReasonNotAStreet
	case !sq.HasOwner() || sq.Owner() != p:
		e.turn.buildReason = ReasonNotStreetOwner
	case !sq.CanBuild():
		e.turn.buildReason = ReasonHotelCapped
	case !p.CanAfford(sq.BuildCost):
		e.turn.buildReason = ReasonInsufficientFunds
	default:
		e.turn.buildReason = ""
		if e.economy.AttemptBuild(p, sq) {
			e.turn.built = true
			return true
		}
		return false
	}
	return false
}

func (e *Engine) BuildBlockedReason() string { return e.turn.buildReason }

// SellAt sells the current player's property at the given board index back
// to the bank at the buy-back rate. Always available, solvency or not.
func (e *Engine) SellAt(boardIndex int) error {
	if !e.board.Contains(boardIndex) {
		return ErrIndexOutOfRange
	}
	sq := e.board.SquareAt(boardIndex)
	p := e.currentPlayer()
	if !sq.Ownable() || sq.Owner() != p {
		return ErrNotYourProperty
	}
	_, err := e.economy.BuyBack(p, sq)
	return err
}

// EndTurn rotates to the next living player and resets the per-turn state.
// Bankrupt seats are skipped; if no seat is alive the index stays put rather
// than spinning forever.
func (e *Engine) EndTurn() int {
	n := len(e.players)
	for i := 0; i < n; i++ {
		e.current = (e.current + 1) % n
		if e.players[e.current].Alive() {
			break
		}
	}
	e.turn.built = false
	e.turn.lastRoll = nil
	return e.current
}

// SetMockedDice fixes the next roll to the given faces. Single-use: the pair
// is cleared as soon as one roll consumes it.
func (e *Engine) SetMockedDice(d1 int, d2 int) error {
	if d1 < 1 || d1 > 6 || d2 < 1 || d2 > 6 {
		return ErrBadDiceValue
	}
	roll := FixedRoll(d1, d2)
	e.turn.mock = &roll
	return nil
}

func (e *Engine) ClearMockedDice() { e.turn.mock = nil }

// ---- read-only queries ----

func (e *Engine) CurrentPlayerIndex() int { return e.current }

func (e *Engine) CurrentPlayer() *Player { return e.currentPlayer() }

func (e *Engine) PlayerCount() int { return len(e.players) }

func (e *Engine) Player(index int) (*Player, error) {
	if index < 0 || index >= len(e.players) {
		return nil, ErrBadPlayerIndex
	}
	return e.players[index], nil
}

func (e *Engine) Players() []*Player {
	out := make([]*Player, len(e.players))
	copy(out, e.players)
	return out
}

// LastRoll returns the roll of the turn in progress, if any.
func (e *Engine) LastRoll() (DiceRoll, bool) {
	if e.turn.lastRoll == nil {
		return DiceRoll{}, false
	}
	return *e.turn.lastRoll, true
}

// LastDrawnCardIndex is the index of the most recently drawn card, or -1.
func (e *Engine) LastDrawnCardIndex() int { return e.turn.lastCard }

// LastLandedOwnable is the name of the ownable square most recently landed
// on, or empty.
func (e *Engine) LastLandedOwnable() string { return e.turn.lastOwnable }

func (e *Engine) Board() *Board { return e.board }

func (e *Engine) Economy() *Economy { return e.economy }

func (e *Engine) currentPlayer() *Player { return e.players[e.current] }

func (e *Engine) lastRollValue() DiceRoll {
	if e.turn.lastRoll == nil {
		return DiceRoll{}
	}
	return *e.turn.lastRoll
}
