package game

import "errors"

var (
	ErrAlreadyStarted = errors.New("game already started")
	ErrNotStarted     = errors.New("game has not been started")
	ErrPlayerCount    = errors.New("player count must be between 2 and 6")
)

// PlayerSpec is what the outside world supplies per seat at start time.
type PlayerSpec struct {
	Id    string
	Name  string
	Color string
}

// Game is the facade handed to the presentation layer: start-up plus guarded
// access to the engine. Commands before Start (or a second Start) are caller
// bugs and fail hard.
type Game struct {
	engine  *Engine
	started bool
}

func New() *Game { return &Game{} }

// Start boots the whole session: bank, economy, deck (shuffled once), board
// and players, then the engine. Board and deck arrive already parsed; the
// only structural check re-done here is that a jail square exists.
func (g *Game) Start(specs []PlayerSpec, squares []*Square, cards []Card, initialPlayerMoney int, initialBankCash int) error {
	if g.started {
		return ErrAlreadyStarted
	}
	if len(specs) < 2 || len(specs) > 6 {
		return ErrPlayerCount
	}

	bank, err := NewBank(initialBankCash)
	if err != nil {
		return err
	}
	economy, err := NewEconomy(bank)
	if err != nil {
		return err
	}

	deck, err := NewDeck(cards)
	if err != nil {
		return err
	}
	deck.Shuffle()

	board, err := NewBoard(squares)
	if err != nil {
		return err
	}

	players := make([]*Player, 0, len(specs))
	for _, spec := range specs {
		players = append(players, NewPlayer(spec.Id, spec.Name, spec.Color, initialPlayerMoney))
	}

	engine, err := NewEngine(board, players, deck, economy, 0)
	if err != nil {
		return err
	}

	g.engine = engine
	g.started = true
	return nil
}

func (g *Game) Started() bool { return g.started }

// Engine exposes the running engine, or ErrNotStarted before boot.
func (g *Game) Engine() (*Engine, error) {
	if !g.started {
		return nil, ErrNotStarted
	}
	return g.engine, nil
}

// Command passthroughs with the started guard.

func (g *Game) RollAndResolve() error {
	if !g.started {
		return ErrNotStarted
	}
	return g.engine.RollAndResolve()
}

func (g *Game) ChooseBuy() (bool, error) {
	if !g.started {
		return false, ErrNotStarted
	}
	return g.engine.ChooseBuy(), nil
}

func (g *Game) ChooseBuild() (bool, error) {
	if !g.started {
		return false, ErrNotStarted
	}
	return g.engine.ChooseBuild(), nil
}

func (g *Game) SellAt(boardIndex int) error {
	if !g.started {
		return ErrNotStarted
	}
	return g.engine.SellAt(boardIndex)
}

func (g *Game) EndTurn() (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}
	return g.engine.EndTurn(), nil
}
