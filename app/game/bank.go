package game

import "errors"

var (
	ErrInvalidParties        = errors.New("invalid transfer parties")
	ErrNegativeAmount        = errors.New("transfer amount must be >= 0")
	ErrInsufficientBankFunds = errors.New("bank lacks funds for the operation")
	ErrNegativeBankCash      = errors.New("initial bank cash must be >= 0")
)

// Party is one end of a transfer: either the bank or a player. The zero value
// means the bank, so the null-pointer convention never leaks past this type.
type Party struct {
	player *Player
}

func BankParty() Party { return Party{} }
func PlayerParty(p *Player) Party { return Party{player: p} }
func (pt Party) IsBank() bool { return pt.player == nil }
func (pt Party) Player() *Player { return pt.player }

// Bank is a pure ledger: it owns the bank cash and executes transfers. It
// performs no solvency checks on players; that is the economy's job.
type Bank struct {
	cash int
}

func NewBank(initialCash int) (*Bank, error) {
	if initialCash < 0 {
		return nil, ErrNegativeBankCash
	}
	return &Bank{cash: initialCash}, nil
}

func (b *Bank) Cash() int { return b.cash }

// Transfer moves amount between the two parties. At most one end may be the
// bank. A bank payout that the bank cannot cover is an internal-consistency
// fault and fails without touching any balance. Player balances may go
// negative here; callers guarantee liquidity beforehand.
func (b *Bank) Transfer(from Party, to Party, amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if from.IsBank() && to.IsBank() {
		return ErrInvalidParties
	}

	if from.IsBank() { // BANK -> player
		if b.cash < amount {
			return ErrInsufficientBankFunds
		}
		b.cash -= amount
		to.player.credit(amount)
		return nil
	}

	if to.IsBank() { // player -> BANK
		from.player.debit(amount)
		b.cash += amount
		return nil
	}

	// player -> player, bank cash unaffected
	from.player.debit(amount)
	to.player.credit(amount)
	return nil
}
