package game

import (
	"errors"
	"math"
)

// Fraction of invested value the bank pays when buying a property back.
const bankBuybackRate = 0.90

var ErrNilBank = errors.New("economy needs a bank")

// Economy layers the business rules over the Bank ledger: rent, purchases,
// construction, and the liquidate-before-bankruptcy path. Every money move
// with a rule attached goes through here.
type Economy struct {
	bank *Bank
}

func NewEconomy(bank *Bank) (*Economy, error) {
	if bank == nil {
		return nil, ErrNilBank
	}
	return &Economy{bank: bank}, nil
}

func (e *Economy) BankCash() int { return e.bank.Cash() }

// ChargeRent collects rent from visitor for the property's owner. Unowned or
// self-owned squares charge nothing. If liquidation cannot make the visitor
// liquid, the visitor goes bankrupt and the owner receives nothing.
func (e *Economy) ChargeRent(visitor *Player, property *Square, roll DiceRoll) error {
	if !property.HasOwner() {
		return nil
	}
	owner := property.Owner()
	if owner == visitor {
		return nil
	}

	rent := property.Rent(roll)
	if rent <= 0 {
		return nil
	}

	ok, err := e.LiquidateOrBankruptIfNeeded(visitor, rent)
	if err != nil || !ok {
		return err
	}
	return e.bank.Transfer(PlayerParty(visitor), PlayerParty(owner), rent)
}

// AttemptBuy purchases the property from the bank for the player. Fails
// without touching state if the property is taken or the player cannot pay.
func (e *Economy) AttemptBuy(player *Player, property *Square) bool {
	if !property.Ownable() || property.HasOwner() {
		return false
	}
	if !player.CanAfford(property.Price) {
		return false
	}

	if err := e.bank.Transfer(PlayerParty(player), BankParty(), property.Price); err != nil {
		return false
	}
	property.setOwner(player)
	player.addProperty(property)
	return true
}

// AttemptBuild adds one construction level to a street the player owns.
func (e *Economy) AttemptBuild(player *Player, street *Square) bool {
	if !street.HasOwner() || street.Owner() != player {
		return false
	}
	if !street.CanBuild() {
		return false
	}
	if !player.CanAfford(street.BuildCost) {
		return false
	}

	if err := e.bank.Transfer(PlayerParty(player), BankParty(), street.BuildCost); err != nil {
		return false
	}
	street.buildOne()
	return true
}

// Transfer is a rule-checked player-to-player payment: the payer is made
// liquid first or goes bankrupt, in which case nothing is paid.
func (e *Economy) Transfer(from *Player, to *Player, amount int) error {
	if amount <= 0 {
		return nil
	}
	ok, err := e.LiquidateOrBankruptIfNeeded(from, amount)
	if err != nil || !ok {
		return err
	}
	return e.bank.Transfer(PlayerParty(from), PlayerParty(to), amount)
}

// ApplyPayment charges the player in favor of the bank, liquidating first.
func (e *Economy) ApplyPayment(player *Player, amount int) error {
	if amount <= 0 {
		return nil
	}
	ok, err := e.LiquidateOrBankruptIfNeeded(player, amount)
	if err != nil || !ok {
		return err
	}
	return e.bank.Transfer(PlayerParty(player), BankParty(), amount)
}

// ApplyIncome credits the player from the bank. No liquidity check needed.
func (e *Economy) ApplyIncome(player *Player, amount int) error {
	if amount <= 0 {
		return nil
	}
	return e.bank.Transfer(BankParty(), PlayerParty(player), amount)
}

// BuyBack sells one property back to the bank at the buy-back rate and
// returns the amount credited. Construction state is wiped with the title.
func (e *Economy) BuyBack(player *Player, property *Square) (int, error) {
	received := int(math.Floor(float64(property.TotalInvestment()) * bankBuybackRate))
	if err := e.bank.Transfer(BankParty(), PlayerParty(player), received); err != nil {
		return 0, err
	}
	player.removeProperty(property)
	property.clearOwnership(player)
	return received, nil
}

// LiquidateOrBankruptIfNeeded makes sure the player can cover required,
// selling holdings back to the bank in acquisition order until the shortfall
// is covered. If the full portfolio is not enough the player is declared
// bankrupt and false is returned; the triggering payment must not be made.
func (e *Economy) LiquidateOrBankruptIfNeeded(player *Player, required int) (bool, error) {
	if player.CanAfford(required) {
		return true, nil
	}

	missing := required - player.Money()
	for _, prop := range player.Properties() {
		received, err := e.BuyBack(player, prop)
		if err != nil {
			return false, err
		}
		missing -= received
		if missing <= 0 {
			return true, nil
		}
	}

	e.DeclareBankruptcy(player)
	return false, nil
}

// DeclareBankruptcy strips every holding (titles go back to the bank with no
// payment) and marks the player permanently inert.
func (e *Economy) DeclareBankruptcy(player *Player) {
	for _, prop := range player.Properties() {
		player.removeProperty(prop)
		prop.clearOwnership(player)
	}
	player.setBankrupt()
}
