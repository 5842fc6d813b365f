package game

// Player holds the per-seat mutable state. Cash only moves through the Bank;
// position, jail and holdings only change under engine/economy orchestration.
type Player struct {
	Id    string
	Name  string
	Color string

	money      int
	position   int
	inJail     bool
	jailCards  int
	properties []*Square
	alive      bool
}

func NewPlayer(id string, name string, color string, money int) *Player {
	return &Player{
		Id:    id,
		Name:  name,
		Color: color,
		money: money,
		alive: true,
	}
}

func (p *Player) Money() int { return p.money }
func (p *Player) Position() int { return p.position }
func (p *Player) InJail() bool { return p.inJail }
func (p *Player) Alive() bool { return p.alive }
func (p *Player) JailCards() int { return p.jailCards }

func (p *Player) CanAfford(amount int) bool {
	return p.money >= amount
}

// Properties returns the holdings in acquisition order. The slice is a copy;
// the liquidation loop mutates the real one while iterating this.
func (p *Player) Properties() []*Square {
	out := make([]*Square, len(p.properties))
	copy(out, p.properties)
	return out
}

func (p *Player) Owns(sq *Square) bool {
	for _, held := range p.properties {
		if held == sq {
			return true
		}
	}
	return false
}

func (p *Player) credit(amount int) { p.money += amount }
func (p *Player) debit(amount int) { p.money -= amount }

func (p *Player) moveTo(pos int) { p.position = pos }
func (p *Player) setInJail(in bool) { p.inJail = in }

func (p *Player) grantJailCard() { p.jailCards++ }

// consumeJailCard spends one get-out-of-jail card if the player holds any.
func (p *Player) consumeJailCard() bool {
	if p.jailCards == 0 {
		return false
	}
	p.jailCards--
	return true
}

func (p *Player) addProperty(sq *Square) {
	p.properties = append(p.properties, sq)
}

func (p *Player) removeProperty(sq *Square) {
	for i, held := range p.properties {
		if held == sq {
			p.properties = append(p.properties[:i], p.properties[i+1:]...)
			return
		}
	}
}

// setBankrupt marks the seat inert. It stays in the player list so indices
// remain stable; turn rotation skips it.
func (p *Player) setBankrupt() { p.alive = false }
