package game

import "errors"

var (
	ErrBadRentTable  = errors.New("rent table must have 5 or 6 values")
	ErrBadMultiplier = errors.New("company multiplier must be positive")
	ErrHotelCapped   = errors.New("street already has a hotel")
)

type SquareKind int

const (
	SquareStart SquareKind = iota
	SquareMoney
	SquareChance
	SquareJail
	SquareGoToJail
	SquareParking
	SquareStreet
	SquareCompany
)

func (k SquareKind) String() string {
	switch k {
	case SquareStart:
		return "start"
	case SquareMoney:
		return "money"
	case SquareChance:
		return "chance"
	case SquareJail:
		return "jail"
	case SquareGoToJail:
		return "gotojail"
	case SquareParking:
		return "parking"
	case SquareStreet:
		return "street"
	case SquareCompany:
		return "company"
	}
	return "unknown"
}

// Square is one board position. Kind selects which of the kind-specific
// fields mean anything; ownership/construction state only applies to the
// street and company kinds.
type Square struct {
	Index int
	Name  string
	Kind  SquareKind

	Bonus      int    // start: credited on landing
	Amount     int    // money: fixed delta, may be negative
	Price      int    // street/company
	BuildCost  int    // street: fixed cost per construction level
	RentTable  [6]int // street: rent by level (0 houses .. hotel)
	Multiplier int    // company: rent = multiplier * dice sum

	owner  *Player
	houses int
	hotel  bool
}

func NewStartSquare(index int, name string, bonus int) *Square {
	if bonus < 0 {
		bonus = 0
	}
	return &Square{Index: index, Name: name, Kind: SquareStart, Bonus: bonus}
}

func NewMoneySquare(index int, name string, amount int) *Square {
	return &Square{Index: index, Name: name, Kind: SquareMoney, Amount: amount}
}

func NewChanceSquare(index int, name string) *Square {
	return &Square{Index: index, Name: name, Kind: SquareChance}
}

func NewJailSquare(index int, name string) *Square {
	return &Square{Index: index, Name: name, Kind: SquareJail}
}

func NewGoToJailSquare(index int, name string) *Square {
	return &Square{Index: index, Name: name, Kind: SquareGoToJail}
}

func NewParkingSquare(index int, name string) *Square {
	return &Square{Index: index, Name: name, Kind: SquareParking}
}

// NewStreetSquare accepts a 5-entry rent table (levels 1..hotel, zero-rent
// baseline implied) or a full 6-entry one.
func NewStreetSquare(index int, name string, price int, rents []int, buildCost int) (*Square, error) {
	var table [6]int
	switch len(rents) {
	case 5:
		copy(table[1:], rents)
	case 6:
		copy(table[:], rents)
	default:
		return nil, ErrBadRentTable
	}
	if buildCost < 0 {
		buildCost = 0
	}
	return &Square{
		Index:     index,
		Name:      name,
		Kind:      SquareStreet,
		Price:     price,
		BuildCost: buildCost,
		RentTable: table,
	}, nil
}

func NewCompanySquare(index int, name string, price int, multiplier int) (*Square, error) {
	if multiplier <= 0 {
		return nil, ErrBadMultiplier
	}
	return &Square{
		Index:      index,
		Name:       name,
		Kind:       SquareCompany,
		Price:      price,
		Multiplier: multiplier,
	}, nil
}

func (s *Square) Ownable() bool {
	return s.Kind == SquareStreet || s.Kind == SquareCompany
}

func (s *Square) HasOwner() bool { return s.owner != nil }
func (s *Square) Owner() *Player { return s.owner }
func (s *Square) Houses() int { return s.houses }
func (s *Square) HasHotel() bool { return s.hotel }

func (s *Square) setOwner(p *Player) { s.owner = p }

// CanBuild reports whether one more construction level fits. A hotel is the
// maximum, so hotel == no more building.
func (s *Square) CanBuild() bool {
	return s.Kind == SquareStreet && !s.hotel
}

// buildOne adds a house, or converts four houses into a hotel. Houses stay
// recorded at 4 alongside the hotel flag.
func (s *Square) buildOne() error {
	if !s.CanBuild() {
		return ErrHotelCapped
	}
	if s.houses < 4 {
		s.houses++
	} else {
		s.hotel = true
	}
	return nil
}

// builtLevels is how many construction payments the current owner has made.
func (s *Square) builtLevels() int {
	if s.hotel {
		return 5
	}
	return s.houses
}

// TotalInvestment is what the current owner has sunk into the square: the
// purchase price plus every construction level paid. Companies never build.
func (s *Square) TotalInvestment() int {
	if s.owner == nil {
		return 0
	}
	if s.Kind == SquareCompany {
		return s.Price
	}
	return s.Price + s.builtLevels()*s.BuildCost
}

// Rent computes what a visitor owes for landing here given the roll that
// brought them. Unowned squares rent for nothing.
func (s *Square) Rent(roll DiceRoll) int {
	if s.owner == nil {
		return 0
	}
	switch s.Kind {
	case SquareStreet:
		level := s.houses
		if s.hotel {
			level = 5
		}
		return s.RentTable[level]
	case SquareCompany:
		return s.Multiplier * roll.Sum
	}
	return 0
}

// clearOwnership removes target as owner and resets construction. No-op if
// someone else owns the square.
func (s *Square) clearOwnership(target *Player) {
	if s.owner != target {
		return
	}
	s.owner = nil
	s.houses = 0
	s.hotel = false
}
