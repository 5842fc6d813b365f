package game

import (
	"errors"
	"math/rand"
)

var ErrEmptyDeck = errors.New("deck needs at least one card")

type CardKind int

const (
	CardPayBank CardKind = iota
	CardReceiveBank
	CardMove
	CardGetOutOfJail
)

// Card is an effect card: a kind plus one integer payload interpreted per
// kind (amount for pay/receive, board index for move, unused for jail-free).
type Card struct {
	Index int
	Kind  CardKind
	Value int
}

// Deck is a rotating queue: draws come off the front and go back on the
// bottom, so every card is eventually redrawable. Get-out-of-jail cards are
// the exception: they are held by a player until spent, then returned to the
// bottom.
type Deck struct {
	cards    []Card
	heldJail []Card
}

func NewDeck(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d, nil
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Len() int { return len(d.cards) }

// Draw takes the top card. Ordinary cards rotate to the bottom immediately;
// jail-free cards leave the deck until returned. ok is false when every card
// is currently held out of rotation.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	if c.Kind == CardGetOutOfJail {
		d.heldJail = append(d.heldJail, c)
	} else {
		d.cards = append(d.cards, c)
	}
	return c, true
}

// ReturnJailCardToBottom reinserts a spent get-out-of-jail card. No-op when
// none is held.
func (d *Deck) ReturnJailCardToBottom() {
	if len(d.heldJail) == 0 {
		return
	}
	c := d.heldJail[0]
	d.heldJail = d.heldJail[1:]
	d.cards = append(d.cards, c)
}
