package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
)

var ErrUnknownSquareType = errors.New("unknown square type")
var ErrUnknownCardType = errors.New("unknown card type")

func loadJSON(path string, out interface{}) error {
	jsonFile, err := os.Open(path)
	if err != nil {
		return err
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return err
	}
	return json.Unmarshal(byteValue, out)
}

func LoadSquareDefs(path string) ([]models.SquareDef, error) {
	var defs []models.SquareDef
	if err := loadJSON(path, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func LoadCardDefs(path string) ([]models.CardDef, error) {
	var defs []models.CardDef
	if err := loadJSON(path, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// BuildSquares turns parsed definitions into engine squares. Streets with no
// explicit build cost build at their purchase price.
func BuildSquares(defs []models.SquareDef) ([]*game.Square, error) {
	squares := make([]*game.Square, 0, len(defs))
	for _, def := range defs {
		switch def.Type {
		case "start":
			squares = append(squares, game.NewStartSquare(def.Index, def.Name, def.Value))
		case "money":
			squares = append(squares, game.NewMoneySquare(def.Index, def.Name, def.Value))
		case "chance":
			squares = append(squares, game.NewChanceSquare(def.Index, def.Name))
		case "jail":
			squares = append(squares, game.NewJailSquare(def.Index, def.Name))
		case "gotojail":
			squares = append(squares, game.NewGoToJailSquare(def.Index, def.Name))
		case "parking":
			squares = append(squares, game.NewParkingSquare(def.Index, def.Name))
		case "street":
			buildCost := def.BuildCost
			if buildCost == 0 {
				buildCost = def.Price
			}
			sq, err := game.NewStreetSquare(def.Index, def.Name, def.Price, def.Rents, buildCost)
			if err != nil {
				return nil, fmt.Errorf("square %d (%s): %w", def.Index, def.Name, err)
			}
			squares = append(squares, sq)
		case "company":
			sq, err := game.NewCompanySquare(def.Index, def.Name, def.Price, def.Multiplier)
			if err != nil {
				return nil, fmt.Errorf("square %d (%s): %w", def.Index, def.Name, err)
			}
			squares = append(squares, sq)
		default:
			return nil, fmt.Errorf("square %d (%s): %w: %q", def.Index, def.Name, ErrUnknownSquareType, def.Type)
		}
	}
	return squares, nil
}

// BuildCards turns parsed definitions into engine cards.
func BuildCards(defs []models.CardDef) ([]game.Card, error) {
	cards := make([]game.Card, 0, len(defs))
	for _, def := range defs {
		var kind game.CardKind
		switch def.Type {
		case "pay_bank":
			kind = game.CardPayBank
		case "receive_bank":
			kind = game.CardReceiveBank
		case "move":
			kind = game.CardMove
		case "get_out_of_jail":
			kind = game.CardGetOutOfJail
		default:
			return nil, fmt.Errorf("card %d: %w: %q", def.Index, ErrUnknownCardType, def.Type)
		}
		cards = append(cards, game.Card{Index: def.Index, Kind: kind, Value: def.Value})
	}
	return cards, nil
}

// LoadBoard reads a board definition file and builds the squares.
func LoadBoard(path string) ([]*game.Square, error) {
	defs, err := LoadSquareDefs(path)
	if err != nil {
		return nil, err
	}
	return BuildSquares(defs)
}

// LoadDeck reads a deck definition file and builds the cards.
func LoadDeck(path string) ([]game.Card, error) {
	defs, err := LoadCardDefs(path)
	if err != nil {
		return nil, err
	}
	return BuildCards(defs)
}

// GetByPos finds a definition by board position. O(N), the boards are tiny.
func GetByPos(pos int, defs []models.SquareDef) (models.SquareDef, error) {
	for _, def := range defs {
		if def.Index == pos {
			return def, nil
		}
	}
	return models.SquareDef{}, errors.New("not found")
}
