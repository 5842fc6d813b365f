package models

// SquareDef is one parsed board entry from board.json. Kind-specific columns
// stay zero for the kinds that do not use them.
type SquareDef struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Rents      []int  `json:"rents"`
	BuildCost  int    `json:"buildcost"`
	Multiplier int    `json:"multiplier"`
	Value      int    `json:"value"`
}

// CardDef is one parsed deck entry from deck.json.
type CardDef struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	Value int    `json:"value"`
}
