package models

type Player struct {
	User_id  string
	Game_id  string
	Username string
	Active   string
}

// PlayerDto is the per-seat snapshot broadcast to clients.
type PlayerDto struct {
	Username   string `json:"username"`
	Balance    int    `json:"balance"`
	Pos        int    `json:"pos"`
	Color      string `json:"color"`
	Properties []int  `json:"properties"`
	Jail       bool   `json:"jail"`
	Alive      bool   `json:"alive"`
}

// SquareDto is the per-square snapshot broadcast to clients.
type SquareDto struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Owner  string `json:"owner"`
	Houses int    `json:"houses"`
	Hotel  bool   `json:"hotel"`
}
