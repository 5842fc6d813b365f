package socket

import (
	"fmt"
	"strconv"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/gomodule/redigo/redis"
)

// gameState is the full snapshot broadcast after every action. Clients render
// from this instead of replaying events.
type gameState struct {
	Players []models.PlayerDto `json:"players"`
	Squares []models.SquareDto `json:"squares"`
	Current int                `json:"current"`
	Turn    string             `json:"turn"`
}

func playerDtos(engine *game.Engine) []models.PlayerDto {
	players := engine.Players()
	dtos := make([]models.PlayerDto, 0, len(players))
	for _, p := range players {
		owned := p.Properties()
		indices := make([]int, 0, len(owned))
		for _, sq := range owned {
			indices = append(indices, sq.Index)
		}
		dtos = append(dtos, models.PlayerDto{
			Username:   p.Name,
			Balance:    p.Money(),
			Pos:        p.Position(),
			Color:      p.Color,
			Properties: indices,
			Jail:       p.InJail(),
			Alive:      p.Alive(),
		})
	}
	return dtos
}

func squareDtos(engine *game.Engine) []models.SquareDto {
	board := engine.Board()
	dtos := make([]models.SquareDto, 0, board.Len())
	for i := 0; i < board.Len(); i++ {
		sq := board.SquareAt(i)
		owner := ""
		if sq.HasOwner() {
			owner = sq.Owner().Id
		}
		dtos = append(dtos, models.SquareDto{
			Index:  sq.Index,
			Name:   sq.Name,
			Type:   sq.Kind.String(),
			Owner:  owner,
			Houses: sq.Houses(),
			Hotel:  sq.HasHotel(),
		})
	}
	return dtos
}

func snapshot(r *room) (gameState, error) {
	engine, err := r.game.Engine()
	if err != nil {
		return gameState{}, err
	}
	idx := engine.CurrentPlayerIndex()
	turn := ""
	if idx >= 0 && idx < len(r.seats) {
		turn = r.seats[idx]
	}
	return gameState{
		Players: playerDtos(engine),
		Squares: squareDtos(engine),
		Current: idx,
		Turn:    turn,
	}, nil
}

// mirrorState writes the per-player hashes and the whose-turn key to redis
// under the game.user hash scheme. Spectator endpoints read these without
// ever touching the engine.
func mirrorState(game_id string, r *room, conn *redis.Conn) {
	engine, err := r.game.Engine()
	if err != nil {
		return
	}
	for i, p := range engine.Players() {
		key := fmt.Sprintf("%s.%s", game_id, r.seats[i])
		cache.HSET(key, "bal", p.Money(), conn)
		cache.HSET(key, "pos", p.Position(), conn)
		cache.HSET(key, "jail", strconv.FormatBool(p.InJail()), conn)
		cache.HSET(key, "alive", strconv.FormatBool(p.Alive()), conn)
	}
	idx := engine.CurrentPlayerIndex()
	if idx >= 0 && idx < len(r.seats) {
		cache.Set(game_id, r.seats[idx], conn)
	}
}

func clearMirror(game_id string, r *room, conn *redis.Conn) {
	for _, user_id := range r.seats {
		cache.Del(fmt.Sprintf("%s.%s", game_id, user_id), conn)
	}
	cache.Del(game_id, conn)
}
