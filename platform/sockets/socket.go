package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

var seatColors = []string{"red", "blue", "green", "yellow", "purple", "orange"}

func envOr(key string, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if val, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return val
	}
	return fallback
}

// broadcastState pushes the full snapshot to the room and mirrors it to redis.
// Callers hold r.mu.
func broadcastState(server *socketio.Server, game_id string, r *room, conn *redis.Conn) {
	state, err := snapshot(r)
	if err != nil {
		log.WithError(err).Error("snapshot failed")
		return
	}
	payload, err := json.Marshal(state)
	if err != nil {
		log.WithError(err).Error("snapshot marshal failed")
		return
	}
	server.BroadcastToRoom("/", game_id, "game-state", string(payload))
	mirrorState(game_id, r, conn)
}

func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	boardPath := envOr("BOARD_JSON", "platform/board/board.json")
	deckPath := envOr("DECK_JSON", "platform/board/deck.json")
	startBalance := envIntOr("START_BALANCE", 1500)
	bankCash := envIntOr("BANK_CASH", 100000)

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {

		var result map[string]string

		json.Unmarshal([]byte(jsonStr), &result)
		if id, ok := result["game_id"]; ok {
			if !queries.VerifyGame(id, db) {
				s.Emit("error-message", "Invalid game")
				s.Emit("failed")
				return
			}
			user_id, ok := result["user_id"]
			if !ok {
				s.Emit("error-message", "User not authenticated")
				s.Emit("failed")
				return
			}

			user, err := queries.GetUserData(user_id, db)
			if err != nil {
				s.Emit("error-message", "User retrieval failed")
				s.Emit("failed")
				return
			}
			err = queries.CreatePlayer(models.Player{
				Game_id:  id,
				User_id:  user_id,
				Username: user.Email,
			}, db)

			if err != nil {
				log.WithError(err).Error("failed creating player")
				s.Emit("error-message", "Failed creating player")
				s.Emit("failed")
				return
			}

			server.BroadcastToRoom("/", id, "player-join")
			s.Join(id)
			players := server.RoomLen("/", id)

			s.Emit("joined-game", strconv.Itoa(players))
			log.Infof("%s joined room %s", s.ID(), id)
		} else {
			log.Warn("game_id not passed")
		}
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		s.Leave(result["game_id"])
		go queries.DeletePlayer(result["user_id"], result["game_id"], db)
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, game_id string) {
		conn := pool.Get()
		defer conn.Close()

		if _, ok := getRoom(game_id); ok {
			s.Emit("error-message", "Game already started")
			return
		}

		players, err := queries.GetGamePlayers(game_id, db)
		if err != nil || len(players) < 2 {
			s.Emit("error-message", "Unable to start game")
			return
		}

		squares, err := board.LoadBoard(boardPath)
		if err != nil {
			log.WithError(err).Error("board load failed")
			s.Emit("error-message", "Unable to start game")
			return
		}
		cards, err := board.LoadDeck(deckPath)
		if err != nil {
			log.WithError(err).Error("deck load failed")
			s.Emit("error-message", "Unable to start game")
			return
		}

		specs := make([]game.PlayerSpec, 0, len(players))
		seats := make([]string, 0, len(players))
		for i, player := range players {
			specs = append(specs, game.PlayerSpec{
				Id:    player.User_id,
				Name:  player.Username,
				Color: seatColors[i%len(seatColors)],
			})
			seats = append(seats, player.User_id)
		}

		g := game.New()
		if err := g.Start(specs, squares, cards, startBalance, bankCash); err != nil {
			log.WithError(err).Error("game start failed")
			s.Emit("error-message", "Unable to start game")
			return
		}

		r := &room{game: g, seats: seats}
		putRoom(game_id, r)
		queries.SetGameStatus(game_id, "in progress", db)

		r.mu.Lock()
		defer r.mu.Unlock()
		state, _ := snapshot(r)
		payload, _ := json.Marshal(state)
		server.BroadcastToRoom("/", game_id, "game-start", string(payload))
		server.BroadcastToRoom("/", game_id, "change-turn", state.Turn)
		mirrorState(game_id, r, &conn)
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isUserTurn(result["user_id"]) {
			s.Emit("error-message", "Not your turn")
			return
		}
		engine, _ := r.game.Engine()
		if !engine.RollAllowed() {
			s.Emit("error-message", "You have already rolled the dice")
			return
		}
		if err := r.game.RollAndResolve(); err != nil {
			log.WithError(err).Error("roll failed")
			s.Emit("error-message", "Roll failed")
			return
		}

		if roll, ok := engine.LastRoll(); ok {
			dice, _ := json.Marshal(map[string]interface{}{
				"dice1":  roll.D1,
				"dice2":  roll.D2,
				"double": roll.Double,
			})
			server.BroadcastToRoom("/", result["game_id"], "dice-result", string(dice))
		}
		if idx := engine.LastDrawnCardIndex(); idx >= 0 {
			server.BroadcastToRoom("/", result["game_id"], "card-drawn", strconv.Itoa(idx))
		}
		if name := engine.LastLandedOwnable(); name != "" {
			s.Emit("can-buy", name)
		}
		broadcastState(server, result["game_id"], r, &conn)
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isUserTurn(result["user_id"]) {
			s.Emit("error-message", "Not your turn")
			return
		}
		bought, err := r.game.ChooseBuy()
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		if !bought {
			engine, _ := r.game.Engine()
			s.Emit("error-message", engine.BuyBlockedReason())
			return
		}
		broadcastState(server, result["game_id"], r, &conn)
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isUserTurn(result["user_id"]) {
			s.Emit("error-message", "Not your turn")
			return
		}
		built, err := r.game.ChooseBuild()
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		if !built {
			engine, _ := r.game.Engine()
			s.Emit("error-message", engine.BuildBlockedReason())
			return
		}
		broadcastState(server, result["game_id"], r, &conn)
	})

	server.OnEvent("/", "sell-property", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		card_pos, err := strconv.Atoi(result["card_pos"])
		if err != nil {
			s.Emit("error-message", "Invalid square")
			return
		}

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isUserTurn(result["user_id"]) {
			s.Emit("error-message", "Not your turn")
			return
		}
		if err := r.game.SellAt(card_pos); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(server, result["game_id"], r, &conn)
	})

	server.OnEvent("/", "mock-dice", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		dice1, err1 := strconv.Atoi(result["dice1"])
		dice2, err2 := strconv.Atoi(result["dice2"])
		if err1 != nil || err2 != nil {
			s.Emit("error-message", "Invalid dice values")
			return
		}

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		engine, err := r.game.Engine()
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		if err := engine.SetMockedDice(dice1, dice2); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
	})

	server.OnEvent("/", "clear-mock-dice", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if engine, err := r.game.Engine(); err == nil {
			engine.ClearMockedDice()
		}
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		r, ok := getRoom(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()

		if !r.isUserTurn(result["user_id"]) {
			s.Emit("error-message", "Not your turn")
			return
		}
		engine, _ := r.game.Engine()
		if engine.RollAllowed() {
			s.Emit("error-message", "You must roll the die first!")
			return
		}
		if _, err := r.game.EndTurn(); err != nil {
			s.Emit("error-message", err.Error())
			return
		}

		next := engine.CurrentPlayerIndex()
		server.BroadcastToRoom("/", result["game_id"], "change-turn", r.seats[next])
		broadcastState(server, result["game_id"], r, &conn)

		alive := 0
		for _, p := range engine.Players() {
			if p.Alive() {
				alive++
			}
		}
		if alive <= 1 {
			server.BroadcastToRoom("/", result["game_id"], "game-over", r.seats[next])
			clearMirror(result["game_id"], r, &conn)
			dropRoom(result["game_id"])
			queries.SetGameStatus(result["game_id"], "finished", db)
		}
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, joined := range s.Rooms() {
			server.BroadcastToRoom("/", joined, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
