package socket

import (
	"sync"

	"github.com/DedS3t/monopoly-engine/app/game"
)

// room binds one running engine to the user ids seated at it. Seat order is
// join order and matches the engine's player indices. All engine access goes
// through the room lock; the engine itself is single-threaded by design.
type room struct {
	mu    sync.Mutex
	game  *game.Game
	seats []string
}

func (r *room) seatOf(userID string) int {
	for i, id := range r.seats {
		if id == userID {
			return i
		}
	}
	return -1
}

// isUserTurn reports whether the seat holding the engine's current index
// belongs to the given user. Callers hold r.mu.
func (r *room) isUserTurn(userID string) bool {
	engine, err := r.game.Engine()
	if err != nil {
		return false
	}
	idx := engine.CurrentPlayerIndex()
	return idx >= 0 && idx < len(r.seats) && r.seats[idx] == userID
}

var registry = struct {
	sync.Mutex
	rooms map[string]*room
}{rooms: make(map[string]*room)}

func getRoom(gameID string) (*room, bool) {
	registry.Lock()
	defer registry.Unlock()
	r, ok := registry.rooms[gameID]
	return r, ok
}

func putRoom(gameID string, r *room) {
	registry.Lock()
	defer registry.Unlock()
	registry.rooms[gameID] = r
}

func dropRoom(gameID string) {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.rooms, gameID)
}
