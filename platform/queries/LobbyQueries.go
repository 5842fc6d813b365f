package queries

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/go-pg/pg/v10"
)

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	err := db.Model(game).WherePK().Select()
	return err == nil
}

func GetUserData(user_id string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: user_id}
	err := db.Model(user).WherePK().Select()
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreatePlayer(player models.Player, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

// GetGamePlayers returns the seated players in join order. Seat order is what
// the engine uses for player indices, so it must be stable.
func GetGamePlayers(game_id string, db *pg.DB) ([]models.Player, error) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", game_id).Order("user_id ASC").Select()
	if err != nil {
		return nil, err
	}
	return players, nil
}

func DeletePlayer(user_id string, game_id string, db *pg.DB) error {
	player := new(models.Player)
	_, err := db.Model(player).Where("user_id = ? and game_id = ?", user_id, game_id).Delete()

	CheckDB(game_id, db)
	return err
}

// CheckDB drops the game row once nobody is seated anymore.
func CheckDB(game_id string, db *pg.DB) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", game_id).Select()
	if err != nil || len(players) == 0 {
		game := new(models.Game)
		db.Model(game).Where("id = ?", game_id).Delete()
	}
}

func SetGameStatus(game_id string, status string, db *pg.DB) error {
	game := &models.Game{Id: game_id}
	_, err := db.Model(game).WherePK().Set("status = ?", status).Update()
	return err
}
