package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func CreateScreen(name string, location *string, createdBy int) (model.Screen, error) {
	var screen model.Screen
	const q = `
	INSERT INTO screens (name, location, paired, created_by, created_at, updated_at)
	VALUES ($1,$2,false,$3,now(),now())
	RETURNING id, device_id, name, location, paired, created_by, created_at, updated_at;`
	if err := DB.Get(&screen, q, name, location, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateScreen failed")
		return model.Screen{}, err
	}
	return screen, nil
}

func GetScreenByID(id int) (model.Screen, error) {
	var screen model.Screen
	err := DB.Get(&screen, `
		SELECT id, device_id, name, location, paired, created_by, created_at, updated_at
		FROM screens
		WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("GetScreenByID failed")
	}
	return screen, err
}

func ListScreens() ([]model.Screen, error) {
	var screens []model.Screen
	err := DB.Select(&screens, `
		SELECT id, device_id, name, location, paired, created_by, created_at, updated_at
		FROM screens
		ORDER BY id;`)
	if err != nil {
		log.Error().Err(err).Msg("ListScreens failed")
	}
	return screens, err
}

func DeleteScreen(id int) error {
	_, err := DB.Exec(`DELETE FROM screens WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("DeleteScreen failed")
	}
	return err
}
