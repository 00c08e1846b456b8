package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

func CreateContent(name, typ, url string, durationSeconds, createdBy int) (model.Content, error) {
	var c model.Content
	// new content starts unapproved; the resolver never surfaces it until an
	// administrator flips the flag
	const q = `
	INSERT INTO content
	  (name, type, url, duration_seconds, approved, created_by, created_at, updated_at)
	VALUES ($1,$2,$3,$4,false,$5,now(),now())
	RETURNING id, name, type, url, duration_seconds, approved, created_by, created_at, updated_at;`
	if err := DB.Get(&c, q, name, typ, url, durationSeconds, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateContent failed")
		return model.Content{}, err
	}
	return c, nil
}

func GetContentByID(id int) (model.Content, error) {
	var c model.Content
	const q = `
	SELECT id, name, type, url, duration_seconds, approved, created_by, created_at, updated_at
	FROM content
	WHERE id = $1;`
	err := DB.Get(&c, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Content{}, sql.ErrNoRows
		}
		log.Error().Err(err).Int("content_id", id).Msg("GetContentByID failed")
	}
	return c, err
}

func ListContent() ([]model.Content, error) {
	var all []model.Content
	const q = `
	SELECT id, name, type, url, duration_seconds, approved, created_by, created_at, updated_at
	FROM content
	ORDER BY id;`
	if err := DB.Select(&all, q); err != nil {
		log.Error().Err(err).Msg("ListContent failed")
		return nil, err
	}
	return all, nil
}

func UpdateContent(id int, name, typ, url *string, durationSeconds *int) error {
	_, err := DB.Exec(`
	UPDATE content SET
	  name             = COALESCE($2, name),
	  type             = COALESCE($3, type),
	  url              = COALESCE($4, url),
	  duration_seconds = COALESCE($5, duration_seconds),
	  updated_at       = now()
	WHERE id = $1;`, id, name, typ, url, durationSeconds)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("UpdateContent failed")
	}
	return err
}

func SetContentApproval(id int, approved bool) error {
	res, err := DB.Exec(`UPDATE content SET approved = $2, updated_at = now() WHERE id = $1;`, id, approved)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("SetContentApproval failed")
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteContent(id int) error {
	_, err := DB.Exec(`DELETE FROM content WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("content_id", id).Msg("DeleteContent failed")
	}
	return err
}
