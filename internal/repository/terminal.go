package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/rescue_coordination_system/internal/models"
	"github.com/shenikar/rescue_coordination_system/internal/service"
)

type TerminalRepository struct {
	db *pgxpool.Pool
}

func NewTerminalRepository(db *pgxpool.Pool) service.TerminalRepository {
	return &TerminalRepository{db: db}
}

func (r *TerminalRepository) GetTerminal(ctx context.Context, terminalID string) (*models.Terminal, error) {
	query := `
		SELECT terminal_id, name, location, COALESCE(focal_person_id, ''), archived
		FROM terminals
		WHERE terminal_id = $1;
	`
	t := &models.Terminal{}
	err := r.db.QueryRow(ctx, query, terminalID).Scan(
		&t.TerminalID,
		&t.Name,
		&t.Location,
		&t.FocalPersonID,
		&t.Archived,
	)
	if err != nil {
		return nil, mapError(err, "get terminal "+terminalID)
	}
	return t, nil
}
