package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChannelStore struct {
	db *pgxpool.Pool
}

func NewChannelStore(pool *ConnectionPool) *ChannelStore {
	return &ChannelStore{db: pool.conn}
}

func (s *ChannelStore) FindByName(ctx context.Context, name string) (*domain.Channel, error) {
	return s.findOne(ctx, `SELECT id, name FROM channels WHERE name = $1`, name)
}

func (s *ChannelStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Channel, error) {
	return s.findOne(ctx, `SELECT id, name FROM channels WHERE id = $1`, id)
}

func (s *ChannelStore) findOne(ctx context.Context, query string, arg any) (*domain.Channel, error) {
	var ch domain.Channel
	err := s.db.QueryRow(ctx, query, arg).Scan(&ch.ID, &ch.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find channel: %w", err)
	}
	return &ch, nil
}

func (s *ChannelStore) Ensure(ctx context.Context, name string) (*domain.Channel, bool, error) {
	var ch domain.Channel
	err := s.db.QueryRow(ctx, `
		INSERT INTO channels (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name
	`, uuid.New(), name).Scan(&ch.ID, &ch.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		existing, findErr := s.FindByName(ctx, name)
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert channel: %w", err)
	}

	slog.Info("Channel created", "name", ch.Name, "id", ch.ID)
	return &ch, true, nil
}

func (s *ChannelStore) List(ctx context.Context) ([]domain.Channel, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM channels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}

	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Channel, error) {
		var ch domain.Channel
		err := row.Scan(&ch.ID, &ch.Name)
		return ch, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan channels: %w", err)
	}
	return channels, nil
}

// Delete relies on ON DELETE SET NULL to detach referencing articles.
func (s *ChannelStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM channels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
