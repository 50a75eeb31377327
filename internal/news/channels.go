package news

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-finder/internal/apperr"
	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/DjordjeVuckovic/news-finder/internal/normalize"
	"github.com/DjordjeVuckovic/news-finder/internal/storage"
	"github.com/google/uuid"
)

type ChannelService struct {
	channels storage.ChannelStore
}

func NewChannelService(channels storage.ChannelStore) *ChannelService {
	return &ChannelService{channels: channels}
}

func (s *ChannelService) List(ctx context.Context) ([]domain.Channel, error) {
	channels, err := s.channels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return channels, nil
}

// Create returns the channel named name, creating it when absent.
func (s *ChannelService) Create(ctx context.Context, name string) (*domain.Channel, error) {
	name = strings.TrimSpace(name)
	if problem := normalize.ValidateChannelName(name); problem != "" {
		return nil, apperr.NewFieldValidation("invalid channel", map[string][]string{"name": {problem}})
	}

	ch, created, err := s.channels.Ensure(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %s: %w", name, err)
	}
	if !created {
		slog.Debug("Channel already exists", "name", name, "id", ch.ID)
	}
	return ch, nil
}

// Delete removes the channel with the given id. Its articles stay in the
// catalog without a channel.
func (s *ChannelService) Delete(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return apperr.NewValidationWrap("invalid channel id", err)
	}

	if err := s.channels.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.NewNotFound("channel", "Channel doesn't exist in database")
		}
		return fmt.Errorf("failed to delete channel %s: %w", id, err)
	}
	slog.Info("Channel deleted", "id", id)
	return nil
}

// Seed ensures every named channel exists.
func (s *ChannelService) Seed(ctx context.Context, names []string) error {
	created := 0
	for _, name := range names {
		if problem := normalize.ValidateChannelName(name); problem != "" {
			return fmt.Errorf("invalid seed channel %q: %s", name, problem)
		}
		_, ok, err := s.channels.Ensure(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to seed channel %s: %w", name, err)
		}
		if ok {
			created++
		}
	}
	slog.Info("Channels seeded", "total", len(names), "created", created)
	return nil
}
