package dto

import (
	"github.com/DjordjeVuckovic/news-finder/internal/domain"
	"github.com/google/uuid"
)

type Channel struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateChannelRequest struct {
	Name string `json:"name" form:"name"`
}

func NewChannel(ch domain.Channel) Channel {
	return Channel{ID: ch.ID, Name: ch.Name}
}

func NewChannels(channels []domain.Channel) []Channel {
	result := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		result = append(result, NewChannel(ch))
	}
	return result
}
