package domain

import "github.com/google/uuid"

const ChannelNameMaxLength = 50

// Channel is a news category. Names are unique across the catalog.
type Channel struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
