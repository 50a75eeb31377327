package apis

import (
	"fmt"
	"strings"
)

const ChannelSeedKind = "ChannelSeed"

// ChannelSeed lists the channels that must exist before the API serves traffic.
type ChannelSeed struct {
	Kind     string        `json:"kind" example:"ChannelSeed" yaml:"kind"`
	Version  string        `json:"version" example:"v1" yaml:"version"`
	Metadata Metadata      `json:"metadata" yaml:"metadata"`
	Channels []ChannelSpec `json:"channels" yaml:"channels"`
}

type Metadata struct {
	Name        string `json:"name" example:"Default channels" yaml:"name"`
	Description string `json:"description" example:"NewsAPI top-headline categories" yaml:"description"`
}

type ChannelSpec struct {
	Name string `json:"name" example:"science" yaml:"name"`
}

func (cs *ChannelSeed) Validate() error {
	if cs.Kind != ChannelSeedKind {
		return fmt.Errorf("kind must be %s, got %q", ChannelSeedKind, cs.Kind)
	}
	if cs.Version == "" {
		return fmt.Errorf("version is required")
	}
	seen := make(map[string]bool, len(cs.Channels))
	for i, ch := range cs.Channels {
		name := strings.TrimSpace(ch.Name)
		if name == "" {
			return fmt.Errorf("channels[%d] must have name defined", i)
		}
		if seen[name] {
			return fmt.Errorf("channels[%d] duplicates channel %q", i, name)
		}
		seen[name] = true
	}
	return nil
}

// Names returns the trimmed channel names in file order.
func (cs *ChannelSeed) Names() []string {
	names := make([]string, 0, len(cs.Channels))
	for _, ch := range cs.Channels {
		names = append(names, strings.TrimSpace(ch.Name))
	}
	return names
}
