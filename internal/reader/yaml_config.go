package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/news-finder/pkg/apis"
	"gopkg.in/yaml.v3"
)

type YAMLSeedLoader struct {
	reader io.Reader
}

func NewYAMLSeedLoader(reader io.Reader) *YAMLSeedLoader {
	return &YAMLSeedLoader{
		reader: reader,
	}
}

func (sl *YAMLSeedLoader) Load(validate bool) (*apis.ChannelSeed, error) {
	decoder := yaml.NewDecoder(sl.reader)
	var seed apis.ChannelSeed
	if err := decoder.Decode(&seed); err != nil {
		return nil, err
	}
	if validate {
		if err := seed.Validate(); err != nil {
			return nil, err
		}
	}
	return &seed, nil
}

// LoadSeedFile reads and validates the seed file at path.
func LoadSeedFile(path string) (*apis.ChannelSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open channel seed %s: %w", path, err)
	}
	defer f.Close()

	seed, err := NewYAMLSeedLoader(f).Load(true)
	if err != nil {
		return nil, fmt.Errorf("invalid channel seed %s: %w", path, err)
	}
	return seed, nil
}
