package testing

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const defaultESImage = "docker.elastic.co/elasticsearch/elasticsearch:8.19.0"

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts a single-node Elasticsearch with security off. The
// image can be overridden with ES_TEST_IMAGE.
func NewESContainer(ctx context.Context) (*ESContainer, error) {
	image := os.Getenv("ES_TEST_IMAGE")
	if image == "" {
		image = defaultESImage
	}

	esContainer, err := elasticsearch.Run(ctx,
		image,
		elasticsearch.WithPassword(""),
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
			"ES_JAVA_OPTS":           "-Xms512m -Xmx512m",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health?wait_for_status=yellow").
				WithPort("9200/tcp").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start elasticsearch container: %w", err)
	}

	endpoint, err := esContainer.PortEndpoint(ctx, "9200/tcp", "http")
	if err != nil {
		_ = testcontainers.TerminateContainer(esContainer)
		return nil, fmt.Errorf("failed to get elasticsearch endpoint: %w", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   endpoint,
	}, nil
}

func NewESContainerWithCleanup(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	container, err := NewESContainer(ctx)
	if err != nil {
		tb.Fatalf("failed to create elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	return container
}
