package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/rotisserie/eris"
)

// Compose labels stamped on every container the orchestrator creates.
const (
	composeProjectLabel = "com.docker.compose.project"
	composeServiceLabel = "com.docker.compose.service"
)

type Client struct {
	client *client.Client
}

func NewClient() (*Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, eris.Wrap(err, "failed to create docker client")
	}
	return &Client{client: cli}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

type ContainerStatus struct {
	Service string
	Name    string
	State   string
	Status  string
}

// ProjectContainers lists the containers belonging to a compose project,
// including stopped ones.
func (c *Client) ProjectContainers(ctx context.Context, project string) ([]ContainerStatus, error) {
	containers, err := c.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", composeProjectLabel+"="+project)),
	})
	if err != nil {
		return nil, eris.Wrap(err, "failed to list containers")
	}

	statuses := make([]ContainerStatus, 0, len(containers))
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		statuses = append(statuses, ContainerStatus{
			Service: ctr.Labels[composeServiceLabel],
			Name:    name,
			State:   ctr.State,
			Status:  ctr.Status,
		})
	}
	return statuses, nil
}
