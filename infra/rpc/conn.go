package rpc

import (
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/infra/resource"
)

var ErrEmptyEndpoint = errors.New("rpc endpoint is empty")

type Conn = resource.Lazy[config.RpcConfig, *grpc.ClientConn]

func New(cfg config.RpcConfig) *Conn {
	return resource.NewLazy("rpc", cfg, Dial, func(c *grpc.ClientConn) error {
		return c.Close()
	})
}

// Dial creates the client connection. grpc connects in the background on
// the first call made through it.
func Dial(cfg config.RpcConfig) (*grpc.ClientConn, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	conn, err := grpc.NewClient(cfg.Endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}
	return conn, nil
}
