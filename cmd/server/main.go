package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/route"

	"github.com/mbeoliero/iou/api"
	"github.com/mbeoliero/iou/infra/config"
	"github.com/mbeoliero/iou/infra/httpclient"
	"github.com/mbeoliero/iou/infra/mysql"
	"github.com/mbeoliero/iou/infra/redis"
	"github.com/mbeoliero/iou/infra/resource"
	"github.com/mbeoliero/iou/infra/rpc"
	"github.com/mbeoliero/iou/pkg/charset"
	"github.com/mbeoliero/iou/pkg/lazy"
	"github.com/mbeoliero/iou/pkg/log"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	ctx := context.TODO()

	lv, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.CtxWarn(ctx, "invalid log level %q, keeping default: %v", cfg.Log.Level, err)
	} else {
		log.SetLevel(lv)
	}

	// Nothing below dials out; each resource is built on first use.
	registry := resource.NewRegistry()
	upstream := httpclient.New(cfg.Http)
	resources := map[string]resource.Resource{
		"redis":   redis.Init(),
		"mysql":   mysql.Init(),
		"http":    upstream,
		"rpc":     rpc.New(cfg.Rpc),
		"charset": resource.NewLazy("charset", cfg.Demo.Seed, lazy.Infallible(charset.Of), nil),
	}
	for name, res := range resources {
		if err = registry.Register(name, res); err != nil {
			log.CtxError(ctx, "failed to register %s: %v", name, err)
			panic(err)
		}
	}
	log.CtxInfo(ctx, "registered %d lazy resources", len(resources))

	h := server.New(server.WithHostPorts(fmt.Sprintf(":%d", cfg.Server.Port)))
	api.RegisterRoutes(h, api.NewResourceHandler(registry, upstream, cfg.Server.NodeId))
	log.CtxInfo(ctx, "server starting on port %d", cfg.Server.Port)

	closed := []route.CtxCallback{
		func(ctx context.Context) {
			log.CtxInfo(ctx, "start to close resources")
			if err := registry.Close(); err != nil {
				log.CtxError(ctx, "close resources: %v", err)
			}
		},
	}
	h.OnShutdown = append(h.OnShutdown, closed...)

	if err = h.Run(); err != nil {
		log.CtxError(ctx, "server error: %v", err)
		panic(err)
	}

	log.CtxInfo(ctx, "server stopped")
}
