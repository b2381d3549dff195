package api

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/iou/infra/httpclient"
	"github.com/mbeoliero/iou/infra/resource"
	"github.com/mbeoliero/iou/pkg/charset"
	"github.com/mbeoliero/iou/pkg/id_gen"
	"github.com/mbeoliero/iou/pkg/lazy"
	"github.com/mbeoliero/iou/pkg/log"
)

type ResourceHandler struct {
	registry *resource.Registry
	upstream *httpclient.Client
	nodeId   string
}

// NewResourceHandler serves the registry. upstream may be nil, in which case
// the upstream route answers 404.
func NewResourceHandler(registry *resource.Registry, upstream *httpclient.Client, nodeId string) *ResourceHandler {
	return &ResourceHandler{
		registry: registry,
		upstream: upstream,
		nodeId:   nodeId,
	}
}

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type HealthData struct {
	NodeId    string            `json:"node_id"`
	Resources map[string]string `json:"resources"`
}

type ForceData struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type CharsetData struct {
	Seed  string   `json:"seed"`
	Chars []string `json:"chars"`
}

// HealthCheck reports the state of every resource without building any.
func (h *ResourceHandler) HealthCheck(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, Response{
		Code:    0,
		Message: "ok",
		Data: HealthData{
			NodeId:    h.nodeId,
			Resources: h.registry.States(),
		},
	})
}

// ForceResource builds the named resource.
func (h *ResourceHandler) ForceResource(ctx context.Context, c *app.RequestContext) {
	name := c.Param("name")
	reqId, _ := id_gen.NextId(ctx)

	state, err := h.registry.Force(name)
	if err != nil {
		log.CtxWarn(ctx, "[%d] force %s failed: %v", reqId, name, err)
		code := consts.StatusInternalServerError
		switch {
		case errors.Is(err, resource.ErrNotFound):
			code = consts.StatusNotFound
		case errors.Is(err, lazy.ErrCorruptedState):
			code = consts.StatusConflict
		}
		c.JSON(code, Response{
			Code:    code,
			Message: err.Error(),
			Data:    ForceData{Name: name, State: state},
		})
		return
	}

	log.CtxInfo(ctx, "[%d] force %s: %s", reqId, name, state)
	c.JSON(consts.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    ForceData{Name: name, State: state},
	})
}

type UpstreamData struct {
	Path string `json:"path"`
	Body string `json:"body"`
}

// Upstream relays a GET to the configured http base url. The first request
// builds the http client.
func (h *ResourceHandler) Upstream(ctx context.Context, c *app.RequestContext) {
	if h.upstream == nil {
		c.JSON(consts.StatusNotFound, Response{
			Code:    consts.StatusNotFound,
			Message: "no upstream configured",
		})
		return
	}

	path := "/" + strings.TrimPrefix(c.Param("path"), "/")
	body, err := httpclient.Get(ctx, h.upstream, path)
	if err != nil {
		log.CtxWarn(ctx, "upstream %s failed: %v", path, err)
		c.JSON(consts.StatusBadGateway, Response{
			Code:    consts.StatusBadGateway,
			Message: err.Error(),
		})
		return
	}

	c.JSON(consts.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    UpstreamData{Path: path, Body: body},
	})
}

// Charset returns the distinct characters of the seed query parameter,
// minus those listed in drop.
func (h *ResourceHandler) Charset(ctx context.Context, c *app.RequestContext) {
	seed := c.Query("seed")
	drop := c.Query("drop")

	cell := lazy.New(seed, lazy.Infallible(charset.Of), lazy.WithName("charset"))
	if drop != "" {
		if err := cell.Update(func(s *charset.Set) { s.Remove(drop) }); err != nil {
			c.JSON(consts.StatusInternalServerError, Response{
				Code:    consts.StatusInternalServerError,
				Message: err.Error(),
			})
			return
		}
	}

	set, err := cell.Consume()
	if err != nil {
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    consts.StatusInternalServerError,
			Message: err.Error(),
		})
		return
	}

	c.JSON(consts.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    CharsetData{Seed: seed, Chars: set.Sorted()},
	})
}
