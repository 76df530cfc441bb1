// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-log-monitor/internal/app"
	"github.com/MKhiriev/go-log-monitor/internal/config"
	"github.com/MKhiriev/go-log-monitor/internal/logger"
	"github.com/MKhiriev/go-log-monitor/internal/utils"
	"github.com/MKhiriev/go-log-monitor/models"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

type httpServerAdapter struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter]
// bound to cfg.BaseURL (origin plus "/api"). cfg.RequestTimeout bounds every
// call; zero means no client-side timeout.
//
// Resty's own diagnostics are routed into log.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute http(s) URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid adapter base url %q: must be absolute http(s)", cfg.BaseURL)
	}

	client := utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	client.SetLogger(newRestyLogger(log))

	return &httpServerAdapter{
		client:   client,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   log,
	}, nil
}

// request describes one REST call. path may hold {name} placeholders that are
// filled from pathParams and escaped as single path segments.
type request struct {
	method      string
	path        string
	pathParams  map[string]string
	queryParams map[string]string
	headers     map[string]string
	body        any
}

// call performs req and decodes the 2xx body into an envelope of T. The
// envelope is returned as-is: the success flag is not inspected.
func call[T any](ctx context.Context, h *httpServerAdapter, req request) (models.Envelope[T], error) {
	var env models.Envelope[T]

	traceID := h.traceIDs.TraceID(ctx)
	log := h.logger.With().
		Str("http_method", req.method).
		Str("path", req.path).
		Str("trace_id", traceID).
		Logger()

	r := h.client.R().
		SetContext(utils.WithTraceID(ctx, traceID)).
		SetHeader(TraceIDHeader, traceID).
		SetHeader("Content-Type", "application/json").
		SetHeaders(req.headers).
		SetPathParams(req.pathParams).
		SetQueryParams(req.queryParams)
	if req.body != nil {
		r.SetBody(req.body)
	}

	resp, err := r.Execute(req.method, req.path)
	if err != nil {
		netErr := &app.NetworkError{Op: req.method + " " + req.path, Err: err}
		log.Error().Err(netErr).Msg(app.MsgAPICallFailed)
		return env, netErr
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode()).Msg(app.MsgAPICallFailed)
		return env, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		log.Debug().Int("status", resp.StatusCode()).Msg("empty response body")
		return env, nil
	}
	if err = json.Unmarshal(body, &env); err != nil {
		decErr := &app.DecodeError{Err: err}
		log.Error().Err(decErr).Int("status", resp.StatusCode()).Msg(app.MsgAPICallFailed)
		return env, decErr
	}

	log.Debug().Int("status", resp.StatusCode()).Bool("has_data", env.HasData()).Msg("api call done")
	return env, nil
}

// command performs req and discards whatever data the envelope carries.
func command(ctx context.Context, h *httpServerAdapter, req request) error {
	_, err := call[json.RawMessage](ctx, h, req)
	return err
}

// list performs req and returns the envelope's slice, nil when absent.
func list[T any](ctx context.Context, h *httpServerAdapter, req request) ([]T, error) {
	env, err := call[[]T](ctx, h, req)
	if err != nil || !env.HasData() {
		return nil, err
	}
	return *env.Data, nil
}

// single performs req and returns the envelope's data pointer.
func single[T any](ctx context.Context, h *httpServerAdapter, req request) (*T, error) {
	env, err := call[T](ctx, h, req)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func idParam(id int64) map[string]string {
	return map[string]string{"id": strconv.FormatInt(id, 10)}
}

func logFileParams(agentID int64, alias string) map[string]string {
	return map[string]string{"id": strconv.FormatInt(agentID, 10), "alias": alias}
}

// ListAgents implements [ServerAdapter].
func (h *httpServerAdapter) ListAgents(ctx context.Context) ([]models.AgentDetailView, error) {
	return list[models.AgentDetailView](ctx, h, request{method: http.MethodGet, path: "/agents"})
}

// GetAgent implements [ServerAdapter].
func (h *httpServerAdapter) GetAgent(ctx context.Context, id int64) (*models.AgentDetailView, error) {
	return single[models.AgentDetailView](ctx, h, request{
		method:     http.MethodGet,
		path:       "/agents/{id}",
		pathParams: idParam(id),
	})
}

// CreateAgent implements [ServerAdapter].
func (h *httpServerAdapter) CreateAgent(ctx context.Context, req models.AddAgentRequest) (*models.Agent, error) {
	return single[models.Agent](ctx, h, request{
		method: http.MethodPost,
		path:   "/agents",
		body:   req,
	})
}

// UpdateAgent implements [ServerAdapter].
func (h *httpServerAdapter) UpdateAgent(ctx context.Context, id int64, req models.UpdateAgentRequest) (*models.Agent, error) {
	return single[models.Agent](ctx, h, request{
		method:     http.MethodPut,
		path:       "/agents/{id}",
		pathParams: idParam(id),
		body:       req,
	})
}

// DeleteAgent implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAgent(ctx context.Context, id int64) error {
	return command(ctx, h, request{
		method:     http.MethodDelete,
		path:       "/agents/{id}",
		pathParams: idParam(id),
	})
}

// ConnectAgent implements [ServerAdapter]. It asks the backend to open its
// push connection to the agent.
func (h *httpServerAdapter) ConnectAgent(ctx context.Context, id int64) error {
	return command(ctx, h, request{
		method:     http.MethodPost,
		path:       "/agents/{id}/connect",
		pathParams: idParam(id),
	})
}

// DisconnectAgent implements [ServerAdapter].
func (h *httpServerAdapter) DisconnectAgent(ctx context.Context, id int64) error {
	return command(ctx, h, request{
		method:     http.MethodPost,
		path:       "/agents/{id}/disconnect",
		pathParams: idParam(id),
	})
}

// ListLogFiles implements [ServerAdapter].
func (h *httpServerAdapter) ListLogFiles(ctx context.Context, agentID int64) ([]models.LogFile, error) {
	return list[models.LogFile](ctx, h, request{
		method:     http.MethodGet,
		path:       "/agents/{id}/logfiles",
		pathParams: idParam(agentID),
	})
}

// AddLogFile implements [ServerAdapter].
func (h *httpServerAdapter) AddLogFile(ctx context.Context, agentID int64, req models.AddLogFileRequest) (*models.LogFile, error) {
	return single[models.LogFile](ctx, h, request{
		method:     http.MethodPost,
		path:       "/agents/{id}/logfiles",
		pathParams: idParam(agentID),
		body:       req,
	})
}

// UpdateLogFile implements [ServerAdapter]. oldAlias addresses the file, the
// new alias (if any) travels in req.
func (h *httpServerAdapter) UpdateLogFile(ctx context.Context, agentID int64, oldAlias string, req models.AddLogFileRequest) (*models.LogFile, error) {
	return single[models.LogFile](ctx, h, request{
		method:     http.MethodPut,
		path:       "/agents/{id}/logfiles/{alias}",
		pathParams: logFileParams(agentID, oldAlias),
		body:       req,
	})
}

// DeleteLogFile implements [ServerAdapter].
func (h *httpServerAdapter) DeleteLogFile(ctx context.Context, agentID int64, alias string) error {
	return command(ctx, h, request{
		method:     http.MethodDelete,
		path:       "/agents/{id}/logfiles/{alias}",
		pathParams: logFileParams(agentID, alias),
	})
}

// StartLogFileMonitoring implements [ServerAdapter].
func (h *httpServerAdapter) StartLogFileMonitoring(ctx context.Context, agentID int64, alias string) error {
	return command(ctx, h, request{
		method:     http.MethodPost,
		path:       "/agents/{id}/logfiles/{alias}/start",
		pathParams: logFileParams(agentID, alias),
	})
}

// StopLogFileMonitoring implements [ServerAdapter].
func (h *httpServerAdapter) StopLogFileMonitoring(ctx context.Context, agentID int64, alias string) error {
	return command(ctx, h, request{
		method:     http.MethodPost,
		path:       "/agents/{id}/logfiles/{alias}/stop",
		pathParams: logFileParams(agentID, alias),
	})
}

// ListLogMessages implements [ServerAdapter]. An empty query.Alias is
// omitted from the query string.
func (h *httpServerAdapter) ListLogMessages(ctx context.Context, agentID int64, query models.LogQuery) ([]models.LogMessage, error) {
	params := map[string]string{"limit": strconv.Itoa(query.EffectiveLimit())}
	if query.Alias != "" {
		params["alias"] = query.Alias
	}

	return list[models.LogMessage](ctx, h, request{
		method:      http.MethodGet,
		path:        "/agents/{id}/logs",
		pathParams:  idParam(agentID),
		queryParams: params,
	})
}

// TailLogFile implements [ServerAdapter].
func (h *httpServerAdapter) TailLogFile(ctx context.Context, agentID int64, alias string, tail int) ([]models.LogMessage, error) {
	if tail <= 0 {
		tail = models.DefaultLogTailSize
	}

	return list[models.LogMessage](ctx, h, request{
		method:      http.MethodGet,
		path:        "/agents/{id}/logs/{alias}",
		pathParams:  logFileParams(agentID, alias),
		queryParams: map[string]string{"tail": strconv.Itoa(tail)},
	})
}

// GetSystemStatus implements [ServerAdapter].
func (h *httpServerAdapter) GetSystemStatus(ctx context.Context) (*models.SystemOverview, error) {
	return single[models.SystemOverview](ctx, h, request{method: http.MethodGet, path: "/status"})
}
