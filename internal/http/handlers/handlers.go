package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	nethttp "net/http"

	"github.com/slack-go/slack"

	"mlb-scores-service/internal/app/scores"
	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
)

const maxBodyBytes = 64 << 10

// Scorer answers a scores command. *scores.Service satisfies it.
type Scorer interface {
	Handle(ctx context.Context, req scores.Request) (scores.Response, error)
}

// Options controls how slash commands are authenticated and answered.
type Options struct {
	// ResponseFormat is config.ResponseFormatText or config.ResponseFormatSlack.
	ResponseFormat string
	// SigningSecret enables Slack request signature checks when set.
	SigningSecret string
}

// Handler wires HTTP routes to the scores service.
type Handler struct {
	svc    Scorer
	opts   Options
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc Scorer, opts Options, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, opts: opts, logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Slash answers a slash command posted as a form (Slack) or as JSON {"command","text"}.
func (h *Handler) Slash(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != nethttp.MethodPost {
		w.Header().Set("Allow", nethttp.MethodPost)
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "unreadable body", h.logger)
		return
	}

	if h.opts.SigningSecret != "" {
		if err := verifySignature(r.Header, body, h.opts.SigningSecret); err != nil {
			logging.Warn(logger, "slash command signature rejected", "err", err)
			writeError(w, r, nethttp.StatusUnauthorized, "unauthorized", h.logger)
			return
		}
	}

	req, err := parseCommand(r, body)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid command payload", h.logger)
		return
	}

	resp, err := h.svc.Handle(r.Context(), req)
	status := nethttp.StatusOK
	if err != nil {
		logging.Error(logger, "scores request failed", err, slog.String(logging.FieldTeam, req.Team))
		status = nethttp.StatusBadGateway
	}
	h.reply(w, status, resp.Text)
}

func (h *Handler) reply(w nethttp.ResponseWriter, status int, text string) {
	if h.opts.ResponseFormat == config.ResponseFormatSlack {
		writeJSON(w, status, &slack.Msg{Text: text, ResponseType: slack.ResponseTypeInChannel}, h.logger)
		return
	}
	writeText(w, status, text, h.logger)
}

type jsonCommand struct {
	Command string `json:"command"`
	Text    string `json:"text"`
}

func parseCommand(r *nethttp.Request, body []byte) (scores.Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var cmd jsonCommand
		if err := json.Unmarshal(body, &cmd); err != nil {
			return scores.Request{}, err
		}
		return scores.Request{Command: cmd.Command, Team: cmd.Text}, nil
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		return scores.Request{}, err
	}
	return scores.Request{Command: cmd.Command, Team: cmd.Text}, nil
}

var errMissingSignature = errors.New("missing slack signature headers")

func verifySignature(header nethttp.Header, body []byte, secret string) error {
	verifier, err := slack.NewSecretsVerifier(header, secret)
	if err != nil {
		if header.Get("X-Slack-Signature") == "" {
			return errMissingSignature
		}
		return err
	}
	if _, err := verifier.Write(body); err != nil {
		return err
	}
	return verifier.Ensure()
}
