package remote

import (
	"context"
	"log/slog"

	"github.com/rcliao/offline-assist/internal/responder"
)

// Reply sources.
const (
	SourceRemote  = "remote"
	SourceOffline = "offline"
)

// Reply is an answer and where it came from.
type Reply struct {
	Answer string            `json:"answer"`
	Source string            `json:"source"`
	Match  *responder.Result `json:"match,omitempty"`
}

// Assistant prefers the remote client and falls back to the offline
// responder on any remote failure. A nil Remote means offline only.
type Assistant struct {
	Remote  Client
	Offline *responder.Responder
	Logger  *slog.Logger
}

// Ask always returns a non-empty answer.
func (a *Assistant) Ask(ctx context.Context, query, language string) Reply {
	lang := responder.NormalizeLanguage(language)

	if a.Remote != nil {
		answer, err := a.Remote.Ask(ctx, Request{Query: query, Language: lang})
		if err == nil {
			return Reply{Answer: answer, Source: SourceRemote}
		}
		a.logger().Info("remote chat unavailable, answering offline", "error", err)
	}

	res := a.Offline.Answer(ctx, query, lang)
	return Reply{Answer: res.Answer, Source: SourceOffline, Match: &res}
}

func (a *Assistant) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
