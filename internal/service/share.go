package service

import (
	"context"
	"log/slog"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arko-chat/webshare/internal/webshare"
)

const outcomeResolved = "resolved"

// Call is one share invocation as reported by the page.
type Call struct {
	Data any `json:"data"`
	// Focused is document.hasFocus(); nil when the page has no such concept.
	Focused *bool  `json:"focused"`
	Base    string `json:"base"`
}

type ShareService struct {
	bridge   webshare.Bridge
	logger   *slog.Logger
	outcomes *xsync.Map[string, *xsync.Counter]
}

func NewShareService(bridge webshare.Bridge, logger *slog.Logger) *ShareService {
	return &ShareService{
		bridge:   bridge,
		logger:   logger,
		outcomes: xsync.NewMap[string, *xsync.Counter](),
	}
}

// Share validates and dispatches one call and waits for the native answer.
func (s *ShareService) Share(ctx context.Context, call Call) (any, error) {
	opts := []webshare.Option{webshare.WithLogger(s.logger)}
	if call.Focused != nil {
		focused := *call.Focused
		opts = append(opts, webshare.WithFocus(func() bool { return focused }))
	}
	if call.Base != "" {
		base, err := webshare.ParseBase(call.Base)
		if err != nil {
			s.logger.Debug("ignoring unusable base location", "base", call.Base, "err", err)
		} else {
			opts = append(opts, webshare.WithBase(base))
		}
	}

	res := webshare.New(s.bridge, opts...).Share(call.Data)
	value, err := res.Wait(ctx)
	if err != nil {
		if kind := webshare.KindOf(err); kind != "" {
			s.count(string(kind))
			s.logger.Warn("share rejected", "kind", kind, "err", err)
		}
		return nil, err
	}

	s.count(outcomeResolved)
	s.logger.Info("share completed")
	return value, nil
}

func (s *ShareService) count(outcome string) {
	s.outcomes.Compute(outcome, func(c *xsync.Counter, loaded bool) (*xsync.Counter, xsync.ComputeOp) {
		if !loaded {
			c = xsync.NewCounter()
		}
		c.Inc()
		return c, xsync.UpdateOp
	})
}

// Stats returns how many shares ended in each outcome.
func (s *ShareService) Stats() map[string]int64 {
	out := make(map[string]int64)
	s.outcomes.Range(func(k string, c *xsync.Counter) bool {
		out[k] = c.Value()
		return true
	})
	return out
}
