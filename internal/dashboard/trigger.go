package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/jobsearch"
)

type runNowResultMsg struct {
	token Token
	err   error
}

type testNotificationResultMsg struct {
	token Token
	err   error
}

// AutomationTrigger fires the backend's side-effect-only operations.
type AutomationTrigger struct {
	ctx     context.Context
	gateway jobsearch.Gateway
	busy    *Coordinator
	bus     *Bus
	notify  func(Notice)
	logger  zerolog.Logger
}

func newAutomationTrigger(ctx context.Context, gw jobsearch.Gateway, busy *Coordinator, bus *Bus, notify func(Notice), logger zerolog.Logger) *AutomationTrigger {
	return &AutomationTrigger{ctx: ctx, gateway: gw, busy: busy, bus: bus, notify: notify, logger: logger}
}

// RunNow forces an out-of-cycle automation run. It returns nil while busy.
func (a *AutomationTrigger) RunNow() tea.Cmd {
	tok, ok := a.busy.Acquire(KindRunNow)
	if !ok {
		return nil
	}
	a.logger.Info().Msg("manual run requested")
	ctx, gw := a.ctx, a.gateway
	return func() tea.Msg {
		err := guard("trigger manual search", func() error {
			return gw.TriggerManualSearch(ctx)
		})
		return runNowResultMsg{token: tok, err: err}
	}
}

// SendTestNotification asks the backend for a diagnostic email. It returns
// nil while busy.
func (a *AutomationTrigger) SendTestNotification() tea.Cmd {
	tok, ok := a.busy.Acquire(KindTestNotification)
	if !ok {
		return nil
	}
	a.logger.Info().Msg("test notification requested")
	ctx, gw := a.ctx, a.gateway
	return func() tea.Msg {
		err := guard("send test notification", func() error {
			return gw.SendTestNotification(ctx)
		})
		return testNotificationResultMsg{token: tok, err: err}
	}
}

func (a *AutomationTrigger) applyRunNow(msg runNowResultMsg) tea.Cmd {
	defer a.busy.Release(msg.token)

	if msg.err != nil {
		a.logger.Error().Err(msg.err).Msg("manual run failed")
		a.notify(errorNotice("Run failed", runNowFailedText, msg.err))
		return nil
	}
	a.logger.Info().Dur("elapsed", time.Since(msg.token.Started)).Msg("manual run complete")
	a.notify(Notice{Level: NoticeSuccess, Title: "Run complete", Text: runNowDoneText})
	return a.bus.Publish(Event{Kind: EventManualRunCompleted, At: time.Now()})
}

func (a *AutomationTrigger) applyTestNotification(msg testNotificationResultMsg) {
	defer a.busy.Release(msg.token)

	if msg.err != nil {
		a.logger.Error().Err(msg.err).Msg("test notification failed")
		a.notify(errorNotice("Test email failed", testEmailFailedText, msg.err))
		return
	}
	a.logger.Info().Msg("test notification sent")
	a.notify(Notice{Level: NoticeSuccess, Title: "Test email sent", Text: testEmailDoneText})
}
