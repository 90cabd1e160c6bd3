package web

import "context"

type feedbackKey struct{}

// feedback carries the user's answers and the alerts raised while one
// request runs the store's actions.
type feedback struct {
	confirmed bool
	alerts    []string
}

func withFeedback(ctx context.Context, fb *feedback) context.Context {
	return context.WithValue(ctx, feedbackKey{}, fb)
}

func feedbackFrom(ctx context.Context) *feedback {
	fb, _ := ctx.Value(feedbackKey{}).(*feedback)
	return fb
}

// requestAlerter queues alerts on the request; they are shown as flashes.
type requestAlerter struct{}

func (requestAlerter) Alert(ctx context.Context, message string) {
	if fb := feedbackFrom(ctx); fb != nil {
		fb.alerts = append(fb.alerts, message)
	}
}

// requestConfirmer answers with the confirm=yes form field.
type requestConfirmer struct{}

func (requestConfirmer) Confirm(ctx context.Context, prompt string) bool {
	fb := feedbackFrom(ctx)
	return fb != nil && fb.confirmed
}
