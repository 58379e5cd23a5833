package core

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"
)

// Hit sends a single page view. A payload carrying the do-not-track marker
// is dropped without a network call and resolves as success.
func (c *Client) Hit(ctx context.Context, hit Hit) error {
	if hit.DNT == DoNotTrack {
		c.logDebug("hit suppressed by do-not-track", nil)
		return nil
	}
	return c.performPost(ctx, "hit", HitEndpoint, c.hitPayload(hit))
}

// HitBatch sends several page views in one call. Do-not-track items are
// filtered per item; when nothing remains, no call is made.
func (c *Client) HitBatch(ctx context.Context, hits []BatchHit) error {
	payload := make([]map[string]any, 0, len(hits))
	for _, item := range hits {
		if item.Hit.DNT == DoNotTrack {
			continue
		}
		entry := c.hitPayload(item.Hit)
		c.setTimestamp(entry, item.Time)
		payload = append(payload, entry)
	}
	if len(payload) == 0 {
		return nil
	}
	return c.performPost(ctx, "hit_batch", HitBatchEndpoint, payload)
}

// Event sends a named custom event merged with the base hit payload.
// Suppression is checked first: a do-not-track payload resolves successfully
// even when the event itself would not validate.
func (c *Client) Event(ctx context.Context, event EventOptions, hit Hit) error {
	if hit.DNT == DoNotTrack {
		c.logDebug("event suppressed by do-not-track", nil)
		return nil
	}
	if err := validateEventName(event); err != nil {
		return err
	}
	return c.performPost(ctx, "event", EventEndpoint, c.eventPayload(event, hit))
}

// EventBatch sends several events in one call; each item carries its own
// timestamp.
func (c *Client) EventBatch(ctx context.Context, events []BatchEvent) error {
	payload := make([]map[string]any, 0, len(events))
	for _, item := range events {
		if item.Hit.DNT == DoNotTrack {
			continue
		}
		if err := validateEventName(item.Event); err != nil {
			return err
		}
		entry := c.eventPayload(item.Event, item.Hit)
		c.setTimestamp(entry, item.Time)
		payload = append(payload, entry)
	}
	if len(payload) == 0 {
		return nil
	}
	return c.performPost(ctx, "event_batch", EventBatchEndpoint, payload)
}

// Session extends an existing visitor session.
func (c *Client) Session(ctx context.Context, session Session) error {
	if session.DNT == DoNotTrack {
		c.logDebug("session suppressed by do-not-track", nil)
		return nil
	}
	return c.performPost(ctx, "session", SessionEndpoint, c.sessionPayload(session))
}

// SessionBatch extends several sessions in one call.
func (c *Client) SessionBatch(ctx context.Context, sessions []BatchSession) error {
	payload := make([]map[string]any, 0, len(sessions))
	for _, item := range sessions {
		if item.Session.DNT == DoNotTrack {
			continue
		}
		entry := c.sessionPayload(item.Session)
		c.setTimestamp(entry, item.Time)
		payload = append(payload, entry)
	}
	if len(payload) == 0 {
		return nil
	}
	return c.performPost(ctx, "session_batch", SessionBatchEndpoint, payload)
}

func (c *Client) hitPayload(hit Hit) map[string]any {
	if hit.Hostname == "" {
		hit.Hostname = c.config.Hostname
	}
	return structToMap(hit)
}

func (c *Client) sessionPayload(session Session) map[string]any {
	if session.Hostname == "" {
		session.Hostname = c.config.Hostname
	}
	return structToMap(session)
}

func (c *Client) eventPayload(event EventOptions, hit Hit) map[string]any {
	payload := c.hitPayload(hit)
	payload["event_name"] = event.Name
	payload["event_duration"] = event.Duration
	if meta := stringifyMetadata(event.Metadata); len(meta) > 0 {
		payload["event_meta"] = meta
	}
	return payload
}

func validateEventName(event EventOptions) error {
	if event.Name == "" {
		return goerrors.New("core: event name is required", goerrors.CategoryBadInput).
			WithCode(http.StatusBadRequest).
			WithTextCode(AnalyticsErrorBadConfig)
	}
	return nil
}

// setTimestamp stamps a batch item; items without an explicit time get the
// client clock so the collector never has to guess arrival order.
func (c *Client) setTimestamp(entry map[string]any, at time.Time) {
	if at.IsZero() {
		at = c.now()
	}
	entry["time"] = at.UTC().Format(time.RFC3339)
}

// structToMap flattens a payload struct through its JSON tags so event
// fields can merge into the same body.
func structToMap(payload any) map[string]any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

func stringifyMetadata(metadata map[string]any) map[string]string {
	out := make(map[string]string, len(metadata))
	for key, value := range metadata {
		if value == nil {
			continue
		}
		switch typed := value.(type) {
		case string:
			out[key] = typed
		case bool:
			out[key] = strconv.FormatBool(typed)
		case int:
			out[key] = strconv.Itoa(typed)
		case int64:
			out[key] = strconv.FormatInt(typed, 10)
		case float64:
			out[key] = strconv.FormatFloat(typed, 'f', -1, 64)
		case float32:
			out[key] = strconv.FormatFloat(float64(typed), 'f', -1, 32)
		default:
			out[key] = fmt.Sprint(typed)
		}
	}
	return out
}
