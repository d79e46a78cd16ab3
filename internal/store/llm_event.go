package store

import (
	"context"
	"fmt"

	"github.com/zaeon-io/zaeon-core/ent"
	"github.com/zaeon-io/zaeon-core/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.PurposeEQ(opts.Purpose))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, entToLLMEvent(e))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	ev := entToLLMEvent(e)
	return &ev, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	stats := make([]LLMPurposeUsage, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, LLMPurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	stats := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return stats, nil
}

func entToLLMEvent(e *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
