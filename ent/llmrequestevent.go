// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/zaeon-io/zaeon-core/ent/llmrequestevent"
)

// LLMRequestEvent is the model entity for the LLMRequestEvent schema.
type LLMRequestEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing sequence shared across all audit events
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time the event was recorded
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Provider name: anthropic, openai, gemini, openrouter
	Provider string `json:"provider,omitempty"`
	// Actual model ID used
	Model string `json:"model,omitempty"`
	// Consumer-provided label: chat, schedule, summary
	Purpose string `json:"purpose,omitempty"`
	// Tokens in the request
	InputTokens int `json:"input_tokens,omitempty"`
	// Tokens in the response
	OutputTokens int `json:"output_tokens,omitempty"`
	// Wall-clock time for the request
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Whether the request succeeded
	Success bool `json:"success,omitempty"`
	// Error message if failed
	ErrorMessage string `json:"error_message,omitempty"`
	// Serialized request for replay and debugging
	RequestBody string `json:"request_body,omitempty"`
	// Serialized response content
	ResponseBody string `json:"response_body,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMRequestEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmrequestevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case llmrequestevent.FieldID, llmrequestevent.FieldSequence, llmrequestevent.FieldInputTokens, llmrequestevent.FieldOutputTokens, llmrequestevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case llmrequestevent.FieldProvider, llmrequestevent.FieldModel, llmrequestevent.FieldPurpose, llmrequestevent.FieldErrorMessage, llmrequestevent.FieldRequestBody, llmrequestevent.FieldResponseBody:
			values[i] = new(sql.NullString)
		case llmrequestevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMRequestEvent fields.
func (_m *LLMRequestEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmrequestevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case llmrequestevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case llmrequestevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case llmrequestevent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case llmrequestevent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmrequestevent.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case llmrequestevent.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case llmrequestevent.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case llmrequestevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case llmrequestevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case llmrequestevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case llmrequestevent.FieldRequestBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_body", values[i])
			} else if value.Valid {
				_m.RequestBody = value.String
			}
		case llmrequestevent.FieldResponseBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_body", values[i])
			} else if value.Valid {
				_m.ResponseBody = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMRequestEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LLMRequestEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMRequestEvent.
// Note that you need to call LLMRequestEvent.Unwrap() before calling this method if this LLMRequestEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMRequestEvent) Update() *LLMRequestEventUpdateOne {
	return NewLLMRequestEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMRequestEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMRequestEvent) Unwrap() *LLMRequestEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMRequestEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMRequestEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LLMRequestEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(_m.Purpose)
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("request_body=")
	builder.WriteString(_m.RequestBody)
	builder.WriteString(", ")
	builder.WriteString("response_body=")
	builder.WriteString(_m.ResponseBody)
	builder.WriteByte(')')
	return builder.String()
}

// LLMRequestEvents is a parsable slice of LLMRequestEvent.
type LLMRequestEvents []*LLMRequestEvent
