package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Call records a single request made to a RecordingProvider.
type Call struct {
	Method string
	Params json.RawMessage // the request arguments as a JSON array
}

// Decode unmarshals the recorded arguments into v, which is usually a
// pointer to a slice.
func (c Call) Decode(v interface{}) error {
	return json.Unmarshal(c.Params, v)
}

type scripted struct {
	result interface{}
	err    error
}

// RecordingProvider implements Provider for tests.
//
// Responses are scripted per method with [RecordingProvider.On] and
// [RecordingProvider.Fail] and served in order; the last one scripted for a
// method keeps being served once the others are consumed. A method with no
// scripted response fails with CodeMethodNotFound like a real wallet would.
// Results go through a JSON round trip so callers decode them exactly as they
// would decode a wire response.
type RecordingProvider struct {
	mu        sync.Mutex
	responses map[string][]scripted
	calls     []Call
}

func NewRecordingProvider() *RecordingProvider {
	return &RecordingProvider{responses: map[string][]scripted{}}
}

// On scripts a successful response for method.
func (p *RecordingProvider) On(method string, result interface{}) *RecordingProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[method] = append(p.responses[method], scripted{result: result})
	return p
}

// Fail scripts a failing response for method.
func (p *RecordingProvider) Fail(method string, err error) *RecordingProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responses[method] = append(p.responses[method], scripted{err: err})
	return p
}

func (p *RecordingProvider) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if args == nil {
		args = []interface{}{}
	}
	params, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("couldn't encode params of %s: %w", method, err)
	}

	p.mu.Lock()
	p.calls = append(p.calls, Call{Method: method, Params: params})
	queue := p.responses[method]
	var next scripted
	found := len(queue) > 0
	if found {
		next = queue[0]
		if len(queue) > 1 {
			p.responses[method] = queue[1:]
		}
	}
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if !found {
		return &Error{
			Code:    CodeMethodNotFound,
			Message: fmt.Sprintf("the method %s does not exist/is not available", method),
		}
	}
	if next.err != nil {
		return next.err
	}
	if result == nil {
		return nil
	}
	raw, err := json.Marshal(next.result)
	if err != nil {
		return fmt.Errorf("couldn't encode scripted result of %s: %w", method, err)
	}
	return json.Unmarshal(raw, result)
}

// --- Test helpers ---

// Calls returns every recorded request in order.
func (p *RecordingProvider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]Call, len(p.calls))
	copy(result, p.calls)
	return result
}

// Methods returns the method of every recorded request in order.
func (p *RecordingProvider) Methods() []string {
	calls := p.Calls()
	result := make([]string, 0, len(calls))
	for _, c := range calls {
		result = append(result, c.Method)
	}
	return result
}

// CallsTo returns the recorded requests of one method.
func (p *RecordingProvider) CallsTo(method string) []Call {
	var result []Call
	for _, c := range p.Calls() {
		if c.Method == method {
			result = append(result, c)
		}
	}
	return result
}
