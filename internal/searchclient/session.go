package searchclient

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// request is sent.
const DefaultDebounce = 300 * time.Millisecond

// Fetcher is the one network call a Session makes per settled input.
type Fetcher interface {
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}

// Result is a suggestion list that answers the current input.
type Result struct {
	Seq   uint64
	Query string
	Items []Suggestion
}

// Session is the client side of autocomplete: it debounces typing, keeps at
// most one request in flight and only applies the response to the newest
// request whose query still matches the input.
//
// Callbacks run while the session lock is held, in the order results are
// accepted. They must not call back into the Session or block on a goroutine
// that does.
type Session struct {
	fetcher  Fetcher
	debounce time.Duration
	onResult func(Result)
	onError  func(query string, err error)

	mu       sync.Mutex
	input    string
	items    []Suggestion
	open     bool
	focused  bool
	seq      uint64
	timerGen uint64
	timer    *time.Timer
	cancel   context.CancelFunc
	closed   bool

	base       context.Context
	baseCancel context.CancelFunc
	wg         sync.WaitGroup
}

type SessionOption func(*Session)

func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

func OnResult(fn func(Result)) SessionOption {
	return func(s *Session) {
		s.onResult = fn
	}
}

// OnError receives transport failures. The displayed list is left as is.
func OnError(fn func(query string, err error)) SessionOption {
	return func(s *Session) {
		s.onError = fn
	}
}

func NewSession(f Fetcher, opts ...SessionOption) *Session {
	s := &Session{
		fetcher:  f,
		debounce: DefaultDebounce,
		focused:  true,
		onResult: func(Result) {},
		onError:  func(string, error) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.base, s.baseCancel = context.WithCancel(context.Background())
	return s
}

// Type records new input text and restarts the quiet period. Empty text
// clears the list at once without a request.
func (s *Session) Type(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.input = text
	s.stopTimerLocked()

	if text == "" {
		s.invalidateLocked()
		s.items = []Suggestion{}
		s.open = false
		s.onResult(Result{Seq: s.seq, Query: "", Items: []Suggestion{}})
		return
	}

	gen := s.timerGen
	s.timer = time.AfterFunc(s.debounce, func() { s.fire(gen, text) })
}

// Select copies the chosen city into the input and closes the list.
// No request is made.
func (s *Session) Select(c Suggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopTimerLocked()
	s.invalidateLocked()
	s.input = c.Name
	s.items = []Suggestion{}
	s.open = false
}

// SetFocused hides the list while the input is not focused. Fetched items
// are kept and shown again on refocus.
func (s *Session) SetFocused(focused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = focused
	s.open = focused && len(s.items) > 0
}

// Close stops the pending timer, cancels the request in flight and waits for
// it to return.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.invalidateLocked()
	s.baseCancel()
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Items returns a copy of the list currently displayed.
func (s *Session) Items() []Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Suggestion, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Session) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *Session) fire(gen uint64, text string) {
	s.mu.Lock()
	if s.closed || gen != s.timerGen || text != s.input {
		s.mu.Unlock()
		return
	}

	s.invalidateLocked()
	seq := s.seq
	ctx, cancel := context.WithCancel(s.base)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	defer cancel()

	items, err := s.fetcher.Suggest(ctx, text)
	s.deliver(seq, text, items, err)
}

func (s *Session) deliver(seq uint64, text string, items []Suggestion, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.seq || text != s.input {
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.onError(text, err)
		return
	}

	if items == nil {
		items = []Suggestion{}
	}
	s.items = items
	s.open = s.focused && len(items) > 0

	out := make([]Suggestion, len(items))
	copy(out, items)
	s.onResult(Result{Seq: seq, Query: text, Items: out})
}

// invalidateLocked bumps the sequence so any response still in flight is
// discarded, and cancels that request.
func (s *Session) invalidateLocked() {
	s.seq++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) stopTimerLocked() {
	s.timerGen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
