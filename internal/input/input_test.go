package input

import (
	"errors"
	"testing"
)

type queuePoller struct {
	keys  []Key
	err   error
	polls int
}

func (q *queuePoller) PollKey() (Key, bool, error) {
	q.polls++
	if q.err != nil {
		return Key{}, false, q.err
	}
	if len(q.keys) == 0 {
		return Key{}, false, nil
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true, nil
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		quit bool
	}{
		{"q", Key{Code: KeyRune, Rune: 'q'}, true},
		{"escape", Key{Code: KeyEscape}, true},
		{"ctrl+c code", Key{Code: KeyCtrlC}, true},
		{"ctrl+c rune", Key{Code: KeyRune, Rune: 'c', Ctrl: true}, true},
		{"plain c", Key{Code: KeyRune, Rune: 'c'}, false},
		{"capital Q", Key{Code: KeyRune, Rune: 'Q'}, false},
		{"space", Key{Code: KeyRune, Rune: ' '}, false},
		{"other", Key{Code: KeyOther}, false},
	}

	for _, tt := range tests {
		if got := IsQuit(tt.key); got != tt.quit {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.quit, got)
		}
	}
}

func TestControllerPollsOncePerCall(t *testing.T) {
	p := &queuePoller{keys: []Key{{Code: KeyRune, Rune: 'x'}, {Code: KeyRune, Rune: 'q'}}}
	c := NewController(p)

	quit, err := c.Quit()
	if err != nil || quit {
		t.Fatalf("first poll: quit=%v err=%v", quit, err)
	}
	quit, err = c.Quit()
	if err != nil || !quit {
		t.Fatalf("second poll: quit=%v err=%v", quit, err)
	}
	quit, _ = c.Quit()
	if quit {
		t.Error("empty queue should not quit")
	}
	if p.polls != 3 {
		t.Errorf("expected 3 polls, got %d", p.polls)
	}
}

func TestControllerPropagatesError(t *testing.T) {
	boom := errors.New("poll failed")
	c := NewController(&queuePoller{err: boom})
	if _, err := c.Quit(); !errors.Is(err, boom) {
		t.Errorf("expected poll error, got %v", err)
	}
}
