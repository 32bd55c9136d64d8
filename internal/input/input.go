package input

// Code classifies a key event.
type Code int

const (
	KeyOther Code = iota
	KeyRune
	KeyEscape
	KeyCtrlC
)

type Key struct {
	Code Code
	Rune rune
	Ctrl bool
}

// Poller returns at most one pending key without waiting. ok is false when
// nothing is queued.
type Poller interface {
	PollKey() (key Key, ok bool, err error)
}

// IsQuit reports whether k is q, Escape or Ctrl+C.
func IsQuit(k Key) bool {
	switch k.Code {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
		if k.Ctrl {
			return k.Rune == 'c' || k.Rune == 'C'
		}
		return k.Rune == 'q'
	}
	return false
}

// Controller performs the once-per-tick quit check.
type Controller struct {
	p Poller
}

func NewController(p Poller) *Controller {
	return &Controller{p: p}
}

// Quit polls once. Keys other than quit keys are dropped.
func (c *Controller) Quit() (bool, error) {
	k, ok, err := c.p.PollKey()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return IsQuit(k), nil
}
