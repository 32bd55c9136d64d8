package sim_test

import (
	"context"
	"errors"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/yulelog/internal/fire"
	"github.com/san-kum/yulelog/internal/input"
	"github.com/san-kum/yulelog/internal/render"
	"github.com/san-kum/yulelog/internal/sim"
)

var (
	keyQ     = input.Key{Code: input.KeyRune, Rune: 'q'}
	keyEsc   = input.Key{Code: input.KeyEscape}
	keyCtrlC = input.Key{Code: input.KeyCtrlC, Ctrl: true}
	keyX     = input.Key{Code: input.KeyRune, Rune: 'x'}
)

// fakeTerminal replays one scripted poll result per tick (nil means no
// key) and answers Escape once the script runs out.
type fakeTerminal struct {
	*render.Frame
	script  []*input.Key
	polls   int
	shows   int
	resets  int
	showErr error
	pollErr error
}

func newFakeTerminal(w, h int, script ...*input.Key) *fakeTerminal {
	return &fakeTerminal{Frame: render.NewFrame(w, h), script: script}
}

func (f *fakeTerminal) PollKey() (input.Key, bool, error) {
	f.polls++
	if f.pollErr != nil {
		return input.Key{}, false, f.pollErr
	}
	if len(f.script) == 0 {
		return keyEsc, true, nil
	}
	k := f.script[0]
	f.script = f.script[1:]
	if k == nil {
		return input.Key{}, false, nil
	}
	return *k, true, nil
}

func (f *fakeTerminal) ResetColor() { f.resets++ }

func (f *fakeTerminal) Show() error {
	f.shows++
	return f.showErr
}

type floorObserver struct {
	floor    int
	violated bool
	frames   []int
}

func (o *floorObserver) OnFrame(frame int, g *fire.Grid) {
	o.frames = append(o.frames, frame)
	for _, v := range g.Cells() {
		if v < o.floor {
			o.violated = true
		}
	}
}

var _ = Describe("Simulator", func() {
	var (
		cfg    sim.Config
		sleeps []time.Duration
		opts   []sim.Option
	)

	BeforeEach(func() {
		cfg = sim.Config{Speed: 1, Smoke: 5}
		sleeps = nil
		opts = []sim.Option{
			sim.WithSource(rand.New(rand.NewSource(1))),
			sim.WithSleep(func(d time.Duration) { sleeps = append(sleeps, d) }),
		}
	})

	Describe("Run", func() {
		DescribeTable("stops on quit keys before drawing",
			func(k input.Key) {
				term := newFakeTerminal(20, 10, &k)
				s := sim.New(cfg, 20, 10, opts...)

				Expect(s.State()).To(Equal(sim.Running))
				Expect(s.Run(context.Background(), term)).To(Succeed())
				Expect(s.State()).To(Equal(sim.Stopped))
				Expect(s.Frame()).To(Equal(0))
				Expect(term.shows).To(Equal(0))
			},
			Entry("q", keyQ),
			Entry("escape", keyEsc),
			Entry("ctrl+c", keyCtrlC),
		)

		It("keeps running on other input", func() {
			term := newFakeTerminal(20, 10, &keyX, nil, &keyX)
			s := sim.New(cfg, 20, 10, opts...)

			Expect(s.Run(context.Background(), term)).To(Succeed())
			Expect(s.Frame()).To(Equal(3))
			Expect(term.polls).To(Equal(4))
		})

		It("resets, presents and sleeps a fixed interval every frame", func() {
			term := newFakeTerminal(20, 10, nil, nil, nil, nil, nil)
			s := sim.New(cfg, 20, 10, opts...)

			Expect(s.Run(context.Background(), term)).To(Succeed())
			Expect(term.resets).To(Equal(5))
			Expect(term.shows).To(Equal(5))
			Expect(sleeps).To(HaveLen(5))
			for _, d := range sleeps {
				Expect(d).To(Equal(sim.FrameDelay))
			}
		})

		It("propagates show failures as terminal errors", func() {
			boom := errors.New("write failed")
			term := newFakeTerminal(20, 10, nil, nil)
			term.showErr = boom
			s := sim.New(cfg, 20, 10, opts...)

			err := s.Run(context.Background(), term)
			Expect(err).To(MatchError(boom))
			Expect(errors.Is(err, sim.ErrTerminal)).To(BeTrue())

			var fe *sim.FrameError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Op).To(Equal("show"))
			Expect(fe.Frame).To(Equal(1))
			Expect(s.State()).To(Equal(sim.Stopped))
			Expect(sleeps).To(BeEmpty())
		})

		It("propagates poll failures", func() {
			boom := errors.New("read failed")
			term := newFakeTerminal(20, 10)
			term.pollErr = boom
			s := sim.New(cfg, 20, 10, opts...)

			err := s.Run(context.Background(), term)
			Expect(errors.Is(err, boom)).To(BeTrue())
			Expect(errors.Is(err, sim.ErrTerminal)).To(BeTrue())
			Expect(s.Frame()).To(Equal(0))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			term := newFakeTerminal(20, 10, nil, nil)
			s := sim.New(cfg, 20, 10, opts...)

			Expect(s.Run(ctx, term)).To(MatchError(context.Canceled))
			Expect(s.State()).To(Equal(sim.Stopped))
			Expect(term.polls).To(Equal(0))
		})
	})

	Describe("Step", func() {
		It("keeps every diffused cell at or above the smoke floor", func() {
			cfg.Speed = 10
			s := sim.New(cfg, 30, 12, opts...)
			obs := &floorObserver{floor: cfg.Smoke}
			s.AddObserver(obs)

			f := render.NewFrame(30, 12)
			for i := 0; i < 40; i++ {
				s.Step(f)
			}
			Expect(obs.violated).To(BeFalse())
			Expect(obs.frames).To(HaveLen(40))
			Expect(obs.frames[0]).To(Equal(0))
			Expect(s.Frame()).To(Equal(40))
		})

		It("draws the ticker on the bottom rows", func() {
			cfg.HaveTicker = true
			cfg.Message = "AB"
			cfg.Meta = "CDE"
			s := sim.New(cfg, 5, 8, opts...)

			f := render.NewFrame(5, 8)
			s.Step(f)
			Expect(f.Row(6)).To(Equal("ABABA"))
			Expect(f.Row(7)).To(Equal("CDECD"))
			Expect(s.Ticker().Offset()).To(Equal(1))
		})

		It("skips the ticker when the message is empty", func() {
			cfg.HaveTicker = true
			s := sim.New(cfg, 5, 8, opts...)
			Expect(s.Ticker()).To(BeNil())
		})

		It("is deterministic for a seeded source", func() {
			a := sim.New(cfg, 16, 8, sim.WithSource(rand.New(rand.NewSource(9))))
			b := sim.New(cfg, 16, 8, sim.WithSource(rand.New(rand.NewSource(9))))
			fa, fb := render.NewFrame(16, 8), render.NewFrame(16, 8)
			for i := 0; i < 10; i++ {
				a.Step(fa)
				b.Step(fb)
			}
			Expect(a.Grid().Cells()).To(Equal(b.Grid().Cells()))
			Expect(fa.String()).To(Equal(fb.String()))
		})
	})

	Describe("ComputeHeatStats", func() {
		It("summarizes the grid", func() {
			g := fire.NewGrid(2, 2)
			g.Set(0, 0, 30)
			g.Set(1, 1, 10)
			st := sim.ComputeHeatStats(g)
			Expect(st.Max).To(Equal(30))
			Expect(st.Mean).To(BeNumerically("~", 10.0))
			Expect(st.Hot).To(Equal(1))
		})
	})
})
