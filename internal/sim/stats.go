package sim

import (
	"github.com/charmbracelet/log"
	"github.com/san-kum/yulelog/internal/fire"
)

type HeatStats struct {
	Max  int
	Mean float64
	Hot  int // cells above the top color threshold
}

func ComputeHeatStats(g *fire.Grid) HeatStats {
	cells := g.Cells()
	if len(cells) == 0 {
		return HeatStats{}
	}
	var st HeatStats
	sum := 0
	for _, v := range cells {
		sum += v
		if v > st.Max {
			st.Max = v
		}
		if v > 20 {
			st.Hot++
		}
	}
	st.Mean = float64(sum) / float64(len(cells))
	return st
}

// StatsLogger logs heat statistics every Every frames at debug level.
type StatsLogger struct {
	Logger *log.Logger
	Every  int
}

func (l *StatsLogger) OnFrame(frame int, g *fire.Grid) {
	if l.Logger == nil || l.Every <= 0 || frame%l.Every != 0 {
		return
	}
	st := ComputeHeatStats(g)
	l.Logger.Debug("heat", "frame", frame, "max", st.Max, "mean", st.Mean, "hot", st.Hot)
}
