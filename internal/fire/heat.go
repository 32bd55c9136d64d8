package fire

const (
	BaseHeat           = 40
	HeatScalingFactor  = 3
	MaxHeatScaling     = 70
	BaseInjectionsDiv  = 4
	EventInjectionsDiv = 8
	CoolingEventFactor = 30
)

// Params drive one tick of the automaton.
type Params struct {
	Speed  int
	Events int
	Smoke  int
}

func HeatScaling(events int) int {
	if events < 0 {
		events = 0
	}
	return min(events*HeatScalingFactor, MaxHeatScaling)
}

// HeatBase is the value written at every injection point.
func HeatBase(events int) int {
	return BaseHeat + HeatScaling(events)
}

func NumInjections(width, events int) int {
	if width < 0 {
		width = 0
	}
	if events < 0 {
		events = 0
	}
	return width/BaseInjectionsDiv + events/EventInjectionsDiv
}

// Cooling is subtracted from every cell after averaging; never below 1.
func Cooling(speed, events int) int {
	if events < 0 {
		events = 0
	}
	return max(speed-events/CoolingEventFactor, 1)
}
