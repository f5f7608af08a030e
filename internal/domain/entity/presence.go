package entity

// PresenceState состояние мяча в квадранте
type PresenceState string

const (
	StateAbsent  PresenceState = "absent"  // мяча нет в кадре
	StatePresent PresenceState = "present" // мяч в кадре
)

// PresenceTracker конечный автомат присутствия мяча.
// Один экземпляр на квадрант, создаётся на время обработки одного видео.
type PresenceTracker struct {
	fps       float64
	state     PresenceState
	entry     int
	lastFrame int
	entries   int
	intervals []PresenceInterval
}

// NewPresenceTracker создаёт автомат в состоянии StateAbsent
func NewPresenceTracker(fps float64) *PresenceTracker {
	return &PresenceTracker{
		fps:   fps,
		state: StateAbsent,
	}
}

// State возвращает текущее состояние
func (t *PresenceTracker) State() PresenceState {
	return t.state
}

// Observe обрабатывает результат детекции очередного кадра.
// Возвращает интервал, если на этом кадре мяч пропал.
func (t *PresenceTracker) Observe(frameIndex int, detected bool) (PresenceInterval, bool) {
	t.lastFrame = frameIndex

	switch {
	case detected && t.state == StateAbsent:
		t.state = StatePresent
		t.entry = Timestamp(frameIndex, t.fps)
		t.entries++
	case !detected && t.state == StatePresent:
		t.state = StateAbsent
		return t.close(Timestamp(frameIndex, t.fps)), true
	}

	return PresenceInterval{}, false
}

// Flush закрывает интервал, если поток кончился, пока мяч был в кадре.
func (t *PresenceTracker) Flush() (PresenceInterval, bool) {
	if t.state != StatePresent {
		return PresenceInterval{}, false
	}
	t.state = StateAbsent
	return t.close(Timestamp(t.lastFrame, t.fps)), true
}

func (t *PresenceTracker) close(exit int) PresenceInterval {
	interval := PresenceInterval{Entry: t.entry, Exit: exit}
	t.intervals = append(t.intervals, interval)
	return interval
}

// Intervals возвращает копию закрытых интервалов
func (t *PresenceTracker) Intervals() []PresenceInterval {
	out := make([]PresenceInterval, len(t.intervals))
	copy(out, t.intervals)
	return out
}

// Entries количество переходов в StatePresent
func (t *PresenceTracker) Entries() int {
	return t.entries
}
