package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Block закрытый интервал дня (HH:MM)
type Block struct {
	Start string
	End   string
}

// Input данные для расчёта свободных слотов одного профессионала на дату
type Input struct {
	Date            time.Time
	DurationMinutes int
	// Sessions сессии профессионала; сессии других дат и отменённые игнорируются
	Sessions         []*domain.Session
	CustomSlots      []string
	BlockedIntervals []Block
}

// Engine движок расчёта свободных слотов
// Чистые вычисления без состояния, безопасен для конкурентного использования
type Engine struct {
	cfg Config
}

// NewEngine создает движок с указанной конфигурацией
func NewEngine(cfg Config) *Engine {
	if cfg.StepMode == "" {
		cfg.StepMode = StepBackwardFromAnchor
	}
	return &Engine{cfg: cfg}
}

// Config возвращает конфигурацию движка
func (e *Engine) Config() Config {
	return e.cfg
}

// interval занятый интервал в минутах [start, end)
type interval struct {
	start int
	end   int
}

// AvailableSlots возвращает отсортированный список свободных времён начала
// Для воскресенья, некорректной даты или длительности возвращается пустой список
func (e *Engine) AvailableSlots(in Input) []types.TimeString {
	result := []types.TimeString{}

	if in.Date.IsZero() || in.DurationMinutes <= 0 {
		return result
	}
	window, open := e.cfg.windowFor(in.Date.Weekday())
	if !open {
		return result
	}

	blocks := parseBlocks(in.BlockedIntervals)

	// Начало окна сдвигается на конец самого позднего блока
	windowStart := window.Start
	if len(blocks) > 0 {
		windowStart = blocks[0].end
		for _, b := range blocks[1:] {
			if b.end > windowStart {
				windowStart = b.end
			}
		}
	}
	windowEnd := window.End

	bookings := bookedIntervals(in.Date.Format(domain.DateFormat), in.Sessions)
	custom := parseSlots(in.CustomSlots)

	g := &generator{
		duration: in.DurationMinutes,
		buffer:   e.cfg.BufferMinutes,
		bookings: bookings,
		seen:     make(map[int]struct{}),
	}

	if len(bookings) == 0 {
		g.fillForward(windowStart, windowEnd)
	} else {
		anchor, pinned := firstPinned(custom, bookings)
		if e.cfg.StepMode == StepBackwardFromAnchor && pinned && anchor > windowStart {
			g.fillBackward(anchor, windowStart)
		} else {
			g.fillForward(windowStart, bookings[0].start-g.buffer)
		}

		for i := 0; i < len(bookings)-1; i++ {
			g.fillForward(bookings[i].end+g.buffer, bookings[i+1].start-g.buffer)
		}

		last := bookings[len(bookings)-1]
		g.fillForward(last.end+g.buffer, windowEnd)
	}

	// Дополнительные слоты добавляются вне сетки, если не задевают сессии с учётом буфера
	for _, t := range custom {
		if t < windowStart || t+g.duration > windowEnd {
			continue
		}
		if g.conflicts(t, g.buffer) {
			continue
		}
		g.add(t)
	}

	sort.Ints(g.slots)

	for _, m := range g.slots {
		if isBlocked(m, blocks) {
			continue
		}
		ts, err := types.FromMinutes(m)
		if err != nil {
			continue
		}
		result = append(result, ts)
	}

	return result
}

// generator накапливает кандидатов без повторов
type generator struct {
	duration int
	buffer   int
	bookings []interval
	slots    []int
	seen     map[int]struct{}
}

func (g *generator) add(m int) {
	if _, ok := g.seen[m]; ok {
		return
	}
	g.seen[m] = struct{}{}
	g.slots = append(g.slots, m)
}

// conflicts проверяет пересечение [slot, slot+duration) с сессиями, расширенными на margin
func (g *generator) conflicts(slot, margin int) bool {
	slotEnd := slot + g.duration
	for _, b := range g.bookings {
		if slot < b.end+margin && slotEnd > b.start-margin {
			return true
		}
	}
	return false
}

// fillForward заполняет [from, to] с шагом duration+buffer начиная с левого края
func (g *generator) fillForward(from, to int) {
	step := g.duration + g.buffer
	for slot := from; slot+g.duration <= to; slot += step {
		if !g.conflicts(slot, 0) {
			g.add(slot)
		}
	}
}

// fillBackward заполняет промежуток перед якорем, двигаясь от него к началу окна
func (g *generator) fillBackward(anchor, windowStart int) {
	step := g.duration + g.buffer
	for slot := anchor - step; slot >= windowStart; slot -= step {
		if g.conflicts(slot, g.buffer) || g.overlapsGenerated(slot) {
			continue
		}
		g.add(slot)
	}
}

func (g *generator) overlapsGenerated(slot int) bool {
	slotEnd := slot + g.duration
	for _, free := range g.slots {
		if slot < free+g.duration && slotEnd > free {
			return true
		}
	}
	return false
}

// bookedIntervals занятые интервалы даты, отсортированные по началу
// Сессии с нечитаемым временем пропускаются
func bookedIntervals(date string, sessions []*domain.Session) []interval {
	out := make([]interval, 0, len(sessions))
	for _, s := range sessions {
		if s == nil || s.Date != date || !s.IsOccupying() {
			continue
		}
		start, ok := parseMinutes(s.Time)
		if !ok {
			continue
		}
		out = append(out, interval{start: start, end: start + s.Period.Minutes()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].start < out[j].start
	})
	return out
}

// firstPinned самый ранний дополнительный слот, совпадающий с началом сессии
func firstPinned(custom []int, bookings []interval) (int, bool) {
	for _, t := range custom {
		for _, b := range bookings {
			if b.start == t {
				return t, true
			}
		}
	}
	return 0, false
}

// parseSlots разбирает дополнительные слоты, нечитаемые значения отбрасываются
func parseSlots(raw []string) []int {
	seen := make(map[int]struct{}, len(raw))
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		m, ok := parseMinutes(s)
		if !ok {
			continue
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

func parseBlocks(raw []Block) []interval {
	out := make([]interval, 0, len(raw))
	for _, b := range raw {
		start, ok := parseMinutes(b.Start)
		if !ok {
			continue
		}
		end, ok := parseMinutes(b.End)
		if !ok {
			continue
		}
		out = append(out, interval{start: start, end: end})
	}
	return out
}

// isBlocked true, если слот внутри [start, end) какого-либо блока
// Момент окончания любого блока всегда свободен
func isBlocked(slot int, blocks []interval) bool {
	for _, b := range blocks {
		if slot == b.end {
			return false
		}
	}
	for _, b := range blocks {
		if slot >= b.start && slot < b.end {
			return true
		}
	}
	return false
}

func parseMinutes(s string) (int, bool) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, false
	}
	m, err := ts.Minutes()
	if err != nil {
		return 0, false
	}
	return m, true
}
