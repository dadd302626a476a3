package numbering

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// Usage использование пакета
type Usage struct {
	Base      int // ручное смещение
	Done      int // выполненные сессии в системе
	Used      int // Base + Done
	Total     int // сессий в пакете по каталогу
	Remaining int
	Expired   bool
}

// DoneCount количество выполненных сессий пакета клиента
func DoneCount(clientID, packageID string, sessions []*domain.Session) int {
	count := 0
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if s.ClientID == clientID && s.PackageID == packageID && s.Status == domain.StatusDone {
			count++
		}
	}
	return count
}

// Usage считает использование пакета на дату today
func (n *Numberer) Usage(clientID string, pkg *domain.Package, sessions []*domain.Session, today time.Time) Usage {
	done := DoneCount(clientID, pkg.ID, sessions)
	total := n.catalog.SessionsForPackage(pkg.Name)
	used := pkg.SessionsUsedBase + done

	remaining := total - used
	if remaining < 0 {
		remaining = 0
	}

	return Usage{
		Base:      pkg.SessionsUsedBase,
		Done:      done,
		Used:      used,
		Total:     total,
		Remaining: remaining,
		Expired:   n.IsExpired(pkg, done, today),
	}
}

// IsExpired пакет просрочен, если дата действия прошла
// или ручное смещение вместе с выполненными сессиями исчерпало пакет
func (n *Numberer) IsExpired(pkg *domain.Package, done int, today time.Time) bool {
	if validityPassed(pkg.Validity, today) {
		return true
	}
	return pkg.SessionsUsedBase+done >= n.catalog.SessionsForPackage(pkg.Name)
}

// ActivePackages непросроченные пакеты клиента
func (n *Numberer) ActivePackages(client *domain.Client, sessions []*domain.Session, today time.Time) []*domain.Package {
	active := make([]*domain.Package, 0, len(client.Packages))
	for _, pkg := range client.Packages {
		if pkg == nil {
			continue
		}
		if n.IsExpired(pkg, DoneCount(client.ID, pkg.ID, sessions), today) {
			continue
		}
		active = append(active, pkg)
	}
	return active
}

// validityPassed true, если today позже даты действия
// Пустая или нечитаемая дата не ограничивает пакет
func validityPassed(validity string, today time.Time) bool {
	if validity == "" {
		return false
	}
	v, ok := parseDate(validity)
	if !ok {
		return false
	}
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return t.After(v)
}
