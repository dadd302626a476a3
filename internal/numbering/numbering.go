package numbering

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Sentinel отображается вместо номера, если сессию нельзя пронумеровать
const Sentinel = "-"

// Catalog источник количества сессий в пакете
type Catalog interface {
	SessionsForPackage(name string) int
}

// Number порядковый номер сессии в пакете
type Number struct {
	Ordinal int
	Total   int
}

func (n Number) String() string {
	return fmt.Sprintf("%d/%d", n.Ordinal, n.Total)
}

// Numberer нумерует сессии пакетов и считает использование пакетов
// Номер вычисляется по сохранённым данным на момент запроса и нигде не хранится
type Numberer struct {
	catalog Catalog
}

// New создает Numberer
func New(catalog Catalog) *Numberer {
	return &Numberer{catalog: catalog}
}

// SessionNumber номер сессии sessionID в её пакете
// false, если сессия, клиент или пакет не найдены либо сессия отменена
func (n *Numberer) SessionNumber(sessionID string, client *domain.Client, sessions []*domain.Session) (Number, bool) {
	target := findSession(sessionID, sessions)
	if target == nil || client == nil || target.ClientID != client.ID || target.PackageID == "" {
		return Number{}, false
	}
	pkg := client.FindPackage(target.PackageID)
	if pkg == nil {
		return Number{}, false
	}

	ordered := packageSequence(client.ID, pkg.ID, sessions)
	for i, s := range ordered {
		if s.ID == sessionID {
			return Number{
				Ordinal: pkg.SessionsUsedBase + i + 1,
				Total:   n.catalog.SessionsForPackage(pkg.Name),
			}, true
		}
	}
	return Number{}, false
}

// Label номер в виде "i/N" или Sentinel
func (n *Numberer) Label(sessionID string, client *domain.Client, sessions []*domain.Session) string {
	num, ok := n.SessionNumber(sessionID, client, sessions)
	if !ok {
		return Sentinel
	}
	return num.String()
}

// packageSequence сессии пакета, занимающие номер, в хронологическом порядке
// Нечитаемые даты идут в конце, отсутствующее время после любого указанного
func packageSequence(clientID, packageID string, sessions []*domain.Session) []*domain.Session {
	seq := make([]*domain.Session, 0)
	for _, s := range sessions {
		if s == nil || s.ClientID != clientID || s.PackageID != packageID || !s.IsOccupying() {
			continue
		}
		seq = append(seq, s)
	}

	sort.SliceStable(seq, func(i, j int) bool {
		return lessChronological(seq[i], seq[j])
	})
	return seq
}

func lessChronological(a, b *domain.Session) bool {
	da, aOK := parseDate(a.Date)
	db, bOK := parseDate(b.Date)
	switch {
	case aOK && !bOK:
		return true
	case !aOK && bOK:
		return false
	case aOK && bOK && !da.Equal(db):
		return da.Before(db)
	}

	ta, aOK := parseTime(a.Time)
	tb, bOK := parseTime(b.Time)
	switch {
	case aOK && !bOK:
		return true
	case !aOK && bOK:
		return false
	case aOK && bOK && ta != tb:
		return ta < tb
	}

	return a.ID < b.ID
}

func findSession(id string, sessions []*domain.Session) *domain.Session {
	for _, s := range sessions {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func parseTime(s string) (int, bool) {
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
