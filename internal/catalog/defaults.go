package catalog

import "github.com/m04kA/SMC-StudioService/internal/domain"

func price(v float64) *float64 {
	return &v
}

func defaultEntries() []Entry {
	return []Entry{
		{Name: "Relax 5 sessões (30 min)", Sessions: 5, Period: domain.Period30Min, Price: price(400)},
		{Name: "Relax 10 sessões (30 min)", Sessions: 10, Period: domain.Period30Min, Price: price(750)},
		{Name: "Renove 5 sessões (1h)", Sessions: 5, Period: domain.Period1h, Price: price(725)},
		{Name: "Renove 10 sessões (1h)", Sessions: 10, Period: domain.Period1h, Price: price(1250)},
		{Name: "Revigore 5 sessões (1h30)", Sessions: 5, Period: domain.Period1h30, Price: price(925)},
		{Name: "Revigore 10 sessões (1h30)", Sessions: 10, Period: domain.Period1h30, Price: price(1650)},
		{Name: "Renovare 5 sessões (2h)", Sessions: 5, Period: domain.Period2h, Price: price(1375)},
		{Name: "Renovare 10 sessões (2h)", Sessions: 10, Period: domain.Period2h, Price: price(2550)},
		// цена не установлена
		{Name: "Pacote 20 sessões (1h30)", Sessions: 20, Period: domain.Period1h30},
	}
}

func defaultAvulsaRates() map[domain.Period]float64 {
	return map[domain.Period]float64{
		domain.Period30Min: 85,
		domain.Period1h:    160,
		domain.Period1h30:  200,
		domain.Period2h:    290,
	}
}
