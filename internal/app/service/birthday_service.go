package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BirthdayService guarda y lista cumpleaños "dd-mm". La validación es
// deliberadamente laxa: solo exige dos componentes separados por un guión,
// igual que el bot siempre funcionó.
type BirthdayService struct {
	bdays BirthdayStore
	names NameResolver
}

func NewBirthdayService(bdays BirthdayStore, names NameResolver) *BirthdayService {
	return &BirthdayService{bdays: bdays, names: names}
}

func (s *BirthdayService) Set(userID, username, arg string) string {
	parts := strings.Split(arg, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "Please use the format `dd-mm` (e.g., `!setbday 25-12`)."
	}
	if err := s.bdays.Set(userID, arg); err != nil {
		return "⚠️ Couldn't save your birthday, try again later."
	}
	return fmt.Sprintf("🎂 Birthday for @%s set to %s.", username, arg)
}

// List ordena por (mes, día); el año no existe en el formato.
func (s *BirthdayService) List(ctx context.Context) string {
	bdays := s.bdays.All()
	if len(bdays) == 0 {
		return "No birthdays have been set yet!"
	}

	type entry struct {
		userID     string
		date       string
		month, day int
	}
	entries := make([]entry, 0, len(bdays))
	for uid, d := range bdays {
		day, month := parseDayMonth(d)
		entries = append(entries, entry{userID: uid, date: d, month: month, day: day})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].month != entries[j].month {
			return entries[i].month < entries[j].month
		}
		return entries[i].day < entries[j].day
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("@%s: %s", s.names.Resolve(ctx, e.userID), e.date))
	}
	return "🎂 *Upcoming Birthdays* 🎂\n\n" + strings.Join(lines, "\n")
}

// parseDayMonth tolera basura (la validación de entrada es laxa): lo que no
// parsea ordena como cero.
func parseDayMonth(s string) (day, month int) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0
	}
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	return day, month
}
