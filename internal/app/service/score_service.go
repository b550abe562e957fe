package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

var medals = []string{"🥇", "🥈", "🥉"}

// ScoreService arma el leaderboard a partir del score persistido.
type ScoreService struct {
	scores ScoreStore
	names  NameResolver
}

func NewScoreService(scores ScoreStore, names NameResolver) *ScoreService {
	return &ScoreService{scores: scores, names: names}
}

// Leaderboard: top 3 con medallas, del 4 al 10 numerados. Empates quedan en
// el orden en que entraron al archivo (sort estable sobre el orden original).
func (s *ScoreService) Leaderboard(ctx context.Context) string {
	board := s.scores.All()
	if len(board) == 0 {
		return "🏆 Leaderboard is empty!"
	}
	sort.SliceStable(board, func(i, j int) bool { return board[i].Points > board[j].Points })

	var lines []string
	for i, e := range board {
		if i >= 10 {
			break
		}
		name := s.names.Resolve(ctx, e.UserID)
		if i < len(medals) {
			lines = append(lines, fmt.Sprintf("%s @%s: %d", medals[i], name, e.Points))
		} else {
			lines = append(lines, fmt.Sprintf("%d. @%s: %d", i+1, name, e.Points))
		}
	}
	return "🏆 *Leaderboard* 🏆\n\n" + strings.Join(lines, "\n")
}
