package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/linxfaizan/ig-chatbot/internal/domain"
)

// SocialService cubre los comandos que juegan con el roster del grupo:
// !roast, !pick y !ship.
type SocialService struct {
	roster   Roster
	threadID string
	store    ContentStore
	picker   *PickerService
}

func NewSocialService(roster Roster, threadID string, store ContentStore, picker *PickerService) *SocialService {
	return &SocialService{roster: roster, threadID: threadID, store: store, picker: picker}
}

// Roast tira una línea al target: la mención explícita si vino bien formada,
// si no un miembro random que no sea el que mandó el comando. Si el roster
// no responde, el roast le cae al que lo pidió.
func (s *SocialService) Roast(ctx context.Context, senderID, username string, args []string) string {
	roast, reset := s.picker.Pick("roasts", s.store.LoadList("roasts"))
	if roast == "" {
		return "🚫 No roasts found!"
	}

	target := "@" + username
	if len(args) > 0 && strings.HasPrefix(args[0], "@") && len(args[0]) > 1 {
		target = args[0]
	} else if members, err := s.roster.ThreadMembers(ctx, s.threadID); err == nil {
		var others []domain.Member
		for _, m := range members {
			if m.ID != senderID {
				others = append(others, m)
			}
		}
		if len(others) > 0 {
			target = "@" + others[rand.Intn(len(others))].Username
		}
	}
	return withReset(fmt.Sprintf("🔥 %s, %s", target, roast), reset)
}

// Pick elige un miembro cualquiera del grupo.
func (s *SocialService) Pick(ctx context.Context) string {
	members, err := s.roster.ThreadMembers(ctx, s.threadID)
	if err != nil {
		log.Printf("error en !pick: %v", err)
		return "🔮 My crystal ball is cloudy... I can't pick anyone right now."
	}
	if len(members) == 0 {
		return "Couldn't find any members to pick from!"
	}
	return fmt.Sprintf("🎲 The bot has chosen: @%s", members[rand.Intn(len(members))].Username)
}

// Ship empareja la mención con un miembro random distinto (match de username
// case-insensitive), o dos miembros random distintos si no hubo mención.
func (s *SocialService) Ship(ctx context.Context, args []string) string {
	members, err := s.roster.ThreadMembers(ctx, s.threadID)
	if err != nil {
		log.Printf("error en !ship: %v", err)
		return "🚢 The love boat is currently docked due to technical difficulties."
	}
	if len(members) < 2 {
		return "Not enough members to ship!"
	}

	var first, second string
	if len(args) > 0 && strings.HasPrefix(args[0], "@") {
		first = strings.TrimPrefix(args[0], "@")
		var others []domain.Member
		for _, m := range members {
			if !strings.EqualFold(m.Username, first) {
				others = append(others, m)
			}
		}
		if len(others) == 0 {
			return "Can't ship someone with themselves!"
		}
		second = others[rand.Intn(len(others))].Username
	} else {
		i := rand.Intn(len(members))
		j := rand.Intn(len(members) - 1)
		if j >= i {
			j++
		}
		first, second = members[i].Username, members[j].Username
	}
	return fmt.Sprintf("❤️ Ship: @%s x @%s ❤️", first, second)
}
