// Dispatch de comandos del chat: acá solo se rutea y se delega a los
// servicios; nada de lógica de juego en este archivo.
package chat

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/linxfaizan/ig-chatbot/internal/app/service"
)

// Lo implementa internal/adapters/insta.Client
type Sender interface {
	DirectSend(ctx context.Context, threadID, text string) error
}

const helpText = "🤖 Instagram Chat Bot Commands 🤖\n\n" +
	"🎉 Fun Commands:\n\n" +
	"!truth - Get a truth question.\n" +
	"!dare - Get a dare challenge.\n" +
	"!nhie - Never Have I Ever question.\n" +
	"!roast [@user] - Roast a user or a random member.\n\n" +
	"🕹️ Game Commands:\n\n" +
	"!trivia - Start a trivia challenge.\n" +
	"Fun: \n\n" +
	"!pick - Pick a random member from the group.\n" +
	"!ship [@user] - Ship a user with a random member.\n" +
	"!8ball - Ask the Magic 8-Ball a question.\n\n" +
	"Utilities: \n\n" +
	"!leaderboard - View the game leaderboard.\n" +
	"!setbday <dd-mm> - Set your birthday.\n" +
	"!birthdays - View upcoming birthdays.\n\n" +
	"Type commands starting with '!' to interact with the bot!\n\n" +
	"Coded with love by @linxfaizan"

type Router struct {
	threadID string
	sender   Sender
	names    *UserCache

	content *service.ContentService
	game    *service.GameService
	social  *service.SocialService
	scores  *service.ScoreService
	bdays   *service.BirthdayService
	custom  *service.CustomCmdService

	// reemplazable en tests; en producción mata el proceso entero
	exit func(code int)
}

func NewRouter(
	threadID string,
	sender Sender,
	names *UserCache,
	content *service.ContentService,
	game *service.GameService,
	social *service.SocialService,
	scores *service.ScoreService,
	bdays *service.BirthdayService,
	custom *service.CustomCmdService,
) *Router {
	return &Router{
		threadID: threadID,
		sender:   sender,
		names:    names,
		content:  content,
		game:     game,
		social:   social,
		scores:   scores,
		bdays:    bdays,
		custom:   custom,
		exit:     os.Exit,
	}
}

// HandleCommand resuelve un comando a su respuesta. Respuesta vacía =
// no mandar nada. cmd ya viene en minúsculas y con el "!" puesto.
func (r *Router) HandleCommand(ctx context.Context, senderID, cmd string, args []string) string {
	username := r.names.Resolve(ctx, senderID)

	switch cmd {

	case "!help":
		return helpText

	// ---- contenido ----
	case "!truth":
		return r.content.Truth(username)
	case "!dare":
		return r.content.Dare(username)
	case "!nhie":
		return r.content.NeverHaveIEver(username)
	case "!8ball":
		return r.content.EightBall(username)
	case "!files":
		return r.content.Files()

	// ---- social ----
	case "!roast":
		return r.social.Roast(ctx, senderID, username, args)
	case "!pick":
		return r.social.Pick(ctx)
	case "!ship":
		return r.social.Ship(ctx, args)

	// ---- trivia ----
	case "!trivia":
		return r.game.StartTrivia(senderID, username)
	case "!answer":
		// sin argumentos cae al fallback, como siempre se comportó
		if len(args) == 0 {
			return r.fallback(cmd)
		}
		return r.game.Answer(senderID, username, args)
	case "!skip":
		return r.game.Skip()

	// ---- utilidades ----
	case "!leaderboard":
		return r.scores.Leaderboard(ctx)
	case "!setbday":
		if len(args) == 0 {
			return r.fallback(cmd)
		}
		return r.bdays.Set(senderID, username, args[0])
	case "!birthdays":
		return r.bdays.List(ctx)
	case "!addcmd":
		return r.custom.Add(username, args)

	case "!exit":
		// cualquier miembro puede matar el bot; hay que mandar la
		// despedida ANTES de salir o el proceso muere con el mensaje
		// en la mano
		if err := r.sender.DirectSend(ctx, r.threadID, "🤖 Shutting down... Goodbye!"); err != nil {
			log.Printf("no pude mandar el mensaje final: %v", err)
		}
		r.exit(0)
		return ""

	default:
		return r.fallback(cmd)
	}
}

// fallback: primero comandos custom, si no hay, unknown.
func (r *Router) fallback(cmd string) string {
	if text, ok := r.custom.Lookup(cmd); ok {
		return text
	}
	return fmt.Sprintf("❓ Unknown command: %s. Type `!help` for a list of commands.", cmd)
}
