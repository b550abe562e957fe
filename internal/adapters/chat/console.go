package chat

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleIncoming = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleOutgoing = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleFail     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	stylePrompt   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

const bannerArt = `
        ██████╗  ██████╗ ████████╗
        ██╔══██╗██╔═══██╗╚══██╔══╝
        ██████╔╝██║   ██║   ██║
        ██╔══██╗██║   ██║   ██║
        ██████╔╝╚██████╔╝   ██║
        ╚═════╝  ╚═════╝    ╚═╝
`

// Banner devuelve el arte de arranque ya estilizado.
func Banner() string {
	return styleOutgoing.Render(bannerArt) + "\n" +
		stylePrompt.Render("--- Instagram Chat Bot Initializing ---")
}

// Console es la salida colorida en terminal: eco del chat y el prompt
// interactivo para escribir al grupo desde la consola.
type Console struct {
	username string
}

func NewConsole(username string) *Console {
	return &Console{username: username}
}

func (c *Console) Incoming(user, text string) {
	fmt.Println(styleIncoming.Render(fmt.Sprintf("[%s]: %s", user, text)))
}

func (c *Console) Outgoing(text string) {
	fmt.Println(styleOutgoing.Render("[BOT RESPONSE]: " + firstLine(text)))
}

func (c *Console) Success(text string) {
	fmt.Println(styleOutgoing.Render(text))
}

func (c *Console) Warn(text string) {
	fmt.Println(styleWarn.Render(text))
}

func (c *Console) Fail(text string) {
	fmt.Println(styleFail.Render(text))
}

// InputLoop lee líneas de stdin y las manda al grupo. "exit" corta; bloquea
// solo a la goroutine de consola, nunca al poll loop.
func (c *Console) InputLoop(ctx context.Context, sender Sender, threadID string) {
	fmt.Println(stylePrompt.Render("You can now type messages to send to the group chat."))
	fmt.Println("Type '" + styleWarn.Render("exit") + "' to quit.")

	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(stylePrompt.Render(fmt.Sprintf("chatbot@%s > ", c.username)))
		if !sc.Scan() {
			return
		}
		text := sc.Text()
		if text == "exit" {
			return
		}
		if text == "" {
			continue
		}
		if err := sender.DirectSend(ctx, threadID, text); err != nil {
			c.Fail(fmt.Sprintf("Error sending message: %v", err))
			continue
		}
		fmt.Println(styleOutgoing.Render("[SENT]: " + text))
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
