package service

import (
	"fmt"
	"log"
	"strings"
)

// CustomCmdService define y resuelve los comandos creados por los usuarios
// con !addcmd. Redefinir un comando pisa el texto anterior.
type CustomCmdService struct {
	cmds CustomCommandStore
}

func NewCustomCmdService(cmds CustomCommandStore) *CustomCmdService {
	return &CustomCmdService{cmds: cmds}
}

// Add espera args = [<!nombre>, <texto...>]. Nombre sin "!" o texto vacío no
// escriben nada.
func (s *CustomCmdService) Add(username string, args []string) string {
	if len(args) < 2 {
		log.Printf("intento de !addcmd fallido de @%s por formato incorrecto", username)
		return "Usage: !addcmd <!command_name> <response text>"
	}
	name := strings.ToLower(args[0])
	if !strings.HasPrefix(name, "!") {
		log.Printf("intento de !addcmd fallido de @%s: el comando no empieza con '!'", username)
		return "Command name must start with '!'"
	}
	text := strings.Join(args[1:], " ")
	if err := s.cmds.Set(name, text); err != nil {
		return "⚠️ Couldn't save that command, try again later."
	}
	log.Printf("comando custom '%s' agregado por @%s", name, username)
	return fmt.Sprintf("✅ Custom command '%s' added!", name)
}

// Lookup devuelve el texto guardado tal cual, si el comando existe.
func (s *CustomCmdService) Lookup(name string) (string, bool) {
	return s.cmds.Get(name)
}
