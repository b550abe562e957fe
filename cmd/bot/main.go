package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/linxfaizan/ig-chatbot/internal/adapters/chat"
	"github.com/linxfaizan/ig-chatbot/internal/adapters/insta"
	"github.com/linxfaizan/ig-chatbot/internal/app/service"
	"github.com/linxfaizan/ig-chatbot/internal/infra/config"
	"github.com/linxfaizan/ig-chatbot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	fmt.Println(chat.Banner())

	cfg := config.Load()

	// Storage (listas de contenido + JSON persistidos)
	st, err := storage.New(cfg.ListsDir, cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	scoreRepo := storage.NewScoreRepo(st)
	bdayRepo := storage.NewBirthdayRepo(st)
	cmdRepo := storage.NewCommandRepo(st)

	// Cliente de la plataforma: sesión guardada si hay, login si no
	cli := insta.New()
	if err := login(cli, cfg); err != nil {
		log.Fatalf("error durante el login: %v", err)
	}
	log.Printf("✅ logueado como %s", cfg.Username)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Services
	picker := service.NewPickerService()
	names := chat.NewUserCache(cli)
	content := service.NewContentService(st, picker)
	game := service.NewGameService(st, scoreRepo, picker)
	social := service.NewSocialService(cli, cfg.GroupThread, st, picker)
	scores := service.NewScoreService(scoreRepo, names)
	bdays := service.NewBirthdayService(bdayRepo, names)
	custom := service.NewCustomCmdService(cmdRepo)

	// Router + poller
	router := chat.NewRouter(cfg.GroupThread, cli, names, content, game, social, scores, bdays, custom)
	limiter := chat.NewLimiter()
	console := chat.NewConsole(cfg.Username)
	poller := chat.NewPoller(cli, cfg.GroupThread, router, limiter, names, console)

	log.Printf("✅ escuchando el grupo %s", cfg.GroupThread)
	go func() {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("poll loop terminó: %v", err)
			stop()
		}
	}()

	// La consola interactiva corre aparte; "exit" apaga todo
	go func() {
		console.InputLoop(ctx, cli, cfg.GroupThread)
		stop()
	}()

	<-ctx.Done()
	log.Println("👋 bot apagándose")
}

// login restaura la sesión dumpada si sigue viva; si venció o no existe,
// loguea de cero y re-dumpea.
func login(cli *insta.Client, cfg config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fresh := false
	if err := cli.RestoreSession(cfg.SessionFile); err != nil {
		fresh = true
	} else if err := cli.Timeline(ctx); err != nil {
		if !errors.Is(err, insta.ErrLoginRequired) {
			return err
		}
		log.Println("⚠️ sesión vencida, relogueando...")
		_ = os.Remove(cfg.SessionFile)
		fresh = true
	}

	if fresh {
		if err := cli.Login(ctx, cfg.Username, cfg.Password); err != nil {
			return err
		}
	}
	return cli.DumpSession(cfg.SessionFile, cfg.Username)
}
