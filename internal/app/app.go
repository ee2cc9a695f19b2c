package app

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grouptab/ledger-bot/internal/closer"
	"github.com/grouptab/ledger-bot/internal/config"
	"github.com/grouptab/ledger-bot/migrations"
	"github.com/pressly/goose/v3"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config-path", ".env", "path to config file")
}

type App struct {
	serviceProvider *ServiceProvider
	bot             *tgbotapi.BotAPI
}

func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) Run() error {
	defer closer.CloseAll()

	return a.runTelegramBot()
}

func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initServiceProvider,
		a.initMigrations,
		a.initTelegramBot,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) initConfig(context.Context) error {
	err := config.Load(configPath)
	if err != nil {
		return err
	}
	log.Println("✅ Config loaded")
	return nil
}

func (a *App) initServiceProvider(context.Context) error {
	a.serviceProvider = NewServiceProvider()
	return nil
}

func (a *App) initMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(a.serviceProvider.SQLDB(ctx), "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Migrations applied")
	return nil
}

func (a *App) initTelegramBot(ctx context.Context) error {
	bot, err := a.serviceProvider.TelegramBot(ctx)
	if err != nil {
		return err
	}
	a.bot = bot
	return nil
}

func (a *App) runTelegramBot() error {
	log.Println("🤖 Telegram bot is starting...")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := a.bot.GetUpdatesChan(u)
	log.Println("🤖 Bot is running... (Press Ctrl+C to stop)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	botHandler := a.serviceProvider.BotHandler(context.Background())

	for {
		select {
		case <-sigChan:
			log.Println("\n⏹️  Shutting down gracefully...")
			return nil

		case update := <-updates:
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			log.Printf("📨 Message from %d in chat %d", update.Message.From.ID, update.Message.Chat.ID)

			// каждое сообщение - своя горутина; порядок внутри чата
			// обеспечивает блокировка сессии в обработчике
			go botHandler.HandleMessage(update.Message)
		}
	}
}
