package app

import (
	"context"
	"database/sql"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grouptab/ledger-bot/internal/client/db"
	"github.com/grouptab/ledger-bot/internal/client/db/pg"
	"github.com/grouptab/ledger-bot/internal/closer"
	"github.com/grouptab/ledger-bot/internal/config"
	"github.com/grouptab/ledger-bot/internal/config/env"
	"github.com/grouptab/ledger-bot/internal/handlers"
	"github.com/grouptab/ledger-bot/internal/repository"
	"github.com/grouptab/ledger-bot/internal/services"
	"github.com/grouptab/ledger-bot/internal/state"
	_ "github.com/lib/pq"
)

type ServiceProvider struct {
	pgConfig  config.PGConfig
	botConfig config.BotConfig

	dbClient db.Client

	// Repositories
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository

	// Services
	ledgerService *services.LedgerService

	// Handlers
	botHandler *handlers.BotHandler

	// State
	stateManager *state.Manager

	// Bot
	bot *tgbotapi.BotAPI
}

func NewServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (s *ServiceProvider) PGConfig() config.PGConfig {
	if s.pgConfig == nil {
		pgConfig, err := env.NewPGConfig()
		if err != nil {
			log.Fatalf("failed to get pg config: %v", err)
		}
		s.pgConfig = pgConfig
	}
	return s.pgConfig
}

func (s *ServiceProvider) BotConfig() config.BotConfig {
	if s.botConfig == nil {
		botConfig, err := env.NewBotConfig()
		if err != nil {
			log.Fatalf("failed to get bot config: %v", err)
		}
		s.botConfig = botConfig
	}
	return s.botConfig
}

func (s *ServiceProvider) DBClient(ctx context.Context) db.Client {
	if s.dbClient == nil {
		cl, err := pg.New(ctx, s.PGConfig().DSN())
		if err != nil {
			log.Fatalf("failed to get db client: %v", err)
		}

		closer.Add(func() error {
			return cl.Close()
		})
		s.dbClient = cl
	}
	return s.dbClient
}

func (s *ServiceProvider) SQLDB(ctx context.Context) *sql.DB {
	return s.DBClient(ctx).DB()
}

func (s *ServiceProvider) TransactionRepository(ctx context.Context) repository.TransactionRepository {
	if s.transactionRepo == nil {
		s.transactionRepo = repository.NewTransactionRepository(s.SQLDB(ctx))
	}
	return s.transactionRepo
}

func (s *ServiceProvider) UserRepository(ctx context.Context) repository.UserRepository {
	if s.userRepo == nil {
		s.userRepo = repository.NewUserRepository(s.SQLDB(ctx))
	}
	return s.userRepo
}

func (s *ServiceProvider) LedgerService(ctx context.Context) *services.LedgerService {
	if s.ledgerService == nil {
		s.ledgerService = services.NewLedgerService(
			s.TransactionRepository(ctx),
			s.UserRepository(ctx),
		)
	}
	return s.ledgerService
}

func (s *ServiceProvider) StateManager() *state.Manager {
	if s.stateManager == nil {
		s.stateManager = state.NewManager()
	}
	return s.stateManager
}

func (s *ServiceProvider) TelegramBot(ctx context.Context) (*tgbotapi.BotAPI, error) {
	if s.bot == nil {
		bot, err := tgbotapi.NewBotAPI(s.BotConfig().Token())
		if err != nil {
			return nil, err
		}
		bot.Debug = s.BotConfig().Debug()
		log.Printf("✅ Bot authorized: @%s", bot.Self.UserName)
		s.bot = bot
	}
	return s.bot, nil
}

func (s *ServiceProvider) BotHandler(ctx context.Context) *handlers.BotHandler {
	if s.botHandler == nil {
		bot, err := s.TelegramBot(ctx)
		if err != nil {
			log.Fatalf("failed to get telegram bot: %v", err)
		}

		s.botHandler = handlers.NewBotHandler(
			bot,
			s.LedgerService(ctx),
			s.StateManager(),
		)
	}
	return s.botHandler
}
