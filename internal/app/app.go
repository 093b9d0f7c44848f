package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/http/player_stats_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/telegram/answer_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/telegram/info_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/telegram/quiz_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/telegram/report_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/handlers/telegram/start_handler"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/middleware"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/app/telegram"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/messages"
	playersRepo "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/repository"
	playersService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/players/service"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/questions"
	quizService "github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/quiz/service"
	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
	"gopkg.in/telebot.v4"
)

type Services struct {
	playerService *playersService.PlayerService
	quizService   *quizService.QuizService
}

type App struct {
	config *config.Config
	bot    *telebot.Bot
	db     *pgxpool.Pool
	server *http.Server

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	bank, err := questions.Load(configImpl.QuestionsFile)
	if err != nil {
		return nil, fmt.Errorf("questions.Load: %w", err)
	}

	var store playersRepo.PlayerStore
	var db *pgxpool.Pool
	if configImpl.Storage.Type == config.StoragePostgres {
		db, err = InitDatabase(configImpl)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := RunMigrations(configImpl); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		store = playersRepo.NewPlayerRepository(db)
	} else {
		store = playersRepo.NewMemoryStore()
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  configImpl.TelegramBot.Token,
		Poller: newPoller(configImpl),
	})
	if err != nil {
		return nil, fmt.Errorf("telebot.NewBot: %w", err)
	}

	app := &App{
		config: configImpl,
		bot:    bot,
		db:     db,
	}

	app.initServices(bank, store)
	app.bootstrapMiddleware()
	app.bootstrapHandlersTelegram()

	return app, nil
}

// Функция для инициализации сервисов
func (app *App) initServices(bank *questions.Bank, store playersRepo.PlayerStore) {
	messenger := telegram.NewMessenger(app.bot)

	app.playerService = playersService.NewPlayerService(store)
	app.quizService = quizService.NewQuizService(bank, app.playerService, messenger)
}

// bootstrapMiddleware - регистрирует middleware для бота
func (app *App) bootstrapMiddleware() {
	app.bot.Use(middleware.Recover())
	if app.config.Debug {
		customLogger := log.New(os.Stdout, "[bot] ", log.LstdFlags)
		app.bot.Use(middleware.Logger(customLogger))
	}
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Handle("/start", start_handler.NewStartHandler().GetHandlerFunc())

	// Запуск игры: команда /quiz или кнопка "Начать игру".
	quizHandler := quiz_handler.NewQuizHandler(app.quizService)
	app.bot.Handle("/quiz", quizHandler.GetHandlerFunc())
	app.bot.Handle(telebot.OnText, func(c telebot.Context) error {
		if c.Text() == messages.StartGameButton {
			return quizHandler.Handle(c)
		}
		return nil
	})

	// Обработчик нажатий на кнопки вариантов ответа.
	app.bot.Handle(&telebot.InlineButton{Unique: telegram.AnswerButtonUnique},
		answer_handler.NewAnswerHandler(app.quizService).GetHandlerFunc())

	app.bot.Handle("/info", info_handler.NewInfoHandler(app.quizService).GetHandlerFunc())
	app.bot.Handle("/report", report_handler.NewReportHandler(app.quizService, app.config.TelegramBot.AdminIDs).GetHandlerFunc())
}

// ListenAndServe запускает оба сервера (Telegram и HTTP) и блокируется
// до завершения одного из них.
func (app *App) ListenAndServe() error {
	g := new(errgroup.Group)

	g.Go(func() error {
		app.bot.Start()
		return nil
	})

	mx := http.NewServeMux()
	mx.Handle("GET /players/stats", player_stats_handler.NewPlayerStatsHandler(app.quizService))

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", app.config.Server.Host, app.config.Server.Port),
		Handler: mx,
	}

	g.Go(func() error {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
