// Package bot initializes and runs the vouch bot: it opens the SQLite store,
// connects the Discord gateway session, registers the slash commands, and
// serves the liveness endpoint until the process is signalled to stop.
package bot

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/grandx/vouchbot/internal/bot/config"
	"github.com/grandx/vouchbot/internal/bot/discord"
	"github.com/grandx/vouchbot/internal/bot/health"
	vouchrepo "github.com/grandx/vouchbot/internal/bot/repositories/vouches"
	"github.com/grandx/vouchbot/internal/bot/selection"
	"github.com/grandx/vouchbot/internal/bot/vouches"
	"github.com/grandx/vouchbot/internal/logging"
)

// App wires every component together. All state is carried here and passed
// down explicitly; no package-level singletons.
type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	repo    *vouchrepo.SQLiteRepository
	session *discordgo.Session
	handler *discord.Handler
	health  *health.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	repo := vouchrepo.NewSQLiteRepository(db)
	service := vouches.NewService(repo)

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	handler := discord.NewHandler(
		logger,
		service,
		selection.NewRegistry(),
		strconv.FormatInt(cfg.LogChannelID, 10),
		discord.DefaultSelectionTimeout,
	)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		repo:    repo,
		session: session,
		handler: handler,
		health:  health.New(cfg.HealthAddr, logger),
	}, nil
}

// Run blocks until the context is cancelled, a termination signal arrives,
// or either the gateway session or the health server fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info(ctx, "starting vouchbot", "db_path", a.config.DatabasePath)

	if err := a.repo.Init(ctx); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	a.logger.Info(ctx, "database initialized")

	platform := discord.NewPlatform(a.session)

	a.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		a.logger.Info(ctx, "logged in", "user", r.User.Username, "user_id", r.User.ID)
		if err := discord.RegisterCommands(s); err != nil {
			a.logger.Error(ctx, "command registration failed", "error", err)
			return
		}
		if err := s.UpdateGameStatus(0, "Vouches Of GrandX Store"); err != nil {
			a.logger.Warn(ctx, "presence update failed", "error", err)
		}
	})
	a.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		a.handler.HandleInteraction(ctx, platform, i)
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.health.Run(ctx)
	})

	g.Go(func() error {
		if err := a.session.Open(); err != nil {
			return fmt.Errorf("open gateway session: %w", err)
		}
		<-ctx.Done()
		a.logger.Info(ctx, "closing gateway session")
		return a.session.Close()
	})

	err := g.Wait()

	if closeErr := a.db.Close(); closeErr != nil {
		a.logger.Warn(ctx, "database close", "error", closeErr)
	}
	return err
}
