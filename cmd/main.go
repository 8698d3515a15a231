package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/Yippine/QuizForge-AI/internal/client"
	"github.com/Yippine/QuizForge-AI/internal/config"
	"github.com/Yippine/QuizForge-AI/internal/console"
	"github.com/Yippine/QuizForge-AI/internal/models"
	"github.com/Yippine/QuizForge-AI/internal/repository"
	"github.com/Yippine/QuizForge-AI/internal/service"
	"github.com/Yippine/QuizForge-AI/internal/storage/cache"
	"github.com/Yippine/QuizForge-AI/internal/storage/db"

	"go.uber.org/zap"
)

const usage = `usage: quizforge <command> [flags]

commands:
  practice   take a quiz (default)
  stats      show learning statistics
  wrong      show the wrong-question ledger
  validate   check the question bank
  bank       show question bank counts`

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func initStorage(cfg config.StorageConfig) (service.StorageI, func(), error) {
	if cfg.Driver == config.DriverMemory {
		return cache.NewCache(), func() {}, nil
	}

	conn, err := db.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	return repository.NewRepository(conn), func() { conn.Close() }, nil
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	command := "practice"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command, args = args[0], args[1:]
	}

	storage, closeStorage, err := initStorage(cfg.Storage)
	if err != nil {
		logger.Fatal("failed init storage", zap.Error(err))
	}
	defer closeStorage()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clients := client.InitClients(cfg.Sources)
	sources := make([]service.SourceI, 0, len(clients))
	for _, c := range clients {
		sources = append(sources, c)
	}

	services := service.InitServices(ctx, sources, storage, cfg.Stats.StaleAfter, logger)
	ui := console.NewConsole(os.Stdout, services, cfg.Quiz, logger)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.App.Timeout)
	questions, report, err := services.LoadBank(loadCtx)
	cancel()
	if err != nil && command != "stats" && command != "wrong" {
		logger.Fatal("failed to load question bank", zap.Error(err))
	}

	switch command {
	case "practice":
		err = runPractice(ctx, ui, services, cfg.Quiz, args)
	case "stats":
		err = runStats(ctx, ui, services, args)
	case "wrong":
		err = runWrong(ctx, ui, services, args)
	case "validate":
		ui.ShowReport(report)
		if !report.IsValid {
			os.Exit(1)
		}
	case "bank":
		ui.ShowBank(service.BankStats(questions), services.LoadedPerSource())
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

func runPractice(ctx context.Context, ui *console.Console, services *service.Service, cfg config.QuizConfig, args []string) error {
	fs := flag.NewFlagSet("practice", flag.ExitOnError)
	count := fs.Int("count", cfg.DefaultCount, "number of questions")
	topic := fs.String("topic", "", "topic code, OFFICIAL or an official sub-topic")
	subject := fs.String("subject", "", "L21 or L23")
	difficulties := fs.String("difficulty", "", "comma separated: simple,medium,hard")
	source := fs.String("source", string(models.SourceAll), "all, official or ai-generated")
	mode := fs.String("mode", string(models.ModePractice), "practice or exam")
	limit := fs.Duration("time", 0, "time limit, e.g. 30m (0 for none)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	services.SetTopic(*topic)
	services.SetSubject(models.Subject(*subject))
	services.SetSource(models.SourceFilter(*source))
	if *difficulties != "" {
		var ds []models.Difficulty
		for _, d := range strings.Split(*difficulties, ",") {
			ds = append(ds, models.Difficulty(strings.TrimSpace(d)))
		}
		services.SetDifficulties(ds)
	}

	_, err := ui.Practice(ctx, os.Stdin, console.QuizOptions{
		Mode:      models.QuizMode(*mode),
		TopicID:   *topic,
		Count:     *count,
		TimeLimit: *limit,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runStats(ctx context.Context, ui *console.Console, services *service.Service, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	reset := fs.Bool("reset", false, "clear the answer history")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *reset {
		services.ClearAnswerHistory(ctx)
	}
	ui.ShowStatistics()

	return nil
}

func runWrong(ctx context.Context, ui *console.Console, services *service.Service, args []string) error {
	fs := flag.NewFlagSet("wrong", flag.ExitOnError)
	remove := fs.String("remove", "", "remove one question from the ledger")
	clearAll := fs.Bool("clear", false, "clear the whole ledger")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *clearAll:
		services.ClearWrongQuestions(ctx)
	case *remove != "":
		if !services.RemoveFromWrongQuestions(ctx, *remove) {
			return fmt.Errorf("question %s is not in the ledger", *remove)
		}
	}
	ui.ShowWrongQuestions()

	return nil
}

