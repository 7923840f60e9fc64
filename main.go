package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/bistroworks/bistro-server/mongodb"
	"github.com/bistroworks/bistro-server/reporting"
	"github.com/bistroworks/bistro-server/runner"
	"github.com/bistroworks/bistro-server/settlement"
	"github.com/bistroworks/bistro-server/stripe"
	"github.com/bistroworks/bistro-server/web"
	"github.com/bistroworks/bistro-server/web/auth"
	"github.com/bistroworks/bistro-server/web/handlers"
)

func main() {
	_ = godotenv.Load() // Load .env file if present

	cfg := runner.ParseConfig()
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan

		log.Println("Received signal, shutting down...")

		cancel()
	}()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *runner.Config) error {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	client, err := mongodb.Connect(ctx, cfg.Dsn)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.Database)

	users := mongodb.NewUserRepository(db)
	menu := mongodb.NewMenuRepository(db)
	reviews := mongodb.NewReviewRepository(db)
	carts := mongodb.NewCartRepository(db)
	payments := mongodb.NewPaymentRepository(db)

	tokens := auth.NewTokenService([]byte(cfg.TokenSecret))
	authMw := auth.NewAuthMiddleware(tokens, users)

	var stripeClient stripe.Client
	if cfg.StripeSecretKey != "" {
		stripeClient = stripe.NewClient(cfg.StripeSecretKey)
	}

	group := handlers.NewHandlerGroup(handlers.Dependencies{
		Logger:     logger,
		Tokens:     tokens,
		Users:      users,
		Menu:       menu,
		Reviews:    reviews,
		Carts:      carts,
		Stripe:     stripeClient,
		Settlement: settlement.New(payments, carts),
		Reporting:  reporting.New(users, menu, payments),
	})

	srv := web.NewServer(cfg.Addr, group, authMw, logger)

	egroup, ctx := errgroup.WithContext(ctx)

	egroup.Go(func() error {
		return srv.Start(ctx)
	})

	return egroup.Wait()
}
