package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/eskwela/admin/apps/api/echo"
	"github.com/eskwela/admin/core"
	"github.com/eskwela/admin/core/analytics"
	"github.com/eskwela/admin/core/content"
	"github.com/eskwela/admin/core/quiz"
	"github.com/eskwela/admin/core/user"
	emailsvc "github.com/eskwela/admin/services/email"
	logsvc "github.com/eskwela/admin/services/logger"
	inmemdb "github.com/eskwela/admin/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	// set up the in-memory store and seed the demo pools
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}
	if err = inmemdb.Seed(db, core.Conf); err != nil {
		logger.Fatal(fmt.Sprintf("seeding store: %v", err), err)
	}

	userRepo := inmemdb.NewUserRepository(db)
	contentRepo := inmemdb.NewContentRepository(db)
	quizRepo := inmemdb.NewQuizRepository(db)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	lat := core.NewLatency(core.Conf)
	usrSvc := user.NewService(userRepo, mailSvc, lat)
	contentSvc := content.NewService(contentRepo, lat)
	quizSvc := quiz.NewService(quizRepo, contentRepo, userRepo, lat)
	analyticsSvc := analytics.NewService(userRepo, contentRepo, quizRepo, core.Conf.Mock.Seed, lat)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", core.Conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.Options{
		Addr:         core.Conf.Server.Addr,
		Logger:       logger,
		UserSvc:      usrSvc,
		ContentSvc:   contentSvc,
		QuizSvc:      quizSvc,
		AnalyticsSvc: analyticsSvc,
	})

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", core.Conf.Server.Addr))
		serverErrors <- server.Start()
	}()

	// =========================================================================
	// Shutdown

	quitSig := make(chan os.Signal, 1)
	signal.Notify(quitSig, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErrors:
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-quitSig:
		shutdown(server, logger, fmt.Sprintf("%v", sig))

	case sig := <-server.ShutdownSignal():
		shutdown(server, logger, fmt.Sprintf("%v", sig))
	}
}

func shutdown(server echoapi.Server, logger core.Logger, sig string) {
	logger.Info(fmt.Sprintf("%s: Start shutdown...", sig))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}
