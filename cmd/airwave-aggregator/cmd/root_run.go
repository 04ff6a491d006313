package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Styt0/airwave-aggregator/internal/catalog"
	"github.com/Styt0/airwave-aggregator/internal/config"
	"github.com/Styt0/airwave-aggregator/internal/locate"
	"github.com/Styt0/airwave-aggregator/internal/server"
	"github.com/Styt0/airwave-aggregator/internal/session"
	"github.com/Styt0/airwave-aggregator/internal/store"
)

var (
	st   store.Store
	sess *session.Session
	srv  *server.Server
)

func run(cmd *cobra.Command, args []string) error {
	tasks := []func() error{
		setLogLevel,
		printStartMessage,
		setupStorage,
		setupSession,
		startServer,
	}

	for _, t := range tasks {
		if err := t(); err != nil {
			log.Fatal(err)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	log.WithField("signal", <-sigChan).Info("signal received")

	log.Warning("stopping airwave-aggregator")
	srv.Stop()
	if err := st.Close(); err != nil {
		log.WithError(err).Error("close storage error")
	}

	return nil
}

func setLogLevel() error {
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
	return nil
}

func printStartMessage() error {
	log.WithFields(log.Fields{
		"version": config.Version,
	}).Info("starting Airwave Aggregator")
	return nil
}

func setupStorage() error {
	var err error
	switch config.C.Storage.Backend {
	case "sqlite", "":
		st, err = store.New(config.C.Storage.SQLite.Path)
	case "postgres":
		st, err = store.NewPostgres(config.C.Storage.Postgres.DSN)
	case "memory":
		st = store.NewMemory()
	default:
		return errors.Errorf("unknown storage backend %q", config.C.Storage.Backend)
	}
	if err != nil {
		return errors.Wrap(err, "setup storage error")
	}
	log.WithField("backend", st.BackendType()).Info("storage ready")
	return nil
}

func setupSession() error {
	provider := locate.Static{}
	if coords, ok := config.C.StaticCoordinates(); ok {
		provider = locate.Static{Coordinates: coords, Configured: true}
	}

	var err error
	sess, err = session.New(
		catalog.NewService(st),
		provider,
		session.WithRefreshInterval(config.C.Catalog.RefreshInterval),
		session.WithLocateTimeout(config.C.Catalog.Location.Timeout),
	)
	return errors.Wrap(err, "setup session error")
}

func startServer() error {
	var err error
	srv, err = server.New(sess)
	if err != nil {
		return errors.Wrap(err, "setup server error")
	}
	go func() {
		if err := srv.Start(config.C.Server.Bind); err != nil {
			log.Fatal(err)
		}
	}()
	return nil
}
