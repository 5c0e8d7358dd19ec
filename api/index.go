package handler

import (
	"context"
	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		var err error

		app, err = di.InitializeService(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize service")
		}
	})

	app.HTTP.ServeHTTP(w, r)
}
