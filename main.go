package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/handlers"
)

func main() {
	log.Namespace = "ppcp-checkout-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	router := mux.NewRouter()
	chain := alice.New()

	handlers.Register(router, cfg)

	log.Info("Starting ppcp-checkout-api service")
	err = http.ListenAndServe(cfg.BindAddr, chain.Then(router))

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting ppcp-checkout-api service")
}
