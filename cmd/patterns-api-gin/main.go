package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	lib "github.com/fwbench/patterns-api"
	"github.com/fwbench/patterns-api/config"
	"github.com/fwbench/patterns-api/store"
)

func main() {
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	port := flag.Int("port", 0, "listen port (overrides config)")
	flag.Parse()

	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dbPath != "" {
		config.Config.Database.Path = *dbPath
	}
	if *port != 0 {
		config.Config.Server.Port = *port
	}
	lib.InitLogging()

	st, err := store.Open(config.Config.Database.Path)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	app := lib.NewApp(st)
	server := lib.StartGinServer(app)
	lib.HandleGracefulShutdown(server)
}
