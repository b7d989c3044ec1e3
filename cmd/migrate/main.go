package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/fulfillment-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fulfillment-api/pkg/config"
	"github.com/jhoicas/fulfillment-api/pkg/logger"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "nivel de log (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: logLevel})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		var v uint
		var dirty bool
		v, dirty, err = m.Version()
		if err == nil {
			fmt.Printf("versión: %d dirty: %t\n", v, dirty)
		}
	case "force":
		if len(args) < 2 {
			printUsage()
			os.Exit(1)
		}
		var v int
		v, err = strconv.Atoi(args[1])
		if err == nil {
			err = m.Force(v)
		}
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("migración fallida")
	}
}

func printUsage() {
	fmt.Println(`uso: migrate [-log-level nivel] <comando>

comandos:
  up             aplica las migraciones pendientes
  down           revierte todas las migraciones
  version        muestra la versión actual
  force <n>      fija la versión sin ejecutar SQL`)
}
