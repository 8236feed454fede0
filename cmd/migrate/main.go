package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/emiratehr/payroll-backend-go/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version")
	dir := flag.String("dir", "migrations", "goose migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error opening database: ", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Error setting goose dialect: ", err)
	}

	if err := goose.RunContext(context.Background(), *cmd, db, *dir, flag.Args()...); err != nil {
		log.Fatalf("goose %s: %v", *cmd, err)
	}
}
