package database

import (
	"context"
	"database/sql"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection before returning the
// pool. The DSN is assembled through the driver's own config type so the
// password never needs escaping. utf8mb4 is required because chat messages
// carry Malayalam text; loc=UTC keeps message and task timestamps consistent
// between the server and the database.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	dsn := mysql.Config{
		User:      user,
		Passwd:    pass,
		Net:       "tcp",
		Addr:      net.JoinHostPort(host, port),
		DBName:    name,
		Collation: "utf8mb4_unicode_ci",
		ParseTime: true,
		Loc:       time.UTC,
	}

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
