package database

import (
	"context"
	"database/sql"
)

// Schema statements are idempotent so the server can bootstrap a fresh
// database on first start. Farmers and officers are separate collections
// with separate unique keys; chat messages carry no owner column and are
// linked to a farmer through chat_refs, whose auto-increment id preserves
// append order. Tasks reference both parties directly.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS farmers (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name          VARCHAR(120)    NOT NULL,
		phone         VARCHAR(20)     NOT NULL,
		password_hash VARCHAR(100)    NOT NULL,
		location      VARCHAR(200)    NOT NULL,
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_farmers_phone (phone)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS officers (
		id             BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name           VARCHAR(120)    NOT NULL,
		phone          VARCHAR(20)     NOT NULL,
		password_hash  VARCHAR(100)    NOT NULL,
		location       VARCHAR(200)    NOT NULL,
		email          VARCHAR(160)    NOT NULL,
		license_number VARCHAR(60)     NOT NULL,
		aadhar         VARCHAR(20)     NOT NULL,
		created_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_officers_phone (phone),
		UNIQUE KEY uq_officers_email (email),
		UNIQUE KEY uq_officers_license (license_number),
		UNIQUE KEY uq_officers_aadhar (aadhar)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		sender     ENUM('user','agri','ai') NOT NULL,
		message    TEXT            NOT NULL,
		created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS chat_refs (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		farmer_id  BIGINT UNSIGNED NOT NULL,
		message_id BIGINT UNSIGNED NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_chat_refs_message (message_id),
		KEY ix_chat_refs_farmer (farmer_id),
		CONSTRAINT fk_chat_refs_farmer  FOREIGN KEY (farmer_id)  REFERENCES farmers (id),
		CONSTRAINT fk_chat_refs_message FOREIGN KEY (message_id) REFERENCES chat_messages (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		farmer_id   BIGINT UNSIGNED NOT NULL,
		officer_id  BIGINT UNSIGNED NOT NULL,
		description TEXT            NOT NULL,
		status      ENUM('pending','in-progress','completed') NOT NULL DEFAULT 'pending',
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY ix_tasks_officer (officer_id),
		KEY ix_tasks_farmer (farmer_id),
		CONSTRAINT fk_tasks_farmer  FOREIGN KEY (farmer_id)  REFERENCES farmers (id),
		CONSTRAINT fk_tasks_officer FOREIGN KEY (officer_id) REFERENCES officers (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
