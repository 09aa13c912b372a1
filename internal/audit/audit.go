package audit

import (
	"database/sql"
	"time"
)

type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Log(action string, metadata string) {
	s.db.Exec(`
	INSERT INTO audit_logs(action, metadata, created_at)
	VALUES (?, ?, ?)
	`, action, metadata, time.Now().Unix())
}
