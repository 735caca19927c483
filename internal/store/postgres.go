// Package store implements core.RoomDirectory.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkeye/Poker/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects through the pgx driver and checks the connection.
func OpenPostgres(ctx context.Context, url string) (*Postgres, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewPostgres(db), nil
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) DB() *sql.DB { return p.db }

func (p *Postgres) Close() error { return p.db.Close() }

func (p *Postgres) CodeExists(ctx context.Context, code domain.RoomCode) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rooms WHERE code = $1)`, string(code)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (p *Postgres) CreateRoom(ctx context.Context, code domain.RoomCode, name domain.RoomName, admin domain.UserID) (domain.Room, error) {
	room := domain.Room{Code: code, Name: name, AdminUserID: admin}
	err := p.db.QueryRowContext(ctx,
		`INSERT INTO rooms (code, name, admin_user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		string(code), string(name), string(admin)).Scan(&room.ID)
	if err != nil {
		return domain.Room{}, fmt.Errorf("db error: %w", err)
	}
	return room, nil
}

func (p *Postgres) FindRoom(ctx context.Context, code domain.RoomCode) (domain.Room, error) {
	room := domain.Room{Code: code}
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, admin_user_id FROM rooms WHERE code = $1`,
		string(code)).Scan(&room.ID, &room.Name, &room.AdminUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Room{}, domain.ErrRoomNotFound
		}
		return domain.Room{}, fmt.Errorf("db error: %w", err)
	}
	return room, nil
}

func (p *Postgres) UpsertMember(ctx context.Context, roomID domain.RoomID, user domain.UserID, name string, isAdmin bool) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO room_members (room_id, user_id, name, is_admin)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (room_id, user_id)
		 DO UPDATE SET name = EXCLUDED.name, is_admin = EXCLUDED.is_admin, last_seen = NOW()`,
		int64(roomID), string(user), name, isAdmin)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *Postgres) TouchMember(ctx context.Context, roomID domain.RoomID, user domain.UserID) error {
	_, err := p.db.ExecContext(ctx,
		`UPDATE room_members SET last_seen = NOW() WHERE room_id = $1 AND user_id = $2`,
		int64(roomID), string(user))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
