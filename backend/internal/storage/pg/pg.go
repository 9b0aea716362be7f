package pg

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	"github.com/itchan-dev/agora/shared/logger"
	sharedpg "github.com/itchan-dev/agora/shared/storage/pg"
	"github.com/lib/pq"
)

type Storage struct {
	db  *sql.DB
	cfg *config.Config
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, cfg: cfg}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return wrapErr("ping", s.db.PingContext(ctx))
}

// withTimeout bounds a single storage call by the configured query timeout.
func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg == nil || s.cfg.Public.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Public.QueryTimeout)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// wrapErr annotates err with op. Connection, resource and timeout failures
// become StorageUnavailable; errors that already carry a status pass through.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var withStatus *internal_errors.ErrorWithStatusCode
	if errors.As(err, &withStatus) {
		return err
	}
	if unavailable(err) {
		return internal_errors.StorageUnavailable(fmt.Errorf("%s: %w", op, err))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", // connection exception
			"53", // insufficient resources
			"57": // operator intervention, includes statement timeout
			return true
		}
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// upsertUser refreshes the local projection of an identity.
func upsertUser(ctx context.Context, q sharedpg.Querier, user domain.User) error {
	_, err := q.ExecContext(ctx, `
        INSERT INTO users (id, username) VALUES ($1, $2)
        ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
    `, user.Id, user.Username)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}
