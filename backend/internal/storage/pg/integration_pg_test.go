package pg

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/domain"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *postgres.PostgresContainer
	storage, container = mustSetup(ctx)

	exitCode := m.Run()
	teardown(ctx, storage, container)
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *postgres.PostgresContainer) {
	dbName := "agora"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithInitScripts(filepath.Join("migrations", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// First, we wait for the container to log readiness twice.
			// This is because it will restart itself after the first startup.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	cfg := &config.Config{
		Public:  config.Public{QueryTimeout: 5 * time.Second},
		Private: config.Private{Pg: config.Pg{Host: host, Port: port, User: dbUser, Password: dbPassword, Dbname: dbName}},
	}
	storage, err := New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *postgres.PostgresContainer) {
	if err := storage.Cleanup(); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}

// =========================================================================
// Helpers
// =========================================================================

func truncate(t *testing.T) {
	t.Helper()
	_, err := storage.db.Exec("TRUNCATE users, threads, comments, thread_likes, comment_likes RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func user(id domain.UserId) domain.User {
	return domain.User{Id: id, Username: "user" + strconv.FormatInt(id, 10)}
}

func createThread(t *testing.T, author domain.User, title, description string) domain.ThreadId {
	t.Helper()
	id, err := storage.CreateThread(context.Background(), domain.ThreadCreationData{Author: author, Title: title, Description: description})
	require.NoError(t, err)
	return id
}

func createComment(t *testing.T, threadId domain.ThreadId, author domain.User, content string) domain.CommentId {
	t.Helper()
	id, err := storage.CreateComment(context.Background(), domain.CommentCreationData{ThreadId: threadId, Author: author, Content: content})
	require.NoError(t, err)
	return id
}

func requireNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err), "unexpected error: %v", err)
}

// =========================================================================
// Infrastructure
// =========================================================================

func TestPing(t *testing.T) {
	require.NoError(t, storage.Ping(context.Background()))
}

func TestQueryTimeout(t *testing.T) {
	impatient := &Storage{db: storage.db, cfg: &config.Config{Public: config.Public{QueryTimeout: time.Nanosecond}}}
	time.Sleep(time.Millisecond)

	_, err := impatient.ListThreadsWithStats(context.Background())

	require.Error(t, err)
	require.Equal(t, http.StatusServiceUnavailable, internal_errors.StatusCode(err))
}
