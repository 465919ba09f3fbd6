package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"guidelight/internal/member/domain"
	"guidelight/pkg/database"
	"guidelight/pkg/logger"
	testtool "guidelight/pkg/test_tool"
)

var (
	testPool  *pgxpool.Pool
	testMongo *database.MongoDB
)

const memberSchema = `
CREATE TABLE IF NOT EXISTS member (
	id        SERIAL PRIMARY KEY,
	member_id TEXT UNIQUE NOT NULL,
	email     TEXT UNIQUE NOT NULL,
	password  TEXT NOT NULL,
	status    INT  NOT NULL DEFAULT 0
)`

func TestMain(m *testing.M) {
	ctx := context.Background()
	logger.SetNewNop()

	pgContainer, pgHost, pgPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:latest",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "guidelight",
			"POSTGRES_PASSWORD": "guidelight",
			"POSTGRES_DB":       "member_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	})
	if err != nil {
		log.Fatalf("Failed to start Postgres container: %v", err)
	}

	mongoContainer, mongoHost, mongoPort, err := testtool.SetupContainer(ctx, testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})
	if err != nil {
		log.Fatalf("Failed to start MongoDB container: %v", err)
	}

	testPool, err = database.NewDatabaseConnection(database.Connection{
		ConnectStr: fmt.Sprintf("postgres://guidelight:guidelight@%s:%s/member_test?sslmode=disable",
			pgHost, pgPort),
		RetryCount:    5,
		RetryInterval: time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if _, err := testPool.Exec(ctx, memberSchema); err != nil {
		log.Fatalf("Failed to create member table: %v", err)
	}

	testMongo, err = database.NewMongoDB(ctx, database.Connection{
		ConnectStr:    fmt.Sprintf("mongodb://%s:%s", mongoHost, mongoPort),
		RetryCount:    5,
		RetryInterval: time.Second,
	}, "test_member_db")
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	code := m.Run()

	testPool.Close()
	_ = testMongo.Close(ctx)
	_ = pgContainer.Terminate(ctx)
	_ = mongoContainer.Terminate(ctx)

	os.Exit(code)
}

func TestMemberRepository_CredentialsLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository(testPool)

	member := &domain.Member{
		MemberID: uuid.New().String(),
		Email:    "lifecycle@example.com",
		Password: "hash-one",
	}
	assert.NoError(t, repo.CreateMember(ctx, member))

	email := "lifecycle@example.com"
	found, err := repo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, member.MemberID, found.MemberID)
	assert.Equal(t, domain.MemberStatusOffLine, found.Status)

	found.Status = domain.MemberStatusOnLine
	assert.NoError(t, repo.UpdateMemberStatus(ctx, found))

	assert.NoError(t, repo.UpdatePassword(ctx, member.MemberID, "hash-two"))

	again, err := repo.FindByMember(ctx, &domain.MemberQuery{MemberID: &member.MemberID})
	assert.NoError(t, err)
	assert.Equal(t, domain.MemberStatusOnLine, again.Status)
	assert.Equal(t, "hash-two", again.Password)
}

func TestMemberRepository_FindMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository(testPool)

	email := "nobody@example.com"
	_, err := repo.FindByMember(ctx, &domain.MemberQuery{Email: &email})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestProfileRepository_UsernameReservationIsExclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoProfileRepository(testMongo.Database)

	assert.NoError(t, repo.ReserveUsername(ctx, "Taylor", "uid-a"))

	// Same spelling in another case still collides on the lowercase _id.
	err := repo.ReserveUsername(ctx, "taylor", "uid-b")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	err = repo.ReserveUsername(ctx, "  TAYLOR ", "uid-c")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	assert.NoError(t, repo.ReleaseUsername(ctx, "Taylor"))
	assert.NoError(t, repo.ReserveUsername(ctx, "taylor", "uid-b"))
}

func TestProfileRepository_ProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoProfileRepository(testMongo.Database)

	uid := uuid.New().String()
	profile := &domain.Profile{
		UserID:        uid,
		Username:      "Morgan",
		UsernameLower: "morgan",
		Email:         "morgan@example.com",
		Role:          "student",
		CreatedAt:     time.Now().UnixMilli(),
	}
	assert.NoError(t, repo.CreateProfile(ctx, profile))

	assert.NoError(t, repo.SetOnline(ctx, uid, true))
	assert.NoError(t, repo.UpdateRole(ctx, uid, "professional"))
	assert.NoError(t, repo.SetAvatarURL(ctx, uid, "https://cdn.example.com/a.png"))

	got, err := repo.FindByID(ctx, uid)
	assert.NoError(t, err)
	assert.True(t, got.Online)
	assert.Greater(t, got.LastSeen, int64(0))
	assert.Equal(t, "professional", got.Role)
	assert.Equal(t, "https://cdn.example.com/a.png", got.AvatarURL)

	list, err := repo.FindByIDs(ctx, []string{uid, "missing"})
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Morgan", list[0].Username)
}
