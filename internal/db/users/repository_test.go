package users_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/hiking-weather-service/internal/db/users"
)

type UserRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo users.Repository
	ctx  context.Context
}

func (s *UserRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	s.Require().NoError(err)

	s.repo = users.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *UserRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *UserRepositorySuite) TestCreate() {
	s.Run("Successfully creates a user", func() {
		createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		s.mock.ExpectBegin()
		s.mock.ExpectExec(`INSERT INTO "users"`).
			WithArgs("hiker@gmail.com", "hashed", createdAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		err := s.repo.Create(s.ctx, &users.User{
			Email:        "hiker@gmail.com",
			PasswordHash: "hashed",
			CreatedAt:    createdAt,
		})

		s.Require().NoError(err)
	})

	s.Run("Fills the creation time", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`INSERT INTO "users"`).
			WithArgs("new@gmail.com", "hashed", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		s.mock.ExpectCommit()

		user := &users.User{Email: "new@gmail.com", PasswordHash: "hashed"}
		err := s.repo.Create(s.ctx, user)

		s.Require().NoError(err)
		s.Require().False(user.CreatedAt.IsZero())
	})

	s.Run("Maps unique violations", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`INSERT INTO "users"`).
			WithArgs("taken@gmail.com", "hashed", sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
		s.mock.ExpectRollback()

		err := s.repo.Create(s.ctx, &users.User{Email: "taken@gmail.com", PasswordHash: "hashed"})

		s.Require().ErrorIs(err, users.ErrAlreadyExists)
	})

	s.Run("Returns error when database operation fails", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectExec(`INSERT INTO "users"`).
			WithArgs("broken@gmail.com", "hashed", sqlmock.AnyArg()).
			WillReturnError(errors.New("database error"))
		s.mock.ExpectRollback()

		err := s.repo.Create(s.ctx, &users.User{Email: "broken@gmail.com", PasswordHash: "hashed"})

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *UserRepositorySuite) TestGetByEmail() {
	queryRegex := `SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"."email" LIMIT \$2`

	s.Run("Successfully retrieves a user", func() {
		createdAt := time.Now()
		rows := sqlmock.NewRows([]string{"email", "password_hash", "created_at"}).
			AddRow("hiker@gmail.com", "hashed", createdAt)

		s.mock.ExpectQuery(queryRegex).
			WithArgs("hiker@gmail.com", 1).
			WillReturnRows(rows)

		user, err := s.repo.GetByEmail(s.ctx, "hiker@gmail.com")

		s.Require().NoError(err)
		s.Require().NotNil(user)
		s.Require().Equal("hiker@gmail.com", user.Email)
		s.Require().Equal("hashed", user.PasswordHash)
	})

	s.Run("Returns ErrNotFound when no record found", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("ghost@gmail.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"email", "password_hash", "created_at"}))

		user, err := s.repo.GetByEmail(s.ctx, "ghost@gmail.com")

		s.Require().ErrorIs(err, users.ErrNotFound)
		s.Require().Nil(user)
	})

	s.Run("Returns error when database query fails", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("hiker@gmail.com", 1).
			WillReturnError(errors.New("connection error"))

		user, err := s.repo.GetByEmail(s.ctx, "hiker@gmail.com")

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(user)
	})
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}
