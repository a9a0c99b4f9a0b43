package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/msomdec/course-api/internal/domain"
	"github.com/msomdec/course-api/internal/repository/sqldb"
	"github.com/msomdec/course-api/internal/service"
	"github.com/msomdec/course-api/internal/validate"
)

func newTestDB(t *testing.T) *sqldb.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqldb.Open(context.Background(), sqldb.DriverSQLite, dbPath)
	if err != nil {
		t.Fatalf("Open DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) (*service.AuthService, *sqldb.DB) {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	auth, err := service.NewAuthService(db.Users(), validate.New(), 4)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return auth, db
}

func fakeRegistration(f *gofakeit.Faker) service.RegisterInput {
	return service.RegisterInput{
		FirstName:    f.FirstName(),
		LastName:     f.LastName(),
		EmailAddress: f.Email(),
		Password:     f.Password(true, true, true, false, false, 12),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	in := fakeRegistration(gofakeit.New(1))
	user, err := auth.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.EmailAddress != in.EmailAddress {
		t.Fatalf("expected email %s, got %s", in.EmailAddress, user.EmailAddress)
	}
	if user.PasswordHash == in.Password || user.PasswordHash == "" {
		t.Fatal("expected password to be stored as a hash")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()
	f := gofakeit.New(2)

	first := fakeRegistration(f)
	if _, err := auth.Register(ctx, first); err != nil {
		t.Fatalf("first register: %v", err)
	}

	second := fakeRegistration(f)
	second.EmailAddress = first.EmailAddress
	_, err := auth.Register(ctx, second)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email_address = ?", first.EmailAddress).Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user with the email, got %d", count)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()
	valid := fakeRegistration(gofakeit.New(3))

	tests := []struct {
		name    string
		mutate  func(in *service.RegisterInput)
		message string
	}{
		{"missing first name", func(in *service.RegisterInput) { in.FirstName = "" }, `Please provide a value for the "firstName" field`},
		{"missing last name", func(in *service.RegisterInput) { in.LastName = "" }, `Please provide a value for the "lastName" field`},
		{"missing email", func(in *service.RegisterInput) { in.EmailAddress = "" }, `Please provide a value for the "emailAddress" field`},
		{"invalid email", func(in *service.RegisterInput) { in.EmailAddress = "nope" }, "Please provide a valid email address"},
		{"missing password", func(in *service.RegisterInput) { in.Password = "" }, `Please provide a value for the "password" field`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			_, err := auth.Register(ctx, in)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Messages) != 1 || verr.Messages[0] != tc.message {
				t.Fatalf("expected [%q], got %q", tc.message, verr.Messages)
			}
		})
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no users after validation failures, got %d", count)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	in := fakeRegistration(gofakeit.New(4))
	registered, err := auth.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := auth.Authenticate(ctx, in.EmailAddress, in.Password)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	in := fakeRegistration(gofakeit.New(5))
	if _, err := auth.Register(ctx, in); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := auth.Authenticate(ctx, in.EmailAddress, in.Password+"x")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, err := auth.Authenticate(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, fakeRegistration(gofakeit.New(6)))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := auth.GetUserByID(ctx, registered.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if user.EmailAddress != registered.EmailAddress {
		t.Fatalf("expected %s, got %s", registered.EmailAddress, user.EmailAddress)
	}
}
