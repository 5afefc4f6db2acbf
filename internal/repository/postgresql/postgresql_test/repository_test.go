package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timerod/timerod-backend-go/internal/domain/area"
	"github.com/timerod/timerod-backend-go/internal/domain/attendance"
	"github.com/timerod/timerod-backend-go/internal/domain/auth"
	"github.com/timerod/timerod-backend-go/internal/domain/company"
	"github.com/timerod/timerod-backend-go/internal/domain/employee"
	"github.com/timerod/timerod-backend-go/internal/domain/schedule"
	"github.com/timerod/timerod-backend-go/internal/domain/user"
	"github.com/timerod/timerod-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var testSetup *TestDatabaseSetup

func TestMain(m *testing.M) {
	setup, err := NewTestDatabase(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if setup == nil {
		fmt.Fprintln(os.Stderr, "TEST_DATABASE_URL not set, skipping repository tests")
		os.Exit(0)
	}
	testSetup = setup

	code := m.Run()
	setup.Close()
	os.Exit(code)
}

type fixture struct {
	company  company.Company
	area     area.Area
	schedule schedule.Schedule
	employee employee.Employee
	user     user.User
}

func seed(t *testing.T, ctx context.Context) fixture {
	t.Helper()
	require.NoError(t, testSetup.TruncateAllTables(ctx))
	db := testSetup.DB

	var f fixture
	var err error

	f.schedule, err = postgresql.NewScheduleRepository(db).Create(ctx, schedule.Schedule{
		Name: "Matutino", EntryTime: "08:00:00", ExitTime: "17:00:00", ToleranceMinutes: 10, Active: true,
	})
	require.NoError(t, err)

	f.company, err = postgresql.NewCompanyRepository(db).Create(ctx, company.Company{
		Name: "Acme", RFC: "ACM010101AAA", Active: true,
	})
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	f.user, err = postgresql.NewUserRepository(db).Create(ctx, user.User{
		CompanyID: f.company.ID, Email: "Ana@Acme.mx", PasswordHash: string(hash),
		FullName: "Ana López", Role: user.RoleEmployee, Active: true,
	})
	require.NoError(t, err)

	f.area, err = postgresql.NewAreaRepository(db).Create(ctx, area.Area{
		CompanyID: f.company.ID, Name: "Producción", ScheduleID: &f.schedule.ID, Active: true,
	})
	require.NoError(t, err)

	f.employee, err = postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		CompanyID: f.company.ID, AreaID: f.area.ID, UserID: &f.user.ID, EmployeeNumber: "E-001",
		FirstName: "Ana", LastNames: "López Ruiz", HireDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DailySalary: decimal.RequireFromString("450.50"), Active: true,
	})
	require.NoError(t, err)

	return f
}

func TestAttendanceRepository_ClockLifecycle(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx)
	repo := postgresql.NewAttendanceRepository(testSetup.DB)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	existing, err := repo.GetByEmployeeAndDate(ctx, f.employee.ID, day)
	require.NoError(t, err)
	assert.Nil(t, existing)

	created, ok, err := repo.InsertEntry(ctx, attendance.Attendance{
		EmployeeID: f.employee.ID, Date: day, EntryTime: &entry, Kind: attendance.KindNormal, Approved: true,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotZero(t, created.ID)
	assert.Equal(t, int32(1), created.Version)

	t.Run("second insert for the same day is rejected", func(t *testing.T) {
		_, ok, err := repo.InsertEntry(ctx, attendance.Attendance{
			EmployeeID: f.employee.ID, Date: day, EntryTime: &entry, Kind: attendance.KindNormal, Approved: true,
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	exit := entry.Add(9*time.Hour + 30*time.Minute)
	closing := created
	closing.ExitTime = &exit
	closing.RecomputeWorkedHours()

	closed, ok, err := repo.SetExit(ctx, closing)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(2), closed.Version)

	t.Run("stale exit loses", func(t *testing.T) {
		_, ok, err := repo.SetExit(ctx, closing)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.WorkedHours.Valid)
	assert.True(t, decimal.RequireFromString("9.5").Equal(got.WorkedHours.Decimal))
	require.NotNil(t, got.Employee)
	assert.Equal(t, "Ana López Ruiz", got.Employee.FullName)
	assert.Equal(t, "Acme", got.Employee.CompanyName)
	assert.Equal(t, "Producción", got.Employee.AreaName)

	t.Run("update requires the current version", func(t *testing.T) {
		stale := got
		stale.Version = 1
		_, ok, err := repo.Update(ctx, stale)
		require.NoError(t, err)
		assert.False(t, ok)

		got.Approved = false
		updated, ok, err := repo.Update(ctx, got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, got.Version+1, updated.Version)
	})

	records, err := repo.List(ctx, attendance.AttendanceFilter{CompanyID: &f.company.ID, DateFrom: &day, DateTo: &day})
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), attendance.ErrAttendanceNotFound)
}

func TestEmployeeRepository_ActiveEmployee(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx)
	repo := postgresql.NewEmployeeRepository(testSetup.DB)

	ae, err := repo.GetActiveEmployee(ctx, f.employee.ID)
	require.NoError(t, err)
	assert.Equal(t, f.company.ID, ae.CompanyID)
	assert.Nil(t, ae.ScheduleID)
	require.NotNil(t, ae.EffectiveScheduleID())
	assert.Equal(t, f.schedule.ID, *ae.EffectiveScheduleID())

	_, err = repo.Create(ctx, employee.Employee{
		CompanyID: f.company.ID, AreaID: f.area.ID, EmployeeNumber: "E-001",
		FirstName: "Otro", LastNames: "Empleado", HireDate: time.Now(), Active: true,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberExists)

	require.NoError(t, repo.SoftDelete(ctx, f.employee.ID))
	_, err = repo.GetActiveEmployee(ctx, f.employee.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUserRepository_GetByEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx)
	repo := postgresql.NewUserRepository(testSetup.DB)

	u, err := repo.GetByEmail(ctx, "ana@ACME.mx")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, u.ID)
	assert.Equal(t, "Acme", u.CompanyName)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, f.employee.ID, *u.EmployeeID)

	exists, err := repo.ExistsByEmail(ctx, f.company.ID, "ANA@acme.mx", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByEmail(ctx, "nobody@acme.mx")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	f := seed(t, ctx)
	repo := postgresql.NewRefreshTokenRepository(testSetup.DB)

	expires := time.Now().Add(time.Hour).Unix()
	require.NoError(t, repo.CreateRefreshToken(ctx, f.user.ID, "token-a", expires, auth.SessionTrackingRequest{}))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = repo.IsRefreshTokenRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, repo.RevokeRefreshToken(ctx, "token-a"))
	revoked, err = repo.IsRefreshTokenRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	n, err := repo.DeleteStale(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
