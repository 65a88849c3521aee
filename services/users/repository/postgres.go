package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/xpend/internal/pkg/database"
	apperrors "github.com/piresc/xpend/internal/pkg/errors"
	"github.com/piresc/xpend/internal/pkg/models"
)

const userColumns = `id, name, email, password, currency, notify_email, notify_sms,
	notify_budget_alerts, created_at, updated_at`

// UserRepo implements users.UserRepo on Postgres
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// userRow is the flattened users table row
type userRow struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	Email              string    `db:"email"`
	Password           string    `db:"password"`
	Currency           string    `db:"currency"`
	NotifyEmail        bool      `db:"notify_email"`
	NotifySMS          bool      `db:"notify_sms"`
	NotifyBudgetAlerts bool      `db:"notify_budget_alerts"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func toRow(u *models.User) userRow {
	return userRow{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Password:           u.Password,
		Currency:           u.Settings.Currency,
		NotifyEmail:        u.Settings.Notifications.Email,
		NotifySMS:          u.Settings.Notifications.SMS,
		NotifyBudgetAlerts: u.Settings.Notifications.BudgetAlerts,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (r userRow) toUser() *models.User {
	return &models.User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Settings: models.Settings{
			Currency: r.Currency,
			Notifications: models.Notifications{
				Email:        r.NotifyEmail,
				SMS:          r.NotifySMS,
				BudgetAlerts: r.NotifyBudgetAlerts,
			},
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CreateUser inserts user, assigning its id and timestamps
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.NewString()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (:id, :name, :email, :password, :currency, :notify_email, :notify_sms,
			:notify_budget_alerts, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toRow(user)); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.New(apperrors.ErrDuplicate, "User already exists")
		}
		return apperrors.Upstream("insert user", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

// getUserByField is a helper to get a user by a single column
func (r *UserRepo) getUserByField(ctx context.Context, field, value string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + field + ` = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) || database.IsInvalidText(err) {
			return nil, apperrors.New(apperrors.ErrNotFound, "User not found")
		}
		return nil, apperrors.Upstream("get user", err)
	}
	return row.toUser(), nil
}

// UpdateUser overwrites the mutable fields of user
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET name = :name, email = :email, password = :password, currency = :currency,
			notify_email = :notify_email, notify_sms = :notify_sms,
			notify_budget_alerts = :notify_budget_alerts, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, toRow(user))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.New(apperrors.ErrDuplicate, "Email already in use")
		}
		return apperrors.Upstream("update user", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Upstream("update user", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.ErrNotFound, "User not found")
	}
	return nil
}

// ListUsersWithBudgetAlerts returns every user who opted into budget alerts
func (r *UserRepo) ListUsersWithBudgetAlerts(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE notify_budget_alerts ORDER BY created_at`

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, apperrors.Upstream("list users", err)
	}
	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toUser())
	}
	return users, nil
}
