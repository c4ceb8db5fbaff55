package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leadcoach/leadcoach-api/internal/domain"
)

// ProfileRepository реализует repository.ProfileRepository для PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository создает новый экземпляр ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, email, password_hash, first_name, last_name, avatar_url,
	tone_score, empathy_score, clarity_score, confidence_score, created_at
`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.FirstName,
		&p.LastName,
		&p.AvatarURL,
		&p.Scores.Tone,
		&p.Scores.Empathy,
		&p.Scores.Clarity,
		&p.Scores.Confidence,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create создает новый профиль
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, first_name, last_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FirstName,
		profile.LastName,
		profile.AvatarURL,
	).Scan(&profile.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return domain.ErrEmailTaken
		}
		return err
	}

	return nil
}

// GetByID получает профиль по ID
func (r *ProfileRepository) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, profileID))
}

// GetByEmail получает профиль по email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return scanProfile(r.db.QueryRow(ctx, query, email))
}

// UpdateInfo обновляет имя, фамилию и аватар профиля
func (r *ProfileRepository) UpdateInfo(ctx context.Context, profileID, firstName, lastName, avatarURL string) error {
	query := `
		UPDATE profiles
		SET first_name = $1, last_name = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $4
	`

	result, err := r.db.Exec(ctx, query, firstName, lastName, avatarURL, profileID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// UpdateScores записывает все четыре агрегированные оценки профиля
func (r *ProfileRepository) UpdateScores(ctx context.Context, profileID string, scores domain.Scores) error {
	query := `
		UPDATE profiles
		SET tone_score = $1,
		    empathy_score = $2,
		    clarity_score = $3,
		    confidence_score = $4,
		    updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query,
		scores.Tone, scores.Empathy, scores.Clarity, scores.Confidence, profileID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
