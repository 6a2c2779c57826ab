package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// Варианты сортировки списка рекомендаций.
const (
	SortLatest = "latest"
	SortLikes  = "likes"
)

const uniqueViolation = "23505"

const recommendationColumns = `id, name, address, reason, kakao_url, categories, created_at, COALESCE(likes, 0)`

// PostgresStorage предоставляет методы для работы с рекомендациями сообщества в PostgreSQL.
type PostgresStorage struct {
	db *sql.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
// или postgres:// URL.
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// ApplySchema выполняет DDL схемы (идемпотентный, с IF NOT EXISTS).
func (ps *PostgresStorage) ApplySchema(ctx context.Context, ddl string) error {
	if _, err := ps.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// ListRecommendations возвращает все рекомендации.
// SortLikes: по лайкам, затем по новизне; иначе сначала новые.
func (ps *PostgresStorage) ListRecommendations(ctx context.Context, sortBy string) ([]*models.Recommendation, error) {
	order := "created_at DESC"
	if sortBy == SortLikes {
		order = "COALESCE(likes, 0) DESC, created_at DESC"
	}
	query := `SELECT ` + recommendationColumns + ` FROM recommendations ORDER BY ` + order

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	recommendations := []*models.Recommendation{}
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recommendations, nil
}

// CreateRecommendation сохраняет новую рекомендацию.
// Имя уникально без учета регистра: повтор возвращает apperr.ErrConflict.
func (ps *PostgresStorage) CreateRecommendation(ctx context.Context, req *models.CreateRecommendationRequest) (*models.Recommendation, error) {
	var existing int
	err := ps.db.QueryRowContext(ctx,
		`SELECT id FROM recommendations WHERE lower(name) = lower($1) LIMIT 1`, req.Name,
	).Scan(&existing)
	switch {
	case err == nil:
		return nil, apperr.ErrConflict
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check duplicate recommendation: %w", err)
	}

	categories := req.Categories
	if categories == nil {
		categories = []string{}
	}

	row := ps.db.QueryRowContext(ctx,
		`INSERT INTO recommendations (name, address, reason, kakao_url, categories)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+recommendationColumns,
		req.Name, req.Address, req.Reason, req.KakaoURL, pq.Array(categories),
	)

	rec, err := scanRecommendation(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperr.ErrConflict
		}
		return nil, err
	}
	return rec, nil
}

// AddLike атомарно изменяет счетчик лайков на delta, не опуская его ниже нуля.
// Если записи нет, возвращается apperr.ErrRecordNotFound.
func (ps *PostgresStorage) AddLike(ctx context.Context, id int, delta int) (*models.Recommendation, error) {
	row := ps.db.QueryRowContext(ctx,
		`UPDATE recommendations
		 SET likes = GREATEST(0, COALESCE(likes, 0) + $1)
		 WHERE id = $2
		 RETURNING `+recommendationColumns,
		delta, id,
	)

	rec, err := scanRecommendation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrRecordNotFound
	}
	return rec, err
}

// rowScanner - общий интерфейс *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecommendation(row rowScanner) (*models.Recommendation, error) {
	var rec models.Recommendation
	var kakaoURL sql.NullString
	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Address,
		&rec.Reason,
		&kakaoURL,
		pq.Array(&rec.Categories),
		&rec.CreatedAt,
		&rec.Likes,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan recommendation: %w", err)
	}
	if kakaoURL.Valid {
		rec.KakaoURL = &kakaoURL.String
	}
	if rec.Categories == nil {
		rec.Categories = []string{}
	}
	return &rec, nil
}
