package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS recommendations (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    address     TEXT NOT NULL,
    reason      TEXT NOT NULL,
    kakao_url   TEXT,
    categories  TEXT[] NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    likes       INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS recommendations_lower_name_idx ON recommendations (lower(name));
TRUNCATE recommendations RESTART IDENTITY;
`

// newTestPostgres подключается к базе из POSTGRES_TEST_DSN; без нее тест пропускается.
func newTestPostgres(t *testing.T) *PostgresStorage {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN is not set")
	}

	ps, err := NewPostgresStorage(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { ps.Close() })

	require.NoError(t, ps.ApplySchema(context.Background(), testSchema))
	return ps
}

func TestRecommendationLifecycle(t *testing.T) {
	ps := newTestPostgres(t)
	ctx := context.Background()

	first, err := ps.CreateRecommendation(ctx, &models.CreateRecommendationRequest{
		Name: "강남 순대국", Address: "서울 강남구", Reason: "국물이 진해요",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, first.Likes)
	assert.Nil(t, first.KakaoURL)
	assert.Equal(t, []string{}, first.Categories)

	url := "http://place.map.kakao.com/2"
	second, err := ps.CreateRecommendation(ctx, &models.CreateRecommendationRequest{
		Name: "역삼 칼국수", Address: "서울 강남구", Reason: "면이 쫄깃", KakaoURL: &url, Categories: []string{"음식점", "프럼다이닝"},
	})
	require.NoError(t, err)
	assert.Equal(t, &url, second.KakaoURL)

	_, err = ps.CreateRecommendation(ctx, &models.CreateRecommendationRequest{
		Name: "강남 순대국", Address: "x", Reason: "y",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	liked, err := ps.AddLike(ctx, first.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.Likes)

	liked, err = ps.AddLike(ctx, first.ID, -1)
	require.NoError(t, err)
	liked, err = ps.AddLike(ctx, first.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, liked.Likes, "likes never go below zero")

	_, err = ps.AddLike(ctx, 9999, 1)
	assert.ErrorIs(t, err, apperr.ErrRecordNotFound)

	_, err = ps.AddLike(ctx, second.ID, 1)
	require.NoError(t, err)

	byLikes, err := ps.ListRecommendations(ctx, SortLikes)
	require.NoError(t, err)
	require.Len(t, byLikes, 2)
	assert.Equal(t, second.ID, byLikes[0].ID)

	latest, err := ps.ListRecommendations(ctx, SortLatest)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest[0].ID)
}
