package implementation

import (
	"context"
	"testing"
	"time"

	"ad-compliance-be/internal/entity"
	"ad-compliance-be/internal/model"
	"ad-compliance-be/internal/repository/contract"
	"ad-compliance-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) contract.AnalysisRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AnalysisResult{}))

	return NewAnalysisRepository(db)
}

func sampleResult(documentId string, score float64, uploadTime time.Time) *entity.AnalysisResult {
	return &entity.AnalysisResult{
		DocumentId:   documentId,
		DocumentName: "ad.mp4",
		UploadTime:   uploadTime,
		Status:       "Approved",
		Score:        score,
		FileType:     "video",
		FileURL:      "static/ad.mp4",
		Suggestions:  []string{"shorten the intro"},
		Conflicts:    []string{"audio masks the major statement"},
		Guidelines:   []string{"guideline 1", "guideline 2"},
		Summary:      "A 30s ad for a supplement.",
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	stored := sampleResult("doc-1", 82, time.Now())
	require.NoError(t, repo.Upsert(ctx, stored))

	got, err := repo.FindByDocumentId(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, stored.DocumentId, got.DocumentId)
	assert.Equal(t, stored.DocumentName, got.DocumentName)
	assert.Equal(t, stored.Status, got.Status)
	assert.Equal(t, stored.Score, got.Score)
	assert.Equal(t, stored.FileType, got.FileType)
	assert.Equal(t, stored.FileURL, got.FileURL)
	assert.Equal(t, stored.Suggestions, got.Suggestions)
	assert.Equal(t, stored.Conflicts, got.Conflicts)
	assert.Equal(t, stored.Guidelines, got.Guidelines)
	assert.Equal(t, stored.Summary, got.Summary)
}

func TestUpsertOverwritesSameDocumentId(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-1", 50, time.Now())))

	updated := sampleResult("doc-1", 95, time.Now())
	updated.Summary = "revised"
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.FindByDocumentId(ctx, "doc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 95.0, got.Score)
	assert.Equal(t, "revised", got.Summary)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not create a second row")
}

func TestFindByDocumentIdNotFound(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.FindByDocumentId(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindAllNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Now()
	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-old", 10, base.Add(-2*time.Hour))))
	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-new", 20, base)))
	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-mid", 30, base.Add(-1*time.Hour))))

	all, err := repo.FindAll(ctx, specification.OrderBy{Field: "upload_time", Desc: true})
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "doc-new", all[0].DocumentId)
	assert.Equal(t, "doc-mid", all[1].DocumentId)
	assert.Equal(t, "doc-old", all[2].DocumentId)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-1", 50, time.Now())))

	deleted, err := repo.Delete(ctx, "doc-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "doc-1")
	require.NoError(t, err)
	assert.False(t, deleted, "second delete should report not found")
}

func TestResetEmptiesStore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-1", 50, time.Now())))
	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-2", 60, time.Now())))

	require.NoError(t, repo.Reset(ctx))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Store is usable again after reset.
	require.NoError(t, repo.Upsert(ctx, sampleResult("doc-3", 70, time.Now())))
	got, err := repo.FindByDocumentId(ctx, "doc-3")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
