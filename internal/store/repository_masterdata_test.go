package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

func newTestMasterRepo(t *testing.T, now time.Time) (*masterDataRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	repo := NewMasterDataRepository(db, logger.Nop()).(*masterDataRepository)
	repo.now = func() time.Time { return now }

	return repo, mock
}

func thirdPartyRow(t *testing.T, rows []models.ThirdParty) *sqlmock.Rows {
	t.Helper()
	payload, err := json.Marshal(rows)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"value"}).AddRow(string(payload))
}

// savedThirdParties decodes the upserted third-party collection.
type savedThirdParties struct {
	rows *[]models.ThirdParty
}

func (m savedThirdParties) Match(v driver.Value) bool {
	raw, ok := v.(string)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), m.rows) == nil
}

func TestMasterDataRepository_Materials_NeverDownloadedIsEmpty(t *testing.T) {
	repo, mock := newTestMasterRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyMaterials).WillReturnError(sql.ErrNoRows)

	rows, err := repo.Materials(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMasterDataRepository_ReplaceThirdParties_KeepsPendingRows(t *testing.T) {
	repo, mock := newTestMasterRepo(t, time.Now())

	ts := time.Now()
	current := []models.ThirdParty{
		{ID: "srv-1", Name: "Acme Recycling"},
		{ID: "local-1", Name: "Field Producer", Tag: models.TagCreate, TagSetAt: &ts},
	}
	mock.ExpectQuery("SELECT value").WithArgs(keyThirdParties).WillReturnRows(thirdPartyRow(t, current))

	var persisted []models.ThirdParty
	mock.ExpectExec("INSERT INTO records").
		WithArgs(keyThirdParties, savedThirdParties{rows: &persisted}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	serverCopy := []models.ThirdParty{{ID: "srv-2", Name: "Metro Waste"}}
	require.NoError(t, repo.ReplaceThirdParties(context.Background(), serverCopy))

	// The untagged local row is dropped, the pending one carried over.
	require.Len(t, persisted, 2)
	assert.Equal(t, "srv-2", persisted[0].ID)
	assert.Equal(t, "local-1", persisted[1].ID)
	assert.Equal(t, models.TagCreate, persisted[1].Tag)
}

func TestMasterDataRepository_CreateThirdParty(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestMasterRepo(t, now)

	mock.ExpectQuery("SELECT value").WithArgs(keyThirdParties).WillReturnError(sql.ErrNoRows)

	var persisted []models.ThirdParty
	mock.ExpectExec("INSERT INTO records").
		WithArgs(keyThirdParties, savedThirdParties{rows: &persisted}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	row, err := repo.CreateThirdParty(context.Background(), models.ThirdParty{Name: "Field Producer"})
	require.NoError(t, err)

	assert.NotEmpty(t, row.ID)
	assert.Equal(t, models.TagCreate, row.Tag)
	require.NotNil(t, row.TagSetAt)

	require.Len(t, persisted, 1)
	assert.Equal(t, row.ID, persisted[0].ID)
}

func TestMasterDataRepository_MarkThirdPartySynced_AdoptsServerID(t *testing.T) {
	repo, mock := newTestMasterRepo(t, time.Now())

	ts := time.Now()
	current := []models.ThirdParty{
		{ID: "local-1", Name: "Field Producer", Tag: models.TagCreate, TagSetAt: &ts},
	}
	mock.ExpectQuery("SELECT value").WithArgs(keyThirdParties).WillReturnRows(thirdPartyRow(t, current))

	var persisted []models.ThirdParty
	mock.ExpectExec("INSERT INTO records").
		WithArgs(keyThirdParties, savedThirdParties{rows: &persisted}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkThirdPartySynced(context.Background(), "local-1", "srv-9"))

	require.Len(t, persisted, 1)
	assert.Equal(t, "srv-9", persisted[0].ID)
	assert.Equal(t, models.TagNone, persisted[0].Tag)
	assert.Nil(t, persisted[0].TagSetAt)
}

func TestMasterDataRepository_MarkThirdPartySynced_NotFound(t *testing.T) {
	repo, mock := newTestMasterRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyThirdParties).WillReturnError(sql.ErrNoRows)

	err := repo.MarkThirdPartySynced(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMasterDataRepository_ReplaceVehicles(t *testing.T) {
	repo, mock := newTestMasterRepo(t, time.Now())

	mock.ExpectExec("INSERT INTO records").
		WithArgs(keyVehicles, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceVehicles(context.Background(), []models.Vehicle{{ID: "v-1", Plate: "1234-KLM"}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
