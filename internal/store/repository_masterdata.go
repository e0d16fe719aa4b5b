package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

type masterDataRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

func NewMasterDataRepository(db *DB, logger *logger.Logger) MasterDataRepository {
	return &masterDataRepository{DB: db, logger: logger, now: time.Now}
}

func (m *masterDataRepository) ReplaceMaterials(ctx context.Context, rows []models.Material) error {
	return m.setJSON(ctx, keyMaterials, rows)
}

func (m *masterDataRepository) Materials(ctx context.Context) ([]models.Material, error) {
	var rows []models.Material
	if err := m.readRows(ctx, keyMaterials, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *masterDataRepository) ReplacePoints(ctx context.Context, rows []models.Point) error {
	return m.setJSON(ctx, keyPoints, rows)
}

func (m *masterDataRepository) Points(ctx context.Context) ([]models.Point, error) {
	var rows []models.Point
	if err := m.readRows(ctx, keyPoints, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReplaceThirdParties keeps pending field registrations: the server copy
// replaces everything else, but rows still tagged locally are carried over.
func (m *masterDataRepository) ReplaceThirdParties(ctx context.Context, rows []models.ThirdParty) error {
	current, err := m.ThirdParties(ctx)
	if err != nil {
		return err
	}

	merged := rows
	for _, row := range current {
		if row.Tag.Pending() {
			merged = append(merged, row)
		}
	}

	return m.setJSON(ctx, keyThirdParties, merged)
}

func (m *masterDataRepository) CreateThirdParty(ctx context.Context, row models.ThirdParty) (models.ThirdParty, error) {
	rows, err := m.ThirdParties(ctx)
	if err != nil {
		return models.ThirdParty{}, err
	}

	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	now := m.now()
	row.Tag = models.TagCreate
	row.TagSetAt = &now

	rows = append(rows, row)
	if err = m.setJSON(ctx, keyThirdParties, rows); err != nil {
		return models.ThirdParty{}, err
	}
	return row, nil
}

func (m *masterDataRepository) MarkThirdPartySynced(ctx context.Context, id, serverID string) error {
	rows, err := m.ThirdParties(ctx)
	if err != nil {
		return err
	}

	for i := range rows {
		if rows[i].ID != id {
			continue
		}
		if serverID != "" {
			rows[i].ID = serverID
		}
		rows[i].Tag = models.TagNone
		rows[i].TagSetAt = nil
		return m.setJSON(ctx, keyThirdParties, rows)
	}

	return fmt.Errorf("%w: third party %s", ErrNotFound, id)
}

func (m *masterDataRepository) ThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	var rows []models.ThirdParty
	if err := m.readRows(ctx, keyThirdParties, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *masterDataRepository) ReplaceTreatments(ctx context.Context, rows []models.Treatment) error {
	return m.setJSON(ctx, keyTreatments, rows)
}

func (m *masterDataRepository) Treatments(ctx context.Context) ([]models.Treatment, error) {
	var rows []models.Treatment
	if err := m.readRows(ctx, keyTreatments, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *masterDataRepository) ReplaceVehicles(ctx context.Context, rows []models.Vehicle) error {
	return m.setJSON(ctx, keyVehicles, rows)
}

func (m *masterDataRepository) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var rows []models.Vehicle
	if err := m.readRows(ctx, keyVehicles, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (m *masterDataRepository) ReplacePackaging(ctx context.Context, rows []models.Packaging) error {
	return m.setJSON(ctx, keyPackaging, rows)
}

func (m *masterDataRepository) Packaging(ctx context.Context) ([]models.Packaging, error) {
	var rows []models.Packaging
	if err := m.readRows(ctx, keyPackaging, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// readRows decodes a reference row; a collection that was never downloaded
// reads as empty rather than as an error.
func (m *masterDataRepository) readRows(ctx context.Context, key string, out any) error {
	err := m.getJSON(ctx, key, out)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	return err
}
