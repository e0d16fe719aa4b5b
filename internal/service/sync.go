package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
	"github.com/ecowaste/fieldsync/models"
)

type syncService struct {
	api     adapter.RemoteAPI
	root    store.RootRepository
	master  store.MasterDataRepository
	wiper   StorageWiper
	pending *PendingCounter
	geo     GeolocationProvider
	logger  *logger.Logger

	// inFlight guards the single-pass invariant: a pass requested while
	// another runs is rejected, never queued.
	inFlight atomic.Bool
}

func NewSyncService(
	api adapter.RemoteAPI,
	root store.RootRepository,
	master store.MasterDataRepository,
	wiper StorageWiper,
	pending *PendingCounter,
	geo GeolocationProvider,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		api:     api,
		root:    root,
		master:  master,
		wiper:   wiper,
		pending: pending,
		geo:     geo,
		logger:  logger,
	}
}

func (s *syncService) begin() bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("sync pass rejected: another pass in flight")
		return false
	}
	return true
}

func (s *syncService) end() {
	s.inFlight.Store(false)
}

// Load implements [SyncService]. First-login download: nothing is pending
// yet, so no upload is attempted.
func (s *syncService) Load(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	defer s.end()

	if !s.api.Ping(ctx) {
		s.logger.Info().Msg("load skipped: server unreachable")
		return false
	}

	if err := s.download(ctx); err != nil {
		s.logger.Error().Err(err).Msg("load failed")
		s.pending.Recompute(ctx)
		return false
	}

	s.pending.Recompute(ctx)
	return true
}

// Upload implements [SyncService].
func (s *syncService) Upload(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	defer s.end()

	if err := s.upload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("upload pass aborted")
		return false
	}
	return true
}

// Refresh implements [SyncService]. Master data is uploaded best-effort
// first, then the transactional queue strictly, then everything is
// downloaded fresh.
func (s *syncService) Refresh(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	defer s.end()

	if !s.api.Ping(ctx) {
		s.logger.Info().Msg("refresh skipped: server unreachable")
		return false
	}

	s.uploadMasterData(ctx)

	if err := s.upload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("refresh upload aborted")
		return false
	}

	if err := s.download(ctx); err != nil {
		s.logger.Error().Err(err).Msg("refresh download failed")
		s.pending.Recompute(ctx)
		return false
	}

	s.pending.Recompute(ctx)
	return true
}

// Close implements [SyncService]. Storage is wiped only after a fully
// successful upload; a partial pass leaves everything in place for retry.
func (s *syncService) Close(ctx context.Context) bool {
	if !s.begin() {
		return false
	}
	defer s.end()

	if !s.api.Ping(ctx) {
		s.logger.Info().Msg("close skipped: server unreachable")
		return false
	}

	if err := s.upload(ctx); err != nil {
		s.logger.Error().Err(err).Msg("close upload incomplete, keeping local storage")
		return false
	}

	if err := s.wiper.ClearAll(ctx); err != nil {
		s.logger.Error().Err(err).Msg("clear local storage on close")
		return false
	}

	s.pending.Recompute(ctx)
	return true
}

// upload runs one upload pass over the persisted queue. On the first failed
// call it stops, persists the root exactly as it stands — tags already
// cleared stay cleared, partial progress is genuine server state — and
// returns the failure. Re-running only resubmits entities still tagged.
func (s *syncService) upload(ctx context.Context) error {
	root, err := s.root.Root(ctx)
	if err != nil {
		return fmt.Errorf("load local queue: %w", err)
	}

	pass := newUploadPass(s.api, s.geo, s.logger, &root)
	passErr := pass.run(ctx)
	pass.strip()

	if saveErr := s.root.SaveRoot(ctx, root); saveErr != nil {
		s.logger.Error().Err(saveErr).Msg("persist queue after upload pass")
		if passErr == nil {
			passErr = saveErr
		}
	}

	s.pending.Recompute(ctx)
	return passErr
}

// uploadMasterData pushes field-registered third parties. Strictly
// sequential and awaited; each failure skips the row, keeps its tag for the
// next pass, and never aborts the caller.
func (s *syncService) uploadMasterData(ctx context.Context) {
	rows, err := s.master.ThirdParties(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("read pending third parties")
		return
	}

	for _, row := range rows {
		if row.Tag != models.TagCreate {
			continue
		}

		serverID, err := s.api.CreateThirdParty(ctx, row)
		if err != nil {
			s.logger.Warn().Err(err).Str("third_party", row.ID).Msg("third party upload failed, keeping tag")
			continue
		}

		if err = s.master.MarkThirdPartySynced(ctx, row.ID, serverID); err != nil {
			s.logger.Error().Err(err).Str("third_party", row.ID).Msg("mark third party synced")
		}
	}
}

// download replaces the local reference collections and the transactional
// root with the server's authoritative copies. Local reference data has no
// independent mutation path, so last-write-wins from the server is correct
// by construction.
func (s *syncService) download(ctx context.Context) error {
	materials, err := s.api.Materials(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplaceMaterials(ctx, materials); err != nil {
		return err
	}

	points, err := s.api.Points(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplacePoints(ctx, points); err != nil {
		return err
	}

	thirdParties, err := s.api.ThirdParties(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplaceThirdParties(ctx, thirdParties); err != nil {
		return err
	}

	treatments, err := s.api.Treatments(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplaceTreatments(ctx, treatments); err != nil {
		return err
	}

	vehicles, err := s.api.Vehicles(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplaceVehicles(ctx, vehicles); err != nil {
		return err
	}

	packaging, err := s.api.Packaging(ctx)
	if err != nil {
		return err
	}
	if err = s.master.ReplacePackaging(ctx, packaging); err != nil {
		return err
	}

	root, err := s.api.TransactionRoot(ctx)
	if err != nil {
		return err
	}
	return s.root.SaveRoot(ctx, root)
}
