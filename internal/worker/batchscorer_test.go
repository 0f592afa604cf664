package worker_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"leadscore/internal/leads"
	"leadscore/internal/scoring"
	"leadscore/internal/worker"
	"leadscore/pkg/domain"
	"leadscore/pkg/logger"
	"leadscore/pkg/storage"
	mockstorage "leadscore/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newEngine(t *testing.T) *scoring.Engine {
	t.Helper()

	model, err := scoring.DefaultModel()
	require.NoError(t, err)

	return scoring.NewEngine(model)
}

func makeJob(id int64, batchID domain.BatchID, userID domain.UserID) *river.Job[leads.JobArgs] {
	return &river.Job[leads.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   leads.JobArgs{BatchID: batchID, UserID: userID},
	}
}

func pendingItems(batchID domain.BatchID, domains ...string) []storage.BatchItem {
	items := make([]storage.BatchItem, 0, len(domains))
	for i, d := range domains {
		items = append(items, storage.BatchItem{
			BatchID:       batchID,
			Index:         i,
			CompanyDomain: d,
			Profile:       domain.CompanyProfile{Domain: d},
		})
	}

	return items
}

// wires Storage.WithTx to run the callback against a fresh MockAllStorage.
func expectWithTx(
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestBatchScorerWorker_Work_ScoresAllItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{Workers: 2, ChunkSize: 10})

	running := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusRunning, TotalSubmitted: 2}

	// once up front, once before the only chunk
	st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(running, nil).Times(2)
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusRunning,
		domain.BatchStatusPending, domain.BatchStatusRunning).Return(running, nil)
	st.EXPECT().PendingBatchItems(gomock.Any(), batchID).Return(pendingItems(batchID, "acme.io", "globex.com"), nil)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RecordBatchItems(gomock.Any(), batchID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BatchID, items []storage.BatchItem, progress storage.BatchProgress) error {
				if len(items) != 2 {
					t.Fatalf("expected 2 recorded items, got %d", len(items))
				}
				for _, item := range items {
					if item.Outcome == nil {
						t.Fatalf("expected item %d to carry an outcome", item.Index)
					}
					if item.Error != "" {
						t.Fatalf("unexpected item error: %q", item.Error)
					}
				}
				if progress.Completed != 2 || progress.Succeeded != 2 || progress.Failed != 0 {
					t.Fatalf("unexpected progress: %+v", progress)
				}

				return nil
			})
	})
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusCompleted,
		domain.BatchStatusRunning).Return(running, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, batchID, userID)))
}

func TestBatchScorerWorker_Work_RecordsFailedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{Workers: 1, ChunkSize: 10})

	running := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusRunning, TotalSubmitted: 2}

	st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(running, nil).Times(2)
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusRunning,
		domain.BatchStatusPending, domain.BatchStatusRunning).Return(running, nil)
	// empty domain makes the second item unscorable but must not sink the batch
	st.EXPECT().PendingBatchItems(gomock.Any(), batchID).Return(pendingItems(batchID, "acme.io", ""), nil)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RecordBatchItems(gomock.Any(), batchID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BatchID, items []storage.BatchItem, progress storage.BatchProgress) error {
				if len(items) != 2 {
					t.Fatalf("expected 2 recorded items, got %d", len(items))
				}
				if items[0].Outcome == nil || items[0].Error != "" {
					t.Fatalf("expected first item scored, got %+v", items[0])
				}
				if items[1].Outcome != nil || items[1].Error == "" {
					t.Fatalf("expected second item failed, got %+v", items[1])
				}
				if items[1].Reason != "INVALID_PROFILE" {
					t.Fatalf("expected failure reason INVALID_PROFILE, got %q", items[1].Reason)
				}
				if items[0].Reason != "" {
					t.Fatalf("unexpected reason on a scored item: %q", items[0].Reason)
				}
				if progress.Completed != 2 || progress.Succeeded != 1 || progress.Failed != 1 {
					t.Fatalf("unexpected progress: %+v", progress)
				}

				return nil
			})
	})
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusCompleted,
		domain.BatchStatusRunning).Return(running, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2, batchID, userID)))
}

func TestBatchScorerWorker_Work_BatchGoneCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{})

	st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(nil, nil)

	err := w.Work(context.Background(), makeJob(3, batchID, userID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestBatchScorerWorker_Work_AlreadyCancelledIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{})

	cancelled := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusCancelled}
	st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(cancelled, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(4, batchID, userID)))
}

func TestBatchScorerWorker_Work_CancelBetweenChunksLeavesRestPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	// ChunkSize 1 forces a header re-read between the two items
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{Workers: 1, ChunkSize: 1})

	running := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusRunning, TotalSubmitted: 2}
	cancelled := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusCancelled, TotalSubmitted: 2}

	gomock.InOrder(
		st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(running, nil),
		st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusRunning,
			domain.BatchStatusPending, domain.BatchStatusRunning).Return(running, nil),
		st.EXPECT().PendingBatchItems(gomock.Any(), batchID).Return(pendingItems(batchID, "acme.io", "globex.com"), nil),
		st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(running, nil),
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(ctrl)
				tx.EXPECT().RecordBatchItems(gomock.Any(), batchID, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ domain.BatchID, items []storage.BatchItem, progress storage.BatchProgress) error {
						if len(items) != 1 || items[0].CompanyDomain != "acme.io" {
							t.Fatalf("expected only the first item recorded, got %+v", items)
						}
						if progress.Completed != 1 {
							t.Fatalf("unexpected progress: %+v", progress)
						}

						return nil
					})

				return cb(tx)
			}),
		st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(cancelled, nil),
	)
	// no terminal UpdateBatchStatus: the cancelled status must stand

	require.NoError(t, w.Work(context.Background(), makeJob(5, batchID, userID)))
}

func TestBatchScorerWorker_Work_CancelDuringFinalChunkKeepsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mockstorage.NewMockStorage(ctrl)
	batchID := domain.BatchID(uuid.New())
	userID := domain.UserID(uuid.New())
	w := worker.NewBatchScorerWorker(newEngine(t), st, leads.Options{Workers: 1, ChunkSize: 10})

	running := &storage.Batch{ID: batchID, UserID: userID, Status: domain.BatchStatusRunning, TotalSubmitted: 1}

	st.EXPECT().BatchByID(gomock.Any(), userID, batchID).Return(running, nil).Times(2)
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusRunning,
		domain.BatchStatusPending, domain.BatchStatusRunning).Return(running, nil)
	st.EXPECT().PendingBatchItems(gomock.Any(), batchID).Return(pendingItems(batchID, "acme.io"), nil)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RecordBatchItems(gomock.Any(), batchID, gomock.Any(), gomock.Any()).Return(nil)
	})

	// a cancel lands after the last chunk's status check: the conditional
	// completion matches no row and the cancelled status must stand
	st.EXPECT().UpdateBatchStatus(gomock.Any(), batchID, domain.BatchStatusCompleted,
		domain.BatchStatusRunning).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(6, batchID, userID)))
}
