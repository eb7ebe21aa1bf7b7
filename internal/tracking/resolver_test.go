package tracking_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/client"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/localstore"
	"github.com/datalab-ge/datalab-api/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocal struct {
	tasks map[string]*domain.ManualTask
	err   error
}

func (f *fakeLocal) GetByCaseID(_ context.Context, caseID string) (*domain.ManualTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.tasks[caseID]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", localstore.ErrNotFound, caseID)
}

type fakeRemote struct {
	records map[string]*domain.CaseRecord
	err     error
	calls   int
}

func (f *fakeRemote) GetCase(_ context.Context, caseID string) (*domain.CaseRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.records[caseID]; ok {
		return r, nil
	}
	return nil, &client.StatusError{Method: http.MethodGet, Path: "/service-requests/" + caseID, StatusCode: http.StatusNotFound}
}

func newResolver(local *fakeLocal, remote *fakeRemote) *tracking.Resolver {
	return tracking.NewResolver(local, remote, zap.NewNop())
}

func TestResolve_EmptyCode(t *testing.T) {
	remote := &fakeRemote{}
	_, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "   ")

	assert.ErrorIs(t, err, tracking.ErrEmptyCode)
	assert.Zero(t, remote.calls)
}

func TestResolve_LocalMiss(t *testing.T) {
	remote := &fakeRemote{}
	_, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "KB1001")

	assert.ErrorIs(t, err, tracking.ErrNotFoundLocal)
	assert.Zero(t, remote.calls, "KB codes never reach the API")
}

func TestResolve_LocalHit(t *testing.T) {
	started := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	local := &fakeLocal{tasks: map[string]*domain.ManualTask{
		"KB20254321": {ID: "manual_1", CaseID: "KB20254321", Name: "Walk-in", Status: domain.StatusInProgress, StartedAt: &started},
	}}

	record, err := newResolver(local, &fakeRemote{}).Resolve(context.Background(), " KB20254321 ")

	require.NoError(t, err)
	assert.Equal(t, "KB20254321", record.CaseID)
	assert.Equal(t, 50, record.ProgressPercentage)
	assert.True(t, record.IsManual)
}

func TestResolve_LowercasePrefixRoutesLocallyButMatchesExactly(t *testing.T) {
	remote := &fakeRemote{}
	local := &fakeLocal{tasks: map[string]*domain.ManualTask{
		"KB20254321": {ID: "manual_1", CaseID: "KB20254321", Status: domain.StatusPending},
	}}

	_, err := newResolver(local, remote).Resolve(context.Background(), "kb20254321")

	assert.ErrorIs(t, err, tracking.ErrNotFoundLocal)
	assert.Zero(t, remote.calls, "kb codes are still local")
}

func TestResolve_RemoteNotFound(t *testing.T) {
	remote := &fakeRemote{}
	_, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "DL20250001")

	assert.ErrorIs(t, err, tracking.ErrNotFoundRemote)
	assert.NotErrorIs(t, err, tracking.ErrLookup)
	assert.Equal(t, 1, remote.calls)
}

func TestResolve_RemoteFailure(t *testing.T) {
	cause := errors.New("connection refused")
	remote := &fakeRemote{err: cause}

	_, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "DL20250001")

	assert.ErrorIs(t, err, tracking.ErrLookup)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, remote.calls, "no retry")
}

func TestResolve_RemoteServerError(t *testing.T) {
	remote := &fakeRemote{err: &client.StatusError{StatusCode: http.StatusInternalServerError}}

	_, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "DL20250001")

	assert.ErrorIs(t, err, tracking.ErrLookup)
	assert.NotErrorIs(t, err, tracking.ErrNotFoundRemote)
}

func TestResolve_RemoteHit(t *testing.T) {
	remote := &fakeRemote{records: map[string]*domain.CaseRecord{
		"DL20250001": {CaseID: "DL20250001", Status: domain.StatusCompleted},
	}}

	record, err := newResolver(&fakeLocal{}, remote).Resolve(context.Background(), "DL20250001")

	require.NoError(t, err)
	assert.Equal(t, 75, record.ProgressPercentage)
	assert.False(t, record.IsManual)
}

func TestIsLocalCode(t *testing.T) {
	assert.True(t, tracking.IsLocalCode("KB1"))
	assert.True(t, tracking.IsLocalCode("kb1"))
	assert.False(t, tracking.IsLocalCode("K"))
	assert.False(t, tracking.IsLocalCode("DL20250001"))
}
