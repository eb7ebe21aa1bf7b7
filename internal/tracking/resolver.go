// Package tracking resolves a human-entered case code to a read-only case record.
package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/datalab-ge/datalab-api/internal/client"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"github.com/datalab-ge/datalab-api/internal/localstore"
	"github.com/datalab-ge/datalab-api/internal/mapper"
	"go.uber.org/zap"
)

var (
	// ErrEmptyCode means nothing was entered; no lookup is attempted
	ErrEmptyCode = errors.New("case code is empty")
	// ErrNotFoundLocal means a KB code has no manual task in the local store
	ErrNotFoundLocal = errors.New("case not found in local store")
	// ErrNotFoundRemote means the API answered 404 for the code
	ErrNotFoundRemote = errors.New("case not found")
	// ErrLookup wraps any other failure of the remote lookup
	ErrLookup = errors.New("case lookup failed")
)

// LocalTasks is the local manual-task store
type LocalTasks interface {
	GetByCaseID(ctx context.Context, caseID string) (*domain.ManualTask, error)
}

// RemoteCases is the API lookup by case code
type RemoteCases interface {
	GetCase(ctx context.Context, caseID string) (*domain.CaseRecord, error)
}

// Resolver routes a code to the local store or the API by prefix.
// Every call makes at most one attempt; nothing is cached.
type Resolver struct {
	local  LocalTasks
	remote RemoteCases
	logger *zap.Logger
}

func NewResolver(local LocalTasks, remote RemoteCases, logger *zap.Logger) *Resolver {
	return &Resolver{local: local, remote: remote, logger: logger}
}

// IsLocalCode reports whether code belongs to the manual Kanban track
func IsLocalCode(code string) bool {
	return len(code) >= len(domain.CaseCodePrefixManual) &&
		strings.EqualFold(code[:len(domain.CaseCodePrefixManual)], domain.CaseCodePrefixManual)
}

// Resolve looks code up and returns its tracking projection
func (r *Resolver) Resolve(ctx context.Context, code string) (*domain.CaseRecord, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	if IsLocalCode(code) {
		task, err := r.local.GetByCaseID(ctx, code)
		if err != nil {
			if errors.Is(err, localstore.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrNotFoundLocal, code)
			}
			r.logger.Warn("local case lookup failed", zap.String("case_id", code), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrLookup, err)
		}
		record := mapper.ManualTaskToCaseRecord(task)
		return &record, nil
	}

	record, err := r.remote.GetCase(ctx, code)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFoundRemote, code)
		}
		r.logger.Warn("remote case lookup failed", zap.String("case_id", code), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	// progress is derived here so records from older servers still carry it
	record.ProgressPercentage = domain.ProgressPercentage(record.Status)
	return record, nil
}
