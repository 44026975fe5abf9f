package services

import (
	"context"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/andinosoft/contabilidad-api/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries.
type JournalEntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// JournalEntryWriterSvc defines write operations for journal entries.
type JournalEntryWriterSvc interface {
	// CreateEntry validates and persists a new entry; status is forced PENDING.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error)

	// UpdateEntry replaces header and lines of a PENDING entry.
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest, userID int64) (*domain.JournalEntry, error)

	// DeleteEntry hard-deletes a PENDING entry.
	DeleteEntry(ctx context.Context, entryID int64, userID int64) error
}

// JournalEntryLifecycleSvc defines the entry state-machine operations.
type JournalEntryLifecycleSvc interface {
	// ApproveEntry transitions PENDING -> APPROVED; requires a balanced entry.
	ApproveEntry(ctx context.Context, entryID int64, approverID int64) (*domain.JournalEntry, error)

	// AnnulEntry transitions APPROVED -> ANNULLED.
	AnnulEntry(ctx context.Context, entryID int64, userID int64) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal-entry service interfaces.
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
	JournalEntryLifecycleSvc
}
