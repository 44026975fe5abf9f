package repositories

import (
	"context"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntriesByCompany retrieves a paginated list of entries for a company,
	// optionally filtered by period, using token-based pagination.
	ListEntriesByCompany(ctx context.Context, companyID int64, periodID *int64, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveEntry persists a new entry and its lines atomically, assigning the
	// entry ID and the per-company/book entry number. Returns the saved entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// UpdateEntry replaces the header and the full line set of an existing
	// entry atomically. Returns the updated entry.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// UpdateEntryStatus transitions an entry's status, recording the approver
	// when the transition is an approval.
	UpdateEntryStatus(ctx context.Context, entryID int64, status domain.EntryStatus, approvedBy *int64, updatedBy int64, updatedAt time.Time) error

	// DeleteEntry hard-deletes an entry and its lines.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// JournalEntryRepositoryFacade combines all journal-entry repository interfaces.
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}
