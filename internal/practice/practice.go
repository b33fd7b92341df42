// Package practice wires the generic store, filter, and form machinery to
// the firm's entity types: cases, clients, users, fee records, time
// records, and documents. Each entity gets its own persisted slot, seed
// collection, filter configuration, and form schema.
package practice

import (
	"github.com/rs/zerolog"

	"github.com/lexhall/lawdesk/internal/storage"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// Practice bundles the per-entity stores over one storage adapter.
type Practice struct {
	Cases     *store.Store[types.Case, types.CaseDraft]
	Clients   *store.Store[types.Client, types.ClientDraft]
	Users     *store.Store[types.User, types.UserDraft]
	Fees      *store.Store[types.FeeRecord, types.FeeDraft]
	Time      *store.Store[types.TimeRecord, types.TimeDraft]
	Documents *store.Store[types.Document, types.DocumentDraft]
}

// New creates the stores. Collections are not read until first use.
func New(adapter storage.Adapter, log zerolog.Logger) *Practice {
	return &Practice{
		Cases:     store.New(caseDescriptor, adapter, log),
		Clients:   store.New(clientDescriptor, adapter, log),
		Users:     store.New(userDescriptor, adapter, log),
		Fees:      store.New(feeDescriptor, adapter, log),
		Time:      store.New(timeDescriptor, adapter, log),
		Documents: store.New(documentDescriptor, adapter, log),
	}
}
