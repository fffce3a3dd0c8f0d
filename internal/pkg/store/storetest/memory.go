// Package storetest provides an in-memory store.Store for service and API tests.
package storetest

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
)

var _ store.Store = (*Memory)(nil)

type Memory struct {
	mu      sync.Mutex
	rows    map[domain.SourceKind][]domain.SourceRow
	tenders map[domain.Key]*domain.UnifiedTender

	// UpsertErr, when set, is returned by every upsert call, or only by the first
	// UpsertFailN calls when UpsertFailN is positive.
	UpsertErr   error
	UpsertFailN int
	UpsertCalls int
}

func NewMemory() *Memory {
	return &Memory{
		rows:    make(map[domain.SourceKind][]domain.SourceRow),
		tenders: make(map[domain.Key]*domain.UnifiedTender),
	}
}

// AddRow appends a raw source row. Rows are kept ordered by id like the real keyset query.
func (m *Memory) AddRow(kind domain.SourceKind, id, payload string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := append(m.rows[kind], domain.SourceRow{SourceID: id, Payload: []byte(payload)})
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].SourceID < rows[j].SourceID })
	m.rows[kind] = rows
}

// PutTender stores a unified tender directly, bypassing the upsert counters.
func (m *Memory) PutTender(t *domain.UnifiedTender) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *t
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	m.tenders[cp.Key()] = &cp
}

func (m *Memory) Tender(key domain.Key) (*domain.UnifiedTender, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tenders[key]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

func (m *Memory) TenderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tenders)
}

func (m *Memory) FetchBatch(ctx context.Context, opts store.FetchBatchOpts) ([]domain.SourceRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.SourceRow
	for _, row := range m.rows[opts.Table] {
		switch {
		case opts.SingleID != "":
			if row.SourceID != opts.SingleID {
				continue
			}
		case opts.SkipNormalized:
			if _, ok := m.tenders[domain.Key{SourceTable: opts.Table, SourceID: row.SourceID}]; ok {
				continue
			}
		}
		if opts.AfterID != "" && row.SourceID <= opts.AfterID {
			continue
		}

		out = append(out, row)
		if opts.Limit > 0 && uint64(len(out)) == opts.Limit {
			break
		}
	}

	return out, nil
}

func (m *Memory) CountNormalized(ctx context.Context, table domain.SourceKind) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for k := range m.tenders {
		if k.SourceTable == table {
			n++
		}
	}
	return n, nil
}

func (m *Memory) UpsertTender(ctx context.Context, tender *domain.UnifiedTender) error {
	return m.UpsertTenders(ctx, []*domain.UnifiedTender{tender})
}

func (m *Memory) UpsertTenders(ctx context.Context, tenders []*domain.UnifiedTender) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpsertCalls++
	if m.UpsertErr != nil && (m.UpsertFailN <= 0 || m.UpsertCalls <= m.UpsertFailN) {
		return m.UpsertErr
	}

	seen := make(map[domain.Key]struct{}, len(tenders))
	for _, t := range tenders {
		if _, ok := seen[t.Key()]; ok {
			return fmt.Errorf("on conflict do update command cannot affect row a second time: %s/%s", t.SourceTable, t.SourceID)
		}
		seen[t.Key()] = struct{}{}
	}

	for _, t := range tenders {
		if existing, ok := m.tenders[t.Key()]; ok {
			t.ID = existing.ID
		} else if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		cp := *t
		m.tenders[t.Key()] = &cp
	}

	return nil
}

func (m *Memory) GetTender(ctx context.Context, key domain.Key) (*domain.UnifiedTender, error) {
	t, ok := m.Tender(key)
	if !ok {
		return nil, fmt.Errorf("storetest.GetTender: %w", constants.ErrDBNotFound)
	}
	return t, nil
}

func (m *Memory) ListTendersPage(ctx context.Context, opts store.ListTendersPageOpts) ([]*domain.UnifiedTender, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]*domain.UnifiedTender, 0, len(m.tenders))
	for _, t := range m.tenders {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return bytes.Compare(all[i].ID[:], all[j].ID[:]) < 0 })

	var out []*domain.UnifiedTender
	for _, t := range all {
		if opts.AfterID != uuid.Nil && bytes.Compare(t.ID[:], opts.AfterID[:]) <= 0 {
			continue
		}
		cp := *t
		out = append(out, &cp)
		if opts.Limit > 0 && uint64(len(out)) == opts.Limit {
			break
		}
	}

	return out, nil
}

func (m *Memory) UpdateTenderFixes(ctx context.Context, fixes []store.TenderFix) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[uuid.UUID]*domain.UnifiedTender, len(m.tenders))
	for _, t := range m.tenders {
		byID[t.ID] = t
	}

	for _, fix := range fixes {
		t, ok := byID[fix.ID]
		if !ok {
			return fmt.Errorf("storetest.UpdateTenderFixes, id-%s: %w", fix.ID, constants.ErrDBNotFound)
		}
		t.Country = fix.Country
		t.NormalizedMethod = fix.NormalizedMethod
		t.OrganizationName = fix.OrganizationName
	}

	return nil
}
