package practice

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/storage"
	"github.com/lexhall/lawdesk/pkg/types"
)

func newPractice(t *testing.T) (*Practice, *storage.Memory) {
	t.Helper()
	adapter := storage.NewMemory()
	return New(adapter, zerolog.Nop()), adapter
}

func TestCaseSeedCollection(t *testing.T) {
	p, _ := newPractice(t)
	cases := p.Cases.Snapshot()

	require.Len(t, cases, 6)
	assert.Equal(t, "CS001", cases[0].ID)
	assert.Equal(t, "C-2025-042", cases[0].Number)
	assert.Equal(t, "王大明 v. 台北市政府", cases[0].Title)

	byStatus := map[string]int{}
	for _, c := range cases {
		byStatus[c.Status]++
	}
	assert.Equal(t, map[string]int{
		types.CaseStatusActive:       3,
		types.CaseStatusSuspended:    1,
		types.CaseStatusClosed:       1,
		types.CaseStatusConsultation: 1,
	}, byStatus)
}

func TestAddCaseContinuesSequences(t *testing.T) {
	p, _ := newPractice(t)

	created, err := p.Cases.Add(types.CaseDraft{
		Title: "Test v. Agency", Client: "王大明", ResponsibleUser: "張大律師",
		Category: "行政訴訟", Status: types.CaseStatusActive, Date: "2025-05-15",
	})
	require.NoError(t, err)

	// The id continues from the seed count and the number from the seed's
	// highest business number, so neither collides with existing records.
	assert.Equal(t, "CS007", created.ID)
	assert.Equal(t, "C-2025-043", created.Number)
	assert.Equal(t, 7, p.Cases.Count())
}

func TestUserSeedCollection(t *testing.T) {
	p, _ := newPractice(t)
	users := p.Users.Snapshot()

	require.Len(t, users, 5)
	assert.Equal(t, "USR001", users[0].ID)
	assert.Equal(t, types.RoleAdmin, users[0].Role)
	assert.Equal(t, types.UserStatusDisabled, users[4].Status)
}

func TestAddUserContinuesSequence(t *testing.T) {
	p, _ := newPractice(t)

	created, err := p.Users.Add(types.UserDraft{
		Username: "lin.lawyer", Name: "林律師", Email: "lin@lawfirm.com",
		Role: types.RoleLawyer, Status: types.UserStatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "USR006", created.ID)
}

func TestFeesStartEmpty(t *testing.T) {
	p, _ := newPractice(t)
	assert.Equal(t, 0, p.Fees.Count())

	created, err := p.Fees.Add(types.FeeDraft{
		CaseNumber: "C-2025-042", Direction: types.FeeReceivable, Category: "律師費",
		Amount: 50000, RecordDate: "2025-05-10", DueDate: "2025-06-10",
		Status: types.FeeStatusUnpaid,
	})
	require.NoError(t, err)
	assert.Equal(t, "FEE001", created.ID)
}

func TestTimeRecordsStartEmpty(t *testing.T) {
	p, _ := newPractice(t)
	assert.Equal(t, 0, p.Time.Count())

	created, err := p.Time.Add(types.TimeDraft{
		CaseNumber: "C-2025-042", User: "張大律師", Date: "2025-05-12",
		Minutes: 90, Description: "出庭準備",
	})
	require.NoError(t, err)
	assert.Equal(t, "TR001", created.ID)
}

func TestDocumentIDsAreUUIDs(t *testing.T) {
	p, _ := newPractice(t)

	first, err := p.Documents.Add(types.DocumentDraft{
		CaseID: "CS001", Title: "起訴狀", Type: "pleading", UploadedAt: "2025-05-02",
	})
	require.NoError(t, err)
	second, err := p.Documents.Add(types.DocumentDraft{
		CaseID: "CS001", Title: "答辯狀", Type: "pleading", UploadedAt: "2025-05-09",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDocumentsForCase(t *testing.T) {
	p, _ := newPractice(t)

	_, err := p.Documents.Add(types.DocumentDraft{CaseID: "CS001", Title: "起訴狀", Type: "pleading", UploadedAt: "2025-05-02"})
	require.NoError(t, err)
	_, err = p.Documents.Add(types.DocumentDraft{CaseID: "CS002", Title: "專利說明書", Type: "exhibit", UploadedAt: "2025-05-03"})
	require.NoError(t, err)
	_, err = p.Documents.Add(types.DocumentDraft{CaseID: "CS001", Title: "答辯狀", Type: "pleading", UploadedAt: "2025-05-09"})
	require.NoError(t, err)

	docs := DocumentsForCase(p, "CS001")
	require.Len(t, docs, 2)
	assert.Equal(t, "起訴狀", docs[0].Title)
	assert.Equal(t, "答辯狀", docs[1].Title)

	assert.Empty(t, DocumentsForCase(p, "CS099"))
}

func TestClientSeedCollection(t *testing.T) {
	p, _ := newPractice(t)
	clients := p.Clients.Snapshot()

	require.Len(t, clients, 6)
	assert.Equal(t, "CL001", clients[0].ID)
	assert.Equal(t, "CLT-001", clients[0].Code)
	assert.Equal(t, "王大明", clients[0].Name)
	assert.Equal(t, "A123456789", clients[0].NationalID)
	assert.Equal(t, "CLT-006", clients[5].Code)
}

func TestAddClientSharesSequence(t *testing.T) {
	p, _ := newPractice(t)

	created, err := p.Clients.Add(types.ClientDraft{
		NationalID: "G789012345", Name: "孫七", Phone: "0978-901-234",
		Email: "sun@example.com", CreatedDate: "2025-05-15",
	})
	require.NoError(t, err)

	// The id and the business code are formatted from one counter, so they
	// always carry the same number.
	assert.Equal(t, "CL007", created.ID)
	assert.Equal(t, "CLT-007", created.Code)
	assert.Equal(t, 7, p.Clients.Count())
}

func TestClientFilter(t *testing.T) {
	p, _ := newPractice(t)
	clients := p.Clients.Snapshot()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "all", wantIDs: []string{"CL001", "CL002", "CL003", "CL004", "CL005", "CL006"}},
		{name: "query over name", query: "張", wantIDs: []string{"CL003"}},
		{name: "query over code", query: "CLT-003", wantIDs: []string{"CL003"}},
		{name: "query over national id", query: "D456789012", wantIDs: []string{"CL004"}},
		{name: "query over phone", query: "0956", wantIDs: []string{"CL005"}},
		{name: "query over email", query: "zhao@", wantIDs: []string{"CL006"}},
		{name: "no match", query: "no-such-client", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientFilter.Apply(clients, tt.query, "")
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCountCasesForClient(t *testing.T) {
	p, _ := newPractice(t)

	assert.Equal(t, 1, CountCasesForClient(p, "王大明"))
	assert.Equal(t, 0, CountCasesForClient(p, "no-such-client"))

	_, err := p.Cases.Add(types.CaseDraft{
		Title: "王大明契約糾紛", Client: "王大明", ResponsibleUser: "李小律師",
		Category: "民事", Status: types.CaseStatusConsultation, Date: "2025-05-20",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, CountCasesForClient(p, "王大明"))
}

func TestClientFormValidation(t *testing.T) {
	errs := ClientForm.Validate(map[string]string{
		"national_id":  "A123456789",
		"name":         "王大明",
		"created_date": "2025-05-15",
	})
	assert.True(t, errs.Ok(), "unexpected errors: %v", errs)

	errs = ClientForm.Validate(map[string]string{
		"name":         "王大明",
		"created_date": "not-a-date",
	})
	require.False(t, errs.Ok())
	assert.Contains(t, errs, "national_id")
	assert.Contains(t, errs, "created_date")
}

func TestDocumentFilter(t *testing.T) {
	p, _ := newPractice(t)

	_, err := p.Documents.Add(types.DocumentDraft{CaseID: "CS001", Title: "起訴狀", Type: "pleading", UploadedAt: "2025-05-02"})
	require.NoError(t, err)
	_, err = p.Documents.Add(types.DocumentDraft{CaseID: "CS002", Title: "專利說明書", Type: "exhibit", UploadedAt: "2025-05-03"})
	require.NoError(t, err)
	_, err = p.Documents.Add(types.DocumentDraft{CaseID: "CS001", Title: "答辯狀", Type: "pleading", UploadedAt: "2025-05-09"})
	require.NoError(t, err)

	docs := p.Documents.Snapshot()

	byTitle := DocumentFilter.Apply(docs, "答辯", filter.TabAll)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "答辯狀", byTitle[0].Title)

	byType := DocumentFilter.Apply(docs, "", "pleading")
	require.Len(t, byType, 2)
	assert.Equal(t, "起訴狀", byType[0].Title)
	assert.Equal(t, "答辯狀", byType[1].Title)

	both := DocumentFilter.Apply(docs, "專利", "exhibit")
	require.Len(t, both, 1)
	assert.Equal(t, "專利說明書", both[0].Title)
}

func TestCountCasesByStatus(t *testing.T) {
	p, _ := newPractice(t)

	assert.Equal(t, 6, CountCasesByStatus(p, ""))
	assert.Equal(t, 3, CountCasesByStatus(p, types.CaseStatusActive))
	assert.Equal(t, 1, CountCasesByStatus(p, types.CaseStatusConsultation))
	assert.Equal(t, 0, CountCasesByStatus(p, "no-such-status"))
}

func TestCaseFilter(t *testing.T) {
	p, _ := newPractice(t)
	cases := p.Cases.Snapshot()

	tests := []struct {
		name       string
		query, tab string
		wantIDs    []string
	}{
		{name: "all", tab: filter.TabAll, wantIDs: []string{"CS001", "CS002", "CS003", "CS004", "CS005", "CS006"}},
		{name: "query over title", query: "專利", tab: filter.TabAll, wantIDs: []string{"CS002"}},
		{name: "query over number", query: "C-2025-036", tab: filter.TabAll, wantIDs: []string{"CS004"}},
		{name: "query over client", query: "趙六", tab: filter.TabAll, wantIDs: []string{"CS006"}},
		{name: "query over category", query: "民事", tab: filter.TabAll, wantIDs: []string{"CS004", "CS005"}},
		{name: "status tab", tab: types.CaseStatusActive, wantIDs: []string{"CS001", "CS002", "CS003"}},
		{name: "query and tab", query: "智慧", tab: types.CaseStatusActive, wantIDs: []string{"CS002", "CS003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaseFilter.Apply(cases, tt.query, tt.tab)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestUserFilter(t *testing.T) {
	p, _ := newPractice(t)
	users := p.Users.Snapshot()

	lawyers := UserFilter.Apply(users, "", types.RoleLawyer)
	require.Len(t, lawyers, 2)
	assert.Equal(t, "zhang.lawyer", lawyers[0].Username)

	byEmail := UserFilter.Apply(users, "wang@", filter.TabAll)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "USR004", byEmail[0].ID)
}

func TestValidateFeeDraft(t *testing.T) {
	valid := map[string]string{
		"case_number": "C-2025-042",
		"direction":   types.FeeReceivable,
		"category":    "律師費",
		"amount":      "50000",
		"record_date": "2025-05-10",
		"due_date":    "2025-06-10",
		"status":      types.FeeStatusUnpaid,
	}

	tests := []struct {
		name      string
		mutate    func(map[string]string)
		wantField string
	}{
		{name: "valid receivable", mutate: func(map[string]string) {}},
		{
			name:   "receivable may be overdue",
			mutate: func(v map[string]string) { v["status"] = types.FeeStatusOverdue },
		},
		{
			name: "payable may be paid",
			mutate: func(v map[string]string) {
				v["direction"] = types.FeePayable
				v["status"] = types.FeeStatusPaid
			},
		},
		{
			name: "payable never goes overdue",
			mutate: func(v map[string]string) {
				v["direction"] = types.FeePayable
				v["status"] = types.FeeStatusOverdue
			},
			wantField: "status",
		},
		{
			name:      "missing case number",
			mutate:    func(v map[string]string) { delete(v, "case_number") },
			wantField: "case_number",
		},
		{
			name:      "negative amount",
			mutate:    func(v map[string]string) { v["amount"] = "-500" },
			wantField: "amount",
		},
		{
			name:      "unknown direction",
			mutate:    func(v map[string]string) { v["direction"] = "sideways" },
			wantField: "direction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make(map[string]string, len(valid))
			for k, v := range valid {
				values[k] = v
			}
			tt.mutate(values)

			errs := ValidateFeeDraft(values)
			if tt.wantField == "" {
				assert.True(t, errs.Ok(), "unexpected errors: %v", errs)
				return
			}
			require.False(t, errs.Ok())
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestCollectionsPersistAcrossPractices(t *testing.T) {
	adapter := storage.NewMemory()
	first := New(adapter, zerolog.Nop())

	created, err := first.Cases.Add(types.CaseDraft{
		Title: "Test v. Agency", Client: "王大明", ResponsibleUser: "張大律師",
		Category: "行政訴訟", Status: types.CaseStatusActive, Date: "2025-05-15",
	})
	require.NoError(t, err)

	// A second Practice over the same adapter sees the stored collection,
	// not a fresh seed, and continues the sequences.
	second := New(adapter, zerolog.Nop())
	assert.Equal(t, 7, second.Cases.Count())

	got, found := second.Cases.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, "Test v. Agency", got.Title)

	next, err := second.Cases.Add(types.CaseDraft{
		Title: "Another", Client: "李四", ResponsibleUser: "李小律師",
		Category: "民事", Status: types.CaseStatusConsultation, Date: "2025-05-16",
	})
	require.NoError(t, err)
	assert.Equal(t, "CS008", next.ID)
	assert.Equal(t, "C-2025-044", next.Number)
}

func TestCaseFormRejectsUnknownStatus(t *testing.T) {
	errs := CaseForm.Validate(map[string]string{
		"title":            "t",
		"client":           "c",
		"responsible_user": "r",
		"category":         "民事",
		"status":           "archived",
		"date":             "2025-05-02",
	})
	require.False(t, errs.Ok())
	assert.Contains(t, errs, "status")
}
