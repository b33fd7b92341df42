package practice

import (
	"fmt"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// seedClients is the built-in default client registry.
var seedClients = []types.Client{
	{
		ID: "CL001", Code: "CLT-001", NationalID: "A123456789", Name: "王大明",
		Phone: "0912-345-678", Email: "wang@example.com",
		Address: "台北市中正區忠孝東路100號", CreatedDate: "2025-01-15",
	},
	{
		ID: "CL002", Code: "CLT-002", NationalID: "B234567890", Name: "林小華",
		Phone: "0923-456-789", Email: "lin@example.com",
		Address: "台北市大安區敦化南路200號", CreatedDate: "2025-02-20",
	},
	{
		ID: "CL003", Code: "CLT-003", NationalID: "C345678901", Name: "張三",
		Phone: "0934-567-890", Email: "zhang@example.com",
		Address: "新北市板橋區中山路300號", CreatedDate: "2025-03-10",
	},
	{
		ID: "CL004", Code: "CLT-004", NationalID: "D456789012", Name: "李四",
		Phone: "0945-678-901", Email: "li@example.com",
		Address: "台北市信義區信義路400號", CreatedDate: "2025-03-25",
	},
	{
		ID: "CL005", Code: "CLT-005", NationalID: "E567890123", Name: "陳五",
		Phone: "0956-789-012", Email: "chen@example.com",
		Address: "台中市西區自由路500號", CreatedDate: "2025-04-05",
	},
	{
		ID: "CL006", Code: "CLT-006", NationalID: "F678901234", Name: "趙六",
		Phone: "0967-890-123", Email: "zhao@example.com",
		Address: "高雄市前金區成功路600號", CreatedDate: "2025-04-20",
	},
}

// clientDescriptor configures the client store. The id and the business
// code share one sequence so "CL007" and "CLT-007" always carry the same
// number.
var clientDescriptor = store.Descriptor[types.Client, types.ClientDraft]{
	Slot:    "clients",
	Seed:    seedClients,
	SeedSeq: map[string]int{"client": 6},
	ID:      func(c types.Client) string { return c.ID },
	Finalize: func(d types.ClientDraft, seq *store.Seq) types.Client {
		n := seq.Next("client")
		return types.Client{
			ID:          fmt.Sprintf("CL%03d", n),
			Code:        fmt.Sprintf("CLT-%03d", n),
			NationalID:  d.NationalID,
			Name:        d.Name,
			Phone:       d.Phone,
			Email:       d.Email,
			Address:     d.Address,
			CreatedDate: d.CreatedDate,
		}
	},
}

// ClientFilter narrows the client registry by free text over name, code,
// national id, phone, and email. Clients carry no tab selector.
var ClientFilter = filter.Engine[types.Client]{
	Text: []func(types.Client) string{
		func(c types.Client) string { return c.Name },
		func(c types.Client) string { return c.Code },
		func(c types.Client) string { return c.NationalID },
		func(c types.Client) string { return c.Phone },
		func(c types.Client) string { return c.Email },
	},
}

// ClientForm validates client add/edit input.
var ClientForm = form.Schema{
	Fields: []form.Field{
		{Name: "national_id", Label: "national id", Kind: form.KindText, Required: true, MaxLen: 20},
		{Name: "name", Label: "name", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "phone", Label: "phone", Kind: form.KindText, MaxLen: 50},
		{Name: "email", Label: "email", Kind: form.KindText, MaxLen: 200},
		{Name: "address", Label: "address", Kind: form.KindText, MaxLen: 200},
		{Name: "created_date", Label: "registration date", Kind: form.KindDate, Required: true},
	},
}

// CountCasesForClient returns the number of cases commissioned by the
// named client. The count is derived from the case collection, never
// stored on the client record.
func CountCasesForClient(p *Practice, clientName string) int {
	return p.Cases.CountWhere(func(c types.Case) bool { return c.Client == clientName })
}
