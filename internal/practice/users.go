package practice

import (
	"fmt"

	"github.com/lexhall/lawdesk/internal/filter"
	"github.com/lexhall/lawdesk/internal/form"
	"github.com/lexhall/lawdesk/internal/store"
	"github.com/lexhall/lawdesk/pkg/types"
)

// seedUsers is the built-in default staff collection.
var seedUsers = []types.User{
	{ID: "USR001", Username: "admin", Name: "系統管理員", Email: "admin@lawfirm.com",
		Role: types.RoleAdmin, Status: types.UserStatusActive},
	{ID: "USR002", Username: "zhang.lawyer", Name: "張大律師", Email: "zhang@lawfirm.com",
		Role: types.RoleLawyer, Status: types.UserStatusActive},
	{ID: "USR003", Username: "li.lawyer", Name: "李小律師", Email: "li@lawfirm.com",
		Role: types.RoleLawyer, Status: types.UserStatusActive},
	{ID: "USR004", Username: "wang.assistant", Name: "王助理", Email: "wang@lawfirm.com",
		Role: types.RoleAssistant, Status: types.UserStatusActive},
	{ID: "USR005", Username: "chen.assistant", Name: "陳助理", Email: "chen@lawfirm.com",
		Role: types.RoleAssistant, Status: types.UserStatusDisabled},
}

var userDescriptor = store.Descriptor[types.User, types.UserDraft]{
	Slot:    "users",
	Seed:    seedUsers,
	SeedSeq: map[string]int{"user": 5},
	ID:      func(u types.User) string { return u.ID },
	Finalize: func(d types.UserDraft, seq *store.Seq) types.User {
		return types.User{
			ID:       fmt.Sprintf("USR%03d", seq.Next("user")),
			Username: d.Username,
			Name:     d.Name,
			Email:    d.Email,
			Role:     d.Role,
			Status:   d.Status,
		}
	},
}

// UserFilter narrows the user collection by free text over username, name,
// and email, with the role as the tab selector.
var UserFilter = filter.Engine[types.User]{
	Text: []func(types.User) string{
		func(u types.User) string { return u.Username },
		func(u types.User) string { return u.Name },
		func(u types.User) string { return u.Email },
	},
	Category: func(u types.User) string { return u.Role },
}

// UserForm validates user add/edit input.
var UserForm = form.Schema{
	Fields: []form.Field{
		{Name: "username", Label: "username", Kind: form.KindText, Required: true, MaxLen: 50},
		{Name: "name", Label: "display name", Kind: form.KindText, Required: true, MaxLen: 100},
		{Name: "email", Label: "email", Kind: form.KindText, Required: true, MaxLen: 200},
		{Name: "role", Label: "role", Kind: form.KindEnum, Required: true, Options: []string{
			types.RoleAdmin, types.RoleLawyer, types.RoleAssistant,
		}},
		{Name: "status", Label: "status", Kind: form.KindEnum, Required: true, Options: []string{
			types.UserStatusActive, types.UserStatusDisabled,
		}},
	},
}
