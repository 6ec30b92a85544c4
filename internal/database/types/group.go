package types

import (
	"time"

	"github.com/uptrace/bun"
)

// Company is the brand a user group belongs to. Group-broadcast entries
// render under the company identity instead of an individual user.
type Company struct {
	bun.BaseModel `bun:"table:companies"`

	ID         uint64 `bun:",pk,autoincrement" json:"id"`
	Name       string `bun:",notnull"          json:"name"`
	AvatarPath string `bun:""                  json:"avatarPath"`
}

// UserGroup scopes feed visibility and carries the timezone used for
// publish/expiry gating. There is no default group: lookups of unknown
// ids fail rather than fall back.
type UserGroup struct {
	bun.BaseModel `bun:"table:user_groups"`

	ID             uint64 `bun:",pk,autoincrement" json:"id"`
	Name           string `bun:",notnull"          json:"name"`
	TimezoneOffset int    `bun:",notnull"          json:"timezoneOffset"` // whole hours relative to UTC
	CompanyID      uint64 `bun:",notnull"          json:"companyId"`

	Company *Company `bun:"rel:belongs-to,join:company_id=id" json:"-"`
}

// User is the actor identity rendered into peer events.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID         uint64    `bun:",pk,autoincrement" json:"id"`
	Name       string    `bun:",notnull"          json:"name"`
	AvatarPath string    `bun:""                  json:"avatarPath"`
	Position   string    `bun:""                  json:"position"`
	Language   string    `bun:",notnull"          json:"language"`
	GroupID    uint64    `bun:"group_id,notnull"  json:"groupId"`
	CreatedAt  time.Time `bun:",notnull"          json:"createdAt"`
}

// UserPermission grants a named capability to a user. The feed engine
// only reads these; assignment is administered elsewhere.
type UserPermission struct {
	bun.BaseModel `bun:"table:user_permissions"`

	UserID uint64 `bun:",pk,notnull" json:"userId"`
	Name   string `bun:",pk,notnull" json:"name"`
}

// PermissionAddEvaluation gates evaluation reminder visibility.
const PermissionAddEvaluation = "evaluation.add"
