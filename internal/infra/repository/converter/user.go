package converter

import (
	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
)

// UserFromRow trusts stored values; they were validated on the way in.
func UserFromRow(row query.UserRow) *user.User {
	return user.ReconstructUser(
		row.ID,
		user.ReconstructEmail(row.Email),
		row.PasswordHash,
		user.Role(row.Role),
		pgconv.TimePtrFromPgtype(row.EmailVerifiedAt),
		pgconv.TimePtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
