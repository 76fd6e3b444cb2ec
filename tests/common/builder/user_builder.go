//go:build unit || e2e

package builder

import (
	"time"

	"content-dispatch/internal/domain/user"
	"content-dispatch/internal/infra/query"
	"content-dispatch/internal/pkg/pgconv"
	"content-dispatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Verified     bool
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "admin",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, role), nil
}

// BuildStored returns the user as the repository would load it.
func (u *UserBuilder) BuildStored() *user.User {
	role, _ := user.NewRole(u.Role)
	now := time.Now()
	var verifiedAt *time.Time
	if u.Verified {
		verifiedAt = &now
	}
	return user.ReconstructUser(u.ID, user.ReconstructEmail(u.Email), u.PasswordHash, role, verifiedAt, nil, u.IsActive, now, now)
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	var verifiedAt *time.Time
	if u.Verified {
		now := time.Now()
		verifiedAt = &now
	}
	return &queries.AuthorizedUserView{
		ID:              u.ID,
		Email:           u.Email,
		Role:            u.Role,
		EmailVerifiedAt: verifiedAt,
		IsActive:        u.IsActive,
	}
}

func (u *UserBuilder) BuildRow() query.UserRow {
	now := time.Now()
	row := query.UserRow{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
	if u.Verified {
		row.EmailVerifiedAt = pgconv.TimeToPgtype(now)
	}
	return row
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsVerified() *UserBuilder {
	u.Verified = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
