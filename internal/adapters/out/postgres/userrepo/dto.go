// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email carries a unique index backing the one-account-per-email rule.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsActive     bool
	IsAdmin      bool
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "usuarios"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		IsActive:     aggregate.IsActive(),
		IsAdmin:      aggregate.IsAdmin(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, dto.IsActive, dto.IsAdmin)
}
