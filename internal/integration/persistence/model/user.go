// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/domain/entity"
)

// UserModel represents the usuarios table in the database. Column names keep
// the original Spanish schema.
type UserModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name           string    `gorm:"column:nombre;type:varchar(100);not null"`
	Username       string    `gorm:"column:nombre_usuario;type:varchar(20);uniqueIndex;not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Phone          string    `gorm:"column:telefono;type:varchar(20)"`
	PasswordHash   string    `gorm:"column:contrasena_hash;type:varchar(255);not null"`
	Age            string    `gorm:"column:edad;type:varchar(3)"`
	InitialBalance int64     `gorm:"column:saldo_inicial;not null;default:0"`
	Active         bool      `gorm:"column:activo;not null;default:true"`
	IsAdmin        bool      `gorm:"column:es_admin;not null;default:false"`
	CreatedAt      time.Time `gorm:"column:fecha_registro;not null"`
	UpdatedAt      time.Time `gorm:"column:fecha_actualizacion;not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "usuarios"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:             m.ID,
		Name:           m.Name,
		Username:       m.Username,
		Email:          m.Email,
		Phone:          m.Phone,
		PasswordHash:   m.PasswordHash,
		Age:            m.Age,
		InitialBalance: m.InitialBalance,
		Active:         m.Active,
		IsAdmin:        m.IsAdmin,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:             user.ID,
		Name:           user.Name,
		Username:       user.Username,
		Email:          user.Email,
		Phone:          user.Phone,
		PasswordHash:   user.PasswordHash,
		Age:            user.Age,
		InitialBalance: user.InitialBalance,
		Active:         user.Active,
		IsAdmin:        user.IsAdmin,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}
