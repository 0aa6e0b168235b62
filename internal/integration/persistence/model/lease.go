// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// LeaseModel represents the leases table in the database. Dates are nullable
// because imported historical leases sometimes lack a known range.
type LeaseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantName    string          `gorm:"type:varchar(255);not null"`
	UnitLabel     string          `gorm:"type:varchar(100);not null"`
	StartDate     sql.NullTime    `gorm:"type:date;index"`
	EndDate       sql.NullTime    `gorm:"type:date"`
	MonthlyRent   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DepositAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     sql.NullTime    `gorm:"type:timestamp;index"`
}

// TableName returns the table name for the LeaseModel.
func (LeaseModel) TableName() string {
	return "leases"
}

// ToEntity converts a LeaseModel to a domain Lease entity.
func (m *LeaseModel) ToEntity() *entity.Lease {
	return &entity.Lease{
		ID:            m.ID,
		TenantName:    m.TenantName,
		UnitLabel:     m.UnitLabel,
		StartDate:     nullTimeToPtr(m.StartDate),
		EndDate:       nullTimeToPtr(m.EndDate),
		MonthlyRent:   m.MonthlyRent,
		DepositAmount: m.DepositAmount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     nullTimeToPtr(m.DeletedAt),
	}
}

// LeaseModelFromEntity creates a LeaseModel from a domain Lease entity.
func LeaseModelFromEntity(lease *entity.Lease) *LeaseModel {
	return &LeaseModel{
		ID:            lease.ID,
		TenantName:    lease.TenantName,
		UnitLabel:     lease.UnitLabel,
		StartDate:     ptrToNullTime(lease.StartDate),
		EndDate:       ptrToNullTime(lease.EndDate),
		MonthlyRent:   lease.MonthlyRent,
		DepositAmount: lease.DepositAmount,
		Notes:         lease.Notes,
		CreatedAt:     lease.CreatedAt,
		UpdatedAt:     lease.UpdatedAt,
		DeletedAt:     ptrToNullTime(lease.DeletedAt),
	}
}

func nullTimeToPtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ptrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
