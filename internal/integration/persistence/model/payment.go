// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// PaymentModel represents the payments table in the database. Amounts are
// stored as integer cents; refunds carry negative amounts.
type PaymentModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LeaseID          *uuid.UUID     `gorm:"type:uuid;index"`
	AmountCents      int64          `gorm:"type:bigint;not null"`
	FeeCents         int64          `gorm:"type:bigint;not null;default:0"`
	Type             string         `gorm:"type:varchar(30);not null;index"`
	Status           string         `gorm:"type:varchar(20);not null;index"`
	PaidAt           sql.NullTime   `gorm:"type:timestamp;index"`
	RefundCategory   sql.NullString `gorm:"type:varchar(20)"`
	GatewaySessionID string         `gorm:"type:varchar(255);index"`
	Description      string         `gorm:"type:text"`
	CreatedAt        time.Time      `gorm:"not null"`
	UpdatedAt        time.Time      `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	var refundCategory *entity.RefundCategory
	if m.RefundCategory.Valid {
		c := entity.RefundCategory(m.RefundCategory.String)
		refundCategory = &c
	}

	return &entity.Payment{
		ID:               m.ID,
		LeaseID:          m.LeaseID,
		Amount:           valueobject.MoneyFromCents(m.AmountCents),
		Fee:              valueobject.MoneyFromCents(m.FeeCents),
		Type:             entity.PaymentType(m.Type),
		Status:           entity.PaymentStatus(m.Status),
		PaidAt:           nullTimeToPtr(m.PaidAt),
		RefundCategory:   refundCategory,
		GatewaySessionID: m.GatewaySessionID,
		Description:      m.Description,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// PaymentModelFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentModelFromEntity(payment *entity.Payment) *PaymentModel {
	var refundCategory sql.NullString
	if payment.RefundCategory != nil {
		refundCategory = sql.NullString{String: string(*payment.RefundCategory), Valid: true}
	}

	return &PaymentModel{
		ID:               payment.ID,
		LeaseID:          payment.LeaseID,
		AmountCents:      payment.Amount.Cents(),
		FeeCents:         payment.Fee.Cents(),
		Type:             string(payment.Type),
		Status:           string(payment.Status),
		PaidAt:           ptrToNullTime(payment.PaidAt),
		RefundCategory:   refundCategory,
		GatewaySessionID: payment.GatewaySessionID,
		Description:      payment.Description,
		CreatedAt:        payment.CreatedAt,
		UpdatedAt:        payment.UpdatedAt,
	}
}
