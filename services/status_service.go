package services

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/mailer"
	"backend/repository"

	"gorm.io/gorm"
)

const (
	statusMailSubject  = "Order status changed"
	statusMailTemplate = "Dear %s,\n\nYour order %d status has changed to %s."
)

// StatusService owns the staff-side status write. It does not enforce
// transition legality; staff are trusted to set legal statuses. Its job is
// detecting that a change happened and notifying the owner exactly once.
type StatusService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Mailer mailer.Mailer
}

func NewStatusService(db *gorm.DB, repo *repository.OrderRepository, m mailer.Mailer) *StatusService {
	return &StatusService{DB: db, Repo: repo, Mailer: m}
}

// UpdateStatus persists the new status and, when it differs from the
// previously persisted one, mails the order's owner before committing.
// A dispatch failure aborts the whole write: notification loss is never
// silent. (A background queue would be the production-grade shape; the
// synchronous dispatch is a deliberate simplicity tradeoff at low volume.)
func (s *StatusService) UpdateStatus(orderID uint, next entity.OrderStatus) error {
	if !next.Valid() {
		return ErrUnknownStatus
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		prev := o.Status

		if err := s.Repo.UpdateStatus(tx, o.ID, next); err != nil {
			return err
		}
		if prev == next {
			return nil
		}

		var owner entity.User
		if err := tx.First(&owner, o.UserID).Error; err != nil {
			return err
		}
		name := owner.FirstName
		if name == "" {
			name = owner.Email
		}
		body := fmt.Sprintf(statusMailTemplate, name, o.ID, next.Label())
		return s.Mailer.Send(owner.Email, statusMailSubject, body)
	})
}
