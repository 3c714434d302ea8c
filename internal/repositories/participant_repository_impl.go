package repositories

import (
	"context"
	"fmt"

	"tippool/internal/models"

	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{
		db: db,
	}
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*models.Participant, error) {
	var participant models.Participant
	if err := r.db.WithContext(ctx).First(&participant, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return &participant, nil
}

func (r *participantRepository) Create(ctx context.Context, participant *models.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *participantRepository) SetBillingAccountRef(ctx context.Context, id, ref string) error {
	result := r.db.WithContext(ctx).Model(&models.Participant{}).
		Where("id = ?", id).
		Update("billing_account_ref", ref)
	if result.Error != nil {
		return fmt.Errorf("failed to set billing account ref: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *participantRepository) SetLastBillResult(ctx context.Context, id, billResult string) error {
	result := r.db.WithContext(ctx).Model(&models.Participant{}).
		Where("id = ?", id).
		Update("last_bill_result", billResult)
	if result.Error != nil {
		return fmt.Errorf("failed to set last bill result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *participantRepository) ClearBilling(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Participant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"billing_account_ref": nil,
			"last_bill_result":    nil,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to clear billing state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}
