package repo

import (
	"context"

	"github.com/soul/laptopkade/internal/api/models"
)

func (r *GormRepo) CreateToken(ctx context.Context, token *models.Token) error {
	return r.DB.WithContext(ctx).Create(token).Error
}

func (r *GormRepo) FindTokenByValue(ctx context.Context, tokenValue string) (*models.Token, error) {
	var token models.Token
	if err := r.DB.WithContext(ctx).Where("token_value = ?", tokenValue).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// RevokeToken flips the revoked flag. The flag only ever moves false to
// true; other tokens of the same user stay untouched.
func (r *GormRepo) RevokeToken(ctx context.Context, tokenValue string) error {
	return r.DB.WithContext(ctx).Model(&models.Token{}).
		Where("token_value = ?", tokenValue).
		Update("revoked", true).Error
}

func (r *GormRepo) FindActiveTokens(ctx context.Context, userID uint) ([]models.Token, error) {
	var tokens []models.Token
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND revoked = ?", userID, false).
		Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
