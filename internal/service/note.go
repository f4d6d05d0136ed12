package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
)

// CreateNote adds a personal note for the caller.
func CreateNote(userID uint64, name, description string) (*model.Note, error) {
	note := &model.Note{Name: name, Description: description, UserID: userID}
	if err := repo.Db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns the caller's notes.
func ListNotes(userID uint64) ([]model.Note, error) {
	var notes []model.Note
	err := repo.Db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// DeleteNote removes one of the caller's notes.
func DeleteNote(id, userID uint64) error {
	res := repo.Db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateRecommendation adds a personal recommendation for the caller.
func CreateRecommendation(userID uint64, name, description string) (*model.Recommendation, error) {
	recommendation := &model.Recommendation{Name: name, Description: description, UserID: userID}
	if err := repo.Db.Create(recommendation).Error; err != nil {
		return nil, err
	}
	return recommendation, nil
}

// ListRecommendations returns the caller's recommendations.
func ListRecommendations(userID uint64) ([]model.Recommendation, error) {
	var recommendations []model.Recommendation
	err := repo.Db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recommendations).Error
	return recommendations, err
}
