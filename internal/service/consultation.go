package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
)

// CreateConsultation registers a consultation request for its creator.
func CreateConsultation(userID uint64, name, description, organization, regNumber, person string) (*model.Consultation, error) {
	consultation := &model.Consultation{
		Name:         name,
		Description:  description,
		Organization: organization,
		RegNumber:    regNumber,
		Person:       person,
		Status:       true,
		UserID:       userID,
	}
	if err := repo.Db.Create(consultation).Error; err != nil {
		return nil, err
	}
	return consultation, nil
}

// ListMyConsultations returns the caller's own consultations.
func ListMyConsultations(userID uint64) ([]model.Consultation, error) {
	var consultations []model.Consultation
	err := repo.Db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&consultations).Error
	return consultations, err
}

// ListDepartmentConsultations returns consultations created by anyone in
// the caller's department. Plain users may browse peers' requests here
// even though the personal list stays creator-scoped.
func ListDepartmentConsultations(userID uint64) ([]model.Consultation, error) {
	caller, err := GetUser(userID)
	if err != nil {
		return nil, err
	}
	var consultations []model.Consultation
	err = repo.Db.
		Joins("JOIN users ON users.id = consultations.user_id").
		Where("users.department_id = ?", caller.DepartmentID).
		Order("consultations.created_at DESC").
		Find(&consultations).Error
	return consultations, err
}

// ListAllConsultations returns every consultation; moderator view.
func ListAllConsultations() ([]model.Consultation, error) {
	var consultations []model.Consultation
	err := repo.Db.Order("created_at DESC").Find(&consultations).Error
	return consultations, err
}
