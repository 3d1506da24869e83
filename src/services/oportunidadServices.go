package services

import (
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"gorm.io/gorm"
)

type OportunidadService struct {
	db *gorm.DB
}

// NewOportunidadService creates a new instance of OportunidadService
func NewOportunidadService(db *gorm.DB) *OportunidadService {
	return &OportunidadService{db: db}
}

// GetOportunidades returns one page of opportunities (descending createdAt)
// together with the total row count.
func (s *OportunidadService) GetOportunidades(page, limit int) ([]models.OportunidadModel, int64, error) {
	var total int64
	if err := s.db.Model(&models.OportunidadModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var oportunidades []models.OportunidadModel
	result := s.db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&oportunidades)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return oportunidades, total, nil
}

// CreateOportunidad creates a new Oportunidad record in the database
func (s *OportunidadService) CreateOportunidad(oportunidad *models.OportunidadModel) error {
	return s.db.Create(oportunidad).Error
}

// DeleteOportunidad deletes an Oportunidad record by its ID.
// Returns gorm.ErrRecordNotFound if it does not exist.
func (s *OportunidadService) DeleteOportunidad(id int) error {
	var oportunidad models.OportunidadModel
	if err := s.db.First(&oportunidad, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.OportunidadModel{}, id).Error
}
