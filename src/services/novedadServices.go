package services

import (
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"gorm.io/gorm"
)

type NovedadService struct {
	db           *gorm.DB
	cursoService *CursoService
}

// NewNovedadService creates a new instance of NovedadService
func NewNovedadService(db *gorm.DB, cursoService *CursoService) *NovedadService {
	return &NovedadService{db: db, cursoService: cursoService}
}

// GetNovedadesByCurso retrieves the news items of a course, newest first
func (s *NovedadService) GetNovedadesByCurso(cursoId int) ([]models.NovedadModel, error) {
	var novedades []models.NovedadModel
	result := s.db.
		Where("curso_id = ?", cursoId).
		Order("created_at DESC").
		Find(&novedades)
	return novedades, result.Error
}

// CreateNovedad creates a news item for a course
func (s *NovedadService) CreateNovedad(cursoId int, contenido string) (*models.NovedadModel, error) {
	var curso models.CursoModel
	if err := s.db.First(&curso, cursoId).Error; err != nil {
		return nil, err
	}

	novedad := &models.NovedadModel{
		Contenido: contenido,
		CursoId:   cursoId,
	}
	if err := s.db.Create(novedad).Error; err != nil {
		return nil, err
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(cursoId)
	}
	return novedad, nil
}
