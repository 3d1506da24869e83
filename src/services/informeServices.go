package services

import (
	"context"
	"errors"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/storage"
	"gorm.io/gorm"
)

type InformeService struct {
	db           *gorm.DB
	blob         storage.BlobStorage
	cursoService *CursoService
}

// NewInformeService creates a new instance of InformeService
func NewInformeService(db *gorm.DB, blob storage.BlobStorage, cursoService *CursoService) *InformeService {
	return &InformeService{
		db:           db,
		blob:         blob,
		cursoService: cursoService,
	}
}

// GetInformesByCurso retrieves the reports of a course, newest first
func (s *InformeService) GetInformesByCurso(cursoId int) ([]models.InformeModel, error) {
	var informes []models.InformeModel
	result := s.db.
		Preload("Alumno").
		Where("curso_id = ?", cursoId).
		Order("created_at DESC").
		Find(&informes)
	return informes, result.Error
}

// GetInformeByID retrieves an Informe record with its student and course
func (s *InformeService) GetInformeByID(id int) (*models.InformeModel, error) {
	var informe models.InformeModel
	result := s.db.Preload("Alumno").Preload("Curso").First(&informe, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &informe, nil
}

// SubmitInforme sigue el mismo flujo que SubmitContrato, con claves bajo
// informes/.
func (s *InformeService) SubmitInforme(ctx context.Context, cursoId, alumnoId int, f *SubmissionFile) (*models.InformeModel, error) {
	var curso models.CursoModel
	if err := s.db.First(&curso, cursoId).Error; err != nil {
		return nil, err
	}

	var existente models.InformeModel
	err := s.db.Where("curso_id = ? AND alumno_id = ?", cursoId, alumnoId).First(&existente).Error
	if err == nil {
		return nil, ErrDuplicateSubmission
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	informe := &models.InformeModel{
		Estado:   models.EstadoPendiente,
		AlumnoId: alumnoId,
		CursoId:  cursoId,
	}

	if _, err := submitFile(ctx, s.blob, "informes", alumnoId, f, func(url string) error {
		informe.Archivo = url
		return s.db.Create(informe).Error
	}); err != nil {
		return nil, err
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(cursoId)
	}

	if err := s.db.Preload("Alumno").First(informe, informe.Id).Error; err != nil {
		return nil, err
	}
	return informe, nil
}

// UpdateInforme applies a partial update of estado and feedback
func (s *InformeService) UpdateInforme(id int, req *dtos.UpdateInformeRequest) (*models.InformeModel, error) {
	var informe models.InformeModel
	if err := s.db.First(&informe, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Estado != nil {
		updates["estado"] = *req.Estado
	}
	if req.Feedback != nil {
		updates["feedback"] = *req.Feedback
	}

	if len(updates) > 0 {
		if err := s.db.Model(&informe).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(informe.CursoId)
	}

	if err := s.db.Preload("Alumno").First(&informe, id).Error; err != nil {
		return nil, err
	}
	return &informe, nil
}

// DeleteInforme removes the record and best-effort deletes its blob object
func (s *InformeService) DeleteInforme(ctx context.Context, id int) error {
	var informe models.InformeModel
	if err := s.db.First(&informe, id).Error; err != nil {
		return err
	}

	deleteBlob(ctx, s.blob, informe.Archivo)

	if err := s.db.Delete(&models.InformeModel{}, id).Error; err != nil {
		return err
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(informe.CursoId)
	}
	return nil
}
