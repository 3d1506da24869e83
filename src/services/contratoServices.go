package services

import (
	"context"
	"errors"

	"github.com/PracticasFISI/Practicas-Backend/src/dtos"
	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/PracticasFISI/Practicas-Backend/src/storage"
	"gorm.io/gorm"
)

type ContratoService struct {
	db           *gorm.DB
	blob         storage.BlobStorage
	cursoService *CursoService // Referencia opcional para invalidar caché
}

// NewContratoService creates a new instance of ContratoService
// blob puede ser nil si el almacenamiento no está configurado;
// cursoService puede ser nil si no se necesita invalidar caché
func NewContratoService(db *gorm.DB, blob storage.BlobStorage, cursoService *CursoService) *ContratoService {
	return &ContratoService{
		db:           db,
		blob:         blob,
		cursoService: cursoService,
	}
}

// GetContratosByCurso retrieves the contracts of a course, newest first
func (s *ContratoService) GetContratosByCurso(cursoId int) ([]models.ContratoModel, error) {
	var contratos []models.ContratoModel
	result := s.db.
		Preload("Alumno").
		Where("curso_id = ?", cursoId).
		Order("created_at DESC").
		Find(&contratos)
	return contratos, result.Error
}

// GetContratoByID retrieves a Contrato record with its student and course,
// enough for the controllers to authorize mutations.
func (s *ContratoService) GetContratoByID(id int) (*models.ContratoModel, error) {
	var contrato models.ContratoModel
	result := s.db.Preload("Alumno").Preload("Curso").First(&contrato, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &contrato, nil
}

// SubmitContrato valida el archivo, lo sube al blob y registra el contrato en
// PENDIENTE. El duplicado por (alumno, curso) se verifica antes de subir y lo
// respalda el índice único si dos envíos llegan a la vez.
func (s *ContratoService) SubmitContrato(ctx context.Context, cursoId, alumnoId int, f *SubmissionFile) (*models.ContratoModel, error) {
	var curso models.CursoModel
	if err := s.db.First(&curso, cursoId).Error; err != nil {
		return nil, err
	}

	var existente models.ContratoModel
	err := s.db.Where("curso_id = ? AND alumno_id = ?", cursoId, alumnoId).First(&existente).Error
	if err == nil {
		return nil, ErrDuplicateSubmission
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	contrato := &models.ContratoModel{
		Estado:   models.EstadoPendiente,
		AlumnoId: alumnoId,
		CursoId:  cursoId,
	}

	if _, err := submitFile(ctx, s.blob, "contratos", alumnoId, f, func(url string) error {
		contrato.Archivo = url
		return s.db.Create(contrato).Error
	}); err != nil {
		return nil, err
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(cursoId)
	}

	if err := s.db.Preload("Alumno").First(contrato, contrato.Id).Error; err != nil {
		return nil, err
	}
	return contrato, nil
}

// UpdateContrato applies a partial update of estado and comentario
func (s *ContratoService) UpdateContrato(id int, req *dtos.UpdateContratoRequest) (*models.ContratoModel, error) {
	var contrato models.ContratoModel
	if err := s.db.First(&contrato, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Estado != nil {
		updates["estado"] = *req.Estado
	}
	if req.Comentario != nil {
		updates["comentario"] = *req.Comentario
	}

	if len(updates) > 0 {
		if err := s.db.Model(&contrato).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(contrato.CursoId)
	}

	if err := s.db.Preload("Alumno").First(&contrato, id).Error; err != nil {
		return nil, err
	}
	return &contrato, nil
}

// DeleteContrato removes the record and best-effort deletes its blob object
func (s *ContratoService) DeleteContrato(ctx context.Context, id int) error {
	var contrato models.ContratoModel
	if err := s.db.First(&contrato, id).Error; err != nil {
		return err
	}

	deleteBlob(ctx, s.blob, contrato.Archivo)

	if err := s.db.Delete(&models.ContratoModel{}, id).Error; err != nil {
		return err
	}

	if s.cursoService != nil {
		s.cursoService.InvalidateCursoCache(contrato.CursoId)
	}
	return nil
}
