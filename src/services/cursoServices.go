package services

import (
	"fmt"
	"time"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"github.com/patrickmn/go-cache"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type CursoService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCursoService(db *gorm.DB) *CursoService {
	return &CursoService{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetAllCursos retrieves all Curso records with their professor preloaded
func (s *CursoService) GetAllCursos() ([]models.CursoModel, error) {
	var cursos []models.CursoModel
	result := s.db.Preload("Profesor").Find(&cursos)
	return cursos, result.Error
}

// GetCursoByID returns the course together with its professor, contracts and
// reports, so the detail page hydrates every tab with a single call.
func (s *CursoService) GetCursoByID(id int) (*models.CursoModel, error) {
	cacheKey := cursoCacheKey(id)
	if cached, found := s.cache.Get(cacheKey); found {
		curso := cached.(models.CursoModel)
		return &curso, nil
	}

	var curso models.CursoModel
	result := s.db.
		Preload("Profesor").
		Preload("Contratos", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Contratos.Alumno").
		Preload("Informes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Informes.Alumno").
		First(&curso, id)

	if result.Error != nil {
		return nil, result.Error
	}

	s.cache.Set(cacheKey, curso, cache.DefaultExpiration)
	return &curso, nil
}

// InvalidateCursoCache descarta la vista agregada cacheada de un curso. Lo
// llaman los servicios de contratos, informes y novedades tras cada mutación.
func (s *CursoService) InvalidateCursoCache(id int) {
	s.cache.Delete(cursoCacheKey(id))
}

func cursoCacheKey(id int) string {
	return fmt.Sprintf("curso_%d", id)
}

// ExportCursoXLSX genera un libro con una hoja de contratos y otra de informes
// del curso, para descarga administrativa.
func (s *CursoService) ExportCursoXLSX(id int) (*excelize.File, error) {
	curso, err := s.GetCursoByID(id)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	contratosSheet := "Contratos"
	f.SetSheetName("Sheet1", contratosSheet)
	writeSubmissionHeader(f, contratosSheet, "Comentario")
	for i, c := range curso.Contratos {
		row := i + 2
		nombre, email := alumnoDatos(c.Alumno)
		f.SetCellValue(contratosSheet, fmt.Sprintf("A%d", row), c.Id)
		f.SetCellValue(contratosSheet, fmt.Sprintf("B%d", row), nombre)
		f.SetCellValue(contratosSheet, fmt.Sprintf("C%d", row), email)
		f.SetCellValue(contratosSheet, fmt.Sprintf("D%d", row), string(c.Estado))
		f.SetCellValue(contratosSheet, fmt.Sprintf("E%d", row), c.Comentario)
		f.SetCellValue(contratosSheet, fmt.Sprintf("F%d", row), c.Archivo)
		f.SetCellValue(contratosSheet, fmt.Sprintf("G%d", row), c.CreatedAt.Format("2006-01-02 15:04"))
	}

	informesSheet := "Informes"
	if _, err := f.NewSheet(informesSheet); err != nil {
		return nil, err
	}
	writeSubmissionHeader(f, informesSheet, "Feedback")
	for i, inf := range curso.Informes {
		row := i + 2
		nombre, email := alumnoDatos(inf.Alumno)
		f.SetCellValue(informesSheet, fmt.Sprintf("A%d", row), inf.Id)
		f.SetCellValue(informesSheet, fmt.Sprintf("B%d", row), nombre)
		f.SetCellValue(informesSheet, fmt.Sprintf("C%d", row), email)
		f.SetCellValue(informesSheet, fmt.Sprintf("D%d", row), string(inf.Estado))
		f.SetCellValue(informesSheet, fmt.Sprintf("E%d", row), inf.Feedback)
		f.SetCellValue(informesSheet, fmt.Sprintf("F%d", row), inf.Archivo)
		f.SetCellValue(informesSheet, fmt.Sprintf("G%d", row), inf.CreatedAt.Format("2006-01-02 15:04"))
	}

	return f, nil
}

func writeSubmissionHeader(f *excelize.File, sheet, revisionCol string) {
	headers := []string{"ID", "Alumno", "Email", "Estado", revisionCol, "Archivo", "Fecha"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
}

func alumnoDatos(alumno *models.UserModel) (string, string) {
	if alumno == nil {
		return "", ""
	}
	return alumno.Name, alumno.Email
}
