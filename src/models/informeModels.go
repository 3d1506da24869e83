package models

import "time"

// Mismo ciclo de revisión que ContratoModel, con feedback del profesor en lugar
// de comentario.
type InformeModel struct {
	Id        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Archivo   string     `json:"archivo" gorm:"type:varchar(1000);not null"`
	Estado    Estado     `json:"estado" gorm:"type:varchar(20);not null;default:PENDIENTE"`
	Feedback  string     `json:"feedback" gorm:"type:text"`
	AlumnoId  int        `json:"alumnoId" gorm:"column:alumno_id;not null;uniqueIndex:idx_informes_alumno_curso"`
	Alumno    *UserModel `json:"alumno,omitempty" gorm:"foreignKey:AlumnoId;references:Id"`
	CursoId   int         `json:"cursoId" gorm:"column:curso_id;not null;uniqueIndex:idx_informes_alumno_curso"`
	Curso     *CursoModel `json:"curso,omitempty" gorm:"foreignKey:CursoId;references:Id"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (InformeModel) TableName() string {
	return "informes"
}
