package models

import "time"

type Estado string

const (
	EstadoPendiente Estado = "PENDIENTE"
	EstadoAprobado  Estado = "APROBADO"
	EstadoRechazado Estado = "RECHAZADO"
)

func (e Estado) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoAprobado, EstadoRechazado:
		return true
	}
	return false
}

// Un alumno solo puede tener un contrato vigente por curso; el índice único
// compuesto respalda la verificación previa del servicio ante envíos concurrentes.
type ContratoModel struct {
	Id         int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Archivo    string     `json:"archivo" gorm:"type:varchar(1000);not null"`
	Estado     Estado     `json:"estado" gorm:"type:varchar(20);not null;default:PENDIENTE"`
	Comentario string     `json:"comentario" gorm:"type:text"`
	AlumnoId   int        `json:"alumnoId" gorm:"column:alumno_id;not null;uniqueIndex:idx_contratos_alumno_curso"`
	Alumno     *UserModel `json:"alumno,omitempty" gorm:"foreignKey:AlumnoId;references:Id"`
	CursoId    int         `json:"cursoId" gorm:"column:curso_id;not null;uniqueIndex:idx_contratos_alumno_curso"`
	Curso      *CursoModel `json:"curso,omitempty" gorm:"foreignKey:CursoId;references:Id"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (ContratoModel) TableName() string {
	return "contratos"
}
