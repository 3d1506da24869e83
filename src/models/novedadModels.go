package models

import "time"

type NovedadModel struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Contenido string    `json:"contenido" gorm:"type:text;not null"`
	CursoId   int       `json:"cursoId" gorm:"column:curso_id;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (NovedadModel) TableName() string {
	return "novedades"
}
