package models

import "time"

type OportunidadModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Titulo      string    `json:"titulo" gorm:"type:varchar(200);not null"`
	Descripcion string    `json:"descripcion" gorm:"type:text;not null"`
	Imagen      string    `json:"imagen" gorm:"type:varchar(1000)"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (OportunidadModel) TableName() string {
	return "oportunidades"
}
