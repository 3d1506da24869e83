package models

type CursoModel struct {
	Id             int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre         string          `json:"nombre" gorm:"type:varchar(255);not null"`
	ProfesorId     int             `json:"profesorId" gorm:"column:profesor_id;not null"`
	Profesor       *UserModel      `json:"profesor,omitempty" gorm:"foreignKey:ProfesorId;references:Id"`
	ProfesorImagen string          `json:"profesorImagen" gorm:"type:varchar(500)"`
	Contratos      []ContratoModel `json:"contratos,omitempty" gorm:"foreignKey:CursoId"`
	Informes       []InformeModel  `json:"informes,omitempty" gorm:"foreignKey:CursoId"`
	Novedades      []NovedadModel  `json:"novedades,omitempty" gorm:"foreignKey:CursoId"`
}

func (CursoModel) TableName() string {
	return "cursos"
}
