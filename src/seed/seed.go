package seed

import (
	"log"

	"github.com/PracticasFISI/Practicas-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	// Users
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)

	usuarios := []models.UserModel{
		{Name: "Estudiante Uno", Email: "alumno@fisi.edu.pe", Password: string(hashedPassword), Role: models.RoleStudent},
		{Name: "Profesor Uno", Email: "profesor@fisi.edu.pe", Password: string(hashedPassword), Role: models.RoleProfessor},
		{Name: "Administrativo Uno", Email: "admin@fisi.edu.pe", Password: string(hashedPassword), Role: models.RoleAdministrative},
	}
	for _, u := range usuarios {
		var existente models.UserModel
		if err := db.Where("email = ?", u.Email).First(&existente).Error; err == nil {
			log.Printf("User %q already exists", u.Email)
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Failed to create user %q: %v", u.Email, err)
		} else {
			log.Printf("User %q created", u.Email)
		}
	}

	// Cursos asignados al profesor
	var profesor models.UserModel
	if err := db.Where("role = ?", models.RoleProfessor).First(&profesor).Error; err != nil {
		log.Println("No se encontró ningún profesor. No se insertaron cursos.")
		return
	}

	cursos := []models.CursoModel{
		{Nombre: "Prácticas Pre Profesionales G1", ProfesorId: profesor.Id, ProfesorImagen: "https://i.pravatar.cc/150?img=1"},
		{Nombre: "Taller de Empleabilidad", ProfesorId: profesor.Id, ProfesorImagen: "https://i.pravatar.cc/150?img=2"},
		{Nombre: "Desarrollo de Software I", ProfesorId: profesor.Id, ProfesorImagen: "https://i.pravatar.cc/150?img=3"},
	}
	for _, c := range cursos {
		var existente models.CursoModel
		if err := db.Where("nombre = ?", c.Nombre).First(&existente).Error; err == nil {
			log.Printf("Curso %q already exists", c.Nombre)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Failed to create curso %q: %v", c.Nombre, err)
		} else {
			log.Printf("Curso %q created", c.Nombre)
		}
	}

	// Oportunidades de prueba
	oportunidades := []models.OportunidadModel{
		{
			Titulo:      "Prácticas en Desarrollo Web Fullstack",
			Descripcion: "Únete a nuestro equipo de desarrollo web donde colaborarás en la creación de aplicaciones modernas usando React, Node.js y bases de datos como PostgreSQL. Ideal para estudiantes con interés en frontend y backend.",
			Imagen:      "https://source.unsplash.com/featured/?programming,web",
		},
		{
			Titulo:      "Asistente de Soporte Técnico y Redes",
			Descripcion: "Apoya al área de soporte resolviendo incidencias técnicas, configurando redes y brindando atención a usuarios internos. Se valorará conocimientos básicos en hardware y sistemas operativos.",
			Imagen:      "https://source.unsplash.com/featured/?technical,support,network",
		},
		{
			Titulo:      "Internship en Análisis y Visualización de Datos",
			Descripcion: "Participa en proyectos reales donde aprenderás a limpiar, transformar y visualizar datos con herramientas como Python, SQL y Power BI. Requiere conocimientos básicos en bases de datos.",
			Imagen:      "https://source.unsplash.com/featured/?data,analytics",
		},
		{
			Titulo:      "Prácticas en Ciberseguridad y Auditoría Informática",
			Descripcion: "Colabora en tareas de revisión de seguridad, análisis de riesgos y control de accesos. Se valoran conocimientos en redes, firewalls y normas ISO 27001.",
			Imagen:      "https://source.unsplash.com/featured/?cybersecurity",
		},
		{
			Titulo:      "Desarrollador Mobile Junior (React Native)",
			Descripcion: "Trabaja en el desarrollo de aplicaciones móviles híbridas con React Native. Ideal para estudiantes que deseen adquirir experiencia en el mundo móvil.",
			Imagen:      "https://source.unsplash.com/featured/?mobile,app,development",
		},
	}
	createdCount := 0
	for _, o := range oportunidades {
		var existente models.OportunidadModel
		if err := db.Where("titulo = ?", o.Titulo).First(&existente).Error; err == nil {
			continue
		}
		if err := db.Create(&o).Error; err != nil {
			log.Printf("Failed to create oportunidad %q: %v", o.Titulo, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Finished creating %d new oportunidades", createdCount)
	} else {
		log.Println("All oportunidades already exist")
	}
}
