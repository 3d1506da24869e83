package dtos

import "github.com/PracticasFISI/Practicas-Backend/src/models"

type CreateOportunidadRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
}

type PaginationDTO struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type OportunidadListDTO struct {
	Oportunidades []models.OportunidadModel `json:"oportunidades"`
	Pagination    PaginationDTO             `json:"pagination"`
}
