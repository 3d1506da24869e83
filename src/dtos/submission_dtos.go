package dtos

// Actualización parcial: los campos en nil no se tocan.
type UpdateContratoRequest struct {
	Estado     *string `json:"estado"`
	Comentario *string `json:"comentario"`
}

type UpdateInformeRequest struct {
	Estado   *string `json:"estado"`
	Feedback *string `json:"feedback"`
}

type CreateNovedadRequest struct {
	Contenido string `json:"contenido"`
}
