package dto

// UpsertEntitlementRequest cupo planificado por (curso, ítem, periodo).
// Cantidad cero es válida: anula el cupo sin borrarlo.
type UpsertEntitlementRequest struct {
	ClassID  string `json:"class_id" validate:"required,uuid4"`
	ItemID   string `json:"item_id" validate:"required,uuid4"`
	TermID   string `json:"term_id" validate:"required,uuid4"`
	Quantity int64  `json:"quantity" validate:"min=0"`
}

// BulkUpsertEntitlementRequest carga masiva de cupos.
type BulkUpsertEntitlementRequest struct {
	Entitlements []UpsertEntitlementRequest `json:"entitlements" validate:"required,min=1,dive"`
}

// EntitlementResponse cupo planificado en respuestas.
type EntitlementResponse struct {
	ID       string `json:"id"`
	ClassID  string `json:"class_id"`
	ItemID   string `json:"item_id"`
	TermID   string `json:"term_id"`
	Quantity int64  `json:"quantity"`
}
