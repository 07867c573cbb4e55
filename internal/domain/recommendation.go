package domain

// RecommendationRow é uma recomendação de produto com score calculado externamente.
// ItemID e CategoryID são opacos: nunca são convertidos para número.
type RecommendationRow struct {
	CustomerID *CustomerID `json:"customer_id,omitempty"`
	ItemID     string      `json:"item_id" validate:"required"`
	CategoryID string      `json:"category_id" validate:"required"`
	Score      float64     `json:"score"`
}

type RecommendationTable struct {
	Rows           []RecommendationRow `json:"rows"`
	CustomerScoped bool                `json:"customer_scoped"`
	Source         string              `json:"source"`
}

// BelongsTo compara o cliente da linha com o id normalizado.
// Linhas sem cliente não pertencem a ninguém; tabelas sem coluna de cliente
// não passam por este filtro.
func (r RecommendationRow) BelongsTo(id CustomerID) bool {
	return r.CustomerID != nil && *r.CustomerID == id
}

// BelongsTo segue a mesma regra de RecommendationRow.BelongsTo
func (r ForecastRow) BelongsTo(id CustomerID) bool {
	return r.CustomerID != nil && *r.CustomerID == id
}
