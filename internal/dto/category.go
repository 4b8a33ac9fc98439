package dto

type CreateCategoryRequest struct {
	Name      string  `json:"name"`
	TxType    string  `json:"tx_type"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	IsDefault bool    `json:"is_default"`
}
