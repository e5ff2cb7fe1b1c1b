package models

type Brand struct {
	ID        int64  `json:"id,omitempty" validate:"omitempty,gt=0"`
	Name      string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Address   string `json:"address,omitempty"`
	ShortCode string `json:"shortCode,omitempty"`
}
