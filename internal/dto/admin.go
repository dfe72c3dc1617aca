package dto

type BestProfessionResponseDTO struct {
	BestProfession string  `json:"bestProfession" example:"Programmer"`
	TotalEarned    float64 `json:"totalEarned" example:"2683"`
}

type BestClientResponseDTO struct {
	ClientID        int     `json:"clientId" example:"4"`
	ClientFirstName string  `json:"clientFirstName" example:"Ash"`
	ClientLastName  string  `json:"clientLastName" example:"Kethcum"`
	TotalPaid       float64 `json:"totalPaid" example:"2020"`
}
