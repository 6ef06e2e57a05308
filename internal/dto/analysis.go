package dto

type ReceiptItem struct {
	Name  string  `json:"name" example:"Latte"`
	Price float64 `json:"price" example:"4.5"`
}

// AnalysisResult is the response body of POST /analyze.
type AnalysisResult struct {
	Type       string        `json:"type" example:"text"`
	Merchant   *string       `json:"merchant" example:"Starbucks"`
	Total      float64       `json:"total" example:"12.5"`
	Currency   string        `json:"currency" example:"USD"`
	Date       *string       `json:"date" example:"2024-03-01"`
	Items      []ReceiptItem `json:"items"`
	Confidence float64       `json:"confidence" example:"0.92"`
	Language   string        `json:"language" example:"en"`
}

type ErrorResponse struct {
	Detail string `json:"detail" example:"Either file or text must be provided"`
}

type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	Service     string `json:"service" example:"Wannatrack AI Receipt Analyzer"`
	LLMProvider string `json:"llm_provider" example:"openai"`
}
