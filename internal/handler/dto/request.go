package dto

type CreateHoldRequest struct {
	CourtID string `json:"court_id" binding:"required,uuid"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Source  string `json:"source" binding:"omitempty,oneof=WEB WHATSAPP RECEPTION"`
}

type ExtendHoldRequest struct {
	End string `json:"end" binding:"required"`
}

// ConfirmRequest: авторизованный пользователь может не передавать поля, которые есть в профиле.
type ConfirmRequest struct {
	FullName string `json:"full_name" binding:"max=200"`
	Phone    string `json:"phone" binding:"max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CANCELLED COMPLETED NO_SHOW"`
	Actor  string `json:"actor" binding:"max=64"`
}

type MarkPaidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method" binding:"required,oneof=CASH CARD TRANSFER"`
}

type AttachCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
}
