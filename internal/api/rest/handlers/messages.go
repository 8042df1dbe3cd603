package handlers

const (
	invalidRequestBodyMessage  = "invalid request body"
	internalServerErrorMessage = "internal server error"
	itemNameRequiredMessage    = "ItemName is required"
	quantityInvalidMessage     = "Quantity must be greater than 0"
)
