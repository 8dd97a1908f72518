package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

// канонические тексты ошибок API
const (
	MsgValidationFails     = "Validation fails"
	MsgAccessDenied        = "Access denied"
	MsgInternalServerError = "Internal server error"

	MsgDeliverymanNotFound = "Deliveryman not found"
	MsgPackageNotFound     = "Package not found"
	MsgRecipientNotFound   = "Recipient not found"
	MsgSignatureNotFound   = "Signature picture not found"
	MsgDeliveryNotFound    = "Delivery not found"
	MsgProblemNotFound     = "Delivery Problem not found"

	MsgAlreadyStarted     = "Delivery already started"
	MsgOutsideWindow      = "A delivery can only start between 08:00 and 18:00"
	MsgQuotaExceeded      = "Only 5 deliveries per day are allowed"
	MsgNotStarted         = "Delivery not started - Impossible to finalize it"
	MsgAlreadyFinished    = "Delivery already finalized"
	MsgDescriptionMissing = "Description not provided"
	MsgAlreadyCancelled   = "Delivery already cancelled"

	MsgProblemDeleted = "Delivery Problem deleted"
)
