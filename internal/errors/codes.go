package errors

// Error code constants shared with the admin frontend.
// Format: CATEGORY_SPECIFIC_DETAIL; the frontend maps codes to messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"
	ValidationRequired      = "VALIDATION_REQUIRED"
	ValidationInvalidStatus = "VALIDATION_INVALID_STATUS"
	ValidationInvalidType   = "VALIDATION_INVALID_TYPE"
	ValidationInvalidDates  = "VALIDATION_INVALID_DATES"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound = "PRODUCT_NOT_FOUND"
	ProductIsPack   = "PRODUCT_IS_PACK"

	// ==================== Packs (PACK_) ====================
	PackItemsRequired = "PACK_ITEMS_REQUIRED"
	PackItemNotFound  = "PACK_ITEM_NOT_FOUND"
	PackNestedPack    = "PACK_NESTED_PACK"

	// ==================== Options (OPTION_) ====================
	OptionNotFound            = "OPTION_NOT_FOUND"
	OptionTranslationRequired = "OPTION_TRANSLATION_REQUIRED"

	// ==================== Offers (OFFER_) ====================
	OfferNotFound       = "OFFER_NOT_FOUND"
	OfferStartInPast    = "OFFER_START_IN_PAST"
	OfferEndBeforeStart = "OFFER_END_BEFORE_START"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
