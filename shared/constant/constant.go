package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
	ContextKeyUserRole contextKey = "user_role"
	ContextKeyTokenID  contextKey = "token_id"
)

const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

const (
	OrderTypeDineIn      = "DINE_IN"
	OrderTypeRoomService = "ROOM_SERVICE"
	OrderTypeTakeout     = "TAKEOUT"
	OrderTypeDelivery    = "DELIVERY"
)

const (
	OrderStatusOpen   = "OPEN"
	OrderStatusClosed = "CLOSED"
)

const (
	SlotStatusAvailable = "AVAILABLE"
	SlotStatusOccupied  = "OCCUPIED"
)

const (
	BookingStatusActive     = "ACTIVE"
	BookingStatusCheckedOut = "CHECKED_OUT"
	BookingStatusConfirmed  = "CONFIRMED"
)

const (
	PriceModeDineIn   = "DINE_IN"
	PriceModeDelivery = "DELIVERY"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelDocumentScopeName   = "document"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
)

const (
	KafkaTopicKitchenTickets = "pos.kitchen-tickets"
	KafkaTopicOrdersClosed   = "pos.orders-closed"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypePDF               = "application/pdf"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
