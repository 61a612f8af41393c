package constants

// Order statuses. The lifecycle is free-form, admins can move an order to
// any non-empty status.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusBaking     = "baking"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Delivery methods accepted on order intake.
const (
	DeliveryMethodPickup  = "pickup"
	DeliveryMethodCourier = "courier"
)

// Setting keys stored in the settings table.
const (
	SettingKeyTelegram = "telegram_notify"
)

// Context keys set by middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyIsAdmin   = "is_admin"
	ContextKeyRequestID = "request_id"
)

// HTTP headers.
const (
	HeaderRequestID = "X-Request-ID"
)
