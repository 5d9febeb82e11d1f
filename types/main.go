package types

type TransactionDirection = string

var (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

type MemberStatus = string

var (
	StatusUser     MemberStatus = "user"
	StatusBasic    MemberStatus = "Basic"
	StatusStandard MemberStatus = "Standard"
	StatusSmart    MemberStatus = "Smart"
	StatusVVIP     MemberStatus = "VVIP"
)

type DeliveryArea = string

var (
	AreaInsideDhaka  DeliveryArea = "inside_dhaka"
	AreaOutsideDhaka DeliveryArea = "outside_dhaka"
)

type OrderStatus = string

var (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus = string

var (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)
