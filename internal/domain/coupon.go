package domain

// Coupon is a "love coupon". While IsInInventory is false it sits in the
// creator's list; sending sets ReceiverID and IsInInventory together and
// moves it to the receiver's inventory. Redeemed is stored but never
// mutated anywhere.
type Coupon struct {
	ID            int64
	Title         string
	CreatorID     int64
	ReceiverID    *int64
	IsInInventory bool
	Redeemed      bool
}
